package service

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"log/slog"
	"strings"

	config "github.com/AshrafMorningstar/linkedin-viral-scheduler/configs"
	"github.com/AshrafMorningstar/linkedin-viral-scheduler/internal/ai"
	"github.com/AshrafMorningstar/linkedin-viral-scheduler/internal/models"
	"github.com/AshrafMorningstar/linkedin-viral-scheduler/internal/repository"
)

// ErrCredentialMissing aborts a generation run before any provider call.
var ErrCredentialMissing = errors.New("authentication key missing for provider")

const draftContextHint = "Viral LinkedIn Post"

type GenerationService interface {
	GenerateDrafts(ctx context.Context, userID int64, providerName, apiKeyOverride string) error
	ListDrafts(ctx context.Context) ([]*models.PostDraft, error)
}

type generationService struct {
	cfg       config.Config
	mr        repository.MediaItemRepository
	dr        repository.PostDraftRepository
	scheduler SchedulerService

	// newProvider is ai.GetProvider in production; tests substitute fakes.
	newProvider func(name, apiKey string) ai.Provider
}

func NewGenerationService(
	cfg config.Config,
	mr repository.MediaItemRepository,
	dr repository.PostDraftRepository,
	scheduler SchedulerService) GenerationService {
	return &generationService{
		cfg:         cfg,
		mr:          mr,
		dr:          dr,
		scheduler:   scheduler,
		newProvider: ai.GetProvider,
	}
}

// GenerateDrafts turns every NEW media item of the user into a post draft.
// One item's generation failure never blocks the rest; the item stays NEW and
// is picked up again on the next run. Slot assignment is always triggered
// afterwards, even when nothing was generated.
func (s *generationService) GenerateDrafts(ctx context.Context, userID int64, providerName, apiKeyOverride string) error {
	if providerName == "" {
		providerName = s.cfg.DefaultProvider
	}

	apiKey := s.resolveAPIKey(providerName, apiKeyOverride)
	if apiKey == "" {
		slog.Error(ErrCredentialMissing.Error(), "provider", providerName)
		return ErrCredentialMissing
	}

	provider := s.newProvider(providerName, apiKey)

	newMedia, err := s.mr.ListByStatus(ctx, userID, models.MediaStatusNew)
	if err != nil {
		return err
	}

	for _, media := range newMedia {
		log.Printf("Analyzing media: %s", media.Path)

		output, err := provider.GeneratePost(ctx, &ai.PostInput{
			MediaType:   media.MediaType,
			ContextHint: draftContextHint,
		})
		if err != nil {
			slog.Error("could not generate content", "media_id", media.ID, "error", err)
			continue
		}

		draft := &models.PostDraft{
			UserID:      userID,
			MediaItemID: sql.NullInt64{Int64: media.ID, Valid: true},
			Hook:        output.Hook,
			Body:        output.Body,
			Hashtags:    output.Hashtags,
			AltText:     output.AltText,
			Score:       0,
		}

		if _, err := s.dr.Create(ctx, nil, draft); err != nil {
			slog.Error("could not persist draft", "media_id", media.ID, "error", err)
			continue
		}

		if err := s.mr.UpdateStatus(ctx, models.MediaStatusProcessed, media.ID); err != nil {
			slog.Error("could not mark media processed", "media_id", media.ID, "error", err)
			continue
		}

		log.Printf("Draft finalized for %s", media.Path)
	}

	log.Printf("Assigning posting slots for user %d...", userID)
	return s.scheduler.AssignSchedules(ctx, userID)
}

func (s *generationService) ListDrafts(ctx context.Context) ([]*models.PostDraft, error) {
	return s.dr.List(ctx)
}

// resolveAPIKey prefers the per-request override over the provider's
// environment-configured default.
func (s *generationService) resolveAPIKey(providerName, override string) string {
	if override != "" {
		return override
	}

	switch strings.ToLower(providerName) {
	case "gemini":
		return s.cfg.GeminiKey
	case "deepseek":
		return s.cfg.DeepseekKey
	default:
		return s.cfg.OpenAIKey
	}
}
