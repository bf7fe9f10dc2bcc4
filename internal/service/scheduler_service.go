package service

import (
	"context"
	"log"
	"log/slog"
	"time"

	config "github.com/AshrafMorningstar/linkedin-viral-scheduler/configs"
	"github.com/AshrafMorningstar/linkedin-viral-scheduler/internal/models"
	"github.com/AshrafMorningstar/linkedin-viral-scheduler/internal/repository"
)

// primeWindow is a fixed (ISO weekday, hour) pair with high LinkedIn
// engagement: Tue/Wed/Thu, mid-morning and mid-afternoon, UTC.
type primeWindow struct {
	weekday int // Mon=1 .. Sun=7
	hour    int
}

var primeWindows = []primeWindow{
	{weekday: 2, hour: 10}, // Tue 10:00
	{weekday: 2, hour: 14}, // Tue 14:00
	{weekday: 3, hour: 10}, // Wed 10:00
	{weekday: 3, hour: 14}, // Wed 14:00
	{weekday: 4, hour: 10}, // Thu 10:00
	{weekday: 4, hour: 14}, // Thu 14:00
}

// predictBestTime is the category-keyed slot heuristic. Distinct categories
// map to distinct windows to spread load by content type.
func predictBestTime(mediaType string) (weekday, hour int, reasoning string) {
	switch mediaType {
	case models.MediaTypeVideo:
		return 2, 10, "Video content captures peak attention during Tuesday morning focus blocks."
	case models.MediaTypeDocument:
		return 3, 14, "Professional carousels/documents see higher save rates on Wednesday afternoons."
	default:
		return 4, 14, "Visual imagery performs optimally as the mid-week professional workload tapers."
	}
}

type SchedulerService interface {
	AssignSchedules(ctx context.Context, userID int64) error
}

type schedulerService struct {
	cfg config.Config
	dr  repository.PostDraftRepository
	mr  repository.MediaItemRepository
	sr  repository.SchedulePlanRepository
	now func() time.Time
}

func NewSchedulerService(
	cfg config.Config,
	dr repository.PostDraftRepository,
	mr repository.MediaItemRepository,
	sr repository.SchedulePlanRepository) SchedulerService {
	return &schedulerService{
		cfg: cfg,
		dr:  dr,
		mr:  mr,
		sr:  sr,
		now: time.Now,
	}
}

// AssignSchedules gives every unscheduled draft of the user a PENDING schedule
// plan. A draft that already has a plan is never touched, so re-running is a
// no-op for it.
func (s *schedulerService) AssignSchedules(ctx context.Context, userID int64) error {
	drafts, err := s.dr.ListUnscheduled(ctx, userID)
	if err != nil {
		return err
	}

	if len(drafts) == 0 {
		log.Printf("No pending drafts for user %d. Skipping.", userID)
		return nil
	}

	loc, err := time.LoadLocation(s.cfg.Timezone)
	if err != nil {
		slog.Info(err.Error())
		loc = time.UTC
	}
	now := s.now().In(loc)

	for i, draft := range drafts {
		weekday, hour, reasoning := s.pickSlot(ctx, draft, i)

		// Spread overflow into later weeks once every window of the table
		// has been used.
		weeksAhead := i / len(primeWindows)

		scheduled := slotTime(now, weekday, hour, weeksAhead)
		if !scheduled.After(now) {
			scheduled = scheduled.AddDate(0, 0, 7)
		}

		plan := &models.SchedulePlan{
			UserID:      userID,
			PostDraftID: draft.ID,
			ScheduledAt: scheduled.UTC(),
			Status:      models.ScheduleStatusPending,
		}

		if _, err := s.sr.Create(ctx, nil, plan); err != nil {
			slog.Error("failed to persist schedule plan", "draft_id", draft.ID, "error", err)
			continue
		}

		log.Printf("Assigned %s for draft %d (%s)", scheduled.Format(time.RFC3339), draft.ID, reasoning)
	}

	return nil
}

func (s *schedulerService) pickSlot(ctx context.Context, draft *models.PostDraft, index int) (weekday, hour int, reasoning string) {
	if s.cfg.UseBestTimeAI && draft.MediaItemID.Valid {
		item, err := s.mr.GetByID(ctx, draft.MediaItemID.Int64)
		if err == nil && item != nil {
			return predictBestTime(item.MediaType)
		}
		if err != nil {
			slog.Info(err.Error())
		}
	}

	window := primeWindows[index%len(primeWindows)]
	return window.weekday, window.hour, "Standard viral window assignment"
}

// slotTime places now (shifted weeksAhead weeks forward) on the given ISO
// weekday within its Monday-to-Sunday week, at hour:00:00.
func slotTime(now time.Time, weekday, hour, weeksAhead int) time.Time {
	base := now.AddDate(0, 0, 7*weeksAhead)

	iso := int(base.Weekday())
	if iso == 0 {
		iso = 7 // Sunday
	}
	base = base.AddDate(0, 0, weekday-iso)

	return time.Date(base.Year(), base.Month(), base.Day(), hour, 0, 0, 0, base.Location())
}
