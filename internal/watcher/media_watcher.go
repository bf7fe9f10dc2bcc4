package watcher

import (
	"context"
	"encoding/json"
	"log"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/h2non/filetype"

	config "github.com/AshrafMorningstar/linkedin-viral-scheduler/configs"
	"github.com/AshrafMorningstar/linkedin-viral-scheduler/internal/models"
	"github.com/AshrafMorningstar/linkedin-viral-scheduler/internal/repository"
)

// MediaWatcher observes the configured directory and registers every new file
// as a media item awaiting draft generation. A file that fails to register
// never stops the watch loop.
type MediaWatcher struct {
	cfg config.Config
	ur  repository.UserRepository
	mr  repository.MediaItemRepository
}

func NewMediaWatcher(cfg config.Config, ur repository.UserRepository, mr repository.MediaItemRepository) *MediaWatcher {
	return &MediaWatcher{
		cfg: cfg,
		ur:  ur,
		mr:  mr,
	}
}

// Run blocks until ctx is cancelled. Files already present in the watch
// directory are scanned once on startup; registration is idempotent, so
// restarts do not create duplicates.
func (w *MediaWatcher) Run(ctx context.Context) error {
	if err := os.MkdirAll(w.cfg.MediaWatchDir, 0o755); err != nil {
		return err
	}

	log.Printf("Activating media watcher on: %s", w.cfg.MediaWatchDir)

	w.scanExisting(ctx)

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsWatcher.Close()

	if err := fsWatcher.Add(w.cfg.MediaWatchDir); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-fsWatcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Create == 0 {
				continue
			}
			log.Printf("New asset detected: %s", filepath.Base(event.Name))
			if err := w.ProcessFile(ctx, event.Name); err != nil {
				slog.Error("failed to index file", "path", event.Name, "error", err)
			}
		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("watcher error", "error", err)
		}
	}
}

func (w *MediaWatcher) scanExisting(ctx context.Context) {
	entries, err := os.ReadDir(w.cfg.MediaWatchDir)
	if err != nil {
		slog.Info(err.Error())
		return
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(w.cfg.MediaWatchDir, entry.Name())
		if err := w.ProcessFile(ctx, path); err != nil {
			slog.Error("failed to index file", "path", path, "error", err)
		}
	}
}

// ProcessFile registers one file: detect MIME type, map it to a media
// category, skip known paths, attach it to the default user.
func (w *MediaWatcher) ProcessFile(ctx context.Context, path string) error {
	fileName := filepath.Base(path)
	if strings.HasPrefix(fileName, ".") {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return nil
	}

	mimeType := DetectMimeType(path)

	exists, err := w.mr.GetByPath(ctx, path)
	if err != nil {
		return err
	}
	if exists != nil {
		log.Printf("Asset already tracked: %s", fileName)
		return nil
	}

	user, err := w.defaultUser(ctx)
	if err != nil {
		return err
	}

	meta, _ := json.Marshal(map[string]any{
		"fileName": fileName,
		"addedAt":  time.Now().UTC().Format(time.RFC3339),
		"size":     info.Size(),
	})

	item := &models.MediaItem{
		UserID:    user.ID,
		Path:      path,
		MimeType:  mimeType,
		MediaType: Categorize(mimeType),
		Status:    models.MediaStatusNew,
		Meta:      string(meta),
	}

	if _, err := w.mr.Create(ctx, nil, item); err != nil {
		return err
	}

	log.Printf("Registered %s as %s", fileName, item.MediaType)
	return nil
}

// defaultUser returns the primary system user, creating it on first use.
func (w *MediaWatcher) defaultUser(ctx context.Context) (*models.User, error) {
	user, found, err := w.ur.GetFirst(ctx)
	if err != nil {
		return nil, err
	}
	if found {
		return user, nil
	}

	created := &models.User{Email: w.cfg.DefaultUser}
	id, err := w.ur.Create(ctx, nil, created)
	if err != nil {
		return nil, err
	}
	created.ID = id
	return created, nil
}

// DetectMimeType sniffs file content first and falls back to the extension.
func DetectMimeType(path string) string {
	if kind, err := filetype.MatchFile(path); err == nil && kind != filetype.Unknown {
		return kind.MIME.Value
	}
	if byExt := mime.TypeByExtension(filepath.Ext(path)); byExt != "" {
		if i := strings.Index(byExt, ";"); i >= 0 {
			byExt = byExt[:i]
		}
		return byExt
	}
	return "application/octet-stream"
}

// Categorize maps a MIME type onto one of the three media categories.
func Categorize(mimeType string) string {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return models.MediaTypeImage
	case strings.HasPrefix(mimeType, "video/"):
		return models.MediaTypeVideo
	default:
		return models.MediaTypeDocument
	}
}
