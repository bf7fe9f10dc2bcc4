package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"os"
	"path/filepath"

	config "github.com/AshrafMorningstar/linkedin-viral-scheduler/configs"
	"github.com/AshrafMorningstar/linkedin-viral-scheduler/internal/models"
	"github.com/AshrafMorningstar/linkedin-viral-scheduler/internal/repository"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

type MediaService interface {
	List(ctx context.Context) ([]*models.MediaItem, error)
	SaveUpload(ctx context.Context, file *multipart.FileHeader) (string, error)
}

type mediaService struct {
	cfg config.Config
	mr  repository.MediaItemRepository
}

func NewMediaService(cfg config.Config, mr repository.MediaItemRepository) MediaService {
	return &mediaService{cfg: cfg, mr: mr}
}

func (s *mediaService) List(ctx context.Context) ([]*models.MediaItem, error) {
	return s.mr.List(ctx)
}

// SaveUpload writes an uploaded file into the watch directory, where the
// media watcher will pick it up and register it. Returns the stored path.
func (s *mediaService) SaveUpload(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if file == nil {
		err := errors.New("no file uploaded")
		slog.Info(err.Error())
		return "", err
	}

	if err := os.MkdirAll(s.cfg.MediaWatchDir, 0o755); err != nil {
		slog.Info(err.Error())
		return "", err
	}

	id, err := gonanoid.New()
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}

	name := fmt.Sprintf("media-%s%s", id, filepath.Ext(file.Filename))
	dst := filepath.Join(s.cfg.MediaWatchDir, name)

	src, err := file.Open()
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		slog.Info(err.Error())
		return "", err
	}

	return dst, nil
}
