package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/AshrafMorningstar/linkedin-viral-scheduler/internal/models"
)

type MediaItemRepository interface {
	GetByID(ctx context.Context, id int64) (*models.MediaItem, error)
	GetByPath(ctx context.Context, path string) (*models.MediaItem, error)
	Create(ctx context.Context, tx *sql.Tx, item *models.MediaItem) (int64, error)
	List(ctx context.Context) ([]*models.MediaItem, error)
	ListByStatus(ctx context.Context, userID int64, status string) ([]*models.MediaItem, error)
	UpdateStatus(ctx context.Context, status string, itemID int64) error
}

type mediaItemRepository struct {
	db *sql.DB
}

func NewMediaItemRepository(db *sql.DB) MediaItemRepository {
	return &mediaItemRepository{db: db}
}

func (r *mediaItemRepository) Create(ctx context.Context, tx *sql.Tx, item *models.MediaItem) (int64, error) {
	query := `
		INSERT INTO media_items (user_id, path, mime_type, media_type, status, meta)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id int64
	var err error

	if tx != nil {
		err = tx.QueryRowContext(ctx, query, item.UserID, item.Path, item.MimeType, item.MediaType, item.Status, item.Meta).Scan(&id)
	} else {
		err = r.db.QueryRowContext(ctx, query, item.UserID, item.Path, item.MimeType, item.MediaType, item.Status, item.Meta).Scan(&id)
	}
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	return id, nil
}

func (r *mediaItemRepository) GetByID(ctx context.Context, id int64) (*models.MediaItem, error) {
	query := `SELECT id, user_id, path, mime_type, media_type, status, meta, created_at FROM media_items WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)

	var item models.MediaItem
	err := row.Scan(&item.ID, &item.UserID, &item.Path, &item.MimeType, &item.MediaType, &item.Status, &item.Meta, &item.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}

	return &item, nil
}

func (r *mediaItemRepository) GetByPath(ctx context.Context, path string) (*models.MediaItem, error) {
	query := `SELECT id, user_id, path, mime_type, media_type, status, meta, created_at FROM media_items WHERE path = $1`
	row := r.db.QueryRowContext(ctx, query, path)

	var item models.MediaItem
	err := row.Scan(&item.ID, &item.UserID, &item.Path, &item.MimeType, &item.MediaType, &item.Status, &item.Meta, &item.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}

	return &item, nil
}

func (r *mediaItemRepository) List(ctx context.Context) ([]*models.MediaItem, error) {
	query := `SELECT id, user_id, path, mime_type, media_type, status, meta, created_at FROM media_items ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var items []*models.MediaItem
	for rows.Next() {
		var item models.MediaItem
		err := rows.Scan(&item.ID, &item.UserID, &item.Path, &item.MimeType, &item.MediaType, &item.Status, &item.Meta, &item.CreatedAt)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		items = append(items, &item)
	}
	return items, nil
}

func (r *mediaItemRepository) ListByStatus(ctx context.Context, userID int64, status string) ([]*models.MediaItem, error) {
	query := `SELECT id, user_id, path, mime_type, media_type, status, meta, created_at FROM media_items WHERE user_id = $1 AND status = $2 ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, userID, status)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var items []*models.MediaItem
	for rows.Next() {
		var item models.MediaItem
		err := rows.Scan(&item.ID, &item.UserID, &item.Path, &item.MimeType, &item.MediaType, &item.Status, &item.Meta, &item.CreatedAt)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		items = append(items, &item)
	}
	return items, nil
}

func (r *mediaItemRepository) UpdateStatus(ctx context.Context, status string, itemID int64) error {
	query := `
		UPDATE media_items
		SET status = $1
		WHERE id = $2
	`
	_, err := r.db.ExecContext(ctx, query, status, itemID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
