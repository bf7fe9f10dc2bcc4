package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/AshrafMorningstar/linkedin-viral-scheduler/internal/models"
)

type PostDraftRepository interface {
	GetByID(ctx context.Context, id int64) (*models.PostDraft, error)
	Create(ctx context.Context, tx *sql.Tx, draft *models.PostDraft) (int64, error)
	List(ctx context.Context) ([]*models.PostDraft, error)
	ListUnscheduled(ctx context.Context, userID int64) ([]*models.PostDraft, error)
}

type postDraftRepository struct {
	db *sql.DB
}

func NewPostDraftRepository(db *sql.DB) PostDraftRepository {
	return &postDraftRepository{db: db}
}

func (r *postDraftRepository) Create(ctx context.Context, tx *sql.Tx, draft *models.PostDraft) (int64, error) {
	query := `
		INSERT INTO post_drafts (user_id, media_item_id, hook, body, hashtags, alt_text, score)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var id int64
	var err error

	if tx != nil {
		err = tx.QueryRowContext(ctx, query, draft.UserID, draft.MediaItemID, draft.Hook, draft.Body, draft.Hashtags, draft.AltText, draft.Score).Scan(&id)
	} else {
		err = r.db.QueryRowContext(ctx, query, draft.UserID, draft.MediaItemID, draft.Hook, draft.Body, draft.Hashtags, draft.AltText, draft.Score).Scan(&id)
	}
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	return id, nil
}

func (r *postDraftRepository) GetByID(ctx context.Context, id int64) (*models.PostDraft, error) {
	query := `SELECT id, user_id, media_item_id, hook, body, hashtags, alt_text, score, created_at FROM post_drafts WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)

	var draft models.PostDraft
	err := row.Scan(&draft.ID, &draft.UserID, &draft.MediaItemID, &draft.Hook, &draft.Body, &draft.Hashtags, &draft.AltText, &draft.Score, &draft.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}

	return &draft, nil
}

func (r *postDraftRepository) List(ctx context.Context) ([]*models.PostDraft, error) {
	query := `SELECT id, user_id, media_item_id, hook, body, hashtags, alt_text, score, created_at FROM post_drafts ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var drafts []*models.PostDraft
	for rows.Next() {
		var draft models.PostDraft
		err := rows.Scan(&draft.ID, &draft.UserID, &draft.MediaItemID, &draft.Hook, &draft.Body, &draft.Hashtags, &draft.AltText, &draft.Score, &draft.CreatedAt)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		drafts = append(drafts, &draft)
	}
	return drafts, nil
}

// ListUnscheduled returns the user's drafts that have no schedule plan yet,
// oldest first so repeated runs enumerate them in a stable order.
func (r *postDraftRepository) ListUnscheduled(ctx context.Context, userID int64) ([]*models.PostDraft, error) {
	query := `
		SELECT d.id, d.user_id, d.media_item_id, d.hook, d.body, d.hashtags, d.alt_text, d.score, d.created_at
		FROM post_drafts d
		WHERE d.user_id = $1
		AND NOT EXISTS (SELECT 1 FROM schedule_plans s WHERE s.post_draft_id = d.id)
		ORDER BY d.id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var drafts []*models.PostDraft
	for rows.Next() {
		var draft models.PostDraft
		err := rows.Scan(&draft.ID, &draft.UserID, &draft.MediaItemID, &draft.Hook, &draft.Body, &draft.Hashtags, &draft.AltText, &draft.Score, &draft.CreatedAt)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		drafts = append(drafts, &draft)
	}
	return drafts, nil
}
