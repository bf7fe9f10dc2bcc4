package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/AshrafMorningstar/linkedin-viral-scheduler/internal/models"
)

type SchedulePlanRepository interface {
	GetByID(ctx context.Context, id int64) (*models.SchedulePlan, error)
	Create(ctx context.Context, tx *sql.Tx, plan *models.SchedulePlan) (int64, error)
	List(ctx context.Context) ([]*models.SchedulePlan, error)
	ListDue(ctx context.Context, now time.Time) ([]*models.SchedulePlan, error)
	UpdateStatus(ctx context.Context, status string, planID int64) error
	MarkPosted(ctx context.Context, planID int64, postURN string) error
}

type schedulePlanRepository struct {
	db *sql.DB
}

func NewSchedulePlanRepository(db *sql.DB) SchedulePlanRepository {
	return &schedulePlanRepository{db: db}
}

func (r *schedulePlanRepository) Create(ctx context.Context, tx *sql.Tx, plan *models.SchedulePlan) (int64, error) {
	query := `
		INSERT INTO schedule_plans (user_id, post_draft_id, scheduled_at, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	var err error

	if tx != nil {
		err = tx.QueryRowContext(ctx, query, plan.UserID, plan.PostDraftID, plan.ScheduledAt, plan.Status).Scan(&id)
	} else {
		err = r.db.QueryRowContext(ctx, query, plan.UserID, plan.PostDraftID, plan.ScheduledAt, plan.Status).Scan(&id)
	}
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	return id, nil
}

func (r *schedulePlanRepository) GetByID(ctx context.Context, id int64) (*models.SchedulePlan, error) {
	query := `SELECT id, user_id, post_draft_id, scheduled_at, status, linkedin_post_urn, created_at, updated_at FROM schedule_plans WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)

	var plan models.SchedulePlan
	var urn sql.NullString
	err := row.Scan(&plan.ID, &plan.UserID, &plan.PostDraftID, &plan.ScheduledAt, &plan.Status, &urn, &plan.CreatedAt, &plan.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	plan.LinkedinPostURN = urn.String

	return &plan, nil
}

func (r *schedulePlanRepository) List(ctx context.Context) ([]*models.SchedulePlan, error) {
	query := `SELECT id, user_id, post_draft_id, scheduled_at, status, linkedin_post_urn, created_at, updated_at FROM schedule_plans ORDER BY scheduled_at ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	return scanPlans(rows)
}

// ListDue returns plans still awaiting publication whose target time has
// arrived. POSTED and FAILED are terminal and are never selected.
func (r *schedulePlanRepository) ListDue(ctx context.Context, now time.Time) ([]*models.SchedulePlan, error) {
	query := `
		SELECT id, user_id, post_draft_id, scheduled_at, status, linkedin_post_urn, created_at, updated_at
		FROM schedule_plans
		WHERE status IN ($1, $2) AND scheduled_at <= $3
	`

	rows, err := r.db.QueryContext(ctx, query, models.ScheduleStatusPending, models.ScheduleStatusQueued, now)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	return scanPlans(rows)
}

func scanPlans(rows *sql.Rows) ([]*models.SchedulePlan, error) {
	var plans []*models.SchedulePlan
	for rows.Next() {
		var plan models.SchedulePlan
		var urn sql.NullString
		err := rows.Scan(&plan.ID, &plan.UserID, &plan.PostDraftID, &plan.ScheduledAt, &plan.Status, &urn, &plan.CreatedAt, &plan.UpdatedAt)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		plan.LinkedinPostURN = urn.String
		plans = append(plans, &plan)
	}
	return plans, nil
}

func (r *schedulePlanRepository) UpdateStatus(ctx context.Context, status string, planID int64) error {
	query := `
		UPDATE schedule_plans
		SET status = $1,
			updated_at = $2
		WHERE id = $3
	`
	_, err := r.db.ExecContext(ctx, query, status, time.Now(), planID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *schedulePlanRepository) MarkPosted(ctx context.Context, planID int64, postURN string) error {
	query := `
		UPDATE schedule_plans
		SET status = $1,
			linkedin_post_urn = $2,
			updated_at = $3
		WHERE id = $4
	`
	_, err := r.db.ExecContext(ctx, query, models.ScheduleStatusPosted, postURN, time.Now(), planID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
