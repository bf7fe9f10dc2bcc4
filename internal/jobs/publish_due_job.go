package job

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"sync"
	"time"

	"github.com/AshrafMorningstar/linkedin-viral-scheduler/internal/models"
	"github.com/AshrafMorningstar/linkedin-viral-scheduler/internal/repository"
)

var ErrDraftMissing = errors.New("schedule has no backing draft")

// PublishDueJob is the cron-invoked publication sweep: it finds every plan
// whose time has arrived, transmits it, and moves it to a terminal state.
type PublishDueJob struct {
	sr repository.SchedulePlanRepository
	dr repository.PostDraftRepository
	tx Transmitter

	mu  sync.Mutex
	now func() time.Time
}

func NewPublishDueJob(
	sr repository.SchedulePlanRepository,
	dr repository.PostDraftRepository,
	tx Transmitter) *PublishDueJob {
	return &PublishDueJob{
		sr:  sr,
		dr:  dr,
		tx:  tx,
		now: time.Now,
	}
}

// Run performs one sweep. Overlapping timer fires are skipped rather than
// queued so the same plan is never published twice.
func (j *PublishDueJob) Run() {
	if !j.mu.TryLock() {
		log.Println("Previous sweep still running, skipping this pass")
		return
	}
	defer j.mu.Unlock()

	ctx := context.Background()
	now := j.now().UTC()

	due, err := j.sr.ListDue(ctx, now)
	if err != nil {
		slog.Info(err.Error())
		return
	}

	if len(due) > 0 {
		log.Printf("Processing %d scheduled items...", len(due))
	}

	for _, plan := range due {
		j.publishOne(ctx, plan)
	}
}

// publishOne handles a single due plan. Any failure lands the plan in FAILED;
// nothing here can abort the rest of the sweep.
func (j *PublishDueJob) publishOne(ctx context.Context, plan *models.SchedulePlan) {
	draft, err := j.dr.GetByID(ctx, plan.PostDraftID)
	if err == nil && draft == nil {
		err = ErrDraftMissing
	}

	var urn string
	if err == nil {
		urn, err = j.tx.Publish(ctx, plan, draft)
	}

	if err != nil {
		slog.Error("publication failed", "schedule_id", plan.ID, "error", err)
		if err := j.sr.UpdateStatus(ctx, models.ScheduleStatusFailed, plan.ID); err != nil {
			slog.Error("could not mark schedule failed", "schedule_id", plan.ID, "error", err)
		}
		return
	}

	if err := j.sr.MarkPosted(ctx, plan.ID, urn); err != nil {
		slog.Error("could not mark schedule posted", "schedule_id", plan.ID, "error", err)
		return
	}

	log.Printf("Published schedule ID: %d", plan.ID)
}
