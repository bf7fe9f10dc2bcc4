package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/AshrafMorningstar/linkedin-viral-scheduler/internal/models"
)

// fakeStore backs the service tests with an in-memory implementation of the
// media, draft, and schedule repositories.
type fakeStore struct {
	media  []*models.MediaItem
	drafts []*models.PostDraft
	plans  []*models.SchedulePlan
	nextID int64

	draftCreateErr error
	planCreateErr  error
}

func (f *fakeStore) id() int64 {
	f.nextID++
	return f.nextID
}

// --- MediaItemRepository ---

func (f *fakeStore) GetByID(ctx context.Context, id int64) (*models.MediaItem, error) {
	for _, m := range f.media {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) GetByPath(ctx context.Context, path string) (*models.MediaItem, error) {
	for _, m := range f.media {
		if m.Path == path {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) Create(ctx context.Context, tx *sql.Tx, item *models.MediaItem) (int64, error) {
	item.ID = f.id()
	f.media = append(f.media, item)
	return item.ID, nil
}

func (f *fakeStore) List(ctx context.Context) ([]*models.MediaItem, error) {
	return f.media, nil
}

func (f *fakeStore) ListByStatus(ctx context.Context, userID int64, status string) ([]*models.MediaItem, error) {
	var out []*models.MediaItem
	for _, m := range f.media {
		if m.UserID == userID && m.Status == status {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeStore) UpdateStatus(ctx context.Context, status string, itemID int64) error {
	for _, m := range f.media {
		if m.ID == itemID {
			m.Status = status
		}
	}
	return nil
}

// draftRepo and scheduleRepo wrap fakeStore so the three repository
// interfaces, whose method names overlap, can coexist on one fixture.

type fakeDraftRepo struct{ store *fakeStore }

func (f fakeDraftRepo) GetByID(ctx context.Context, id int64) (*models.PostDraft, error) {
	for _, d := range f.store.drafts {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, nil
}

func (f fakeDraftRepo) Create(ctx context.Context, tx *sql.Tx, draft *models.PostDraft) (int64, error) {
	if f.store.draftCreateErr != nil {
		return 0, f.store.draftCreateErr
	}
	draft.ID = f.store.id()
	f.store.drafts = append(f.store.drafts, draft)
	return draft.ID, nil
}

func (f fakeDraftRepo) List(ctx context.Context) ([]*models.PostDraft, error) {
	return f.store.drafts, nil
}

func (f fakeDraftRepo) ListUnscheduled(ctx context.Context, userID int64) ([]*models.PostDraft, error) {
	scheduled := map[int64]bool{}
	for _, p := range f.store.plans {
		scheduled[p.PostDraftID] = true
	}

	var out []*models.PostDraft
	for _, d := range f.store.drafts {
		if d.UserID == userID && !scheduled[d.ID] {
			out = append(out, d)
		}
	}
	return out, nil
}

type fakeScheduleRepo struct{ store *fakeStore }

func (f fakeScheduleRepo) GetByID(ctx context.Context, id int64) (*models.SchedulePlan, error) {
	for _, p := range f.store.plans {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f fakeScheduleRepo) Create(ctx context.Context, tx *sql.Tx, plan *models.SchedulePlan) (int64, error) {
	if f.store.planCreateErr != nil {
		return 0, f.store.planCreateErr
	}
	plan.ID = f.store.id()
	f.store.plans = append(f.store.plans, plan)
	return plan.ID, nil
}

func (f fakeScheduleRepo) List(ctx context.Context) ([]*models.SchedulePlan, error) {
	return f.store.plans, nil
}

func (f fakeScheduleRepo) ListDue(ctx context.Context, now time.Time) ([]*models.SchedulePlan, error) {
	var out []*models.SchedulePlan
	for _, p := range f.store.plans {
		if (p.Status == models.ScheduleStatusPending || p.Status == models.ScheduleStatusQueued) && !p.ScheduledAt.After(now) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f fakeScheduleRepo) UpdateStatus(ctx context.Context, status string, planID int64) error {
	for _, p := range f.store.plans {
		if p.ID == planID {
			p.Status = status
		}
	}
	return nil
}

func (f fakeScheduleRepo) MarkPosted(ctx context.Context, planID int64, postURN string) error {
	for _, p := range f.store.plans {
		if p.ID == planID {
			p.Status = models.ScheduleStatusPosted
			p.LinkedinPostURN = postURN
		}
	}
	return nil
}
