package service

import (
	"context"
	"testing"
	"time"

	"github.com/AshrafMorningstar/linkedin-viral-scheduler/internal/models"
	"github.com/stretchr/testify/require"
)

func seedLaunchablePlan(store *fakeStore, status string) *models.SchedulePlan {
	draft := &models.PostDraft{
		UserID:   testUserID,
		Hook:     "Stop scrolling.",
		Body:     "Here is the insight.",
		Hashtags: "#golang #growth",
	}
	fakeDraftRepo{store: store}.Create(context.Background(), nil, draft)

	plan := &models.SchedulePlan{
		UserID:      testUserID,
		PostDraftID: draft.ID,
		ScheduledAt: time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC),
		Status:      status,
	}
	fakeScheduleRepo{store: store}.Create(context.Background(), nil, plan)
	return plan
}

func TestLaunch_ComposesPostAndMarksPosting(t *testing.T) {
	store := &fakeStore{}
	plan := seedLaunchablePlan(store, models.ScheduleStatusPending)

	svc := NewScheduleService(fakeScheduleRepo{store: store}, fakeDraftRepo{store: store})
	content, err := svc.Launch(context.Background(), plan.ID)
	require.NoError(t, err)

	require.Equal(t, "Stop scrolling.\n\nHere is the insight.\n\n#golang #growth", content)
	require.Equal(t, models.ScheduleStatusPosting, plan.Status)
}

func TestLaunch_QueuedPlanIsLaunchable(t *testing.T) {
	store := &fakeStore{}
	plan := seedLaunchablePlan(store, models.ScheduleStatusQueued)

	svc := NewScheduleService(fakeScheduleRepo{store: store}, fakeDraftRepo{store: store})
	_, err := svc.Launch(context.Background(), plan.ID)
	require.NoError(t, err)
	require.Equal(t, models.ScheduleStatusPosting, plan.Status)
}

func TestLaunch_UnknownPlan(t *testing.T) {
	store := &fakeStore{}
	svc := NewScheduleService(fakeScheduleRepo{store: store}, fakeDraftRepo{store: store})

	_, err := svc.Launch(context.Background(), 404)
	require.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestLaunch_TerminalStatesRejected(t *testing.T) {
	for _, status := range []string{
		models.ScheduleStatusPosting,
		models.ScheduleStatusPosted,
		models.ScheduleStatusFailed,
	} {
		store := &fakeStore{}
		plan := seedLaunchablePlan(store, status)

		svc := NewScheduleService(fakeScheduleRepo{store: store}, fakeDraftRepo{store: store})
		_, err := svc.Launch(context.Background(), plan.ID)
		require.ErrorIs(t, err, ErrScheduleNotLaunchable, "status %s", status)
		require.Equal(t, status, plan.Status, "status %s must not change", status)
	}
}

func TestLaunch_MissingDraft(t *testing.T) {
	store := &fakeStore{}
	plan := &models.SchedulePlan{
		UserID:      testUserID,
		PostDraftID: 999,
		Status:      models.ScheduleStatusPending,
	}
	fakeScheduleRepo{store: store}.Create(context.Background(), nil, plan)

	svc := NewScheduleService(fakeScheduleRepo{store: store}, fakeDraftRepo{store: store})
	_, err := svc.Launch(context.Background(), plan.ID)
	require.ErrorIs(t, err, ErrScheduleDraftMissing)
}
