package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	config "github.com/AshrafMorningstar/linkedin-viral-scheduler/configs"
	"github.com/AshrafMorningstar/linkedin-viral-scheduler/internal/models"
	"github.com/stretchr/testify/require"
)

const testUserID = int64(1)

// Monday, so every prime window of the current week is still ahead.
var monday = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

func newTestScheduler(store *fakeStore, cfg config.Config, now time.Time) *schedulerService {
	return &schedulerService{
		cfg: cfg,
		dr:  fakeDraftRepo{store: store},
		mr:  store,
		sr:  fakeScheduleRepo{store: store},
		now: func() time.Time { return now },
	}
}

func addDraft(store *fakeStore, mediaType string) {
	var mediaID sql.NullInt64
	if mediaType != "" {
		media := &models.MediaItem{
			UserID:    testUserID,
			MediaType: mediaType,
			Status:    models.MediaStatusProcessed,
		}
		store.Create(context.Background(), nil, media)
		mediaID = sql.NullInt64{Int64: media.ID, Valid: true}
	}

	draft := &models.PostDraft{UserID: testUserID, MediaItemID: mediaID, Hook: "h"}
	fakeDraftRepo{store: store}.Create(context.Background(), nil, draft)
}

func TestAssignSchedules_BestTimeHeuristic(t *testing.T) {
	store := &fakeStore{}
	addDraft(store, models.MediaTypeVideo)
	addDraft(store, models.MediaTypeDocument)
	addDraft(store, models.MediaTypeImage)

	s := newTestScheduler(store, config.Config{Timezone: "UTC", UseBestTimeAI: true}, monday)
	require.NoError(t, s.AssignSchedules(context.Background(), testUserID))

	require.Len(t, store.plans, 3)
	require.Equal(t, time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC), store.plans[0].ScheduledAt) // video: Tue 10:00
	require.Equal(t, time.Date(2024, 1, 3, 14, 0, 0, 0, time.UTC), store.plans[1].ScheduledAt) // document: Wed 14:00
	require.Equal(t, time.Date(2024, 1, 4, 14, 0, 0, 0, time.UTC), store.plans[2].ScheduledAt) // image: Thu 14:00

	for _, p := range store.plans {
		require.Equal(t, models.ScheduleStatusPending, p.Status)
		require.Equal(t, testUserID, p.UserID)
	}
}

func TestAssignSchedules_RoundRobinOverflow(t *testing.T) {
	store := &fakeStore{}
	for i := 0; i < 7; i++ {
		addDraft(store, "")
	}

	s := newTestScheduler(store, config.Config{Timezone: "UTC"}, monday)
	require.NoError(t, s.AssignSchedules(context.Background(), testUserID))

	require.Len(t, store.plans, 7)

	expected := []time.Time{
		time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 2, 14, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 3, 14, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 4, 10, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 4, 14, 0, 0, 0, time.UTC),
		// The seventh draft rolls into next week's first window.
		time.Date(2024, 1, 9, 10, 0, 0, 0, time.UTC),
	}
	for i, p := range store.plans {
		require.Equal(t, expected[i], p.ScheduledAt, "plan %d", i)
	}
}

func TestAssignSchedules_NeverSchedulesInThePast(t *testing.T) {
	store := &fakeStore{}
	addDraft(store, models.MediaTypeImage)

	// Friday afternoon: the image slot (Thu 14:00) of this week is gone.
	friday := time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC)
	s := newTestScheduler(store, config.Config{Timezone: "UTC", UseBestTimeAI: true}, friday)
	require.NoError(t, s.AssignSchedules(context.Background(), testUserID))

	require.Len(t, store.plans, 1)
	require.Equal(t, time.Date(2024, 1, 11, 14, 0, 0, 0, time.UTC), store.plans[0].ScheduledAt)
	require.True(t, store.plans[0].ScheduledAt.After(friday))
}

func TestAssignSchedules_Rerun_DoesNotDoubleSchedule(t *testing.T) {
	store := &fakeStore{}
	addDraft(store, models.MediaTypeVideo)
	addDraft(store, models.MediaTypeImage)

	s := newTestScheduler(store, config.Config{Timezone: "UTC", UseBestTimeAI: true}, monday)
	require.NoError(t, s.AssignSchedules(context.Background(), testUserID))
	require.NoError(t, s.AssignSchedules(context.Background(), testUserID))

	require.Len(t, store.plans, 2)
}

func TestAssignSchedules_NoDraftsIsNoOp(t *testing.T) {
	store := &fakeStore{}
	s := newTestScheduler(store, config.Config{Timezone: "UTC"}, monday)

	require.NoError(t, s.AssignSchedules(context.Background(), testUserID))
	require.Empty(t, store.plans)
}

func TestSlotTime_SundayMapsToISOWeek(t *testing.T) {
	// Sunday belongs to the week that started the previous Monday, so the
	// Tuesday slot lands in the past and AssignSchedules pushes it forward.
	sunday := time.Date(2024, 1, 7, 12, 0, 0, 0, time.UTC)
	got := slotTime(sunday, 2, 10, 0)
	require.Equal(t, time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC), got)
}

func TestPredictBestTime(t *testing.T) {
	tests := []struct {
		mediaType string
		weekday   int
		hour      int
	}{
		{models.MediaTypeVideo, 2, 10},
		{models.MediaTypeDocument, 3, 14},
		{models.MediaTypeImage, 4, 14},
		{"UNKNOWN", 4, 14},
	}

	for _, tt := range tests {
		weekday, hour, reasoning := predictBestTime(tt.mediaType)
		require.Equal(t, tt.weekday, weekday, tt.mediaType)
		require.Equal(t, tt.hour, hour, tt.mediaType)
		require.NotEmpty(t, reasoning)
	}
}
