package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/AshrafMorningstar/linkedin-viral-scheduler/internal/models"
	"github.com/AshrafMorningstar/linkedin-viral-scheduler/internal/repository"
)

var (
	ErrScheduleNotFound      = errors.New("schedule not found")
	ErrScheduleNotLaunchable = errors.New("schedule is not in a launchable state")
	ErrScheduleDraftMissing  = errors.New("schedule has no backing draft")
)

type ScheduleService interface {
	List(ctx context.Context) ([]*models.SchedulePlan, error)
	Launch(ctx context.Context, planID int64) (string, error)
}

type scheduleService struct {
	sr repository.SchedulePlanRepository
	dr repository.PostDraftRepository
}

func NewScheduleService(sr repository.SchedulePlanRepository, dr repository.PostDraftRepository) ScheduleService {
	return &scheduleService{sr: sr, dr: dr}
}

func (s *scheduleService) List(ctx context.Context) ([]*models.SchedulePlan, error) {
	return s.sr.List(ctx)
}

// Launch marks a plan as POSTING for a manual share and returns the composed
// post text for clipboard use. Only PENDING and QUEUED plans can be launched.
func (s *scheduleService) Launch(ctx context.Context, planID int64) (string, error) {
	plan, err := s.sr.GetByID(ctx, planID)
	if err != nil {
		return "", err
	}
	if plan == nil {
		return "", ErrScheduleNotFound
	}

	if plan.Status != models.ScheduleStatusPending && plan.Status != models.ScheduleStatusQueued {
		return "", ErrScheduleNotLaunchable
	}

	draft, err := s.dr.GetByID(ctx, plan.PostDraftID)
	if err != nil {
		return "", err
	}
	if draft == nil {
		return "", ErrScheduleDraftMissing
	}

	if err := s.sr.UpdateStatus(ctx, models.ScheduleStatusPosting, plan.ID); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s\n\n%s\n\n%s", draft.Hook, draft.Body, draft.Hashtags), nil
}
