package models

import "time"

type SchedulePlan struct {
	ID              int64     `db:"id" json:"id"`
	UserID          int64     `db:"user_id" json:"user_id"`
	PostDraftID     int64     `db:"post_draft_id" json:"post_draft_id"`
	ScheduledAt     time.Time `db:"scheduled_at" json:"scheduled_at"`
	Status          string    `db:"status" json:"status"` // PENDING, QUEUED, POSTING, POSTED, FAILED
	LinkedinPostURN string    `db:"linkedin_post_urn" json:"linkedin_post_urn"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

const (
	ScheduleStatusPending = "PENDING"
	ScheduleStatusQueued  = "QUEUED"
	ScheduleStatusPosting = "POSTING"
	ScheduleStatusPosted  = "POSTED"
	ScheduleStatusFailed  = "FAILED"
)
