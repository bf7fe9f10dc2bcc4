package queue

import (
	"github.com/AshrafMorningstar/linkedin-viral-scheduler/internal/service"
)

type Queue struct {
	gs service.GenerationService
}

func NewQueue(gs service.GenerationService) *Queue {
	return &Queue{gs: gs}
}

const TaskTypeGenerateDrafts = "generate:drafts"

type GenerateDraftsPayload struct {
	UserID   int64  `json:"user_id"`
	Provider string `json:"provider"`
	APIKey   string `json:"api_key,omitempty"`
}
