package job

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/AshrafMorningstar/linkedin-viral-scheduler/internal/models"
)

// Transmitter pushes one scheduled post to the outside world and returns the
// platform's identifier for it.
type Transmitter interface {
	Publish(ctx context.Context, plan *models.SchedulePlan, draft *models.PostDraft) (string, error)
}

// linkedInTransmitter simulates the LinkedIn share call. A real client against
// the LinkedIn /posts endpoint can replace it without touching the sweep.
type linkedInTransmitter struct{}

func NewLinkedInTransmitter() Transmitter {
	return linkedInTransmitter{}
}

func (linkedInTransmitter) Publish(ctx context.Context, plan *models.SchedulePlan, draft *models.PostDraft) (string, error) {
	log.Printf("Initiating share for post %d", draft.ID)

	body := draft.Body
	if len(body) > 50 {
		body = body[:50]
	}
	log.Printf("Content payload: %q...", body)

	return fmt.Sprintf("urn:li:share:%d", time.Now().UnixMilli()), nil
}
