package queue

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/hibiken/asynq"
)

func (q *Queue) HandleGenerateDraftsTask(ctx context.Context, task *asynq.Task) error {
	var payload GenerateDraftsPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return err
	}

	if err := q.gs.GenerateDrafts(ctx, payload.UserID, payload.Provider, payload.APIKey); err != nil {
		slog.Error("generation run failed", "user_id", payload.UserID, "error", err)
	}

	return nil
}
