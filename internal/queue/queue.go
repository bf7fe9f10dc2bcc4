package queue

import (
	"encoding/json"
	"log"

	"github.com/hibiken/asynq"
)

// EnqueueGeneration hands a generation run to the background worker so the
// HTTP request that triggered it returns immediately.
func EnqueueGeneration(asynqClient *asynq.Client, payload GenerateDraftsPayload) error {
	taskPayload, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	task := asynq.NewTask(TaskTypeGenerateDrafts, taskPayload)

	// Re-running the generator is the retry mechanism; a failed run is only
	// logged, never replayed automatically.
	_, err = asynqClient.Enqueue(task, asynq.MaxRetry(0))
	if err != nil {
		return err
	}

	log.Printf("Generation task scheduled for user %d (provider %s)", payload.UserID, payload.Provider)
	return nil
}
