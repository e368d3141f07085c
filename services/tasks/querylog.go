package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"receptionist/models"

	"github.com/hibiken/asynq"
)

const (
	TypeQueryLogWrite = "querylog:write"
	QueueQueryLog     = "querylog"
)

// NewQueryLogTask wraps an audit entry for the background writer. Entries are
// an audit trail, not business state, so a failed write is retried a few
// times and then dropped.
func NewQueryLogTask(entry models.QueryLogEntry) (*asynq.Task, error) {
	b, err := json.Marshal(entry)
	if err != nil {
		return nil, fmt.Errorf("marshal query log entry: %w", err)
	}
	opts := []asynq.Option{
		asynq.Queue(QueueQueryLog),
		asynq.MaxRetry(3),
		asynq.Retention(time.Hour),
	}
	return asynq.NewTask(TypeQueryLogWrite, b, opts...), nil
}

// ParseQueryLogTask decodes the payload written by NewQueryLogTask.
func ParseQueryLogTask(task *asynq.Task) (models.QueryLogEntry, error) {
	var entry models.QueryLogEntry
	if err := json.Unmarshal(task.Payload(), &entry); err != nil {
		return entry, fmt.Errorf("invalid query log payload: %w", err)
	}
	return entry, nil
}
