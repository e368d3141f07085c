package tasks

import (
	"testing"
	"time"

	"receptionist/models"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryLogTaskPayload(t *testing.T) {
	ts := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	entry := models.QueryLogEntry{
		Query:     "What are your hours?",
		QueryType: "hours",
		Response: models.QueryResponse{
			Message: "Our operating hours are:",
			Hours:   &models.OperatingHours{Open: "09:00 AM", Close: "06:00 PM"},
		},
		Timestamp: ts,
	}

	task, err := NewQueryLogTask(entry)
	require.NoError(t, err)
	assert.Equal(t, TypeQueryLogWrite, task.Type())

	got, err := ParseQueryLogTask(task)
	require.NoError(t, err)
	assert.Equal(t, entry.Query, got.Query)
	assert.Equal(t, entry.Response.Hours, got.Response.Hours)
	assert.True(t, ts.Equal(got.Timestamp))
}

func TestParseQueryLogTask_BadPayload(t *testing.T) {
	_, err := ParseQueryLogTask(asynq.NewTask(TypeQueryLogWrite, []byte("{nope")))
	assert.Error(t, err)
}
