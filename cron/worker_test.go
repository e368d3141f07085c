package cron

import (
	"context"
	"errors"
	"testing"

	"receptionist/models"
	"receptionist/services/tasks"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeQueryLogRepo struct {
	entries []models.QueryLogEntry
	err     error
}

func (f *fakeQueryLogRepo) Insert(_ context.Context, entry *models.QueryLogEntry) error {
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, *entry)
	return nil
}

func TestHandleQueryLogTask(t *testing.T) {
	repo := &fakeQueryLogRepo{}
	handler := HandleQueryLogTask(repo, zap.NewNop())

	task, err := tasks.NewQueryLogTask(models.QueryLogEntry{Query: "hi", QueryType: "greeting"})
	require.NoError(t, err)

	require.NoError(t, handler(context.Background(), task))
	require.Len(t, repo.entries, 1)
	assert.Equal(t, "greeting", repo.entries[0].QueryType)
}

func TestHandleQueryLogTask_StoreErrorIsRetried(t *testing.T) {
	repo := &fakeQueryLogRepo{err: errors.New("mongo down")}
	handler := HandleQueryLogTask(repo, zap.NewNop())

	task, err := tasks.NewQueryLogTask(models.QueryLogEntry{Query: "hi"})
	require.NoError(t, err)

	err = handler(context.Background(), task)
	require.Error(t, err)
	assert.False(t, errors.Is(err, asynq.SkipRetry))
}

func TestHandleQueryLogTask_MalformedPayloadSkipsRetry(t *testing.T) {
	handler := HandleQueryLogTask(&fakeQueryLogRepo{}, zap.NewNop())

	err := handler(context.Background(), asynq.NewTask(tasks.TypeQueryLogWrite, []byte("not json")))
	assert.ErrorIs(t, err, asynq.SkipRetry)
}
