package receptionist

import (
	"context"
	"sync"
	"time"

	queryLogRepo "receptionist/database/repository/querylog"
	"receptionist/models"
	"receptionist/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// QueryLogger records answered queries. Log never blocks the caller on the
// store and never reports failure to it.
type QueryLogger interface {
	Log(entry models.QueryLogEntry)
}

// DirectQueryLogger writes each entry from its own goroutine.
type DirectQueryLogger struct {
	repo    queryLogRepo.QueryLogRepository
	timeout time.Duration
	logger  *zap.Logger
	wg      sync.WaitGroup
}

func NewDirectQueryLogger(repo queryLogRepo.QueryLogRepository, timeout time.Duration, logger *zap.Logger) *DirectQueryLogger {
	return &DirectQueryLogger{repo: repo, timeout: timeout, logger: logger.Named("querylog")}
}

func (l *DirectQueryLogger) Log(entry models.QueryLogEntry) {
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
		defer cancel()
		if err := l.repo.Insert(ctx, &entry); err != nil {
			l.logger.Warn("failed to record customer query", zap.String("query_type", entry.QueryType), zap.Error(err))
		}
	}()
}

// Wait blocks until pending writes finish.
func (l *DirectQueryLogger) Wait() {
	l.wg.Wait()
}

type taskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// QueueQueryLogger hands entries to the query-log worker through asynq. The
// enqueue runs in its own goroutine so a slow Redis never delays a response.
type QueueQueryLogger struct {
	client  taskEnqueuer
	timeout time.Duration
	logger  *zap.Logger
	wg      sync.WaitGroup
}

func NewQueueQueryLogger(client taskEnqueuer, timeout time.Duration, logger *zap.Logger) *QueueQueryLogger {
	return &QueueQueryLogger{client: client, timeout: timeout, logger: logger.Named("querylog")}
}

func (l *QueueQueryLogger) Log(entry models.QueryLogEntry) {
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		task, err := tasks.NewQueryLogTask(entry)
		if err != nil {
			l.logger.Error("failed to build query log task", zap.Error(err))
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
		defer cancel()
		if _, err := l.client.EnqueueContext(ctx, task); err != nil {
			l.logger.Warn("failed to enqueue customer query", zap.String("query_type", entry.QueryType), zap.Error(err))
		}
	}()
}

// Wait blocks until pending enqueues finish.
func (l *QueueQueryLogger) Wait() {
	l.wg.Wait()
}
