package cron

import (
	"context"
	"fmt"

	queryLogRepo "receptionist/database/repository/querylog"
	"receptionist/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// QueryLogWorker drains the query-log queue into MongoDB.
type QueryLogWorker struct {
	srv    *asynq.Server
	mux    *asynq.ServeMux
	logger *zap.Logger
}

// NewQueryLogWorker builds the asynq server; call Start to run it.
func NewQueryLogWorker(redisOpt asynq.RedisClientOpt, repo queryLogRepo.QueryLogRepository, logger *zap.Logger) *QueryLogWorker {
	logger = logger.Named("querylog-worker")

	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				tasks.QueueQueryLog: 1,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Warn("query log task failed", zap.String("type", task.Type()), zap.Error(err))
			}),
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeQueryLogWrite, HandleQueryLogTask(repo, logger))

	return &QueryLogWorker{srv: srv, mux: mux, logger: logger}
}

// Start begins processing in the background.
func (w *QueryLogWorker) Start() error {
	if err := w.srv.Start(w.mux); err != nil {
		return fmt.Errorf("start query log worker: %w", err)
	}
	w.logger.Info("query log worker started")
	return nil
}

// Shutdown waits for in-flight tasks and stops the worker.
func (w *QueryLogWorker) Shutdown() {
	w.srv.Shutdown()
	w.logger.Info("query log worker stopped")
}

// HandleQueryLogTask persists one queued entry.
func HandleQueryLogTask(repo queryLogRepo.QueryLogRepository, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		entry, err := tasks.ParseQueryLogTask(task)
		if err != nil {
			logger.Error("dropping malformed query log task", zap.Error(err))
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}
		return repo.Insert(ctx, &entry)
	}
}
