package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"receptionist/config"
	"receptionist/cron"
	"receptionist/database"
	"receptionist/database/repository"
	"receptionist/handlers"
	"receptionist/routes"
	"receptionist/services/admin"
	"receptionist/services/booking"
	"receptionist/services/business"
	ai "receptionist/services/intelligence"
	"receptionist/services/receptionist"
	"receptionist/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("main: %v", err)
	}

	logger, err := utils.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("main: failed to initialize logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck
	zap.ReplaceGlobals(logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// MongoDB.
	mongoClient, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("main: mongo unavailable", zap.Error(err))
	}
	db := mongoClient.Database(cfg.DatabaseName)
	repos := repository.NewMongoRepositories(db, cfg.StoreTimeout)
	repos.EnsureIndexes(ctx, logger)
	if cfg.SeedSampleData {
		if err := repos.Seed(ctx, logger); err != nil {
			logger.Fatal("main: failed to seed sample data", zap.Error(err))
		}
	}

	// Redis is optional: without it the classifier runs uncached and query
	// logs are written directly.
	redisClient, err := utils.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisCacheDB)
	if err != nil {
		logger.Warn("main: redis unavailable, continuing without cache", zap.Error(err))
		redisClient = nil
	}

	classifier, closeClassifier, err := buildClassifier(ctx, cfg, redisClient, logger)
	if err != nil {
		logger.Fatal("main: failed to build classifier", zap.Error(err))
	}
	defer closeClassifier()

	var transcriber ai.Transcriber
	if cfg.VoiceEnabled() {
		stt, err := ai.NewSpeechTranscriber(ctx, cfg.GoogleServiceAccountFile)
		if err != nil {
			logger.Fatal("main: failed to initialize speech-to-text", zap.Error(err))
		}
		defer stt.Close()
		transcriber = stt
	}

	// Query log.
	var queryLogger receptionist.QueryLogger
	var worker *cron.QueryLogWorker
	// Both loggers write in the background; drain them before disconnecting.
	var pendingLogs interface{ Wait() }
	if cfg.QueryLogMode == config.QueryLogQueue && redisClient != nil {
		redisOpt := asynq.RedisClientOpt{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisQueueDB}
		queueClient := asynq.NewClient(redisOpt)
		defer queueClient.Close()

		worker = cron.NewQueryLogWorker(redisOpt, repos.QueryLog, logger)
		if err := worker.Start(); err != nil {
			logger.Fatal("main: failed to start query log worker", zap.Error(err))
		}
		queueLogger := receptionist.NewQueueQueryLogger(queueClient, cfg.StoreTimeout, logger)
		queryLogger, pendingLogs = queueLogger, queueLogger
	} else {
		if cfg.QueryLogMode == config.QueryLogQueue {
			logger.Warn("main: QUERY_LOG_MODE=queue needs redis, writing query logs directly")
		}
		directLogger := receptionist.NewDirectQueryLogger(repos.QueryLog, cfg.StoreTimeout, logger)
		queryLogger, pendingLogs = directLogger, directLogger
	}

	health := utils.NewHealthMonitor(mongoClient, redisClient, 30*time.Second)
	health.Start(ctx)

	// Services.
	bookingService := booking.NewBookingService(repos.Slots, repos.Appointment, logger)
	businessService := business.NewBusinessService(repos.Business)
	templateService := admin.NewTemplateService(repos.Templates, logger)
	resolver := receptionist.NewResolver(classifier, repos.Templates, repos.Business, repos.Slots, queryLogger, logger)

	handlerBundle := handlers.NewHandlerBundle(handlers.Dependencies{
		Business:    businessService,
		Booking:     bookingService,
		Templates:   templateService,
		Resolver:    resolver,
		Transcriber: transcriber,
		Health:      health,
		Logger:      logger,
	})
	router, err := routes.NewRouter(handlerBundle, cfg.MaxRequestsPerMin, cfg.TrustedProxyList(), logger)
	if err != nil {
		logger.Fatal("main: failed to build router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("Starting server", zap.String("addr", srv.Addr), zap.String("classifier", cfg.ClassifierProvider))
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("main: server failed to start", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	pendingLogs.Wait()
	if worker != nil {
		worker.Shutdown()
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		logger.Warn("main: mongo disconnect failed", zap.Error(err))
	}

	logger.Info("main: server stopped gracefully")
}

// buildClassifier picks the configured provider and wraps it in the Redis
// cache when a client is available.
func buildClassifier(ctx context.Context, cfg *config.Config, redisClient *redis.Client, logger *zap.Logger) (ai.Classifier, func(), error) {
	var classifier ai.Classifier
	closeFn := func() {}

	switch cfg.ClassifierProvider {
	case config.ClassifierGemini:
		client, err := ai.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, nil, err
		}
		closeFn = func() { _ = client.Close() }
		classifier = ai.NewGeminiClassifier(client, cfg.Labels(), logger)
	default:
		classifier = ai.NewKeywordClassifier()
	}

	if redisClient != nil && cfg.ClassifierCacheTTL > 0 {
		classifier = ai.NewCachedClassifier(classifier, redisClient, cfg.ClassifierCacheTTL, logger)
	}
	return classifier, closeFn, nil
}
