// cmd/search-service/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"creator-match/internal/ai/gemini"
	"creator-match/internal/api"
	"creator-match/internal/brand"
	"creator-match/internal/common/config"
	"creator-match/internal/common/database"
	httpclient "creator-match/internal/common/http"
	"creator-match/internal/common/logger"
	"creator-match/internal/common/observability"
	"creator-match/internal/directory"
	"creator-match/internal/engine"
	"creator-match/internal/engine/retrieve"
	"creator-match/internal/vectorindex"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting search service...",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New("search-service")
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")

	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init Elasticsearch with retry ---
	var esClient *database.ElasticsearchClient
	err = retryWithBackoff(func() error {
		var err error
		esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
		if err != nil {
			return err
		}
		return esClient.Ping()
	}, 15, 2*time.Second, zapLog, "Elasticsearch connection")

	if err != nil {
		zapLog.Fatal("elasticsearch failed after retries", zap.Error(err))
	}
	zapLog.Info("Elasticsearch connected successfully")

	// --- Init Redis with retry ---
	var redis *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redis, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return redis.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer redis.Close()
	zapLog.Info("Redis connected successfully")

	// --- Init Gemini client ---
	ai, err := gemini.NewClient(ctx, cfg.APIs.Gemini.APIKey, cfg.APIs.Gemini.EmbedModel, cfg.APIs.Gemini.GenerateModel)
	if err != nil {
		zapLog.Fatal("gemini client failed", zap.Error(err))
	}
	zapLog.Info("Gemini client initialized",
		zap.String("embedModel", cfg.APIs.Gemini.EmbedModel),
		zap.String("generateModel", cfg.APIs.Gemini.GenerateModel),
	)

	// --- Wire the matching pipeline ---
	index := vectorindex.NewElasticsearch(esClient.Client, cfg.Database.Elasticsearch.Index, log)
	stats := retrieve.NewStatsCache(
		index,
		redis.GetClient(),
		time.Duration(cfg.Engine.StatsCacheTTL)*time.Millisecond,
		log,
	)
	retriever := retrieve.NewRetriever(ai, index, stats, retrieve.Config{
		MaxRetrievalWidth: cfg.Engine.MaxRetrievalWidth,
		SimilarityFloor:   cfg.Engine.SimilarityFloor,
	}, log)
	eng := engine.New(retriever, cfg.Engine.ScoreWorkers, log, obs)

	store := directory.NewStore(pg.DB, log)

	fetcher := httpclient.NewClient(time.Duration(cfg.APIs.BrandFetch.Timeout) * time.Millisecond)
	analyzer := brand.NewAnalyzer(ai, fetcher, int64(cfg.APIs.BrandFetch.MaxBodyBytes), log)

	router, err := api.NewRouter(api.Dependencies{
		Engine:         eng,
		Directory:      store,
		Brand:          analyzer,
		Logger:         log,
		RedisPinger:    redis,
		PostgresPinger: pg,
		SearchPinger:   api.PingerFunc(esClient.Info),
	})
	if err != nil {
		zapLog.Fatal("router setup failed", zap.Error(err))
	}

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Millisecond,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Millisecond,
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Millisecond)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error shutting down HTTP server", zap.Error(err))
	}

	zapLog.Info("Search service stopped gracefully")
}
