// cmd/rated/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/lilshrooms/frankie/internal/common/config"
	"github.com/lilshrooms/frankie/internal/common/database"
	"github.com/lilshrooms/frankie/internal/common/logger"
	"github.com/lilshrooms/frankie/internal/common/observability"
	"github.com/lilshrooms/frankie/internal/ingest"
	"github.com/lilshrooms/frankie/internal/rates"
	"github.com/lilshrooms/frankie/internal/ratestore"
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
		fallback := logger.New("info", "console")
		fallback.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting rate ingestion daemon...",
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Init Redis with retry ---
	var redisClient *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redisClient, err = database.NewRedis(cfg.Redis)
		if err != nil {
			return err
		}
		pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
		defer pingCancel()
		return redisClient.Ping(pingCtx)
	}, 10, 2*time.Second, zapLog, "Redis initialization")
	if err != nil {
		zapLog.Fatal("redis unavailable", zap.Error(err))
	}
	defer redisClient.Close()

	// --- Wire the collection pipeline ---
	var source ingest.RawSource
	if cfg.Ingest.FeedKey != "" {
		source = ingest.NewRedisFeedSource(redisClient.GetClient(), cfg.Ingest.FeedKey)
	} else {
		source = ingest.NewFileFeedSource(cfg.Ingest.FeedPath)
	}

	store := ratestore.NewRedisStore(
		redisClient.GetClient(),
		cfg.Ingest.SnapshotKey,
		time.Duration(cfg.Ingest.SnapshotTTLDays)*24*time.Hour,
	)

	collector := ingest.NewCollector(source, store, rates.NewNormalizer(log), obs, log)

	// --- Metrics endpoint ---
	if cfg.Metrics.Enabled {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			zapLog.Info("metrics endpoint listening", zap.String("address", cfg.Metrics.Address))
			if err := http.ListenAndServe(cfg.Metrics.Address, mux); err != nil {
				zapLog.Error("metrics server failed", zap.Error(err))
			}
		}()
	}

	go collector.Run(ctx, time.Duration(cfg.Ingest.IntervalMinutes)*time.Minute)

	// --- Graceful shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh

	zapLog.Info("shutdown signal received", zap.String("signal", sig.String()))
	cancel()
	time.Sleep(500 * time.Millisecond) // let the current cycle observe cancellation
}
