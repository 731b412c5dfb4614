// Command server runs the climatological risk analysis HTTP service.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Amyn617/Nasa/internal/adapter/httpapi"
	kafkaadapter "github.com/Amyn617/Nasa/internal/adapter/kafka"
	"github.com/Amyn617/Nasa/internal/adapter/meteomatics"
	"github.com/Amyn617/Nasa/internal/config"
	"github.com/Amyn617/Nasa/internal/observability"
	"github.com/Amyn617/Nasa/internal/query"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	// Historical data provider: Meteomatics when credentials are configured,
	// the deterministic synthetic generator otherwise.
	var provider query.SampleProvider
	if cfg.ProviderConfigured() {
		client := meteomatics.NewClient(
			cfg.MeteomaticsUsername, cfg.MeteomaticsPassword, cfg.MeteomaticsBaseURL,
			cfg.MeteomaticsTimeout, logger, metrics)
		provider = meteomatics.NewCachedProvider(client, cfg.ProviderCacheSize, metrics)
		logger.Info("meteomatics provider enabled",
			"base_url", cfg.MeteomaticsBaseURL, "cache_size", cfg.ProviderCacheSize)
	} else {
		provider = meteomatics.NewSynthetic()
		logger.Warn("no meteomatics credentials, serving synthetic data")
	}

	// Assessment event publishing (feature-flagged via KAFKA_ENABLED).
	var publisher query.EventPublisher
	var writer *kafkaadapter.Writer
	if cfg.KafkaEnabled {
		writer = kafkaadapter.NewWriter(cfg, logger)
		publisher = writer
		logger.Info("assessment publishing enabled",
			"brokers", cfg.KafkaBrokers, "topic", cfg.KafkaSinkTopic)
	} else {
		logger.Info("assessment publishing disabled")
	}

	processor := query.NewProcessor(provider, publisher, cfg.AnalysisYears, logger, metrics)

	ready := httpapi.ReadinessFunc(func(context.Context) error { return nil })
	srv := httpapi.NewServer(cfg.HTTPAddr, processor, ready, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
