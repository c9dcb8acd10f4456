// Command forecastd consumes forecast render requests from Kafka, publishes
// the rendered report lines to a sink topic and serves the same rendering
// over HTTP.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/couchcryptid/forecast-bands-service/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/forecast-bands-service/internal/adapter/kafka"
	"github.com/couchcryptid/forecast-bands-service/internal/config"
	"github.com/couchcryptid/forecast-bands-service/internal/observability"
	"github.com/couchcryptid/forecast-bands-service/internal/pipeline"
	"github.com/couchcryptid/forecast-bands-service/internal/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	builder := report.NewBuilder(report.Options{
		Units:           cfg.UnitSystem,
		Glyphs:          cfg.GlyphSet,
		ForecastHours:   cfg.ForecastHours,
		ConditionsHours: cfg.ConditionsHours,
		RainDecimation:  cfg.RainDecimation,
	})
	logger.Info("renderer configured",
		"units", cfg.UnitSystem,
		"glyphs", string(cfg.GlyphSet[:]),
		"forecast_hours", cfg.ForecastHours,
		"conditions_hours", cfg.ConditionsHours,
		"rain_decimation", cfg.RainDecimation,
	)

	reader := kafkaadapter.NewReader(cfg, logger)
	writer := kafkaadapter.NewWriter(cfg, logger)
	transformer := pipeline.NewTransformer(builder, logger, metrics)

	p := pipeline.New(reader, transformer, writer, logger, metrics, cfg.BatchSize)

	srv := httpadapter.NewServer(cfg.HTTPAddr, p, builder, metrics, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Start render pipeline.
	go func() {
		if err := p.Run(ctx); err != nil {
			logger.Error("pipeline error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if err := reader.Close(); err != nil {
		logger.Error("kafka reader close error", "error", err)
	}
	if err := writer.Close(); err != nil {
		logger.Error("kafka writer close error", "error", err)
	}

	logger.Info("shutdown complete")
}
