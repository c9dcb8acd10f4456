package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"

	"github.com/couchcryptid/forecast-bands-service/internal/render"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	KafkaBrokers     []string
	KafkaSourceTopic string
	KafkaSinkTopic   string
	KafkaGroupID     string
	HTTPAddr         string
	LogLevel         string
	LogFormat        string
	ShutdownTimeout  time.Duration

	BatchSize          int
	BatchFlushInterval time.Duration

	// Rendering configuration.
	UnitSystem      render.Units
	GlyphSet        render.GlyphSet
	ForecastHours   int
	ConditionsHours int
	RainDecimation  int
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	batchSize, err := sharedcfg.ParseBatchSize()
	if err != nil {
		return nil, err
	}

	flushInterval, err := sharedcfg.ParseBatchFlushInterval()
	if err != nil {
		return nil, err
	}

	units, err := render.ParseUnits(sharedcfg.EnvOrDefault("UNIT_SYSTEM", "imperial"))
	if err != nil {
		return nil, fmt.Errorf("invalid UNIT_SYSTEM: %w", err)
	}

	glyphs, err := render.ParseGlyphSet(sharedcfg.EnvOrDefault("GLYPH_SET", "block"))
	if err != nil {
		return nil, fmt.Errorf("invalid GLYPH_SET: %w", err)
	}

	forecastHours, err := parseIntRange("FORECAST_HOURS", 24, 1, 48)
	if err != nil {
		return nil, err
	}

	conditionsHours, err := parseIntRange("CONDITIONS_HOURS", 8, 1, 24)
	if err != nil {
		return nil, err
	}

	rainDecimation, err := parseIntRange("RAIN_DECIMATION", 4, 1, 60)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		KafkaBrokers:       sharedcfg.ParseBrokers(sharedcfg.EnvOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaSourceTopic:   sharedcfg.EnvOrDefault("KAFKA_SOURCE_TOPIC", "forecast-requests"),
		KafkaSinkTopic:     sharedcfg.EnvOrDefault("KAFKA_SINK_TOPIC", "rendered-reports"),
		KafkaGroupID:       sharedcfg.EnvOrDefault("KAFKA_GROUP_ID", "forecast-bands"),
		HTTPAddr:           sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:           sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:          sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout:    shutdownTimeout,
		BatchSize:          batchSize,
		BatchFlushInterval: flushInterval,

		UnitSystem:      units,
		GlyphSet:        glyphs,
		ForecastHours:   forecastHours,
		ConditionsHours: conditionsHours,
		RainDecimation:  rainDecimation,
	}

	if len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_BROKERS is required")
	}
	if cfg.KafkaSourceTopic == "" {
		return nil, errors.New("KAFKA_SOURCE_TOPIC is required")
	}
	if cfg.KafkaSinkTopic == "" {
		return nil, errors.New("KAFKA_SINK_TOPIC is required")
	}

	return cfg, nil
}

// parseIntRange reads an integer env var, returning def when unset.
func parseIntRange(key string, def, lo, hi int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < lo || n > hi {
		return 0, fmt.Errorf("invalid %s: must be an integer between %d and %d", key, lo, hi)
	}
	return n, nil
}
