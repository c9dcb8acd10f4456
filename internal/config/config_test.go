package config

import (
	"testing"
	"time"

	"github.com/couchcryptid/forecast-bands-service/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const defaultBroker = "localhost:9092"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{defaultBroker}, cfg.KafkaBrokers)
	assert.Equal(t, "forecast-requests", cfg.KafkaSourceTopic)
	assert.Equal(t, "rendered-reports", cfg.KafkaSinkTopic)
	assert.Equal(t, "forecast-bands", cfg.KafkaGroupID)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 50, cfg.BatchSize)
	assert.Equal(t, 500*time.Millisecond, cfg.BatchFlushInterval)
	assert.Equal(t, render.Imperial, cfg.UnitSystem)
	assert.Equal(t, render.Block, cfg.GlyphSet)
	assert.Equal(t, 24, cfg.ForecastHours)
	assert.Equal(t, 8, cfg.ConditionsHours)
	assert.Equal(t, 4, cfg.RainDecimation)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "broker1:9092,broker2:9092")
	t.Setenv("KAFKA_SOURCE_TOPIC", "custom-source")
	t.Setenv("KAFKA_SINK_TOPIC", "custom-sink")
	t.Setenv("KAFKA_GROUP_ID", "custom-group")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("BATCH_SIZE", "100")
	t.Setenv("BATCH_FLUSH_INTERVAL", "1s")
	t.Setenv("UNIT_SYSTEM", "metric")
	t.Setenv("GLYPH_SET", "ozone")
	t.Setenv("FORECAST_HOURS", "12")
	t.Setenv("CONDITIONS_HOURS", "6")
	t.Setenv("RAIN_DECIMATION", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "custom-source", cfg.KafkaSourceTopic)
	assert.Equal(t, "custom-sink", cfg.KafkaSinkTopic)
	assert.Equal(t, "custom-group", cfg.KafkaGroupID)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 100, cfg.BatchSize)
	assert.Equal(t, 1*time.Second, cfg.BatchFlushInterval)
	assert.Equal(t, render.Metric, cfg.UnitSystem)
	assert.Equal(t, render.Ozone, cfg.GlyphSet)
	assert.Equal(t, 12, cfg.ForecastHours)
	assert.Equal(t, 6, cfg.ConditionsHours)
	assert.Equal(t, 5, cfg.RainDecimation)
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_InvalidBatchSize(t *testing.T) {
	t.Setenv("BATCH_SIZE", "0")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BATCH_SIZE")
}

func TestLoad_InvalidBatchFlushInterval(t *testing.T) {
	t.Setenv("BATCH_FLUSH_INTERVAL", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BATCH_FLUSH_INTERVAL")
}

func TestLoad_InvalidUnitSystem(t *testing.T) {
	t.Setenv("UNIT_SYSTEM", "kelvin")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNIT_SYSTEM")
}

func TestLoad_InvalidGlyphSet(t *testing.T) {
	t.Setenv("GLYPH_SET", "emoji")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GLYPH_SET")
}

func TestLoad_HoursOutOfRange(t *testing.T) {
	t.Setenv("FORECAST_HOURS", "72")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FORECAST_HOURS")
}

func TestLoad_InvalidRainDecimation(t *testing.T) {
	t.Setenv("RAIN_DECIMATION", "four")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RAIN_DECIMATION")
}
