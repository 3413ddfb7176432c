package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("MONGO_DATABASE", "")
	t.Setenv("REQUEST_TIMEOUT", "")

	cfg := LoadConfig()

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, DriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, "MusicFestDB", cfg.Mongo.Database)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.False(t, cfg.Tracing.Enabled)
	assert.Same(t, cfg, AppConfig)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "8088")
	t.Setenv("STORAGE_DRIVER", "redis")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("REQUEST_TIMEOUT", "15")
	t.Setenv("SHUTDOWN_TIMEOUT", "2s")

	cfg := LoadConfig()

	assert.Equal(t, "8088", cfg.Server.Port)
	assert.Equal(t, ":8088", cfg.Addr())
	assert.Equal(t, DriverRedis, cfg.Storage.Driver)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 2*time.Second, cfg.Server.ShutdownTimeout)
}

func TestConfig_Validate(t *testing.T) {
	t.Run("UnknownDriver", func(t *testing.T) {
		cfg := LoadTestConfig()
		cfg.Storage.Driver = "sqlite"
		assert.ErrorContains(t, cfg.Validate(), "STORAGE_DRIVER")
	})

	t.Run("BadPort", func(t *testing.T) {
		cfg := LoadTestConfig()
		cfg.Server.Port = "http"
		assert.ErrorContains(t, cfg.Validate(), "PORT")
	})

	t.Run("TracingWithoutEndpoint", func(t *testing.T) {
		cfg := LoadTestConfig()
		cfg.Tracing = TracingConfig{Enabled: true, SampleRate: 0.5}
		assert.ErrorContains(t, cfg.Validate(), "OTEL_COLLECTOR_ENDPOINT")
	})

	t.Run("TracingSampleRateOutOfRange", func(t *testing.T) {
		cfg := LoadTestConfig()
		cfg.Tracing = TracingConfig{Enabled: true, Endpoint: "collector:4318", SampleRate: 1.5}
		assert.ErrorContains(t, cfg.Validate(), "OTEL_SAMPLE_RATE")
	})

	t.Run("TestConfigIsValid", func(t *testing.T) {
		for _, driver := range []string{DriverPostgres, DriverMongo, DriverRedis} {
			cfg := LoadTestConfig()
			cfg.Storage.Driver = driver
			assert.NoError(t, cfg.Validate(), driver)
		}
	})
}
