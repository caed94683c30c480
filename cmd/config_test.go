package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "roadside")
	t.Setenv("DB_NAME", "roadside")
	t.Setenv("KAFKA_HOST", "localhost:9092")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("FIREBASE_PROJECT_ID", "roadside-dev")
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults with required environment", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("CONFIG_FILE", "")

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.HTTPPort)
		assert.Equal(t, 10*time.Minute, cfg.SweepThreshold)
		assert.Equal(t, 3, cfg.SweepMaxAttempts)
		assert.Equal(t, []string{"localhost:9092"}, cfg.KafkaBrokers())
	})

	t.Run("environment wins over the file", func(t *testing.T) {
		setRequiredEnv(t)
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
http_port: "9000"
sweep_threshold: 5m
sweep_max_attempts: 5
maps_language: en
`), 0o600))
		t.Setenv("CONFIG_FILE", path)
		t.Setenv("SWEEP_MAX_ATTEMPTS", "2")

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "9000", cfg.HTTPPort)
		assert.Equal(t, 5*time.Minute, cfg.SweepThreshold)
		assert.Equal(t, 2, cfg.SweepMaxAttempts)
		assert.Equal(t, "en", cfg.MapsLanguage)
	})

	t.Run("malformed duration", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("CONFIG_FILE", "")
		t.Setenv("SWEEP_THRESHOLD", "ten minutes")

		_, err := LoadConfig()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "SWEEP_THRESHOLD")
	})

	t.Run("missing config file", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))

		_, err := LoadConfig()

		require.ErrorContains(t, err, "failed to read config file")
	})
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SweepMaxAttempts = 0

	err := cfg.Validate()

	require.Error(t, err)
	for _, want := range []string{"database host", "kafka host", "redis address", "firebase project id", "max attempts"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestConfig_ConnectionStrings(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DBHost = "db"
	cfg.DBUser = "app"
	cfg.DBPassword = "p@ss"
	cfg.DBName = "roadside"
	cfg.KafkaHost = "k1:9092, k2:9092,"

	assert.Equal(t, "host=db port=5432 user=app password=p@ss dbname=roadside sslmode=disable", cfg.PostgresDSN())
	assert.Equal(t, "postgres://app:p%40ss@db:5432/roadside?sslmode=disable", cfg.PostgresURL())
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers())
}
