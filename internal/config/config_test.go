package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AnnotationDashboard/internal/config"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("ARGILLA_API_URL", "https://argilla.example.com")
	t.Setenv("ARGILLA_API_KEY", "apikey")
	t.Setenv("HF_TOKEN", "token")
	t.Setenv("SOURCE_DATASET", "prompts")
	t.Setenv("SOURCE_WORKSPACE", "public")
	t.Setenv("RESULTS_DATASET", "prompts-results")
	t.Setenv("RESULTS_WORKSPACE", "private")
	t.Setenv("TARGET_RECORDS", "100")
	t.Setenv("APP_ADDRESS", "")
	t.Setenv("APP_PORT", "")
}

func TestLoad(t *testing.T) {
	t.Run("reads every key with defaults for the bind address", func(t *testing.T) {
		setRequiredEnv(t)

		cfg, err := config.Load()

		require.NoError(t, err)
		assert.Equal(t, "https://argilla.example.com", cfg.APIURL)
		assert.Equal(t, "prompts", cfg.SourceDataset)
		assert.Equal(t, "private", cfg.ResultsWorkspace)
		assert.Equal(t, 100, cfg.TargetRecords)
		assert.Equal(t, "0.0.0.0", cfg.Address)
		assert.Equal(t, 8080, cfg.Port)
	})

	t.Run("missing keys are reported together", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("ARGILLA_API_KEY", "")
		t.Setenv("RESULTS_DATASET", "")

		_, err := config.Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "ARGILLA_API_KEY")
		assert.Contains(t, err.Error(), "RESULTS_DATASET")
	})

	t.Run("non-numeric target records", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("TARGET_RECORDS", "lots")

		_, err := config.Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "TARGET_RECORDS")
	})

	t.Run("non-positive target records", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("TARGET_RECORDS", "-5")

		_, err := config.Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "positive")
	})

	t.Run("explicit bind address and port", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("APP_ADDRESS", "127.0.0.1")
		t.Setenv("APP_PORT", "9090")

		cfg, err := config.Load()

		require.NoError(t, err)
		assert.Equal(t, "127.0.0.1", cfg.Address)
		assert.Equal(t, 9090, cfg.Port)
	})

	t.Run("invalid port", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("APP_PORT", "http")

		_, err := config.Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "APP_PORT")
	})
}
