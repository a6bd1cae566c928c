package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "LLM_ENABLED", "LLM_PROVIDER", "CATALOG_SOURCE", "SCORE_BREAKDOWN_MODE", "LLM_TIMEOUT_SECONDS"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.LLMEnabled)
	assert.Equal(t, ProviderVertex, cfg.LLMProvider)
	assert.Equal(t, SourceFile, cfg.CatalogSource)
	assert.Equal(t, "data/internships.json", cfg.CatalogPath)
	assert.Equal(t, "display", cfg.ScoreBreakdownMode)
	assert.Equal(t, 8*time.Second, cfg.LLMTimeout())
	assert.Equal(t, 60*time.Minute, cfg.LearningPathCacheTTL())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LLM_PROVIDER", "GEMINI")
	t.Setenv("CATALOG_SOURCE", "SQLite")
	t.Setenv("SCORING_WORKERS", "4")
	t.Setenv("REDIS_DB", "not-a-number")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, ProviderGemini, cfg.LLMProvider)
	assert.Equal(t, SourceSQLite, cfg.CatalogSource)
	assert.Equal(t, 4, cfg.ScoringWorkers)
	assert.Equal(t, 0, cfg.RedisDB)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			LLMEnabled:         false,
			CatalogSource:      SourceFile,
			CatalogPath:        "data/internships.json",
			ScoreBreakdownMode: "display",
		}
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
		field  string
	}{
		{name: "valid offline", mutate: func(c *Config) {}},
		{name: "vertex without project", mutate: func(c *Config) { c.LLMEnabled = true; c.LLMProvider = ProviderVertex }, field: "PROJECT_ID"},
		{name: "gemini without key", mutate: func(c *Config) { c.LLMEnabled = true; c.LLMProvider = ProviderGemini }, field: "GEMINI_API_KEY"},
		{name: "unknown provider", mutate: func(c *Config) { c.LLMEnabled = true; c.LLMProvider = "openai" }, field: "LLM_PROVIDER"},
		{name: "gcs without bucket", mutate: func(c *Config) { c.CatalogSource = SourceGCS }, field: "CATALOG_BUCKET"},
		{name: "postgres without dsn", mutate: func(c *Config) { c.CatalogSource = SourcePostgres }, field: "DATABASE_URL"},
		{name: "unknown source", mutate: func(c *Config) { c.CatalogSource = "s3" }, field: "CATALOG_SOURCE"},
		{name: "bad breakdown mode", mutate: func(c *Config) { c.ScoreBreakdownMode = "raw" }, field: "SCORE_BREAKDOWN_MODE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.field == "" {
				require.NoError(t, err)
				return
			}
			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}
