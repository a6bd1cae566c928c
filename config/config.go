package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// LLM providers
const (
	ProviderVertex = "vertex"
	ProviderGemini = "gemini"
)

// Catalog sources
const (
	SourceFile      = "file"
	SourceGCS       = "gcs"
	SourceFirestore = "firestore"
	SourcePostgres  = "postgres"
	SourceSQLite    = "sqlite"
)

// Config holds all configuration for the application
type Config struct {
	// Server
	Port  string
	Debug bool

	// LLM
	LLMEnabled        bool
	LLMProvider       string
	ProjectID         string
	Location          string
	GeminiAPIKey      string
	GeminiModel       string
	LLMTimeoutSeconds int

	// Catalog
	CatalogSource       string
	CatalogPath         string
	CatalogBucket       string
	CatalogObject       string
	FirestoreCollection string
	DatabaseURL         string
	SQLitePath          string
	CatalogRefreshCron  string

	// Cache
	RedisAddr                   string
	RedisPassword               string
	RedisDB                     int
	LearningPathCacheTTLMinutes int

	// Scoring
	ScoreBreakdownMode string
	ScoringWorkers     int

	// Authentication
	JWTSecret         string
	JWTExpiryHours    int
	AdminUsername     string
	AdminPasswordHash string
}

// Load loads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		// Server
		Port:  getEnv("PORT", "8080"),
		Debug: getEnvBool("DEBUG", false),

		// LLM
		LLMEnabled:        getEnvBool("LLM_ENABLED", true),
		LLMProvider:       strings.ToLower(getEnv("LLM_PROVIDER", ProviderVertex)),
		ProjectID:         getEnv("PROJECT_ID", ""),
		Location:          getEnv("LOCATION", "us-central1"),
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		GeminiModel:       getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		LLMTimeoutSeconds: getEnvInt("LLM_TIMEOUT_SECONDS", 8),

		// Catalog
		CatalogSource:       strings.ToLower(getEnv("CATALOG_SOURCE", SourceFile)),
		CatalogPath:         getEnv("CATALOG_PATH", "data/internships.json"),
		CatalogBucket:       getEnv("CATALOG_BUCKET", ""),
		CatalogObject:       getEnv("CATALOG_OBJECT", "internships.json"),
		FirestoreCollection: getEnv("FIRESTORE_COLLECTION", "internships"),
		DatabaseURL:         getEnv("DATABASE_URL", ""),
		SQLitePath:          getEnv("SQLITE_PATH", "data/internships.db"),
		CatalogRefreshCron:  getEnv("CATALOG_REFRESH_CRON", ""),

		// Cache
		RedisAddr:                   getEnv("REDIS_ADDR", ""),
		RedisPassword:               getEnv("REDIS_PASSWORD", ""),
		RedisDB:                     getEnvInt("REDIS_DB", 0),
		LearningPathCacheTTLMinutes: getEnvInt("LEARNING_PATH_CACHE_TTL_MINUTES", 60),

		// Scoring
		ScoreBreakdownMode: strings.ToLower(getEnv("SCORE_BREAKDOWN_MODE", "display")),
		ScoringWorkers:     getEnvInt("SCORING_WORKERS", 0),

		// Authentication
		JWTSecret:         getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTExpiryHours:    getEnvInt("JWT_EXPIRY_HOURS", 24),
		AdminUsername:     getEnv("ADMIN_USERNAME", "admin"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
	}

	return cfg
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.LLMEnabled {
		switch c.LLMProvider {
		case ProviderVertex:
			if c.ProjectID == "" {
				return &ConfigError{Field: "PROJECT_ID", Message: "PROJECT_ID is required for Vertex AI"}
			}
		case ProviderGemini:
			if c.GeminiAPIKey == "" {
				return &ConfigError{Field: "GEMINI_API_KEY", Message: "GEMINI_API_KEY is required for the gemini provider"}
			}
		default:
			return &ConfigError{Field: "LLM_PROVIDER", Message: "LLM_PROVIDER must be vertex or gemini"}
		}
	}

	switch c.CatalogSource {
	case SourceFile:
		if c.CatalogPath == "" {
			return &ConfigError{Field: "CATALOG_PATH", Message: "CATALOG_PATH is required for the file catalog"}
		}
	case SourceGCS:
		if c.CatalogBucket == "" {
			return &ConfigError{Field: "CATALOG_BUCKET", Message: "CATALOG_BUCKET is required for the gcs catalog"}
		}
	case SourceFirestore:
		if c.ProjectID == "" {
			return &ConfigError{Field: "PROJECT_ID", Message: "PROJECT_ID is required for the firestore catalog"}
		}
	case SourcePostgres:
		if c.DatabaseURL == "" {
			return &ConfigError{Field: "DATABASE_URL", Message: "DATABASE_URL is required for the postgres catalog"}
		}
	case SourceSQLite:
		if c.SQLitePath == "" {
			return &ConfigError{Field: "SQLITE_PATH", Message: "SQLITE_PATH is required for the sqlite catalog"}
		}
	default:
		return &ConfigError{Field: "CATALOG_SOURCE", Message: "CATALOG_SOURCE must be one of file, gcs, firestore, postgres, sqlite"}
	}

	if c.ScoreBreakdownMode != "display" && c.ScoreBreakdownMode != "weighted" {
		return &ConfigError{Field: "SCORE_BREAKDOWN_MODE", Message: "SCORE_BREAKDOWN_MODE must be display or weighted"}
	}

	return nil
}

// LLMTimeout returns the bound on a single LLM call
func (c *Config) LLMTimeout() time.Duration {
	return time.Duration(c.LLMTimeoutSeconds) * time.Second
}

// LearningPathCacheTTL returns how long generated learning paths are cached
func (c *Config) LearningPathCacheTTL() time.Duration {
	return time.Duration(c.LearningPathCacheTTLMinutes) * time.Minute
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
