package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server     ServerConfig
	Log        LogConfig
	MongoDB    MongoDBConfig
	Redis      RedisConfig
	S3         S3Config
	OpenRouter OpenRouterConfig
	OTEL       OTELConfig
	Cache      CacheConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port        string
	BodyLimitKB int64
}

// LogConfig controls logrus output
type LogConfig struct {
	Level       string
	FormatJSON  bool
	FileName    string // empty means stdout only
	LogToStdout bool
}

// MongoDBConfig holds MongoDB connection configuration
type MongoDBConfig struct {
	URI      string
	Database string
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Addr     string
	Password string
}

// S3Config holds the S3-compatible store used for plan exports
type S3Config struct {
	Enabled  bool
	Endpoint string
	Region   string
	Bucket   string
}

// OpenRouterConfig holds OpenRouter API configuration.
// An empty APIKey disables AI generation and the deterministic fallbacks are used.
type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// OTELConfig holds OpenTelemetry export configuration
type OTELConfig struct {
	Enabled        bool
	ServiceName    string
	ServiceVersion string
	Environment    string
	Endpoint       string
	InstanceID     string
	Token          string
}

// CacheConfig holds TTLs for cached values
type CacheConfig struct {
	FoodEstimateTTL time.Duration
	StatsTTL        time.Duration
	IdempotencyTTL  time.Duration
}

// Load reads configuration from environment variables
// It attempts to load from .env file first, then falls back to system env vars
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			BodyLimitKB: getEnvAsInt64("BODY_LIMIT_KB", 256),
		},
		Log: LogConfig{
			Level:       getEnv("LOG_LEVEL", "info"),
			FormatJSON:  getEnvAsBool("LOG_FORMAT_JSON", true),
			FileName:    getEnv("LOG_FILE", ""),
			LogToStdout: getEnvAsBool("LOG_TO_STDOUT", true),
		},
		MongoDB: MongoDBConfig{
			URI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGODB_DATABASE", "titan"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		S3: S3Config{
			Enabled:  getEnvAsBool("S3_ENABLED", false),
			Endpoint: strings.TrimRight(getEnv("S3_ENDPOINT", ""), "/"),
			Region:   getEnv("S3_REGION", "us-east-1"),
			Bucket:   getEnv("S3_BUCKET", "titan-plans"),
		},
		OpenRouter: OpenRouterConfig{
			APIKey:  getEnv("OPENROUTER_API_KEY", ""),
			Model:   getEnv("OPENROUTER_MODEL", "google/gemini-2.0-flash-001"),
			BaseURL: getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
			Timeout: time.Duration(getEnvAsInt64("OPENROUTER_TIMEOUT_SECONDS", 60)) * time.Second,
		},
		OTEL: OTELConfig{
			Enabled:        getEnvAsBool("OTEL_ENABLED", false),
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "titan-api"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "dev"),
			Environment:    getEnv("OTEL_ENVIRONMENT", "development"),
			Endpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			InstanceID:     getEnv("OTEL_INSTANCE_ID", ""),
			Token:          getEnv("OTEL_TOKEN", ""),
		},
		Cache: CacheConfig{
			FoodEstimateTTL: time.Duration(getEnvAsInt64("CACHE_FOOD_ESTIMATE_TTL_SECONDS", 86400)) * time.Second,
			StatsTTL:        time.Duration(getEnvAsInt64("CACHE_STATS_TTL_SECONDS", 60)) * time.Second,
			IdempotencyTTL:  time.Duration(getEnvAsInt64("IDEMPOTENCY_TTL_SECONDS", 86400)) * time.Second,
		},
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration is present
func (c *Config) Validate() error {
	if c.MongoDB.URI == "" {
		return fmt.Errorf("MONGODB_URI is required")
	}
	if c.S3.Enabled {
		if c.S3.Endpoint == "" {
			return fmt.Errorf("S3_ENDPOINT is required when S3_ENABLED is set")
		}
		if c.S3.Bucket == "" {
			return fmt.Errorf("S3_BUCKET is required when S3_ENABLED is set")
		}
	}
	if c.OTEL.Enabled && c.OTEL.Endpoint == "" {
		return fmt.Errorf("OTEL_EXPORTER_OTLP_ENDPOINT is required when OTEL_ENABLED is set")
	}
	return nil
}

// AIEnabled reports whether an OpenRouter key is configured
func (c *Config) AIEnabled() bool {
	return c.OpenRouter.APIKey != ""
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt64 retrieves an environment variable as int64 or returns a default value
func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool retrieves an environment variable as bool or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
