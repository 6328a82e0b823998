package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values
type Config struct {
	// Server configuration
	Port        int    `json:"port"`
	Environment string `json:"environment"`

	// MongoDB configuration
	MongoURI      string `json:"mongo_uri"`
	MongoDatabase string `json:"mongo_database"`

	// Redis configuration
	RedisURI      string        `json:"redis_uri"`
	RedisPassword string        `json:"redis_password"`
	RedisDB       int           `json:"redis_db"`
	RedisTTL      time.Duration `json:"redis_ttl"`

	// Collection names
	SettingHistoryCollection string `json:"mongo_setting_history_collection"`
	LandingContentCollection string `json:"mongo_landing_content_collection"`

	// Upstream endpoints for the weather and quote loaders
	WeatherAPIURL   string        `json:"weather_api_url"`
	QuotesAPIURL    string        `json:"quotes_api_url"`
	UpstreamTimeout time.Duration `json:"upstream_timeout"`

	// Cache TTLs
	LandingContentCacheTTL time.Duration `json:"landing_content_cache_ttl"`

	// Tracing configuration
	TracingEnabled  bool   `json:"tracing_enabled"`
	TracingEndpoint string `json:"tracing_endpoint"`
}

var (
	AppConfig *Config
)

// LoadConfig loads configuration from environment variables
func LoadConfig() error {
	port, err := strconv.Atoi(getEnvOrDefault("PORT", "8080"))
	if err != nil {
		return fmt.Errorf("invalid PORT: %w", err)
	}

	redisDB, err := strconv.Atoi(getEnvOrDefault("REDIS_DB", "0"))
	if err != nil {
		return fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	redisTTL, err := time.ParseDuration(getEnvOrDefault("REDIS_TTL", "0"))
	if err != nil {
		return fmt.Errorf("invalid REDIS_TTL: %w", err)
	}

	upstreamTimeout, err := time.ParseDuration(getEnvOrDefault("UPSTREAM_TIMEOUT", "10s"))
	if err != nil {
		return fmt.Errorf("invalid UPSTREAM_TIMEOUT: %w", err)
	}

	landingCacheTTL, err := time.ParseDuration(getEnvOrDefault("LANDING_CONTENT_CACHE_TTL", "10m"))
	if err != nil {
		return fmt.Errorf("invalid LANDING_CONTENT_CACHE_TTL: %w", err)
	}

	AppConfig = &Config{
		// Server configuration
		Port:        port,
		Environment: getEnvOrDefault("ENVIRONMENT", "development"),

		// MongoDB configuration
		MongoURI:      getEnvOrDefault("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnvOrDefault("MONGODB_DATABASE", "flortune"),

		// Redis configuration
		RedisURI:      getEnvOrDefault("REDIS_URI", "localhost:6379"),
		RedisPassword: getEnvOrDefault("REDIS_PASSWORD", ""),
		RedisDB:       redisDB,
		RedisTTL:      redisTTL,

		// Collection names
		SettingHistoryCollection: getEnvOrDefault("MONGODB_SETTING_HISTORY_COLLECTION", "setting_history"),
		LandingContentCollection: getEnvOrDefault("MONGODB_LANDING_CONTENT_COLLECTION", "landing_content"),

		// Upstream endpoints
		WeatherAPIURL:   getEnvOrDefault("WEATHER_API_URL", "https://api.flortune.app/api/weather"),
		QuotesAPIURL:    getEnvOrDefault("QUOTES_API_URL", "https://api.flortune.app/api/quotes"),
		UpstreamTimeout: upstreamTimeout,

		// Cache TTLs
		LandingContentCacheTTL: landingCacheTTL,

		// Tracing configuration
		TracingEnabled:  getEnvOrDefault("TRACING_ENABLED", "false") == "true",
		TracingEndpoint: getEnvOrDefault("TRACING_ENDPOINT", "localhost:4317"),
	}

	return nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
