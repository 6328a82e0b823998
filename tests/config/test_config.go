package config

import (
	"os"
	"strconv"
)

// TestConfig holds configuration for E2E/smoke tests
type TestConfig struct {
	// API endpoint configuration
	BaseURL string // e.g., "https://settings.staging.flortune.app/v1"

	// Scope used by scoped-settings tests
	TestScope string

	// Test timeouts
	HealthCheckTimeout int // seconds
	APICallTimeout     int // seconds
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() (*TestConfig, error) {
	baseURL := os.Getenv("TEST_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080/v1" // Default for local testing
	}

	testScope := os.Getenv("TEST_SCOPE")
	if testScope == "" {
		testScope = "e2e-test-user"
	}

	healthTimeout := 10
	if raw := os.Getenv("TEST_HEALTH_TIMEOUT"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			healthTimeout = parsed
		}
	}

	apiTimeout := 30
	if raw := os.Getenv("TEST_API_TIMEOUT"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			apiTimeout = parsed
		}
	}

	return &TestConfig{
		BaseURL:            baseURL,
		TestScope:          testScope,
		HealthCheckTimeout: healthTimeout,
		APICallTimeout:     apiTimeout,
	}, nil
}
