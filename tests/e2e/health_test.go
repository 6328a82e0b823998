package e2e_test

import (
	"os"
	"testing"

	testconfig "github.com/flortune/app-settings/tests/config"
	"github.com/flortune/app-settings/tests/fixtures"
)

// TestHealth verifies the deployed service reports healthy
func TestHealth(t *testing.T) {
	client, _ := newE2EClient(t)
	fixtures.AssertHealthy(t, client)
}

// newE2EClient loads the test configuration and builds an API client,
// skipping when no deployment is configured.
func newE2EClient(t *testing.T) (*fixtures.APIClient, *testconfig.TestConfig) {
	t.Helper()

	if os.Getenv("TEST_BASE_URL") == "" {
		t.Skip("TEST_BASE_URL not set, skipping E2E test")
	}

	cfg, err := testconfig.LoadTestConfig()
	if err != nil {
		t.Fatalf("Failed to load test config: %v", err)
	}
	return fixtures.NewAPIClient(cfg), cfg
}
