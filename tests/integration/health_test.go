package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/flortune/app-settings/internal/handlers"
	"github.com/flortune/app-settings/tests"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHealthCheckIntegration verifies the health payload against live
// backing stores, including the Redis connection pool statistics.
func TestHealthCheckIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	tc := tests.SetupTestContainers(t)
	defer tc.Cleanup()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/health", handlers.HealthCheck)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "up", body["redis"])
	assert.Equal(t, "up", body["mongodb"])

	pool, ok := body["redis_pool"].(map[string]interface{})
	require.True(t, ok, "health payload missing redis_pool")
	for _, field := range []string{"total_conns", "idle_conns", "hits", "misses"} {
		_, present := pool[field]
		assert.True(t, present, "redis_pool missing %s", field)
	}
}
