package httpclient

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClientPoolReuse(t *testing.T) {
	pool := NewHTTPClientPool(1, 5*time.Second)

	first := pool.Get()
	require.NotNil(t, first)
	assert.Equal(t, 5*time.Second, first.Timeout)

	pool.Put(first)
	second := pool.Get()
	assert.Same(t, first, second, "returned client should be handed out again")
}

func TestHTTPClientPoolExhaustionCreatesNewClients(t *testing.T) {
	pool := NewHTTPClientPool(1, 5*time.Second)

	first := pool.Get()
	second := pool.Get()

	require.NotNil(t, second)
	assert.NotSame(t, first, second, "empty pool should fall back to the factory")
}

func TestHTTPClientPoolClose(t *testing.T) {
	pool := NewHTTPClientPool(2, 5*time.Second)
	client := pool.Get()

	pool.Close()

	// Get after close still hands out a usable client
	fresh := pool.Get()
	require.NotNil(t, fresh)
	assert.Equal(t, 5*time.Second, fresh.Timeout)

	// Put after close must not panic on the closed channel
	assert.NotPanics(t, func() { pool.Put(client) })
}
