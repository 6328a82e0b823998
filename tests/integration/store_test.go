package integration

import (
	"context"
	"testing"
	"time"

	"github.com/flortune/app-settings/internal/config"
	"github.com/flortune/app-settings/internal/store"
	"github.com/flortune/app-settings/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRedisKVIntegration exercises the production KV bridge against a real
// Redis instance.
func TestRedisKVIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	tc := tests.SetupTestContainers(t)
	defer tc.Cleanup()

	ctx := context.Background()
	kv := store.NewRedisKV(config.Redis, 0)

	t.Run("ReadMissingKey", func(t *testing.T) {
		tests.CleanupRedis(t)

		value, found, err := kv.Read(ctx, store.Key("user-1", "darkMode"))
		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, value)
	})

	t.Run("WriteReadDelete", func(t *testing.T) {
		tests.CleanupRedis(t)
		key := store.Key("user-1", "darkMode")

		require.NoError(t, kv.Write(ctx, key, "true"))

		value, found, err := kv.Read(ctx, key)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "true", value)

		require.NoError(t, kv.Delete(ctx, key))

		_, found, err = kv.Read(ctx, key)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("DeleteMissingKeyIsNotAnError", func(t *testing.T) {
		tests.CleanupRedis(t)

		assert.NoError(t, kv.Delete(ctx, store.Key("user-1", "absent")))
	})

	t.Run("ScopesAreIsolated", func(t *testing.T) {
		tests.CleanupRedis(t)

		require.NoError(t, kv.Write(ctx, store.Key("user-1", "theme"), `"ocean"`))
		require.NoError(t, kv.Write(ctx, store.Key("user-2", "theme"), `"forest"`))

		value, found, err := kv.Read(ctx, store.Key("user-1", "theme"))
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, `"ocean"`, value)

		value, found, err = kv.Read(ctx, store.Key("user-2", "theme"))
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, `"forest"`, value)
	})

	t.Run("TTLExpiresValues", func(t *testing.T) {
		tests.CleanupRedis(t)
		expiring := store.NewRedisKV(config.Redis, 500*time.Millisecond)
		key := store.Key("user-1", "weatherCity")

		require.NoError(t, expiring.Write(ctx, key, `"Lisbon"`))

		_, found, err := expiring.Read(ctx, key)
		require.NoError(t, err)
		require.True(t, found)

		time.Sleep(time.Second)

		_, found, err = expiring.Read(ctx, key)
		require.NoError(t, err)
		assert.False(t, found)
	})
}
