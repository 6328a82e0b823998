package integration

import (
	"context"
	"testing"
	"time"

	"github.com/flortune/app-settings/internal/services"
	"github.com/flortune/app-settings/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHistoryServiceIntegration exercises the audit trail against a real
// MongoDB instance.
func TestHistoryServiceIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	tc := tests.SetupTestContainers(t)
	defer tc.Cleanup()

	ctx := context.Background()
	svc := services.NewHistoryService(nil)

	// record appends one change and spaces timestamps apart; Mongo stores
	// time at millisecond precision, so back-to-back writes could tie.
	record := func(scope, key, previous, value string) {
		svc.Record(ctx, scope, key, previous, value)
		time.Sleep(5 * time.Millisecond)
	}

	t.Run("RecordAndListNewestFirst", func(t *testing.T) {
		tests.CleanupDatabase(t, tc.MongoDB)

		record("user-1", "settings:user-1:darkMode", "", "true")
		record("user-1", "settings:user-1:darkMode", "true", "false")
		record("user-2", "settings:user-2:darkMode", "", "true")

		changes, err := svc.List(ctx, "user-1", 0)
		require.NoError(t, err)
		require.Len(t, changes, 2, "other scopes must not leak in")

		assert.Equal(t, "false", changes[0].Value)
		assert.Equal(t, "true", changes[0].Previous)
		assert.Equal(t, "true", changes[1].Value)
		assert.Empty(t, changes[1].Previous)
	})

	t.Run("ListHonorsLimit", func(t *testing.T) {
		tests.CleanupDatabase(t, tc.MongoDB)

		for i := 0; i < 5; i++ {
			record("user-1", "settings:user-1:quoteCodes", "", `["USD-BRL"]`)
		}

		changes, err := svc.List(ctx, "user-1", 3)
		require.NoError(t, err)
		assert.Len(t, changes, 3)
	})

	t.Run("EmptyScopeReturnsEmptySlice", func(t *testing.T) {
		tests.CleanupDatabase(t, tc.MongoDB)

		changes, err := svc.List(ctx, "nobody", 0)
		require.NoError(t, err)
		assert.Empty(t, changes)
	})
}
