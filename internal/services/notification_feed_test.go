package services

import (
	"fmt"
	"testing"

	"github.com/flortune/app-settings/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationFeed_AddPrependsUnread(t *testing.T) {
	feed := NewNotificationFeed()

	first := feed.Add(models.NotificationInput{Title: "first", Description: "one"})
	second := feed.Add(models.NotificationInput{Title: "second", Description: "two"})

	items, hasUnread := feed.List()
	require.Len(t, items, 2)
	assert.True(t, hasUnread)
	assert.Equal(t, second.ID, items[0].ID, "newest entry must come first")
	assert.Equal(t, first.ID, items[1].ID)
	assert.False(t, items[0].Read)
	assert.False(t, items[1].Read)
}

func TestNotificationFeed_CapDropsOldest(t *testing.T) {
	feed := NewNotificationFeed()

	var firstID string
	for i := 0; i < models.MaxNotifications+5; i++ {
		n := feed.Add(models.NotificationInput{
			Title:       fmt.Sprintf("title %d", i),
			Description: "body",
		})
		if i == 0 {
			firstID = n.ID
		}
	}

	items, _ := feed.List()
	require.Len(t, items, models.MaxNotifications)
	assert.Equal(t, fmt.Sprintf("title %d", models.MaxNotifications+4), items[0].Title)
	for _, n := range items {
		assert.NotEqual(t, firstID, n.ID, "oldest entry must have been dropped")
	}
}

func TestNotificationFeed_MarkRead(t *testing.T) {
	feed := NewNotificationFeed()
	a := feed.Add(models.NotificationInput{Title: "a", Description: "x"})
	feed.Add(models.NotificationInput{Title: "b", Description: "y"})

	assert.True(t, feed.MarkRead(a.ID))

	items, hasUnread := feed.List()
	assert.True(t, hasUnread, "b is still unread")
	for _, n := range items {
		if n.ID == a.ID {
			assert.True(t, n.Read)
		}
	}
}

func TestNotificationFeed_MarkReadAbsentID(t *testing.T) {
	feed := NewNotificationFeed()
	feed.Add(models.NotificationInput{Title: "a", Description: "x"})

	assert.False(t, feed.MarkRead("no-such-id"))

	items, hasUnread := feed.List()
	require.Len(t, items, 1)
	assert.True(t, hasUnread, "absent id must not change anything")
}

func TestNotificationFeed_MarkAllRead(t *testing.T) {
	feed := NewNotificationFeed()
	feed.Add(models.NotificationInput{Title: "a", Description: "x"})
	feed.Add(models.NotificationInput{Title: "b", Description: "y"})

	feed.MarkAllRead()

	items, hasUnread := feed.List()
	assert.False(t, hasUnread)
	for _, n := range items {
		assert.True(t, n.Read)
	}
}

func TestNotificationFeed_Clear(t *testing.T) {
	feed := NewNotificationFeed()
	feed.Add(models.NotificationInput{Title: "a", Description: "x"})

	feed.Clear()

	items, hasUnread := feed.List()
	assert.Empty(t, items)
	assert.False(t, hasUnread)
}

func TestNotificationFeed_ListReturnsCopy(t *testing.T) {
	feed := NewNotificationFeed()
	feed.Add(models.NotificationInput{Title: "a", Description: "x"})

	items, _ := feed.List()
	items[0].Title = "mutated"

	fresh, _ := feed.List()
	assert.Equal(t, "a", fresh[0].Title, "callers must not share the internal slice")
}

func TestFeedRegistry_ScopeIsolation(t *testing.T) {
	registry := NewFeedRegistry()

	registry.Feed("alice").Add(models.NotificationInput{Title: "hi", Description: "x"})

	aliceItems, _ := registry.Feed("alice").List()
	bobItems, _ := registry.Feed("bob").List()
	assert.Len(t, aliceItems, 1)
	assert.Empty(t, bobItems)

	assert.Same(t, registry.Feed("alice"), registry.Feed("alice"),
		"repeated lookups must return the same feed")
}
