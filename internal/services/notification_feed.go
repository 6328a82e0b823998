package services

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"sync"
	"time"

	"github.com/flortune/app-settings/internal/models"
	"github.com/flortune/app-settings/internal/observability"
)

// NotificationFeed is one user's in-memory notification log: newest first,
// capped at models.MaxNotifications, never persisted. Operations cannot
// fail.
type NotificationFeed struct {
	mu    sync.Mutex
	items []models.Notification
}

// NewNotificationFeed creates an empty feed
func NewNotificationFeed() *NotificationFeed {
	return &NotificationFeed{}
}

// Add prepends a new unread notification and truncates the feed to the
// newest MaxNotifications entries.
func (f *NotificationFeed) Add(input models.NotificationInput) models.Notification {
	n := models.Notification{
		ID:          newNotificationID(),
		Title:       input.Title,
		Description: input.Description,
		Icon:        input.Icon,
		Color:       input.Color,
		Read:        false,
		CreatedAt:   time.Now(),
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.items = append([]models.Notification{n}, f.items...)
	if len(f.items) > models.MaxNotifications {
		f.items = f.items[:models.MaxNotifications]
	}

	observability.NotificationsEmitted.Inc()
	return n
}

// MarkRead flips one notification to read. Absent ids are a no-op.
func (f *NotificationFeed) MarkRead(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Read = true
			return true
		}
	}
	return false
}

// MarkAllRead flips every notification to read
func (f *NotificationFeed) MarkAllRead() {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.items {
		f.items[i].Read = true
	}
}

// Clear empties the feed entirely
func (f *NotificationFeed) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.items = nil
}

// List returns a copy of the feed and whether any entry is unread
func (f *NotificationFeed) List() ([]models.Notification, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	items := make([]models.Notification, len(f.items))
	copy(items, f.items)

	hasUnread := false
	for _, n := range f.items {
		if !n.Read {
			hasUnread = true
			break
		}
	}
	return items, hasUnread
}

// FeedRegistry hands out one feed per scope, created lazily.
type FeedRegistry struct {
	mu    sync.Mutex
	feeds map[string]*NotificationFeed
}

// NewFeedRegistry creates an empty registry
func NewFeedRegistry() *FeedRegistry {
	return &FeedRegistry{feeds: make(map[string]*NotificationFeed)}
}

// Feed returns the feed for scope, creating it on first use
func (r *FeedRegistry) Feed(scope string) *NotificationFeed {
	r.mu.Lock()
	defer r.mu.Unlock()

	feed, ok := r.feeds[scope]
	if !ok {
		feed = NewNotificationFeed()
		r.feeds[scope] = feed
	}
	return feed
}

// newNotificationID builds an id from the current timestamp plus a random
// suffix, unique enough for a 20-entry feed.
func newNotificationID() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return strconv.FormatInt(time.Now().UnixNano(), 36)
	}
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + hex.EncodeToString(b)
}
