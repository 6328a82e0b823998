package models

import "time"

// MaxNotifications caps each feed; the oldest entries are silently dropped
// on every insert past the cap.
const MaxNotifications = 20

// Notification is one entry in a user's in-memory feed. Only the read flag
// ever mutates after creation.
type Notification struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Read        bool      `json:"read"`
	CreatedAt   time.Time `json:"created_at"`
	Icon        string    `json:"icon,omitempty"`
	Color       string    `json:"color,omitempty"`
}

// NotificationInput is the caller-supplied part of a notification
type NotificationInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Icon        string `json:"icon,omitempty"`
	Color       string `json:"color,omitempty"`
}

// NotificationsResponse is the feed read format
type NotificationsResponse struct {
	Notifications []Notification `json:"notifications"`
	HasUnread     bool           `json:"has_unread"`
}
