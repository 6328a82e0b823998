package handlers

import (
	"net/http"

	"github.com/flortune/app-settings/internal/models"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

// ListNotifications godoc
// @Summary Notification feed
// @Description Returns the scope's feed, newest first, with the unread flag
// @Tags notifications
// @Produce json
// @Param scope path string true "Settings scope"
// @Success 200 {object} models.NotificationsResponse "Feed contents"
// @Router /settings/{scope}/notifications [get]
func (h *SettingsHandlers) ListNotifications(c *gin.Context) {
	_, span := otel.Tracer("").Start(c.Request.Context(), "ListNotifications")
	defer span.End()

	items, hasUnread := h.provider.Feed(c.Param("scope")).List()
	c.JSON(http.StatusOK, models.NotificationsResponse{
		Notifications: items,
		HasUnread:     hasUnread,
	})
}

// AddNotification godoc
// @Summary Append a notification
// @Description Appends an unread notification; the feed keeps only the newest 20 entries
// @Tags notifications
// @Accept json
// @Produce json
// @Param scope path string true "Settings scope"
// @Param data body models.NotificationInput true "Notification content"
// @Success 201 {object} models.Notification "Created notification"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Router /settings/{scope}/notifications [post]
func (h *SettingsHandlers) AddNotification(c *gin.Context) {
	_, span := otel.Tracer("").Start(c.Request.Context(), "AddNotification")
	defer span.End()

	scope := c.Param("scope")

	var input models.NotificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	notification := h.provider.Feed(scope).Add(input)
	h.logger.Debug("notification added",
		zap.String("scope", scope), zap.String("id", notification.ID))
	c.JSON(http.StatusCreated, notification)
}

// MarkNotificationRead godoc
// @Summary Mark one notification read
// @Description Flips one notification to read; absent ids are a no-op
// @Tags notifications
// @Produce json
// @Param scope path string true "Settings scope"
// @Param id path string true "Notification id"
// @Success 204 "Marked (or id absent)"
// @Router /settings/{scope}/notifications/{id}/read [put]
func (h *SettingsHandlers) MarkNotificationRead(c *gin.Context) {
	_, span := otel.Tracer("").Start(c.Request.Context(), "MarkNotificationRead")
	defer span.End()

	h.provider.Feed(c.Param("scope")).MarkRead(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// MarkAllNotificationsRead godoc
// @Summary Mark every notification read
// @Tags notifications
// @Param scope path string true "Settings scope"
// @Success 204 "All marked read"
// @Router /settings/{scope}/notifications/read-all [put]
func (h *SettingsHandlers) MarkAllNotificationsRead(c *gin.Context) {
	_, span := otel.Tracer("").Start(c.Request.Context(), "MarkAllNotificationsRead")
	defer span.End()

	h.provider.Feed(c.Param("scope")).MarkAllRead()
	c.Status(http.StatusNoContent)
}

// ClearNotifications godoc
// @Summary Clear the feed
// @Description Empties the feed entirely; this is irreversible
// @Tags notifications
// @Param scope path string true "Settings scope"
// @Success 204 "Feed cleared"
// @Router /settings/{scope}/notifications [delete]
func (h *SettingsHandlers) ClearNotifications(c *gin.Context) {
	_, span := otel.Tracer("").Start(c.Request.Context(), "ClearNotifications")
	defer span.End()

	h.provider.Feed(c.Param("scope")).Clear()
	c.Status(http.StatusNoContent)
}
