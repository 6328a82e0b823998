package handlers

import (
	"net/http"
	"time"

	"github.com/flortune/app-settings/internal/observability"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	watchWriteWait  = 10 * time.Second
	watchPingPeriod = 30 * time.Second
)

var watchUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WatchSettings godoc
// @Summary Watch setting changes
// @Description Upgrades to a websocket and streams one JSON event per setting change in the scope
// @Tags settings
// @Param scope path string true "Settings scope"
// @Success 101 "Switching protocols"
// @Failure 400 {object} ErrorResponse "Upgrade failed"
// @Router /settings/{scope}/watch [get]
func (h *SettingsHandlers) WatchSettings(c *gin.Context) {
	scope := c.Param("scope")

	conn, err := watchUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed",
			zap.String("scope", scope), zap.Error(err))
		return
	}
	defer conn.Close()

	events, cancel := h.provider.Subscribe(scope)
	defer cancel()

	observability.WatchSubscribers.Inc()
	defer observability.WatchSubscribers.Dec()
	h.logger.Debug("watch stream opened", zap.String("scope", scope))

	// Reader goroutine drains the connection so close frames are noticed.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(watchPingPeriod)
	defer ping.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(watchWriteWait))
			if err := conn.WriteJSON(event); err != nil {
				h.logger.Debug("watch stream write failed",
					zap.String("scope", scope), zap.Error(err))
				return
			}
		case <-ping.C:
			conn.SetWriteDeadline(time.Now().Add(watchWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
