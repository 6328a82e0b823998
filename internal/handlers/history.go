package handlers

import (
	"net/http"
	"strconv"

	"github.com/flortune/app-settings/internal/models"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

// GetHistory godoc
// @Summary Setting change history
// @Description Returns the newest setting changes for the scope
// @Tags settings
// @Produce json
// @Param scope path string true "Settings scope"
// @Param limit query int false "Maximum entries (default 50)"
// @Success 200 {object} models.SettingHistoryResponse "Change records, newest first"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /settings/{scope}/history [get]
func (h *SettingsHandlers) GetHistory(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "GetSettingHistory")
	defer span.End()

	scope := c.Param("scope")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	changes, err := h.provider.History(ctx, scope, limit)
	if err != nil {
		h.logger.Error("failed to list setting history",
			zap.String("scope", scope), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list setting history"})
		return
	}

	c.JSON(http.StatusOK, models.SettingHistoryResponse{Changes: changes})
}
