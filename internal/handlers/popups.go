package handlers

import (
	"net/http"
	"strings"

	"github.com/flortune/app-settings/internal/models"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

// GetPopups godoc
// @Summary Popup configuration
// @Description Returns the per-type popup config map and the armed popup type
// @Tags popups
// @Produce json
// @Success 200 {object} models.PopupsResponse "Configs and armed type"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /popups [get]
func (h *SettingsHandlers) GetPopups(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "GetPopups")
	defer span.End()

	configs, err := h.provider.Popups().Configs(ctx)
	if err != nil {
		h.logger.Error("failed to read popup configs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to read popup configs"})
		return
	}

	active, err := h.provider.Popups().Active(ctx)
	if err != nil {
		h.logger.Error("failed to read active popup", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to read active popup"})
		return
	}

	c.JSON(http.StatusOK, models.PopupsResponse{Configs: configs, Active: active})
}

// MergePopups godoc
// @Summary Merge popup configuration
// @Description Validates and merges partial per-type updates into the stored map (admin only)
// @Tags popups
// @Accept json
// @Produce json
// @Param data body models.MergePopupConfigsRequest true "Partial per-type configs"
// @Success 200 {object} models.PopupsResponse "Merged config map"
// @Failure 400 {object} ErrorResponse "Invalid config (unknown type, inverted date range)"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /admin/popups [put]
func (h *SettingsHandlers) MergePopups(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "MergePopups")
	defer span.End()

	var req models.MergePopupConfigsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	configs, err := h.provider.Popups().Merge(ctx, req.Configs)
	if err != nil {
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		h.logger.Error("failed to merge popup configs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to merge popup configs"})
		return
	}

	active, err := h.provider.Popups().Active(ctx)
	if err != nil {
		active = nil
	}
	c.JSON(http.StatusOK, models.PopupsResponse{Configs: configs, Active: active})
}

// SetActivePopup godoc
// @Summary Arm or clear the active popup
// @Description Arms one popup type for display; a null type clears the selection (admin only)
// @Tags popups
// @Accept json
// @Produce json
// @Param data body models.SetActivePopupRequest true "Popup type or null"
// @Success 200 {object} models.SetActivePopupRequest "Armed type"
// @Failure 400 {object} ErrorResponse "Unknown popup type"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /admin/popups/active [put]
func (h *SettingsHandlers) SetActivePopup(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "SetActivePopup")
	defer span.End()

	var req models.SetActivePopupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if err := h.provider.Popups().SetActive(ctx, req.Type); err != nil {
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		h.logger.Error("failed to set active popup", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to set active popup"})
		return
	}

	c.JSON(http.StatusOK, req)
}

// isValidationError distinguishes caller mistakes from store failures
func isValidationError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "unknown popup") ||
		strings.Contains(msg, "frequency") ||
		strings.Contains(msg, "start date")
}
