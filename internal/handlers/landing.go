package handlers

import (
	"net/http"

	"github.com/flortune/app-settings/internal/models"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

// GetLandingContent godoc
// @Summary Landing page content
// @Description Returns the marketing copy of the public landing page
// @Tags landing
// @Produce json
// @Success 200 {object} models.LandingPageContent "Current content"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /landing-content [get]
func (h *LandingHandlers) GetLandingContent(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "GetLandingContent")
	defer span.End()

	content, err := h.service.Get(ctx)
	if err != nil {
		h.logger.Error("failed to get landing content", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get landing content"})
		return
	}

	c.JSON(http.StatusOK, content)
}

// UpdateLandingContent godoc
// @Summary Replace landing page content
// @Description Replaces the marketing copy wholesale (admin only)
// @Tags landing
// @Accept json
// @Produce json
// @Param data body models.LandingPageContent true "New content"
// @Success 200 {object} models.LandingPageContent "Saved content"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /admin/landing-content [put]
func (h *LandingHandlers) UpdateLandingContent(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "UpdateLandingContent")
	defer span.End()

	var content models.LandingPageContent
	if err := c.ShouldBindJSON(&content); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	saved, err := h.service.Update(ctx, content)
	if err != nil {
		h.logger.Error("failed to update landing content", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update landing content"})
		return
	}

	c.JSON(http.StatusOK, saved)
}
