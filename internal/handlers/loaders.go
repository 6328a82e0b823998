package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// GetWeather godoc
// @Summary Load current weather
// @Description Runs a fenced weather load for the scope's persisted city and returns the loader state
// @Tags loaders
// @Produce json
// @Param scope path string true "Settings scope"
// @Success 200 {object} models.WeatherState "Loader state after the load settled"
// @Router /settings/{scope}/weather [get]
func (h *SettingsHandlers) GetWeather(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "LoadWeather")
	defer span.End()

	scope := c.Param("scope")
	span.SetAttributes(attribute.String("settings.scope", scope))

	state := h.provider.LoadWeather(ctx, scope)
	c.JSON(http.StatusOK, state)
}

// GetQuotes godoc
// @Summary Load quotes
// @Description Runs a fenced quote load. An optional codes query parameter (comma-separated) overrides the persisted list for this load.
// @Tags loaders
// @Produce json
// @Param scope path string true "Settings scope"
// @Param codes query string false "Comma-separated code override"
// @Success 200 {object} models.QuoteState "Loader state after the load settled"
// @Router /settings/{scope}/quotes [get]
func (h *SettingsHandlers) GetQuotes(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "LoadQuotes")
	defer span.End()

	scope := c.Param("scope")
	span.SetAttributes(attribute.String("settings.scope", scope))

	var override []string
	if raw, exists := c.GetQuery("codes"); exists {
		override = strings.Split(raw, ",")
	}

	state := h.provider.LoadQuotes(ctx, scope, override)
	c.JSON(http.StatusOK, state)
}
