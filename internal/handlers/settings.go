package handlers

import (
	"net/http"

	"github.com/flortune/app-settings/internal/models"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// GetSnapshot godoc
// @Summary Hydrated settings snapshot
// @Description Reads every setting of the scope, applying defaults for absent or unreadable keys
// @Tags settings
// @Produce json
// @Param scope path string true "Settings scope (user id or 'global')"
// @Success 200 {object} models.Snapshot "Hydrated settings"
// @Router /settings/{scope} [get]
func (h *SettingsHandlers) GetSnapshot(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "HydrateSettings")
	defer span.End()

	scope := c.Param("scope")
	span.SetAttributes(attribute.String("settings.scope", scope))

	snapshot := h.provider.Hydrate(ctx, scope)
	c.JSON(http.StatusOK, snapshot)
}

// UpdateDarkMode godoc
// @Summary Set or toggle dark mode
// @Description Sets the dark-mode flag; a null enabled field toggles it
// @Tags settings
// @Accept json
// @Produce json
// @Param scope path string true "Settings scope"
// @Param data body models.UpdateFlagRequest true "New value, or null to toggle"
// @Success 200 {object} models.FlagResponse "New dark-mode value"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Router /settings/{scope}/dark-mode [put]
func (h *SettingsHandlers) UpdateDarkMode(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "UpdateDarkMode")
	defer span.End()

	scope := c.Param("scope")

	var req models.UpdateFlagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	var enabled bool
	if req.Enabled != nil {
		enabled = h.provider.SetDarkMode(ctx, scope, *req.Enabled)
	} else {
		enabled = h.provider.ToggleDarkMode(ctx, scope)
	}

	h.logger.Debug("dark mode updated",
		zap.String("scope", scope), zap.Bool("enabled", enabled))
	c.JSON(http.StatusOK, models.FlagResponse{Enabled: enabled})
}

// UpdatePrivateMode godoc
// @Summary Set or toggle private mode
// @Description Sets the private-mode flag; a null enabled field toggles it
// @Tags settings
// @Accept json
// @Produce json
// @Param scope path string true "Settings scope"
// @Param data body models.UpdateFlagRequest true "New value, or null to toggle"
// @Success 200 {object} models.FlagResponse "New private-mode value"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Router /settings/{scope}/private-mode [put]
func (h *SettingsHandlers) UpdatePrivateMode(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "UpdatePrivateMode")
	defer span.End()

	scope := c.Param("scope")

	var req models.UpdateFlagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	var enabled bool
	if req.Enabled != nil {
		enabled = h.provider.SetPrivateMode(ctx, scope, *req.Enabled)
	} else {
		enabled = h.provider.TogglePrivateMode(ctx, scope)
	}

	c.JSON(http.StatusOK, models.FlagResponse{Enabled: enabled})
}

// UpdateTheme godoc
// @Summary Apply a color theme
// @Description Persists the theme id and returns the document class delta
// @Tags settings
// @Accept json
// @Produce json
// @Param scope path string true "Settings scope"
// @Param data body models.UpdateThemeRequest true "Theme id ('default' clears the theme)"
// @Success 200 {object} models.ThemeResponse "Persisted theme and class delta"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Router /settings/{scope}/theme [put]
func (h *SettingsHandlers) UpdateTheme(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ApplyTheme")
	defer span.End()

	scope := c.Param("scope")

	var req models.UpdateThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	span.SetAttributes(attribute.String("settings.theme", req.ThemeID))
	response := h.provider.ApplyTheme(ctx, scope, req.ThemeID)

	h.logger.Debug("theme applied",
		zap.String("scope", scope), zap.String("theme", response.ThemeID))
	c.JSON(http.StatusOK, response)
}

// UpdateCampaign godoc
// @Summary Arm or clear the marketing campaign
// @Description Persists the campaign id (null clears it) and returns the body class delta
// @Tags settings
// @Accept json
// @Produce json
// @Param scope path string true "Settings scope"
// @Param data body models.UpdateCampaignRequest true "Campaign id or null"
// @Success 200 {object} models.CampaignResponse "Persisted campaign and class delta"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Router /settings/{scope}/campaign [put]
func (h *SettingsHandlers) UpdateCampaign(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "SetCampaign")
	defer span.End()

	scope := c.Param("scope")

	var req models.UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	campaignID := ""
	if req.CampaignID != nil {
		campaignID = *req.CampaignID
	}

	response := h.provider.SetCampaign(ctx, scope, campaignID)
	c.JSON(http.StatusOK, response)
}

// GetWeatherCity godoc
// @Summary Persisted weather city
// @Tags settings
// @Produce json
// @Param scope path string true "Settings scope"
// @Success 200 {object} models.CityResponse "Persisted city (empty when unset)"
// @Router /settings/{scope}/weather-city [get]
func (h *SettingsHandlers) GetWeatherCity(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "GetWeatherCity")
	defer span.End()

	scope := c.Param("scope")
	c.JSON(http.StatusOK, models.CityResponse{City: h.provider.WeatherCity(ctx, scope)})
}

// UpdateWeatherCity godoc
// @Summary Set the weather city
// @Tags settings
// @Accept json
// @Produce json
// @Param scope path string true "Settings scope"
// @Param data body models.UpdateCityRequest true "City name"
// @Success 200 {object} models.CityResponse "Persisted city"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Router /settings/{scope}/weather-city [put]
func (h *SettingsHandlers) UpdateWeatherCity(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "SetWeatherCity")
	defer span.End()

	scope := c.Param("scope")

	var req models.UpdateCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.CityResponse{City: h.provider.SetWeatherCity(ctx, scope, req.City)})
}

// GetQuoteCodes godoc
// @Summary Persisted quote code list
// @Tags settings
// @Produce json
// @Param scope path string true "Settings scope"
// @Success 200 {object} models.CodesResponse "Persisted code list"
// @Router /settings/{scope}/quote-codes [get]
func (h *SettingsHandlers) GetQuoteCodes(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "GetQuoteCodes")
	defer span.End()

	scope := c.Param("scope")
	c.JSON(http.StatusOK, models.CodesResponse{Codes: h.provider.QuoteCodes(ctx, scope)})
}

// UpdateQuoteCodes godoc
// @Summary Set the quote code list
// @Description Persists the list as given; ordering and duplicates are meaningful
// @Tags settings
// @Accept json
// @Produce json
// @Param scope path string true "Settings scope"
// @Param data body models.UpdateCodesRequest true "Ordered code list"
// @Success 200 {object} models.CodesResponse "Persisted code list"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Router /settings/{scope}/quote-codes [put]
func (h *SettingsHandlers) UpdateQuoteCodes(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "SetQuoteCodes")
	defer span.End()

	scope := c.Param("scope")

	var req models.UpdateCodesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.CodesResponse{Codes: h.provider.SetQuoteCodes(ctx, scope, req.Codes)})
}
