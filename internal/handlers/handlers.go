package handlers

import (
	"github.com/flortune/app-settings/internal/logging"
	"github.com/flortune/app-settings/internal/services"
)

// ErrorResponse is the JSON error envelope returned by every handler
type ErrorResponse struct {
	Error string `json:"error"`
}

// SettingsHandlers serves the per-scope settings, loader, notification,
// history and watch endpoints.
type SettingsHandlers struct {
	provider *services.SettingsProvider
	logger   *logging.SafeLogger
}

// NewSettingsHandlers creates the settings handler set
func NewSettingsHandlers(provider *services.SettingsProvider, logger *logging.SafeLogger) *SettingsHandlers {
	return &SettingsHandlers{provider: provider, logger: logger}
}

// LandingHandlers serves the landing-page content endpoints
type LandingHandlers struct {
	service *services.LandingService
	logger  *logging.SafeLogger
}

// NewLandingHandlers creates the landing content handler set
func NewLandingHandlers(service *services.LandingService, logger *logging.SafeLogger) *LandingHandlers {
	return &LandingHandlers{service: service, logger: logger}
}
