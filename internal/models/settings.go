package models

import "time"

// Setting keys. Each key is persisted independently in the key-value
// bridge under settings:{scope}:{key}; there are no transactional
// guarantees across keys.
const (
	KeyDarkMode    = "dark_mode"
	KeyTheme       = "theme"
	KeyPrivateMode = "private_mode"
	KeyWeatherCity = "weather_city"
	KeyQuoteCodes  = "quote_codes"
	KeyCampaign    = "campaign"
	KeyActivePopup = "active_popup"
	KeyPopupConfig = "popup_config"
)

// Documented defaults applied when a key is absent or unreadable.
const (
	DefaultDarkMode    = false
	DefaultTheme       = "default"
	DefaultPrivateMode = false
	DefaultWeatherCity = ""
	DefaultCampaign    = ""
)

// DefaultQuoteCodes is the quote list applied when none is persisted.
var DefaultQuoteCodes = []string{"USD-BRL", "EUR-BRL", "BTC-BRL"}

// Snapshot is the full hydrated settings state for one scope. A fresh
// value is built on every hydration; consumers never share a mutable copy.
type Snapshot struct {
	Scope        string                     `json:"scope"`
	DarkMode     bool                       `json:"dark_mode"`
	Theme        string                     `json:"theme"`
	PrivateMode  bool                       `json:"private_mode"`
	WeatherCity  string                     `json:"weather_city"`
	QuoteCodes   []string                   `json:"quote_codes"`
	Campaign     string                     `json:"campaign,omitempty"`
	ActivePopup  *PopupType                 `json:"active_popup"`
	PopupConfigs map[PopupType]PopupConfig  `json:"popup_configs"`
	HydratedAt   time.Time                  `json:"hydrated_at"`
}

// SettingEvent describes one setting change, delivered to watch subscribers.
type SettingEvent struct {
	Scope     string      `json:"scope"`
	Key       string      `json:"key"`
	Value     interface{} `json:"value"`
	Timestamp time.Time   `json:"timestamp"`
}

// UpdateFlagRequest sets a boolean setting. A null enabled toggles the
// current value instead.
type UpdateFlagRequest struct {
	Enabled *bool `json:"enabled"`
}

// FlagResponse is the response format for boolean setting endpoints
type FlagResponse struct {
	Enabled bool `json:"enabled"`
}

// UpdateCityRequest sets the persisted weather city
type UpdateCityRequest struct {
	City string `json:"city"`
}

// CityResponse is the response format for the weather-city endpoint
type CityResponse struct {
	City string `json:"city"`
}

// UpdateCodesRequest sets the persisted quote code list
type UpdateCodesRequest struct {
	Codes []string `json:"codes"`
}

// CodesResponse is the response format for the quote-codes endpoint
type CodesResponse struct {
	Codes []string `json:"codes"`
}
