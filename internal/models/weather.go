package models

// WeatherData is the normalized current-weather record for a city.
// It is ephemeral: replaced wholesale on each successful load and never
// persisted (only the city name is).
type WeatherData struct {
	City        string `json:"city"`
	Temperature int    `json:"temperature"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// WeatherState is the loader state exposed to consumers.
type WeatherState struct {
	Data      *WeatherData `json:"data"`
	Error     string       `json:"error,omitempty"`
	IsLoading bool         `json:"is_loading"`
}

// WeatherUpstreamResponse is the wire format of the weather endpoint.
// Temperature arrives as a float and is rounded to the nearest integer.
type WeatherUpstreamResponse struct {
	City        string  `json:"city"`
	Temperature float64 `json:"temperature"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Error       string  `json:"error,omitempty"`
}
