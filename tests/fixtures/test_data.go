package fixtures

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/flortune/app-settings/tests/config"
)

// APIClient wraps HTTP client with common test functionality
type APIClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewAPIClient creates a new API client for testing
func NewAPIClient(cfg *config.TestConfig) *APIClient {
	return &APIClient{
		BaseURL: cfg.BaseURL,
		HTTPClient: &http.Client{
			Timeout: time.Duration(cfg.APICallTimeout) * time.Second,
		},
	}
}

// Get performs a GET request
func (c *APIClient) Get(path string) (*http.Response, error) {
	req, err := http.NewRequest("GET", c.BaseURL+path, nil)
	if err != nil {
		return nil, err
	}
	return c.HTTPClient.Do(req)
}

// Post performs a POST request with a JSON body
func (c *APIClient) Post(path string, body interface{}) (*http.Response, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", c.BaseURL+path, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.HTTPClient.Do(req)
}

// Put performs a PUT request with a JSON body
func (c *APIClient) Put(path string, body interface{}) (*http.Response, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("PUT", c.BaseURL+path, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.HTTPClient.Do(req)
}

// Delete performs a DELETE request
func (c *APIClient) Delete(path string) (*http.Response, error) {
	req, err := http.NewRequest("DELETE", c.BaseURL+path, nil)
	if err != nil {
		return nil, err
	}
	return c.HTTPClient.Do(req)
}

// TestNotificationData represents a notification payload for feed tests
type TestNotificationData struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
	Color       string `json:"color,omitempty"`
}

// GetTestNotification returns a sample notification for testing
func GetTestNotification() *TestNotificationData {
	return &TestNotificationData{
		Title:       "E2E test notification",
		Description: "Created by the settings E2E suite",
		Icon:        "flask",
		Color:       "blue",
	}
}

// GetTestPopupConfig returns a sample popup config merge payload
func GetTestPopupConfig() map[string]interface{} {
	return map[string]interface{}{
		"configs": map[string]interface{}{
			"promotion": map[string]interface{}{
				"title":       "E2E promotion",
				"description": "Created by the settings E2E suite",
				"color":       "primary",
			},
		},
	}
}
