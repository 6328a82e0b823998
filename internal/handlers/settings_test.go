package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/flortune/app-settings/internal/services"
	"github.com/flortune/app-settings/internal/store"
	"github.com/flortune/app-settings/internal/utils/httpclient"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	kv := store.NewMemoryKV()
	pool := httpclient.NewHTTPClientPool(1, time.Second)
	feeds := services.NewFeedRegistry()
	provider := services.NewSettingsProvider(
		kv,
		services.NewWeatherService("http://127.0.0.1:0", pool, feeds, nil),
		services.NewQuoteService("http://127.0.0.1:0", pool, nil),
		services.NewPopupService(kv, nil),
		feeds,
		services.NewHistoryService(nil),
		services.NewEventBus(),
		nil,
	)
	h := NewSettingsHandlers(provider, nil)

	router := gin.New()
	scoped := router.Group("/v1/settings/:scope")
	{
		scoped.GET("", h.GetSnapshot)
		scoped.PUT("/dark-mode", h.UpdateDarkMode)
		scoped.PUT("/private-mode", h.UpdatePrivateMode)
		scoped.PUT("/theme", h.UpdateTheme)
		scoped.PUT("/campaign", h.UpdateCampaign)
		scoped.GET("/weather-city", h.GetWeatherCity)
		scoped.PUT("/weather-city", h.UpdateWeatherCity)
		scoped.GET("/quote-codes", h.GetQuoteCodes)
		scoped.PUT("/quote-codes", h.UpdateQuoteCodes)
		scoped.GET("/notifications", h.ListNotifications)
		scoped.POST("/notifications", h.AddNotification)
		scoped.DELETE("/notifications", h.ClearNotifications)
		scoped.PUT("/notifications/:id/read", h.MarkNotificationRead)
		scoped.PUT("/notifications/read-all", h.MarkAllNotificationsRead)
	}
	router.GET("/v1/popups", h.GetPopups)
	router.PUT("/v1/admin/popups", h.MergePopups)
	router.PUT("/v1/admin/popups/active", h.SetActivePopup)
	return router
}

func do(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result), "body: %s", w.Body.String())
	return result
}

func TestGetSnapshot_Defaults(t *testing.T) {
	router := newTestRouter()

	w := do(t, router, "GET", "/v1/settings/alice", "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, "alice", body["scope"])
	assert.Equal(t, false, body["dark_mode"])
	assert.Equal(t, "default", body["theme"])
	assert.Nil(t, body["active_popup"])
}

func TestUpdateDarkMode_SetAndToggle(t *testing.T) {
	router := newTestRouter()

	w := do(t, router, "PUT", "/v1/settings/alice/dark-mode", `{"enabled":true}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["enabled"])

	// A null enabled toggles the current value.
	w = do(t, router, "PUT", "/v1/settings/alice/dark-mode", `{"enabled":null}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decode(t, w)["enabled"])

	w = do(t, router, "PUT", "/v1/settings/alice/dark-mode", `{}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["enabled"])
}

func TestUpdateTheme_RequiresThemeID(t *testing.T) {
	router := newTestRouter()

	w := do(t, router, "PUT", "/v1/settings/alice/theme", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateTheme_ReturnsDelta(t *testing.T) {
	router := newTestRouter()

	w := do(t, router, "PUT", "/v1/settings/alice/theme", `{"theme_id":"ocean"}`)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, "ocean", body["theme_id"])
	delta := body["delta"].(map[string]interface{})
	assert.Equal(t, "theme-", delta["remove_prefix"])
	assert.Equal(t, []interface{}{"theme-ocean"}, delta["add"])

	w = do(t, router, "GET", "/v1/settings/alice", "")
	assert.Equal(t, "ocean", decode(t, w)["theme"])
}

func TestUpdateCampaign_PrefixedIDIsNormalized(t *testing.T) {
	router := newTestRouter()

	w := do(t, router, "PUT", "/v1/settings/alice/campaign", `{"campaign_id":"campaign-spring"}`)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, "spring", body["campaign_id"])
	delta := body["delta"].(map[string]interface{})
	assert.Equal(t, []interface{}{"campaign-spring"}, delta["add"])
}

func TestUpdateCampaign_NullClears(t *testing.T) {
	router := newTestRouter()

	do(t, router, "PUT", "/v1/settings/alice/campaign", `{"campaign_id":"spring"}`)
	w := do(t, router, "PUT", "/v1/settings/alice/campaign", `{"campaign_id":null}`)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, "", body["campaign_id"])

	w = do(t, router, "GET", "/v1/settings/alice", "")
	_, present := decode(t, w)["campaign"]
	assert.False(t, present, "cleared campaign is omitted from the snapshot")
}

func TestQuoteCodes_RoundTrip(t *testing.T) {
	router := newTestRouter()

	w := do(t, router, "PUT", "/v1/settings/alice/quote-codes", `{"codes":["BTC-BRL","USD-BRL"]}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, "GET", "/v1/settings/alice/quote-codes", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{"BTC-BRL", "USD-BRL"}, decode(t, w)["codes"])
}

func TestNotifications_Workflow(t *testing.T) {
	router := newTestRouter()

	w := do(t, router, "POST", "/v1/settings/alice/notifications", `{"title":"Budget exceeded","description":"Groceries is 12% over"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	id := decode(t, w)["id"].(string)
	require.NotEmpty(t, id)

	w = do(t, router, "GET", "/v1/settings/alice/notifications", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["has_unread"])
	require.Len(t, body["notifications"], 1)

	w = do(t, router, "PUT", "/v1/settings/alice/notifications/"+id+"/read", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, router, "GET", "/v1/settings/alice/notifications", "")
	assert.Equal(t, false, decode(t, w)["has_unread"])

	w = do(t, router, "DELETE", "/v1/settings/alice/notifications", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, router, "GET", "/v1/settings/alice/notifications", "")
	assert.Empty(t, decode(t, w)["notifications"])
}

func TestAddNotification_RequiresTitle(t *testing.T) {
	router := newTestRouter()

	w := do(t, router, "POST", "/v1/settings/alice/notifications", `{"description":"no title"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPopups_MergeAndArm(t *testing.T) {
	router := newTestRouter()

	w := do(t, router, "PUT", "/v1/admin/popups", `{"configs":{"promotion":{"title":"Spring sale","color":"primary"}}}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, "PUT", "/v1/admin/popups/active", `{"type":"promotion"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, "GET", "/v1/popups", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "promotion", body["active"])
	configs := body["configs"].(map[string]interface{})
	require.Contains(t, configs, "promotion")
}

func TestPopups_MergeRejectsInvertedDates(t *testing.T) {
	router := newTestRouter()

	w := do(t, router, "PUT", "/v1/admin/popups", `{"configs":{"promotion":{"title":"bad","start_date":"2026-04-01T00:00:00Z","end_date":"2026-03-01T00:00:00Z"}}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPopups_ArmRejectsUnknownType(t *testing.T) {
	router := newTestRouter()

	w := do(t, router, "PUT", "/v1/admin/popups/active", `{"type":"billboard"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPopups_NullTypeClears(t *testing.T) {
	router := newTestRouter()

	do(t, router, "PUT", "/v1/admin/popups/active", `{"type":"maintenance"}`)
	w := do(t, router, "PUT", "/v1/admin/popups/active", `{"type":null}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, "GET", "/v1/popups", "")
	assert.Nil(t, decode(t, w)["active"])
}
