package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/flortune/app-settings/internal/models"
	"github.com/flortune/app-settings/internal/store"
	"github.com/flortune/app-settings/internal/utils/httpclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// faultyKV fails every operation, to exercise degraded-mode reads.
type faultyKV struct{}

func (faultyKV) Read(context.Context, string) (string, bool, error) {
	return "", false, errors.New("bridge down")
}
func (faultyKV) Write(context.Context, string, string) error { return errors.New("bridge down") }
func (faultyKV) Delete(context.Context, string) error        { return errors.New("bridge down") }

func newTestProvider(kv store.KV) *SettingsProvider {
	pool := httpclient.NewHTTPClientPool(1, time.Second)
	feeds := NewFeedRegistry()
	return NewSettingsProvider(
		kv,
		NewWeatherService("http://127.0.0.1:0", pool, feeds, nil),
		NewQuoteService("http://127.0.0.1:0", pool, nil),
		NewPopupService(kv, nil),
		feeds,
		NewHistoryService(nil),
		NewEventBus(),
		nil,
	)
}

func TestProvider_HydrateDefaults(t *testing.T) {
	provider := newTestProvider(store.NewMemoryKV())

	snapshot := provider.Hydrate(context.Background(), "alice")

	assert.Equal(t, "alice", snapshot.Scope)
	assert.False(t, snapshot.DarkMode)
	assert.False(t, snapshot.PrivateMode)
	assert.Equal(t, models.DefaultTheme, snapshot.Theme)
	assert.Empty(t, snapshot.WeatherCity)
	assert.Equal(t, models.DefaultQuoteCodes, snapshot.QuoteCodes)
	assert.Empty(t, snapshot.Campaign)
	assert.Nil(t, snapshot.ActivePopup)
	assert.NotNil(t, snapshot.PopupConfigs)
	assert.Empty(t, snapshot.PopupConfigs)
	assert.False(t, snapshot.HydratedAt.IsZero())
}

func TestProvider_HydrateSurvivesBridgeFailure(t *testing.T) {
	provider := newTestProvider(faultyKV{})

	snapshot := provider.Hydrate(context.Background(), "alice")

	assert.Equal(t, models.DefaultTheme, snapshot.Theme)
	assert.Equal(t, models.DefaultQuoteCodes, snapshot.QuoteCodes)
	assert.Empty(t, snapshot.PopupConfigs)
	assert.Nil(t, snapshot.ActivePopup)
}

func TestProvider_HydrateCorruptValuesFallBack(t *testing.T) {
	kv := store.NewMemoryKV()
	ctx := context.Background()
	require.NoError(t, kv.Write(ctx, store.Key("alice", models.KeyDarkMode), "maybe"))
	require.NoError(t, kv.Write(ctx, store.Key("alice", models.KeyQuoteCodes), "{broken"))

	provider := newTestProvider(kv)
	snapshot := provider.Hydrate(ctx, "alice")

	assert.False(t, snapshot.DarkMode)
	assert.Equal(t, models.DefaultQuoteCodes, snapshot.QuoteCodes)
}

func TestProvider_DarkModeSetAndToggle(t *testing.T) {
	provider := newTestProvider(store.NewMemoryKV())
	ctx := context.Background()

	assert.True(t, provider.SetDarkMode(ctx, "alice", true))
	assert.True(t, provider.Hydrate(ctx, "alice").DarkMode)

	assert.False(t, provider.ToggleDarkMode(ctx, "alice"))
	assert.True(t, provider.ToggleDarkMode(ctx, "alice"))
	assert.True(t, provider.Hydrate(ctx, "alice").DarkMode)
}

func TestProvider_PrivateModeScopesAreIsolated(t *testing.T) {
	provider := newTestProvider(store.NewMemoryKV())
	ctx := context.Background()

	provider.SetPrivateMode(ctx, "alice", true)

	assert.True(t, provider.Hydrate(ctx, "alice").PrivateMode)
	assert.False(t, provider.Hydrate(ctx, "bob").PrivateMode)
}

func TestProvider_ApplyTheme(t *testing.T) {
	provider := newTestProvider(store.NewMemoryKV())
	ctx := context.Background()

	resp := provider.ApplyTheme(ctx, "alice", "ocean")
	assert.Equal(t, "ocean", resp.ThemeID)
	assert.Equal(t, models.ThemePrefix, resp.Delta.RemovePrefix)
	assert.Equal(t, []string{"theme-ocean"}, resp.Delta.Add)
	assert.Equal(t, "ocean", provider.Hydrate(ctx, "alice").Theme)

	// Empty id falls back to the default theme, which adds no class.
	resp = provider.ApplyTheme(ctx, "alice", "")
	assert.Equal(t, models.ThemeDefault, resp.ThemeID)
	assert.Empty(t, resp.Delta.Add)
	assert.Equal(t, models.ThemeDefault, provider.Hydrate(ctx, "alice").Theme)
}

func TestProvider_SetCampaignNormalizesPrefix(t *testing.T) {
	provider := newTestProvider(store.NewMemoryKV())
	ctx := context.Background()

	resp := provider.SetCampaign(ctx, "alice", "campaign-spring")
	assert.Equal(t, "spring", resp.CampaignID, "the persisted id is the bare name")
	assert.Equal(t, []string{"campaign-spring"}, resp.Delta.Add)
	assert.Equal(t, "spring", provider.Hydrate(ctx, "alice").Campaign)

	resp = provider.SetCampaign(ctx, "alice", "")
	assert.Empty(t, resp.CampaignID)
	assert.Empty(t, resp.Delta.Add)
	assert.Equal(t, models.CampaignPrefix, resp.Delta.RemovePrefix)
	assert.Empty(t, provider.Hydrate(ctx, "alice").Campaign)
}

func TestProvider_QuoteCodesRoundTrip(t *testing.T) {
	provider := newTestProvider(store.NewMemoryKV())
	ctx := context.Background()

	codes := []string{"BTC-BRL", "USD-BRL", "BTC-BRL"}
	provider.SetQuoteCodes(ctx, "alice", codes)

	assert.Equal(t, codes, provider.QuoteCodes(ctx, "alice"),
		"order and duplicates are persisted as given")
}

func TestProvider_WeatherCityRoundTrip(t *testing.T) {
	provider := newTestProvider(store.NewMemoryKV())
	ctx := context.Background()

	provider.SetWeatherCity(ctx, "alice", "Rio de Janeiro")
	assert.Equal(t, "Rio de Janeiro", provider.WeatherCity(ctx, "alice"))
	assert.Empty(t, provider.WeatherCity(ctx, "bob"))
}

func TestProvider_WritesPublishEvents(t *testing.T) {
	provider := newTestProvider(store.NewMemoryKV())

	events, cancel := provider.Subscribe("alice")
	defer cancel()

	provider.SetDarkMode(context.Background(), "alice", true)

	select {
	case event := <-events:
		assert.Equal(t, "alice", event.Scope)
		assert.Equal(t, models.KeyDarkMode, event.Key)
		assert.Equal(t, true, event.Value)
	case <-time.After(time.Second):
		t.Fatal("setting write never reached the watch stream")
	}
}

func TestProvider_FailedWriteStillPublishes(t *testing.T) {
	provider := newTestProvider(faultyKV{})

	events, cancel := provider.Subscribe("alice")
	defer cancel()

	provider.SetDarkMode(context.Background(), "alice", true)

	select {
	case event := <-events:
		assert.Equal(t, models.KeyDarkMode, event.Key)
	case <-time.After(time.Second):
		t.Fatal("a bridge failure must not silence the watch stream")
	}
}
