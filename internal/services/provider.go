package services

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/flortune/app-settings/internal/logging"
	"github.com/flortune/app-settings/internal/models"
	"github.com/flortune/app-settings/internal/observability"
	"github.com/flortune/app-settings/internal/store"
	"go.uber.org/zap"
)

// SettingsProvider is the composition root for one deployment: it owns the
// key-value bridge, the weather and quote loaders, the popup manager, the
// per-scope notification feeds and the change event bus. Reads degrade to
// documented defaults; writes are fire-and-forget towards the bridge (a
// persistence failure is logged, never surfaced).
type SettingsProvider struct {
	kv      store.KV
	weather *WeatherService
	quotes  *QuoteService
	popups  *PopupService
	feeds   *FeedRegistry
	history *HistoryService
	bus     *EventBus
	logger  *logging.SafeLogger
}

// NewSettingsProvider wires the provider from its collaborators
func NewSettingsProvider(
	kv store.KV,
	weather *WeatherService,
	quotes *QuoteService,
	popups *PopupService,
	feeds *FeedRegistry,
	history *HistoryService,
	bus *EventBus,
	logger *logging.SafeLogger,
) *SettingsProvider {
	return &SettingsProvider{
		kv:      kv,
		weather: weather,
		quotes:  quotes,
		popups:  popups,
		feeds:   feeds,
		history: history,
		bus:     bus,
		logger:  logger,
	}
}

// Hydrate reads every setting of one scope independently and returns a
// fresh snapshot. One unreadable key never blocks the others; each falls
// back to its documented default.
func (p *SettingsProvider) Hydrate(ctx context.Context, scope string) models.Snapshot {
	snapshot := models.Snapshot{
		Scope:       scope,
		DarkMode:    p.readBool(ctx, scope, models.KeyDarkMode, models.DefaultDarkMode),
		Theme:       p.readString(ctx, scope, models.KeyTheme, models.DefaultTheme),
		PrivateMode: p.readBool(ctx, scope, models.KeyPrivateMode, models.DefaultPrivateMode),
		WeatherCity: p.readString(ctx, scope, models.KeyWeatherCity, models.DefaultWeatherCity),
		QuoteCodes:  p.readStrings(ctx, scope, models.KeyQuoteCodes, models.DefaultQuoteCodes),
		Campaign:    p.readString(ctx, scope, models.KeyCampaign, models.DefaultCampaign),
		HydratedAt:  time.Now(),
	}

	configs, err := p.popups.Configs(ctx)
	if err != nil {
		p.logger.Warn("hydration: popup configs unavailable", zap.Error(err))
		configs = map[models.PopupType]models.PopupConfig{}
	}
	snapshot.PopupConfigs = configs

	active, err := p.popups.Active(ctx)
	if err != nil {
		p.logger.Warn("hydration: active popup unavailable", zap.Error(err))
		active = nil
	}
	snapshot.ActivePopup = active

	return snapshot
}

// SetDarkMode persists the dark-mode flag and returns the new value
func (p *SettingsProvider) SetDarkMode(ctx context.Context, scope string, enabled bool) bool {
	p.write(ctx, scope, models.KeyDarkMode, strconv.FormatBool(enabled), enabled)
	return enabled
}

// ToggleDarkMode flips the dark-mode flag and returns the new value
func (p *SettingsProvider) ToggleDarkMode(ctx context.Context, scope string) bool {
	current := p.readBool(ctx, scope, models.KeyDarkMode, models.DefaultDarkMode)
	return p.SetDarkMode(ctx, scope, !current)
}

// SetPrivateMode persists the private-mode flag and returns the new value
func (p *SettingsProvider) SetPrivateMode(ctx context.Context, scope string, enabled bool) bool {
	p.write(ctx, scope, models.KeyPrivateMode, strconv.FormatBool(enabled), enabled)
	return enabled
}

// TogglePrivateMode flips the private-mode flag and returns the new value
func (p *SettingsProvider) TogglePrivateMode(ctx context.Context, scope string) bool {
	current := p.readBool(ctx, scope, models.KeyPrivateMode, models.DefaultPrivateMode)
	return p.SetPrivateMode(ctx, scope, !current)
}

// ApplyTheme persists themeID and returns the class delta for the
// presentation layer.
func (p *SettingsProvider) ApplyTheme(ctx context.Context, scope, themeID string) models.ThemeResponse {
	if themeID == "" {
		themeID = models.ThemeDefault
	}
	p.write(ctx, scope, models.KeyTheme, themeID, themeID)
	return models.ThemeResponse{
		ThemeID: themeID,
		Delta:   ThemeTransition(themeID),
	}
}

// SetCampaign persists (or clears, on empty id) the active marketing
// campaign and returns the body-class delta.
func (p *SettingsProvider) SetCampaign(ctx context.Context, scope, campaignID string) models.CampaignResponse {
	campaignID = NormalizeCampaignID(campaignID)

	if campaignID == "" {
		p.clear(ctx, scope, models.KeyCampaign)
	} else {
		p.write(ctx, scope, models.KeyCampaign, campaignID, campaignID)
	}
	return models.CampaignResponse{
		CampaignID: campaignID,
		Delta:      CampaignTransition(campaignID),
	}
}

// WeatherCity returns the persisted weather city
func (p *SettingsProvider) WeatherCity(ctx context.Context, scope string) string {
	return p.readString(ctx, scope, models.KeyWeatherCity, models.DefaultWeatherCity)
}

// SetWeatherCity persists the weather city
func (p *SettingsProvider) SetWeatherCity(ctx context.Context, scope, city string) string {
	p.write(ctx, scope, models.KeyWeatherCity, city, city)
	return city
}

// QuoteCodes returns the persisted quote code list
func (p *SettingsProvider) QuoteCodes(ctx context.Context, scope string) []string {
	return p.readStrings(ctx, scope, models.KeyQuoteCodes, models.DefaultQuoteCodes)
}

// SetQuoteCodes persists the quote code list as given (ordering and
// duplicates preserved; blanks are filtered at load time)
func (p *SettingsProvider) SetQuoteCodes(ctx context.Context, scope string, codes []string) []string {
	raw, err := json.Marshal(codes)
	if err != nil {
		p.logger.Warn("failed to serialize quote codes", zap.Error(err))
		return codes
	}
	p.write(ctx, scope, models.KeyQuoteCodes, string(raw), codes)
	return codes
}

// LoadWeather runs a fenced weather load for the scope's persisted city
func (p *SettingsProvider) LoadWeather(ctx context.Context, scope string) models.WeatherState {
	city := p.WeatherCity(ctx, scope)
	return p.weather.Load(ctx, scope, city)
}

// LoadQuotes runs a fenced quote load. A non-nil override replaces the
// persisted code list for this load only.
func (p *SettingsProvider) LoadQuotes(ctx context.Context, scope string, override []string) models.QuoteState {
	codes := override
	if codes == nil {
		codes = p.QuoteCodes(ctx, scope)
	}
	return p.quotes.Load(ctx, scope, codes)
}

// Feed returns the scope's notification feed
func (p *SettingsProvider) Feed(scope string) *NotificationFeed {
	return p.feeds.Feed(scope)
}

// Popups returns the popup manager
func (p *SettingsProvider) Popups() *PopupService {
	return p.popups
}

// History returns the newest setting changes for scope
func (p *SettingsProvider) History(ctx context.Context, scope string, limit int) ([]models.SettingChange, error) {
	return p.history.List(ctx, scope, limit)
}

// Subscribe registers a watch subscriber for scope
func (p *SettingsProvider) Subscribe(scope string) (<-chan models.SettingEvent, func()) {
	return p.bus.Subscribe(scope)
}

// write persists one setting, records history and publishes a change
// event. Bridge failures are logged and swallowed; the in-memory value
// still flows to subscribers so the UI stays coherent within the session.
func (p *SettingsProvider) write(ctx context.Context, scope, key, raw string, value interface{}) {
	storageKey := store.Key(scope, key)

	previous, _, readErr := p.kv.Read(ctx, storageKey)
	if readErr != nil {
		previous = ""
	}

	if err := p.kv.Write(ctx, storageKey, raw); err != nil {
		observability.SettingWrites.WithLabelValues(key, "error").Inc()
		p.logger.Warn("failed to persist setting",
			zap.String("scope", scope),
			zap.String("key", key),
			zap.Error(err))
	} else {
		observability.SettingWrites.WithLabelValues(key, "success").Inc()
		p.history.Record(ctx, scope, key, previous, raw)
	}

	p.bus.Publish(models.SettingEvent{
		Scope:     scope,
		Key:       key,
		Value:     value,
		Timestamp: time.Now(),
	})
}

// clear removes one setting and publishes the reset
func (p *SettingsProvider) clear(ctx context.Context, scope, key string) {
	storageKey := store.Key(scope, key)

	if err := p.kv.Delete(ctx, storageKey); err != nil {
		observability.SettingWrites.WithLabelValues(key, "error").Inc()
		p.logger.Warn("failed to clear setting",
			zap.String("scope", scope),
			zap.String("key", key),
			zap.Error(err))
	} else {
		observability.SettingWrites.WithLabelValues(key, "success").Inc()
		p.history.Record(ctx, scope, key, "", "")
	}

	p.bus.Publish(models.SettingEvent{
		Scope:     scope,
		Key:       key,
		Value:     nil,
		Timestamp: time.Now(),
	})
}

// readString reads one string setting, defaulting on absence or failure
func (p *SettingsProvider) readString(ctx context.Context, scope, key, fallback string) string {
	raw, found, err := p.kv.Read(ctx, store.Key(scope, key))
	if err != nil {
		observability.SettingReads.WithLabelValues(key, "error").Inc()
		p.logger.Warn("failed to read setting, using default",
			zap.String("scope", scope),
			zap.String("key", key),
			zap.Error(err))
		return fallback
	}
	if !found {
		observability.SettingReads.WithLabelValues(key, "default").Inc()
		return fallback
	}
	observability.SettingReads.WithLabelValues(key, "hit").Inc()
	return raw
}

// readBool reads one boolean setting, defaulting on absence, failure or a
// corrupt stored value
func (p *SettingsProvider) readBool(ctx context.Context, scope, key string, fallback bool) bool {
	raw, found, err := p.kv.Read(ctx, store.Key(scope, key))
	if err != nil {
		observability.SettingReads.WithLabelValues(key, "error").Inc()
		p.logger.Warn("failed to read setting, using default",
			zap.String("scope", scope),
			zap.String("key", key),
			zap.Error(err))
		return fallback
	}
	if !found {
		observability.SettingReads.WithLabelValues(key, "default").Inc()
		return fallback
	}

	value, parseErr := strconv.ParseBool(raw)
	if parseErr != nil {
		observability.SettingReads.WithLabelValues(key, "error").Inc()
		p.logger.Warn("stored setting is corrupt, using default",
			zap.String("scope", scope),
			zap.String("key", key),
			zap.String("raw", raw))
		return fallback
	}
	observability.SettingReads.WithLabelValues(key, "hit").Inc()
	return value
}

// readStrings reads one string-list setting, defaulting on absence,
// failure or a corrupt stored value
func (p *SettingsProvider) readStrings(ctx context.Context, scope, key string, fallback []string) []string {
	raw, found, err := p.kv.Read(ctx, store.Key(scope, key))
	if err != nil {
		observability.SettingReads.WithLabelValues(key, "error").Inc()
		p.logger.Warn("failed to read setting, using default",
			zap.String("scope", scope),
			zap.String("key", key),
			zap.Error(err))
		return append([]string(nil), fallback...)
	}
	if !found {
		observability.SettingReads.WithLabelValues(key, "default").Inc()
		return append([]string(nil), fallback...)
	}

	var values []string
	if parseErr := json.Unmarshal([]byte(raw), &values); parseErr != nil {
		observability.SettingReads.WithLabelValues(key, "error").Inc()
		p.logger.Warn("stored setting is corrupt, using default",
			zap.String("scope", scope),
			zap.String("key", key),
			zap.String("raw", raw))
		return append([]string(nil), fallback...)
	}
	observability.SettingReads.WithLabelValues(key, "hit").Inc()
	return values
}
