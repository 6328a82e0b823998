package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/flortune/app-settings/internal/logging"
	"github.com/flortune/app-settings/internal/models"
	"github.com/flortune/app-settings/internal/observability"
	"github.com/flortune/app-settings/internal/utils/httpclient"
	"go.uber.org/zap"
)

// WeatherService loads current weather for the persisted city of a scope.
// Each scope keeps one loader slot; concurrent loads are fenced by a
// sequence number so a stale response never overwrites a newer one.
type WeatherService struct {
	mu      sync.Mutex
	slots   map[string]*weatherSlot
	pool    *httpclient.HTTPClientPool
	baseURL string
	feeds   *FeedRegistry
	logger  *logging.SafeLogger
}

type weatherSlot struct {
	seq   uint64
	state models.WeatherState
}

// NewWeatherService creates a weather loader against the given upstream URL
func NewWeatherService(baseURL string, pool *httpclient.HTTPClientPool, feeds *FeedRegistry, logger *logging.SafeLogger) *WeatherService {
	return &WeatherService{
		slots:   make(map[string]*weatherSlot),
		pool:    pool,
		baseURL: baseURL,
		feeds:   feeds,
		logger:  logger,
	}
}

func (s *WeatherService) slot(scope string) *weatherSlot {
	slot, ok := s.slots[scope]
	if !ok {
		slot = &weatherSlot{}
		s.slots[scope] = slot
	}
	return slot
}

// State returns the current loader state for scope
func (s *WeatherService) State(scope string) models.WeatherState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.slot(scope).state
}

// Load fetches weather for city and updates the scope's loader state. A
// blank city short-circuits without an upstream call. The returned state
// is the slot state after this load settled (or after a newer load
// superseded it).
func (s *WeatherService) Load(ctx context.Context, scope, city string) models.WeatherState {
	city = strings.TrimSpace(city)
	if city == "" {
		s.mu.Lock()
		defer s.mu.Unlock()
		slot := s.slot(scope)
		slot.state.IsLoading = false
		return slot.state
	}

	s.mu.Lock()
	slot := s.slot(scope)
	slot.seq++
	seq := slot.seq
	slot.state.IsLoading = true
	slot.state.Error = ""
	s.mu.Unlock()

	data, loadErr := s.fetch(ctx, city)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != slot.seq {
		// A newer load owns the slot now.
		observability.StaleResponsesDropped.WithLabelValues("weather").Inc()
		s.logger.Debug("discarding stale weather response",
			zap.String("scope", scope), zap.String("city", city))
		return slot.state
	}

	slot.state.IsLoading = false
	if loadErr != nil {
		observability.UpstreamRequests.WithLabelValues("weather", "error").Inc()
		slot.state.Data = nil
		slot.state.Error = loadErr.Error()
		s.logger.Warn("weather load failed",
			zap.String("scope", scope),
			zap.String("city", city),
			zap.Error(loadErr))
		s.feeds.Feed(scope).Add(models.NotificationInput{
			Title:       "Weather unavailable",
			Description: fmt.Sprintf("Could not load weather for %s: %s", city, loadErr.Error()),
			Icon:        "cloud-off",
			Color:       "destructive",
		})
		return slot.state
	}

	observability.UpstreamRequests.WithLabelValues("weather", "success").Inc()
	slot.state.Data = data
	slot.state.Error = ""
	return slot.state
}

// fetch performs the upstream call and normalizes the payload
func (s *WeatherService) fetch(ctx context.Context, city string) (*models.WeatherData, error) {
	endpoint := s.baseURL + "?city=" + url.QueryEscape(city)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("weather request: %w", err)
	}

	client := s.pool.Get()
	defer s.pool.Put(client)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather request: %w", err)
	}
	defer resp.Body.Close()

	var payload models.WeatherUpstreamResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("weather response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if payload.Error != "" {
			return nil, fmt.Errorf("%s", payload.Error)
		}
		return nil, fmt.Errorf("weather service returned status %d", resp.StatusCode)
	}

	return &models.WeatherData{
		City:        payload.City,
		Temperature: int(math.Round(payload.Temperature)),
		Description: payload.Description,
		Icon:        payload.Icon,
	}, nil
}
