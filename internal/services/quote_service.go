package services

import (
	"context"
	"encoding/json"
	"fmt"
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

// QuoteService loads currency/crypto quotes for a caller-ordered code
// list. Results are re-projected onto the requested order; codes with no
// match are dropped. Same sequence fencing as the weather loader.
type QuoteService struct {
	mu      sync.Mutex
	slots   map[string]*quoteSlot
	pool    *httpclient.HTTPClientPool
	baseURL string
	logger  *logging.SafeLogger
}

type quoteSlot struct {
	seq   uint64
	state models.QuoteState
}

// NewQuoteService creates a quote loader against the given upstream URL
func NewQuoteService(baseURL string, pool *httpclient.HTTPClientPool, logger *logging.SafeLogger) *QuoteService {
	return &QuoteService{
		slots:   make(map[string]*quoteSlot),
		pool:    pool,
		baseURL: baseURL,
		logger:  logger,
	}
}

func (s *QuoteService) slot(scope string) *quoteSlot {
	slot, ok := s.slots[scope]
	if !ok {
		slot = &quoteSlot{}
		s.slots[scope] = slot
	}
	return slot
}

// State returns the current loader state for scope
func (s *QuoteService) State(scope string) models.QuoteState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.slot(scope).state
}

// FilterCodes drops blank codes, preserving order and duplicates
func FilterCodes(codes []string) []string {
	filtered := make([]string, 0, len(codes))
	for _, code := range codes {
		code = strings.TrimSpace(code)
		if code != "" {
			filtered = append(filtered, code)
		}
	}
	return filtered
}

// Load fetches quotes for codes and updates the scope's loader state. An
// empty filtered list short-circuits: empty result, no upstream call.
func (s *QuoteService) Load(ctx context.Context, scope string, codes []string) models.QuoteState {
	filtered := FilterCodes(codes)
	if len(filtered) == 0 {
		s.mu.Lock()
		defer s.mu.Unlock()
		slot := s.slot(scope)
		slot.state = models.QuoteState{Data: []models.QuoteData{}, IsLoading: false}
		return slot.state
	}

	s.mu.Lock()
	slot := s.slot(scope)
	slot.seq++
	seq := slot.seq
	slot.state.IsLoading = true
	slot.state.Error = ""
	s.mu.Unlock()

	data, loadErr := s.fetch(ctx, filtered)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != slot.seq {
		observability.StaleResponsesDropped.WithLabelValues("quotes").Inc()
		s.logger.Debug("discarding stale quote response",
			zap.String("scope", scope), zap.Strings("codes", filtered))
		return slot.state
	}

	slot.state.IsLoading = false
	if loadErr != nil {
		observability.UpstreamRequests.WithLabelValues("quotes", "error").Inc()
		slot.state.Data = []models.QuoteData{}
		slot.state.Error = loadErr.Error()
		s.logger.Warn("quote load failed",
			zap.String("scope", scope),
			zap.Strings("codes", filtered),
			zap.Error(loadErr))
		return slot.state
	}

	observability.UpstreamRequests.WithLabelValues("quotes", "success").Inc()
	slot.state.Data = reorderQuotes(filtered, data)
	slot.state.Error = ""
	return slot.state
}

// fetch performs the upstream call
func (s *QuoteService) fetch(ctx context.Context, codes []string) ([]models.QuoteData, error) {
	endpoint := s.baseURL + "?codes=" + url.QueryEscape(strings.Join(codes, ","))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("quotes request: %w", err)
	}

	client := s.pool.Get()
	defer s.pool.Put(client)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("quotes request: %w", err)
	}
	defer resp.Body.Close()

	var payload models.QuotesUpstreamResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("quotes response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if payload.Error != "" {
			return nil, fmt.Errorf("%s", payload.Error)
		}
		return nil, fmt.Errorf("quote service returned status %d", resp.StatusCode)
	}

	return payload.Data, nil
}

// reorderQuotes re-projects the upstream result onto the requested order.
// Requested duplicates stay duplicated; codes the upstream did not return
// are dropped.
func reorderQuotes(requested []string, data []models.QuoteData) []models.QuoteData {
	byCode := make(map[string]models.QuoteData, len(data))
	for _, quote := range data {
		byCode[quote.Code] = quote
	}

	ordered := make([]models.QuoteData, 0, len(requested))
	for _, code := range requested {
		if quote, ok := byCode[code]; ok {
			ordered = append(ordered, quote)
		}
	}
	return ordered
}
