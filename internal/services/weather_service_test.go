package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/flortune/app-settings/internal/utils/httpclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWeatherService(upstream string, feeds *FeedRegistry) *WeatherService {
	pool := httpclient.NewHTTPClientPool(2, 5*time.Second)
	return NewWeatherService(upstream, pool, feeds, nil)
}

func TestWeatherService_LoadSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Rio de Janeiro", r.URL.Query().Get("city"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"city":"Rio de Janeiro","temperature":27.6,"description":"sunny","icon":"sun"}`))
	}))
	defer server.Close()

	svc := newWeatherService(server.URL, NewFeedRegistry())
	state := svc.Load(context.Background(), "alice", "Rio de Janeiro")

	require.NotNil(t, state.Data)
	assert.False(t, state.IsLoading)
	assert.Empty(t, state.Error)
	assert.Equal(t, "Rio de Janeiro", state.Data.City)
	assert.Equal(t, 28, state.Data.Temperature, "temperature is rounded to nearest integer")
	assert.Equal(t, "sunny", state.Data.Description)
}

func TestWeatherService_BlankCityShortCircuits(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer server.Close()

	svc := newWeatherService(server.URL, NewFeedRegistry())

	state := svc.Load(context.Background(), "alice", "   ")
	assert.False(t, state.IsLoading)
	assert.Nil(t, state.Data)
	assert.Zero(t, atomic.LoadInt32(&calls), "blank city must not hit the upstream")
}

func TestWeatherService_UpstreamErrorSetsStateAndToast(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"city not found"}`))
	}))
	defer server.Close()

	feeds := NewFeedRegistry()
	svc := newWeatherService(server.URL, feeds)
	state := svc.Load(context.Background(), "alice", "Atlantis")

	assert.Nil(t, state.Data)
	assert.False(t, state.IsLoading)
	assert.Equal(t, "city not found", state.Error)

	items, hasUnread := feeds.Feed("alice").List()
	require.Len(t, items, 1, "a failed load must raise a notification")
	assert.True(t, hasUnread)
	assert.Equal(t, "Weather unavailable", items[0].Title)
	assert.Equal(t, "destructive", items[0].Color)
}

func TestWeatherService_FailureClearsPreviousData(t *testing.T) {
	var fail atomic.Bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if fail.Load() {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte(`{"error":"upstream down"}`))
			return
		}
		w.Write([]byte(`{"city":"Lisbon","temperature":19,"description":"cloudy","icon":"cloud"}`))
	}))
	defer server.Close()

	svc := newWeatherService(server.URL, NewFeedRegistry())

	state := svc.Load(context.Background(), "alice", "Lisbon")
	require.NotNil(t, state.Data)

	fail.Store(true)
	state = svc.Load(context.Background(), "alice", "Lisbon")
	assert.Nil(t, state.Data, "stale data must not survive a failed load")
	assert.Equal(t, "upstream down", state.Error)
}

func TestWeatherService_StaleResponseIsDiscarded(t *testing.T) {
	release := make(chan struct{})
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		if n == 1 {
			// First request stalls until the second one has finished.
			<-release
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"city":"Old","temperature":1,"description":"stale","icon":"x"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"city":"New","temperature":30,"description":"fresh","icon":"sun"}`))
	}))
	defer server.Close()

	svc := newWeatherService(server.URL, NewFeedRegistry())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		svc.Load(context.Background(), "alice", "Old")
	}()

	// Give the first load time to claim its sequence number.
	for atomic.LoadInt32(&calls) == 0 {
		time.Sleep(5 * time.Millisecond)
	}

	state := svc.Load(context.Background(), "alice", "New")
	require.NotNil(t, state.Data)
	assert.Equal(t, "New", state.Data.City)

	close(release)
	wg.Wait()

	final := svc.State("alice")
	require.NotNil(t, final.Data)
	assert.Equal(t, "New", final.Data.City, "a stale response must never overwrite a newer one")
}
