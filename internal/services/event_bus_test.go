package services

import (
	"testing"
	"time"

	"github.com/flortune/app-settings/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventBus_PublishReachesScopeSubscribers(t *testing.T) {
	bus := NewEventBus()

	events, cancel := bus.Subscribe("alice")
	defer cancel()

	bus.Publish(models.SettingEvent{Scope: "alice", Key: "dark_mode", Value: true})

	select {
	case event := <-events:
		assert.Equal(t, "dark_mode", event.Key)
		assert.Equal(t, true, event.Value)
	case <-time.After(time.Second):
		t.Fatal("expected event was never delivered")
	}
}

func TestEventBus_OtherScopesDoNotReceive(t *testing.T) {
	bus := NewEventBus()

	events, cancel := bus.Subscribe("bob")
	defer cancel()

	bus.Publish(models.SettingEvent{Scope: "alice", Key: "theme", Value: "dark"})

	select {
	case event := <-events:
		t.Fatalf("bob received alice's event: %+v", event)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestEventBus_CancelClosesChannel(t *testing.T) {
	bus := NewEventBus()

	events, cancel := bus.Subscribe("alice")
	cancel()

	_, open := <-events
	assert.False(t, open, "cancel must close the subscriber channel")

	// Publishing after cancel must not panic.
	bus.Publish(models.SettingEvent{Scope: "alice", Key: "theme", Value: "dark"})
}

func TestEventBus_FullSubscriberDropsEvents(t *testing.T) {
	bus := NewEventBus()

	events, cancel := bus.Subscribe("alice")
	defer cancel()

	// Never drained: once the buffer fills, publishes must not block.
	done := make(chan struct{})
	go func() {
		for i := 0; i < subscriberBuffer*3; i++ {
			bus.Publish(models.SettingEvent{Scope: "alice", Key: "theme", Value: i})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full subscriber")
	}

	require.Len(t, events, subscriberBuffer)
}

func TestEventBus_MultipleSubscribers(t *testing.T) {
	bus := NewEventBus()

	first, cancelFirst := bus.Subscribe("alice")
	defer cancelFirst()
	second, cancelSecond := bus.Subscribe("alice")
	defer cancelSecond()

	bus.Publish(models.SettingEvent{Scope: "alice", Key: "private_mode", Value: true})

	for _, events := range []<-chan models.SettingEvent{first, second} {
		select {
		case event := <-events:
			assert.Equal(t, "private_mode", event.Key)
		case <-time.After(time.Second):
			t.Fatal("a subscriber missed the event")
		}
	}
}
