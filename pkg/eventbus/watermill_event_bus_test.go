package eventbus_test

import (
	"context"
	"testing"
	"time"

	"github.com/Rice-Bikes/ricebikesbackend/pkg/channels/gochannel"
	"github.com/Rice-Bikes/ricebikesbackend/pkg/eventbus"
	"github.com/Rice-Bikes/ricebikesbackend/pkg/events"
	"github.com/Rice-Bikes/ricebikesbackend/pkg/models"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBus(t *testing.T) eventbus.EventBus {
	t.Helper()

	pub, sub, err := gochannel.CreateTestChannel(watermill.NopLogger{})
	require.NoError(t, err)

	bus := eventbus.NewWatermillEventBus(pub, sub)
	t.Cleanup(func() { _ = bus.Close() })

	return bus
}

func TestWatermillEventBus_NotificationRoundTrip(t *testing.T) {
	bus := newTestBus(t)

	received := make(chan *events.NotificationRequested, 1)

	err := bus.Handle(events.NotificationRequestedEvent, func(_ context.Context, event interface{}) error {
		requested, ok := event.(*events.NotificationRequested)
		require.True(t, ok)
		received <- requested

		return nil
	})
	require.NoError(t, err)
	require.NoError(t, bus.Subscribe(t.Context()))

	sent := events.NotificationRequested{
		BaseEvent: events.BaseEvent{
			ID:            bus.GenerateID(),
			Type:          events.NotificationRequestedEvent,
			Timestamp:     time.Now().UTC(),
			TransactionID: "t1",
		},
		Request: models.NotificationRequest{
			Kind:            models.NotificationBuildComplete,
			TransactionID:   "t1",
			TransactionNum:  42,
			StepName:        "Build",
			Message:         "Build complete for transaction #42",
			BikeSummary:     "Trek FX2",
			CustomerSummary: "Sam Waters",
		},
	}

	require.NoError(t, bus.Publish(t.Context(), "t1", sent))

	select {
	case got := <-received:
		assert.Equal(t, sent.Request, got.Request)
		assert.Equal(t, "t1", got.TransactionID)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for notification event")
	}
}

func TestWatermillEventBus_UnhandledEventTypeIsAcked(t *testing.T) {
	bus := newTestBus(t)

	// No handler registered for step.completed; the message should be
	// acked and dropped without blocking later events.
	require.NoError(t, bus.Subscribe(t.Context()))

	completed := events.StepCompleted{
		BaseEvent: events.BaseEvent{
			ID:            bus.GenerateID(),
			Type:          events.StepCompletedEvent,
			Timestamp:     time.Now().UTC(),
			TransactionID: "t1",
		},
		StepID:   "s1",
		StepName: "Build",
	}

	require.NoError(t, bus.Publish(t.Context(), "t1", completed))
}

func TestWatermillEventBus_GenerateID(t *testing.T) {
	bus := newTestBus(t)

	first := bus.GenerateID()
	second := bus.GenerateID()

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}
