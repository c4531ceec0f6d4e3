package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Rice-Bikes/ricebikesbackend/pkg/eventbus"
	"github.com/Rice-Bikes/ricebikesbackend/pkg/events"
)

// Relay subscribes to notification.requested events and forwards them to a
// delivery channel such as Slack.
type Relay struct {
	bus      eventbus.EventBus
	notifier Notifier
	logger   *slog.Logger
}

func NewRelay(bus eventbus.EventBus, notifier Notifier, logger *slog.Logger) *Relay {
	return &Relay{
		bus:      bus,
		notifier: notifier,
		logger:   logger,
	}
}

// Start registers the relay handler and begins consuming from the bus.
func (r *Relay) Start(ctx context.Context) error {
	err := r.bus.Handle(events.NotificationRequestedEvent, r.handle)
	if err != nil {
		return fmt.Errorf("failed to register notification handler: %w", err)
	}

	return r.bus.Subscribe(ctx)
}

func (r *Relay) handle(ctx context.Context, event interface{}) error {
	requested, ok := event.(*events.NotificationRequested)
	if !ok {
		return fmt.Errorf("unexpected event payload %T", event)
	}

	err := r.notifier.Send(ctx, requested.Request)
	if err != nil {
		// Delivery is best effort. Log and ack so the bus does not redeliver
		// stale notifications forever.
		r.logger.ErrorContext(ctx, "failed to deliver notification",
			"kind", requested.Request.Kind,
			"transaction_id", requested.Request.TransactionID,
			"error", err,
		)
	}

	return nil
}
