package notification

import (
	"context"
	"time"

	"github.com/Rice-Bikes/ricebikesbackend/pkg/eventbus"
	"github.com/Rice-Bikes/ricebikesbackend/pkg/events"
	"github.com/Rice-Bikes/ricebikesbackend/pkg/models"
)

// BusNotifier publishes notification requests on the event bus. Whatever
// delivery channel is subscribed downstream picks them up from there.
type BusNotifier struct {
	bus eventbus.EventBus
}

func NewBusNotifier(bus eventbus.EventBus) *BusNotifier {
	return &BusNotifier{bus: bus}
}

func (n *BusNotifier) Send(ctx context.Context, request models.NotificationRequest) error {
	event := events.NotificationRequested{
		BaseEvent: events.BaseEvent{
			ID:            n.bus.GenerateID(),
			Type:          events.NotificationRequestedEvent,
			Timestamp:     time.Now().UTC(),
			TransactionID: request.TransactionID,
		},
		Request: request,
	}

	return n.bus.Publish(ctx, request.TransactionID, event)
}
