package cmd

import (
	"fmt"
	"log/slog"

	"github.com/Rice-Bikes/ricebikesbackend/pkg/channels/gochannel"
	"github.com/Rice-Bikes/ricebikesbackend/pkg/channels/kafka"
	"github.com/Rice-Bikes/ricebikesbackend/pkg/eventbus"
	"github.com/ThreeDotsLabs/watermill"
)

// NewEventBus creates an event bus backed by the named provider. Kafka is the
// production broker; the default is an in-process channel.
func NewEventBus(provider, serviceName string, logger *slog.Logger) (eventbus.EventBus, error) {
	wmLogger := watermill.NewSlogLogger(logger)

	switch provider {
	case "kafka":
		pub, sub, err := kafka.CreateChannel(wmLogger, serviceName)
		if err != nil {
			return nil, fmt.Errorf("failed to create Kafka pub/sub: %w", err)
		}

		return eventbus.NewWatermillEventBus(pub, sub), nil
	default:
		pub, sub, err := gochannel.CreateChannel(wmLogger)
		if err != nil {
			return nil, fmt.Errorf("failed to create in-process pub/sub: %w", err)
		}

		return eventbus.NewWatermillEventBus(pub, sub), nil
	}
}
