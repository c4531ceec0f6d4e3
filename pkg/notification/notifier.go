// Package notification delivers dispatcher decisions to the outside world.
// Delivery is non-authoritative telemetry; failures here are logged and never
// influence the step mutation that triggered them.
package notification

import (
	"context"

	"github.com/Rice-Bikes/ricebikesbackend/pkg/models"
)

// Notifier is the outbound notification channel contract.
type Notifier interface {
	Send(ctx context.Context, request models.NotificationRequest) error
}
