package ports

import (
	"context"

	"restaurant/internal/core/domain/model/notification"
)

// EventPublisher hands notification events to every delivery channel.
// Delivery failures are absorbed by the implementation and never reach the
// caller, so a committed lifecycle operation never reports a notification error.
type EventPublisher interface {
	Publish(ctx context.Context, event notification.Event)
}
