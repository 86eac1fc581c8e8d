// Package fanout is the engine's EventPublisher: it hands every event to the
// local notifier first and then to each configured relay.
package fanout

import (
	"context"

	"restaurant/internal/core/domain/model/notification"
	"restaurant/internal/core/ports"

	"github.com/sirupsen/logrus"
)

var _ ports.EventPublisher = (*Publisher)(nil)

// LocalBroadcaster delivers to subscribers connected to this instance.
type LocalBroadcaster interface {
	Broadcast(event notification.Event)
}

// Relay forwards an event to an external system (kafka, rabbitmq, redis).
type Relay interface {
	Name() string
	Publish(ctx context.Context, event notification.Event) error
}

type Publisher struct {
	local  LocalBroadcaster
	relays []Relay
	logger logrus.FieldLogger
}

func NewPublisher(local LocalBroadcaster, logger logrus.FieldLogger, relays ...Relay) *Publisher {
	return &Publisher{
		local:  local,
		relays: relays,
		logger: logger.WithField("component", "publisher"),
	}
}

// Publish never fails. Relay errors are logged and the remaining relays are
// still tried.
func (p *Publisher) Publish(ctx context.Context, event notification.Event) {
	if p.local != nil {
		p.local.Broadcast(event)
	}

	for _, relay := range p.relays {
		if err := relay.Publish(ctx, event); err != nil {
			p.logger.WithError(err).WithFields(logrus.Fields{
				"relay":    relay.Name(),
				"kind":     event.Kind,
				"order_id": event.OrderID,
			}).Error("relay publish failed")
		}
	}
}
