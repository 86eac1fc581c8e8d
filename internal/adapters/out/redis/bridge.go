// Package redis links the notifiers of several service instances through a
// Redis pub/sub channel, so an order readied on one instance reaches staff
// connected to any other.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"restaurant/internal/core/domain/model/notification"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const DefaultChannel = "restaurant:notifications"

// Broadcaster is the local delivery target, normally *notifier.Notifier.
type Broadcaster interface {
	Broadcast(event notification.Event)
}

// envelope tags each event with the publishing instance so it is not
// delivered twice locally.
type envelope struct {
	Origin string             `json:"origin"`
	Event  notification.Event `json:"event"`
}

type Bridge struct {
	client  redis.UniversalClient
	channel string
	origin  string
	local   Broadcaster
	logger  logrus.FieldLogger

	pubsub *redis.PubSub
	wg     sync.WaitGroup
}

// NewBridge creates a bridge for the instance identified by origin.
func NewBridge(client redis.UniversalClient, channel, origin string, local Broadcaster, logger logrus.FieldLogger) *Bridge {
	if channel == "" {
		channel = DefaultChannel
	}
	return &Bridge{
		client:  client,
		channel: channel,
		origin:  origin,
		local:   local,
		logger:  logger.WithField("component", "redis-bridge"),
	}
}

func (b *Bridge) Name() string {
	return "redis"
}

// Publish sends event to the other instances.
func (b *Bridge) Publish(ctx context.Context, event notification.Event) error {
	payload, err := json.Marshal(envelope{Origin: b.origin, Event: event})
	if err != nil {
		return fmt.Errorf("encode envelope: %w", err)
	}
	return b.client.Publish(ctx, b.channel, payload).Err()
}

// Start subscribes and forwards remote events to the local broadcaster until
// ctx is cancelled or Close is called. It returns once the subscription is
// confirmed by the server.
func (b *Bridge) Start(ctx context.Context) error {
	pubsub := b.client.Subscribe(ctx, b.channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return fmt.Errorf("subscribe %s: %w", b.channel, err)
	}
	b.pubsub = pubsub

	messages := pubsub.Channel()
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				b.forward(msg.Payload)
			}
		}
	}()

	b.logger.WithField("channel", b.channel).Info("bridge subscribed")
	return nil
}

// Close ends the subscription and waits for the forwarding loop.
func (b *Bridge) Close() error {
	if b.pubsub == nil {
		return nil
	}
	err := b.pubsub.Close()
	b.wg.Wait()
	return err
}

func (b *Bridge) forward(payload string) {
	var env envelope
	if err := json.Unmarshal([]byte(payload), &env); err != nil {
		b.logger.WithError(err).Warn("dropping malformed bridge message")
		return
	}
	if env.Origin == b.origin {
		return
	}
	b.local.Broadcast(env.Event)
}
