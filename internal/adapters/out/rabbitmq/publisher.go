// Package rabbitmq copies notification events onto a topic exchange. The
// routing key is the event kind, so consumers can bind to "order-ready" only.
package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"restaurant/internal/core/domain/model/notification"

	amqp "github.com/rabbitmq/amqp091-go"
)

const DefaultExchange = "restaurant.events"

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher owns one AMQP channel. Publishes are serialised on it because a
// channel is not safe for concurrent use.
type Publisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       channel
	exchange string
}

// Dial connects to url and declares a durable topic exchange.
func Dial(url, exchange string) (*Publisher, error) {
	if exchange == "" {
		exchange = DefaultExchange
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err = ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	p := NewPublisherWithChannel(ch, exchange)
	p.conn = conn
	return p, nil
}

func NewPublisherWithChannel(ch channel, exchange string) *Publisher {
	return &Publisher{ch: ch, exchange: exchange}
}

func (p *Publisher) Name() string {
	return "rabbitmq"
}

func (p *Publisher) Publish(ctx context.Context, event notification.Event) error {
	body, err := event.Marshal()
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.ch.PublishWithContext(ctx, p.exchange, string(event.Kind), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Transient,
		Timestamp:    time.Now().UTC(),
		MessageId:    event.OrderID,
		Body:         body,
	})
}

func (p *Publisher) Close() error {
	var errChan, errConn error
	if p.ch != nil {
		errChan = p.ch.Close()
	}
	if p.conn != nil {
		errConn = p.conn.Close()
	}
	return errors.Join(errChan, errConn)
}
