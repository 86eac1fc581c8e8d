// Package kafka copies notification events onto a Kafka topic for
// downstream consumers such as analytics.
package kafka

import (
	"context"
	"fmt"
	"time"

	"restaurant/internal/core/domain/model/notification"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Publisher struct {
	writer messageWriter
}

// BatchTimeout bounds how long a synchronous write waits for more messages
// before flushing. Publish runs inline with the request that readied the order.
const BatchTimeout = 10 * time.Millisecond

// NewPublisher writes to topic on brokers. Messages are keyed by order id so
// all events of one order land on the same partition.
func NewPublisher(brokers []string, topic string) *Publisher {
	return NewPublisherWithWriter(NewWriter(brokers, topic))
}

func NewWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: BatchTimeout,
	}
}

func NewPublisherWithWriter(writer messageWriter) *Publisher {
	return &Publisher{writer: writer}
}

func (p *Publisher) Name() string {
	return "kafka"
}

func (p *Publisher) Publish(ctx context.Context, event notification.Event) error {
	payload, err := event.Marshal()
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "kind", Value: []byte(event.Kind)},
		},
	})
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
