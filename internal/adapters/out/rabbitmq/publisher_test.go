package rabbitmq_test

import (
	"context"
	"testing"

	"restaurant/internal/adapters/out/rabbitmq"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/notification"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockChannel struct{ mock.Mock }

func (m *MockChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	args := m.Called(ctx, exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

func (m *MockChannel) Close() error {
	return m.Called().Error(0)
}

func TestPublisher_Publish(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	event := notification.NewOrderReady(orderID, "Barra 3")

	ch := new(MockChannel)
	ch.On("PublishWithContext", ctx, "restaurant.events", "order-ready", false, false,
		mock.MatchedBy(func(msg amqp.Publishing) bool {
			decoded, err := notification.Unmarshal(msg.Body)
			return err == nil &&
				decoded == event &&
				msg.ContentType == "application/json" &&
				msg.MessageId == orderID.String()
		}),
	).Return(nil).Once()
	ch.On("Close").Return(nil).Once()

	p := rabbitmq.NewPublisherWithChannel(ch, rabbitmq.DefaultExchange)

	require.NoError(t, p.Publish(ctx, event))
	require.NoError(t, p.Close())
	assert.Equal(t, "rabbitmq", p.Name())
	ch.AssertExpectations(t)
}

func TestPublisher_ReturnsChannelError(t *testing.T) {
	ch := new(MockChannel)
	ch.On("PublishWithContext", mock.Anything, mock.Anything, "heartbeat", false, false, mock.Anything).
		Return(amqp.ErrClosed).Once()

	p := rabbitmq.NewPublisherWithChannel(ch, "custom")

	require.ErrorIs(t, p.Publish(t.Context(), notification.NewHeartbeat()), amqp.ErrClosed)
}
