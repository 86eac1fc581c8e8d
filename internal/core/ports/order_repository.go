package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order is always loaded and saved together with its items.
type OrderRepository interface {
	// Add persists a new order and all its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the order status and the status of every item.
	// The stored version must equal aggregate.Version(); it is bumped on success.
	// A mismatch is reported as errs.ConcurrentUpdateError.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items without locking.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and holds a row lock on it until the
	// surrounding transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetOrderIDByItemID resolves the order owning an item.
	// Returns errs.ObjectNotFoundError for an unknown item.
	GetOrderIDByItemID(ctx context.Context, itemID kernel.UUID) (kernel.UUID, error)
}
