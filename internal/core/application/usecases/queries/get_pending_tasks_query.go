package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"
)

var ErrGetPendingTasksQueryIsNotConstructed = errors.New(
	"GetPendingTasksQuery must be created via NewGetPendingTasksQuery constructor",
)

// GetPendingTasksQuery asks for the work queue of one station.
//
// Example:
//
//	query, err := NewGetPendingTasksQuery(order.Kitchen)
//	tasks, err := handler.Handle(ctx, query)
//	for _, task := range tasks {
//	    fmt.Printf("%dx %s for %s\n", task.Quantity, task.MenuItemName, task.TableName)
//	}
type GetPendingTasksQuery struct {
	destination order.Destination

	guard guard.ConstructorGuard
}

func NewGetPendingTasksQuery(destination order.Destination) (GetPendingTasksQuery, error) {
	if err := destination.Validate(); err != nil {
		return GetPendingTasksQuery{}, err
	}

	return GetPendingTasksQuery{
		destination: destination,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (q GetPendingTasksQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingTasksQueryIsNotConstructed)
}

func (q GetPendingTasksQuery) Destination() order.Destination {
	return q.destination
}

// PendingTask is one order line still to be prepared.
type PendingTask struct {
	ItemID       kernel.UUID
	OrderID      kernel.UUID
	MenuItemName string
	Quantity     int
	Status       order.ItemStatus
	TableName    string
	OrderedAt    time.Time
}
