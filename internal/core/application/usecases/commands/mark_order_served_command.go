package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrMarkOrderServedCommandIsNotConstructed = errors.New(
	"MarkOrderServedCommand must be created via NewMarkOrderServedCommand constructor",
)

// MarkOrderServedCommand records that a ready order reached its table.
type MarkOrderServedCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewMarkOrderServedCommand(orderID kernel.UUID) (MarkOrderServedCommand, error) {
	if err := validateID("order id", orderID); err != nil {
		return MarkOrderServedCommand{}, err
	}

	return MarkOrderServedCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c MarkOrderServedCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderServedCommandIsNotConstructed)
}

func (c MarkOrderServedCommand) OrderID() kernel.UUID {
	return c.orderID
}
