package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrMarkItemReadyCommandIsNotConstructed = errors.New(
	"MarkItemReadyCommand must be created via NewMarkItemReadyCommand constructor",
)

// MarkItemReadyCommand is sent by the kitchen or bar when a line is done.
type MarkItemReadyCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID

	guard guard.ConstructorGuard
}

func NewMarkItemReadyCommand(itemID kernel.UUID) (MarkItemReadyCommand, error) {
	if err := validateID("item id", itemID); err != nil {
		return MarkItemReadyCommand{}, err
	}

	return MarkItemReadyCommand{
		itemID: itemID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c MarkItemReadyCommand) Validate() error {
	return c.guard.Validate(ErrMarkItemReadyCommandIsNotConstructed)
}

func (c MarkItemReadyCommand) ItemID() kernel.UUID {
	return c.itemID
}
