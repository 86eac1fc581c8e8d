package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrStartItemPreparationCommandIsNotConstructed = errors.New(
	"StartItemPreparationCommand must be created via NewStartItemPreparationCommand constructor",
)

// StartItemPreparationCommand is sent when a station picks a line up.
type StartItemPreparationCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID

	guard guard.ConstructorGuard
}

func NewStartItemPreparationCommand(itemID kernel.UUID) (StartItemPreparationCommand, error) {
	if err := validateID("item id", itemID); err != nil {
		return StartItemPreparationCommand{}, err
	}

	return StartItemPreparationCommand{
		itemID: itemID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c StartItemPreparationCommand) Validate() error {
	return c.guard.Validate(ErrStartItemPreparationCommandIsNotConstructed)
}

func (c StartItemPreparationCommand) ItemID() kernel.UUID {
	return c.itemID
}
