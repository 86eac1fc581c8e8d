package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrSetMenuItemAvailabilityCommandIsNotConstructed = errors.New(
	"SetMenuItemAvailabilityCommand must be created via NewSetMenuItemAvailabilityCommand constructor",
)

// SetMenuItemAvailabilityCommand takes a menu item off the menu or puts it
// back. Orders already placed keep their lines.
type SetMenuItemAvailabilityCommand struct { //nolint:recvcheck //using for validation
	menuItemID kernel.UUID
	available  bool

	guard guard.ConstructorGuard
}

func NewSetMenuItemAvailabilityCommand(menuItemID kernel.UUID, available bool) (SetMenuItemAvailabilityCommand, error) {
	if err := validateID("menu item id", menuItemID); err != nil {
		return SetMenuItemAvailabilityCommand{}, err
	}

	return SetMenuItemAvailabilityCommand{
		menuItemID: menuItemID,
		available:  available,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c SetMenuItemAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetMenuItemAvailabilityCommandIsNotConstructed)
}

func (c SetMenuItemAvailabilityCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

func (c SetMenuItemAvailabilityCommand) Available() bool {
	return c.available
}
