package commands

import (
	"context"

	"restaurant/internal/core/domain/model/menu"
)

type SetMenuItemAvailabilityCommandHandler struct {
	uowFactory MenuUoWFactory
}

func NewSetMenuItemAvailabilityCommandHandler(uowFactory MenuUoWFactory) SetMenuItemAvailabilityCommandHandler {
	return SetMenuItemAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h SetMenuItemAvailabilityCommandHandler) Handle(
	ctx context.Context,
	cmd SetMenuItemAvailabilityCommand,
) (*menu.MenuItem, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuRepo := uow.MenuItemRepository()
	item, err := menuRepo.Get(ctx, cmd.MenuItemID())
	if err != nil {
		return nil, err
	}

	item.SetAvailability(cmd.Available())

	if err = menuRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}
