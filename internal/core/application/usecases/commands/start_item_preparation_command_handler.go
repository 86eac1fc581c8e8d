package commands

import (
	"context"

	"restaurant/internal/core/domain/model/order"
)

// StartItemPreparationCommandHandler moves a pending line to in-preparation.
// The order status never changes here.
type StartItemPreparationCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewStartItemPreparationCommandHandler(uowFactory OrderUoWFactory) StartItemPreparationCommandHandler {
	return StartItemPreparationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the item. A line already in preparation is returned
// unchanged; a ready line is a conflict.
func (h StartItemPreparationCommandHandler) Handle(
	ctx context.Context,
	cmd StartItemPreparationCommand,
) (*order.Item, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var item *order.Item
	err := withRetry(ctx, func() error {
		var err error
		item, err = h.handle(ctx, cmd)
		return err
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (h StartItemPreparationCommandHandler) handle(
	ctx context.Context,
	cmd StartItemPreparationCommand,
) (*order.Item, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	orderID, err := orderRepo.GetOrderIDByItemID(ctx, cmd.ItemID())
	if err != nil {
		return nil, err
	}

	o, err := orderRepo.GetForUpdate(ctx, orderID)
	if err != nil {
		return nil, err
	}

	item, err := o.StartItemPreparation(cmd.ItemID())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}
