package commands

import (
	"context"

	"restaurant/internal/core/domain/model/order"
)

// MarkOrderServedCommandHandler moves a ready-to-serve order to served.
type MarkOrderServedCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewMarkOrderServedCommandHandler(uowFactory OrderUoWFactory) MarkOrderServedCommandHandler {
	return MarkOrderServedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns not found for an unknown order and a conflict naming the
// current status for any order that is not ready-to-serve.
func (h MarkOrderServedCommandHandler) Handle(ctx context.Context, cmd MarkOrderServedCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var served *order.Order
	err := withRetry(ctx, func() error {
		var err error
		served, err = h.handle(ctx, cmd)
		return err
	})
	if err != nil {
		return nil, err
	}
	return served, nil
}

func (h MarkOrderServedCommandHandler) handle(ctx context.Context, cmd MarkOrderServedCommand) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.Serve(); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
