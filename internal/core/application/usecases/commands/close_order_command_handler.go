package commands

import (
	"context"

	"restaurant/internal/core/domain/model/order"
)

// CloseOrderCommandHandler closes an order and frees its table in the same
// transaction.
//
// Example:
//
//	handler := NewCloseOrderCommandHandler(uowFactory)
//	cmd, _ := NewCloseOrderCommand(orderID)
//	if _, err := handler.Handle(ctx, cmd); errors.Is(err, errs.ErrConflict) {
//	    // order is still being prepared
//	}
type CloseOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewCloseOrderCommandHandler(uowFactory UoWFactory) CloseOrderCommandHandler {
	return CloseOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle accepts served and ready-to-serve orders. Any other status is a
// conflict and leaves the table untouched.
func (h CloseOrderCommandHandler) Handle(ctx context.Context, cmd CloseOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var closed *order.Order
	err := withRetry(ctx, func() error {
		var err error
		closed, err = h.handle(ctx, cmd)
		return err
	})
	if err != nil {
		return nil, err
	}
	return closed, nil
}

func (h CloseOrderCommandHandler) handle(ctx context.Context, cmd CloseOrderCommand) (*order.Order, error) {
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

	if err = o.Close(); err != nil {
		return nil, err
	}

	tableRepo := uow.TableRepository()
	tbl, err := tableRepo.GetForUpdate(ctx, o.TableID())
	if err != nil {
		return nil, err
	}
	tbl.Release()

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}
	if err = tableRepo.Update(ctx, tbl); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
