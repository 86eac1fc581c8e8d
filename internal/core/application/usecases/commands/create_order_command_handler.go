package commands

import (
	"context"
	"errors"
	"time"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"
)

// CreateOrderCommandHandler places an order on a free table.
//
// The whole operation is one transaction: the table row is locked first, then
// staff and every menu item are checked, the order is stored and the table is
// marked occupied. Any failure leaves no order and an unchanged table.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	router     services.OrderRouter
	now        func() time.Time
}

func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		router:     services.NewOrderRouter(),
		now:        time.Now,
	}
}

// Handle returns the created order with its items.
//
// Errors: not found for an unknown table or staff member; conflict when the
// table is not free; validation when a menu item is unknown or unavailable.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var created *order.Order
	err := withRetry(ctx, func() error {
		var err error
		created, err = h.handle(ctx, cmd)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (h CreateOrderCommandHandler) handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tableRepo := uow.TableRepository()
	tbl, err := tableRepo.GetForUpdate(ctx, cmd.TableID())
	if err != nil {
		return nil, err
	}
	if err = tbl.Occupy(); err != nil {
		return nil, err
	}

	if _, err = uow.StaffRepository().Get(ctx, cmd.StaffID()); err != nil {
		return nil, err
	}

	menuRepo := uow.MenuItemRepository()
	lines := cmd.Lines()
	items := make([]*order.Item, 0, len(lines))
	for _, line := range lines {
		menuItem, err := menuRepo.Get(ctx, line.MenuItemID)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewValueIsInvalidErrorWithCause("menu item", err)
		}
		if err != nil {
			return nil, err
		}
		item, err := h.router.Line(menuItem, line.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	created, err := order.NewOrder(cmd.OrderID(), tbl.ID(), cmd.StaffID(), items, h.now())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, created); err != nil {
		return nil, err
	}
	if err = tableRepo.Update(ctx, tbl); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
