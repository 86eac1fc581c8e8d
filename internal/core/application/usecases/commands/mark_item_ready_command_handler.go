package commands

import (
	"context"

	"restaurant/internal/core/domain/model/notification"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
)

// MarkItemReadyCommandHandler readies an order line and announces the order
// once its last outstanding line is done.
//
// Example:
//
//	handler := NewMarkItemReadyCommandHandler(uowFactory, publisher)
//	cmd, _ := NewMarkItemReadyCommand(itemID)
//	item, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown item
//	case err != nil:
//	    // storage failure or lost race after retries
//	default:
//	    fmt.Println(item.Status()) // ready
//	}
type MarkItemReadyCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
}

func NewMarkItemReadyCommandHandler(uowFactory UoWFactory, publisher ports.EventPublisher) MarkItemReadyCommandHandler {
	return MarkItemReadyCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle locks the owning order, readies the item and persists both. The
// order-ready event is published after commit and only by the call whose
// update moved the order to ready-to-serve, so concurrent callers racing on
// the last items produce exactly one event.
func (h MarkItemReadyCommandHandler) Handle(ctx context.Context, cmd MarkItemReadyCommand) (*order.Item, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var (
		item  *order.Item
		event *notification.Event
	)
	err := withRetry(ctx, func() error {
		var err error
		item, event, err = h.handle(ctx, cmd)
		return err
	})
	if err != nil {
		return nil, err
	}

	if event != nil {
		h.publisher.Publish(ctx, *event)
	}
	return item, nil
}

func (h MarkItemReadyCommandHandler) handle(
	ctx context.Context,
	cmd MarkItemReadyCommand,
) (*order.Item, *notification.Event, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	orderID, err := orderRepo.GetOrderIDByItemID(ctx, cmd.ItemID())
	if err != nil {
		return nil, nil, err
	}

	o, err := orderRepo.GetForUpdate(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}

	item, becameReady, err := o.MarkItemReady(cmd.ItemID())
	if err != nil {
		return nil, nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, nil, err
	}

	var event *notification.Event
	if becameReady {
		tbl, err := uow.TableRepository().Get(ctx, o.TableID())
		if err != nil {
			return nil, nil, err
		}
		ready := notification.NewOrderReady(o.ID(), tbl.Name())
		event = &ready
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, nil, err
	}

	return item, event, nil
}
