package queries

import (
	"context"
	"errors"
	"time"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

type orderRow struct {
	ID        uuid.UUID
	TableID   uuid.UUID
	TableName string
	StaffID   uuid.UUID
	Status    string
	Total     decimal.Decimal
	CreatedAt time.Time
}

type orderItemRow struct {
	ID           uuid.UUID
	MenuItemID   uuid.UUID
	MenuItemName string
	Quantity     int
	UnitPrice    decimal.Decimal
	Destination  string
	Status       string
}

// Handle returns errs.ObjectNotFoundError for an unknown order.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	db := h.db.WithContext(ctx)
	id := query.OrderID().Bytes()

	var row orderRow
	err := db.Raw(`
		SELECT o.id, o.table_id, t.name AS table_name, o.staff_id, o.status, o.total, o.created_at
		FROM orders o
		JOIN tables t ON t.id = o.table_id
		WHERE o.id = ?
	`, id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return OrderView{}, err
	}

	var items []orderItemRow
	if err = db.Raw(`
		SELECT id, menu_item_id, menu_item_name, quantity, unit_price, destination, status
		FROM order_items
		WHERE order_id = ?
		ORDER BY position
	`, id).Scan(&items).Error; err != nil {
		return OrderView{}, err
	}

	return row.toView(items)
}

func (r orderRow) toView(items []orderItemRow) (OrderView, error) {
	view := OrderView{
		TableName: r.TableName,
		Total:     r.Total,
		CreatedAt: r.CreatedAt.UTC(),
		Items:     make([]OrderItemView, 0, len(items)),
	}

	var err error
	if view.ID, err = toKernelID(r.ID); err != nil {
		return OrderView{}, err
	}
	if view.TableID, err = toKernelID(r.TableID); err != nil {
		return OrderView{}, err
	}
	if view.StaffID, err = toKernelID(r.StaffID); err != nil {
		return OrderView{}, err
	}
	if view.Status, err = order.ParseStatus(r.Status); err != nil {
		return OrderView{}, err
	}

	for _, it := range items {
		item := OrderItemView{
			MenuItemName: it.MenuItemName,
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice,
		}
		if item.ID, err = toKernelID(it.ID); err != nil {
			return OrderView{}, err
		}
		if item.MenuItemID, err = toKernelID(it.MenuItemID); err != nil {
			return OrderView{}, err
		}
		if item.Destination, err = order.ParseDestination(it.Destination); err != nil {
			return OrderView{}, err
		}
		if item.Status, err = order.ParseItemStatus(it.Status); err != nil {
			return OrderView{}, err
		}
		view.Items = append(view.Items, item)
	}

	return view, nil
}
