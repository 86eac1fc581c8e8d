// Package orderrepo maps order aggregates to the orders and order_items tables.
package orderrepo

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the orders row. Version backs the optimistic check in Update.
type OrderDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TableID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	StaffID   uuid.UUID       `gorm:"type:uuid;not null"`
	Status    string          `gorm:"type:varchar(32);not null;index"`
	Total     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt time.Time       `gorm:"not null"`
	Version   int             `gorm:"not null;default:0"`
	Items     []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one order line. Position keeps the submission order.
type OrderItemDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position     int             `gorm:"not null"`
	MenuItemID   uuid.UUID       `gorm:"type:uuid;not null"`
	MenuItemName string          `gorm:"type:varchar(255);not null"`
	Quantity     int             `gorm:"not null"`
	UnitPrice    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Destination  string          `gorm:"type:varchar(16);not null;index:idx_order_items_station,priority:1"`
	Status       string          `gorm:"type:varchar(32);not null;index:idx_order_items_station,priority:2"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	items := o.Items()
	dtos := make([]OrderItemDTO, 0, len(items))
	for pos, it := range items {
		dtos = append(dtos, OrderItemDTO{
			ID:           it.ID().Bytes(),
			OrderID:      o.ID().Bytes(),
			Position:     pos,
			MenuItemID:   it.MenuItemID().Bytes(),
			MenuItemName: it.MenuItemName(),
			Quantity:     it.Quantity(),
			UnitPrice:    it.UnitPrice(),
			Destination:  it.Destination().String(),
			Status:       it.Status().String(),
		})
	}

	return OrderDTO{
		ID:        o.ID().Bytes(),
		TableID:   o.TableID().Bytes(),
		StaffID:   o.StaffID().Bytes(),
		Status:    o.Status().String(),
		Total:     o.Total(),
		CreatedAt: o.CreatedAt(),
		Version:   o.Version(),
		Items:     dtos,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	tableID, err := kernel.UUIDFromBytes(dto.TableID[:])
	if err != nil {
		return nil, err
	}
	staffID, err := kernel.UUIDFromBytes(dto.StaffID[:])
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, tableID, staffID, status, dto.Total, dto.CreatedAt, dto.Version, items)
}

func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return nil, err
	}
	destination, err := order.ParseDestination(dto.Destination)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseItemStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(id, menuItemID, dto.MenuItemName, dto.Quantity, dto.UnitPrice, destination, status)
}
