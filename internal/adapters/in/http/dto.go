package http

import (
	"time"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/staff"
	"restaurant/internal/core/domain/model/table"

	"github.com/shopspring/decimal"
)

type OrderLineRequest struct {
	MenuItemID kernel.UUID `json:"menu_item_id"`
	Quantity   int         `json:"quantity"`
}

type CreateOrderRequest struct {
	TableID kernel.UUID        `json:"table_id"`
	StaffID kernel.UUID        `json:"staff_id"`
	Items   []OrderLineRequest `json:"items"`
}

type OrderItemResponse struct {
	ID           kernel.UUID     `json:"id"`
	MenuItemID   kernel.UUID     `json:"menu_item_id"`
	MenuItemName string          `json:"menu_item_name"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Destination  string          `json:"destination"`
	Status       string          `json:"status"`
}

type OrderResponse struct {
	ID        kernel.UUID         `json:"id"`
	TableID   kernel.UUID         `json:"table_id"`
	TableName string              `json:"table_name,omitempty"`
	StaffID   kernel.UUID         `json:"staff_id"`
	Status    string              `json:"status"`
	Total     decimal.Decimal     `json:"total"`
	CreatedAt time.Time           `json:"created_at"`
	Items     []OrderItemResponse `json:"items"`
}

type TaskResponse struct {
	ItemID       kernel.UUID `json:"item_id"`
	OrderID      kernel.UUID `json:"order_id"`
	MenuItemName string      `json:"menu_item_name"`
	Quantity     int         `json:"quantity"`
	Status       string      `json:"status"`
	TableName    string      `json:"table_name"`
	OrderedAt    time.Time   `json:"ordered_at"`
}

type CreateTableRequest struct {
	Name string `json:"name"`
}

type TableResponse struct {
	ID        kernel.UUID `json:"id"`
	Name      string      `json:"name"`
	Occupancy string      `json:"occupancy"`
}

type CreateMenuItemRequest struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
	// Available defaults to true when omitted.
	Available *bool `json:"available"`
}

type AvailabilityRequest struct {
	Available *bool `json:"available"`
}

type MenuItemResponse struct {
	ID        kernel.UUID     `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Category  string          `json:"category"`
	Available bool            `json:"available"`
}

type CreateStaffRequest struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

type StaffResponse struct {
	ID   kernel.UUID `json:"id"`
	Name string      `json:"name"`
	Role string      `json:"role"`
}

func itemResponse(it *order.Item) OrderItemResponse {
	return OrderItemResponse{
		ID:           it.ID(),
		MenuItemID:   it.MenuItemID(),
		MenuItemName: it.MenuItemName(),
		Quantity:     it.Quantity(),
		UnitPrice:    it.UnitPrice(),
		Destination:  it.Destination().String(),
		Status:       it.Status().String(),
	}
}

func orderResponse(o *order.Order) OrderResponse {
	items := o.Items()
	resp := OrderResponse{
		ID:        o.ID(),
		TableID:   o.TableID(),
		StaffID:   o.StaffID(),
		Status:    o.Status().String(),
		Total:     o.Total(),
		CreatedAt: o.CreatedAt(),
		Items:     make([]OrderItemResponse, 0, len(items)),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, itemResponse(it))
	}
	return resp
}

func orderViewResponse(v queries.OrderView) OrderResponse {
	resp := OrderResponse{
		ID:        v.ID,
		TableID:   v.TableID,
		TableName: v.TableName,
		StaffID:   v.StaffID,
		Status:    v.Status.String(),
		Total:     v.Total,
		CreatedAt: v.CreatedAt,
		Items:     make([]OrderItemResponse, 0, len(v.Items)),
	}
	for _, it := range v.Items {
		resp.Items = append(resp.Items, OrderItemResponse{
			ID:           it.ID,
			MenuItemID:   it.MenuItemID,
			MenuItemName: it.MenuItemName,
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice,
			Destination:  it.Destination.String(),
			Status:       it.Status.String(),
		})
	}
	return resp
}

func tableResponse(t *table.Table) TableResponse {
	return TableResponse{ID: t.ID(), Name: t.Name(), Occupancy: t.Occupancy().String()}
}

func menuItemResponse(m *menu.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:        m.ID(),
		Name:      m.Name(),
		Price:     m.Price(),
		Category:  m.Category().String(),
		Available: m.IsAvailable(),
	}
}

func staffResponse(s *staff.Staff) StaffResponse {
	return StaffResponse{ID: s.ID(), Name: s.Name(), Role: s.Role().String()}
}
