package queries

import (
	"context"

	"restaurant/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ListMenuItemsQueryHandler struct {
	db *gorm.DB
}

func NewListMenuItemsQueryHandler(db *gorm.DB) ListMenuItemsQueryHandler {
	return ListMenuItemsQueryHandler{db: db}
}

type menuItemRow struct {
	ID        uuid.UUID
	Name      string
	Price     decimal.Decimal
	Category  string
	Available bool
}

// Handle returns menu items ordered by name.
func (h ListMenuItemsQueryHandler) Handle(ctx context.Context, query ListMenuItemsQuery) ([]MenuItemView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).
		Table("menu_items").
		Select("id", "name", "price", "category", "available").
		Order("name")
	if query.OnlyAvailable() {
		tx = tx.Where("available = ?", true)
	}

	var dtos []menuItemRow
	if err := tx.Scan(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]MenuItemView, 0, len(dtos))
	for _, dto := range dtos {
		id, err := toKernelID(dto.ID)
		if err != nil {
			return nil, err
		}
		category, err := menu.ParseCategory(dto.Category)
		if err != nil {
			return nil, err
		}
		items = append(items, MenuItemView{
			ID:        id,
			Name:      dto.Name,
			Price:     dto.Price,
			Category:  category,
			Available: dto.Available,
		})
	}

	return items, nil
}
