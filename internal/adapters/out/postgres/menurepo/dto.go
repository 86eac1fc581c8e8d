// Package menurepo persists the menu catalogue.
package menurepo

import (
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MenuItemDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name      string          `gorm:"type:varchar(255);not null;uniqueIndex"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Category  string          `gorm:"type:varchar(32);not null"`
	Available bool            `gorm:"not null"`
}

func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func fromDomain(m *menu.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:        m.ID().Bytes(),
		Name:      m.Name(),
		Price:     m.Price(),
		Category:  m.Category().String(),
		Available: m.IsAvailable(),
	}
}

func toDomain(dto MenuItemDTO) (*menu.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	category, err := menu.ParseCategory(dto.Category)
	if err != nil {
		return nil, err
	}

	return menu.RestoreMenuItem(id, dto.Name, dto.Price, category, dto.Available)
}
