package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
)

// MenuItemRepository defines the persistence contract for the catalogue.
type MenuItemRepository interface {
	Add(ctx context.Context, item *menu.MenuItem) error
	Update(ctx context.Context, item *menu.MenuItem) error
	Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error)
	GetByName(ctx context.Context, name string) (*menu.MenuItem, error)
}
