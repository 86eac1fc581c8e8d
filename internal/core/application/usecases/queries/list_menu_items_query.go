package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrListMenuItemsQueryIsNotConstructed = errors.New(
	"ListMenuItemsQuery must be created via NewListMenuItemsQuery constructor",
)

// ListMenuItemsQuery lists the menu. With onlyAvailable set, items taken off
// the menu are left out.
type ListMenuItemsQuery struct {
	onlyAvailable bool

	guard guard.ConstructorGuard
}

func NewListMenuItemsQuery(onlyAvailable bool) ListMenuItemsQuery {
	return ListMenuItemsQuery{
		onlyAvailable: onlyAvailable,
		guard:         guard.NewConstructorGuard(),
	}
}

func (q ListMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrListMenuItemsQueryIsNotConstructed)
}

func (q ListMenuItemsQuery) OnlyAvailable() bool {
	return q.onlyAvailable
}

type MenuItemView struct {
	ID        kernel.UUID
	Name      string
	Price     decimal.Decimal
	Category  menu.Category
	Available bool
}
