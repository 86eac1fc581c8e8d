package menu

import (
	"errors"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrNameIsRequired           = errs.NewValueIsRequiredError("name")
	ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")
)

// MenuItem is a sellable product. The order lifecycle only reads it: the price
// and name are snapshotted into order items when an order is created, and
// availability gates whether the item can be ordered at all.
type MenuItem struct {
	id        kernel.UUID
	name      string
	price     decimal.Decimal
	category  Category
	available bool
	guard     guard.ConstructorGuard
}

// NewMenuItem validates and builds a menu item.
//
// Rules:
//   - name is trimmed and must not be empty
//   - price must be zero or positive
//   - category must be one of the known categories
func NewMenuItem(id kernel.UUID, name string, price decimal.Decimal, category Category, available bool) (*MenuItem, error) {
	item := &MenuItem{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setPrice(price),
		item.setCategory(category),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreMenuItem rebuilds a menu item loaded from storage. It applies the same
// validation as NewMenuItem.
func RestoreMenuItem(id kernel.UUID, name string, price decimal.Decimal, category Category, available bool) (*MenuItem, error) {
	return NewMenuItem(id, name, price, category, available)
}

func (m *MenuItem) Validate() error {
	if m == nil {
		return ErrMenuItemIsNotConstructed
	}
	return m.guard.Validate(ErrMenuItemIsNotConstructed)
}

func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

func (m *MenuItem) Name() string {
	return m.name
}

func (m *MenuItem) Price() decimal.Decimal {
	return m.price
}

func (m *MenuItem) Category() Category {
	return m.category
}

func (m *MenuItem) IsAvailable() bool {
	return m.available
}

// SetAvailability toggles whether new orders may include the item.
// Orders that already contain it are unaffected.
func (m *MenuItem) SetAvailability(available bool) {
	m.available = available
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	m.name = name
	return nil
}

func (m *MenuItem) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsOutOfRangeError("price", price.String(), "0", nil)
	}
	m.price = price
	return nil
}

func (m *MenuItem) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	m.category = category
	return nil
}
