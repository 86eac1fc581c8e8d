package order

import (
	"errors"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrMenuItemNameIsRequired = errs.NewValueIsRequiredError("menu item name")
	ErrItemIsNotConstructed   = errors.New("Item must be created via NewItem constructor")
)

// Item is one line of an order: a menu item, a quantity, and the station that
// prepares it. Name and unit price are snapshots taken when the order was
// created, so later menu edits never change an existing order.
type Item struct {
	id           kernel.UUID
	menuItemID   kernel.UUID
	menuItemName string
	quantity     int
	unitPrice    decimal.Decimal
	destination  Destination
	status       ItemStatus

	isConstructed bool
}

// NewItem creates a pending line.
func NewItem(
	id kernel.UUID,
	menuItemID kernel.UUID,
	menuItemName string,
	quantity int,
	unitPrice decimal.Decimal,
	destination Destination,
) (*Item, error) {
	return RestoreItem(id, menuItemID, menuItemName, quantity, unitPrice, destination, Pending)
}

// RestoreItem rebuilds a line loaded from storage.
func RestoreItem(
	id kernel.UUID,
	menuItemID kernel.UUID,
	menuItemName string,
	quantity int,
	unitPrice decimal.Decimal,
	destination Destination,
	status ItemStatus,
) (*Item, error) {
	item := &Item{isConstructed: true}

	if err := errors.Join(
		item.setID(id),
		item.setMenuItem(menuItemID, menuItemName),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
		item.setDestination(destination),
		item.setStatus(status),
	); err != nil {
		return nil, err
	}

	return item, nil
}

func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i *Item) ID() kernel.UUID {
	return i.id
}

func (i *Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

func (i *Item) MenuItemName() string {
	return i.menuItemName
}

func (i *Item) Quantity() int {
	return i.quantity
}

func (i *Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

func (i *Item) Destination() Destination {
	return i.destination
}

func (i *Item) Status() ItemStatus {
	return i.status
}

// Subtotal is unit price × quantity.
func (i *Item) Subtotal() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

// markReady sets the item ready. It reports false when the item already was.
func (i *Item) markReady() bool {
	if i.status == Ready {
		return false
	}
	i.status = Ready
	return true
}

// startPreparation moves a pending item to Preparing. Preparing is a no-op,
// Ready is a conflict since item status never goes back.
func (i *Item) startPreparation() (bool, error) {
	switch i.status {
	case Pending:
		i.status = Preparing
		return true, nil
	case Preparing:
		return false, nil
	default:
		return false, errs.NewStatusConflictError("order item", i.id.String(), "start preparing", i.status.String())
	}
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setMenuItem(menuItemID kernel.UUID, name string) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrMenuItemNameIsRequired
	}
	i.menuItemID = menuItemID
	i.menuItemName = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, nil)
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsOutOfRangeError("unit price", price.String(), "0", nil)
	}
	i.unitPrice = price
	return nil
}

func (i *Item) setDestination(d Destination) error {
	if err := d.Validate(); err != nil {
		return err
	}
	i.destination = d
	return nil
}

func (i *Item) setStatus(s ItemStatus) error {
	if err := s.Validate(); err != nil {
		return err
	}
	i.status = s
	return nil
}
