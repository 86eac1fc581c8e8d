package commands

import (
	"errors"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateMenuItemCommandIsNotConstructed = errors.New(
		"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
	)
	ErrMenuItemNameIsRequired = errs.NewValueIsRequiredError("menu item name")
)

// CreateMenuItemCommand adds a dish or drink to the menu.
//
// Example:
//
//	cmd, err := NewCreateMenuItemCommand(kernel.NewUUID(), "Margherita", decimal.RequireFromString("9.50"), menu.Food, true)
type CreateMenuItemCommand struct { //nolint:recvcheck //using for validation
	menuItemID kernel.UUID
	name       string
	price      decimal.Decimal
	category   menu.Category
	available  bool

	guard guard.ConstructorGuard
}

func NewCreateMenuItemCommand(
	menuItemID kernel.UUID,
	name string,
	price decimal.Decimal,
	category menu.Category,
	available bool,
) (CreateMenuItemCommand, error) {
	cmd := CreateMenuItemCommand{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMenuItemID(menuItemID),
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setCategory(category),
	); err != nil {
		return CreateMenuItemCommand{}, err
	}

	return cmd, nil
}

func (c CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}

func (c CreateMenuItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

func (c CreateMenuItemCommand) Name() string {
	return c.name
}

func (c CreateMenuItemCommand) Price() decimal.Decimal {
	return c.price
}

func (c CreateMenuItemCommand) Category() menu.Category {
	return c.category
}

func (c CreateMenuItemCommand) Available() bool {
	return c.available
}

func (c *CreateMenuItemCommand) setMenuItemID(id kernel.UUID) error {
	if err := validateID("menu item id", id); err != nil {
		return err
	}

	c.menuItemID = id
	return nil
}

func (c *CreateMenuItemCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrMenuItemNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateMenuItemCommand) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsOutOfRangeError("price", price.String(), "0", nil)
	}

	c.price = price
	return nil
}

func (c *CreateMenuItemCommand) setCategory(category menu.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	c.category = category
	return nil
}
