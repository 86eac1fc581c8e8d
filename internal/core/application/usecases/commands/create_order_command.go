package commands

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrLinesAreRequired = errs.NewValueIsRequiredErrorWithCause("lines", errors.New("an order needs one or more items"))
)

// OrderLine is one requested menu item. Price and name are never taken from
// the caller; they are read from the menu when the order is created.
type OrderLine struct {
	MenuItemID kernel.UUID
	Quantity   int
}

// CreateOrderCommand represents a waiter submitting an order for a table.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), tableID, waiterID, []OrderLine{
//	    {MenuItemID: burgerID, Quantity: 2},
//	    {MenuItemID: colaID, Quantity: 1},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	tableID kernel.UUID
	staffID kernel.UUID
	lines   []OrderLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates identifiers and lines. Every quantity must be
// positive; all problems are reported together.
func NewCreateOrderCommand(orderID, tableID, staffID kernel.UUID, lines []OrderLine) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setIDs(orderID, tableID, staffID),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) TableID() kernel.UUID {
	return c.tableID
}

func (c CreateOrderCommand) StaffID() kernel.UUID {
	return c.staffID
}

// Lines returns a copy of the requested lines.
func (c CreateOrderCommand) Lines() []OrderLine {
	return append([]OrderLine(nil), c.lines...)
}

func (c *CreateOrderCommand) setIDs(orderID, tableID, staffID kernel.UUID) error {
	if err := errors.Join(
		validateID("order id", orderID),
		validateID("table id", tableID),
		validateID("staff id", staffID),
	); err != nil {
		return err
	}

	c.orderID, c.tableID, c.staffID = orderID, tableID, staffID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrLinesAreRequired
	}

	var problems []error
	for i, line := range lines {
		if line.MenuItemID.Validate() != nil {
			problems = append(problems, fmt.Errorf("line %d: %w", i, validateID("menu item id", line.MenuItemID)))
		}
		if line.Quantity <= 0 {
			problems = append(problems, errs.NewValueIsOutOfRangeError(fmt.Sprintf("line %d quantity", i), line.Quantity, 1, nil))
		}
	}
	if len(problems) > 0 {
		return errors.Join(problems...)
	}

	c.lines = append([]OrderLine(nil), lines...)
	return nil
}
