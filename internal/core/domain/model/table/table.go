package table

import (
	"errors"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrNameIsRequired        = errs.NewValueIsRequiredError("name")
	ErrTableIsNotConstructed = errors.New("Table must be created via NewTable constructor")
)

// Table is a physical seat group that hosts at most one active order.
// Occupancy changes only through Occupy and Release, which the order
// lifecycle calls inside the same transaction as the order change.
type Table struct {
	id        kernel.UUID
	name      string
	occupancy Occupancy
	guard     guard.ConstructorGuard
}

// NewTable creates a free table.
func NewTable(id kernel.UUID, name string) (*Table, error) {
	return RestoreTable(id, name, Free)
}

// RestoreTable rebuilds a table loaded from storage.
func RestoreTable(id kernel.UUID, name string, occupancy Occupancy) (*Table, error) {
	t := &Table{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		t.setID(id),
		t.setName(name),
		t.setOccupancy(occupancy),
	); err != nil {
		return nil, err
	}

	return t, nil
}

func (t *Table) Validate() error {
	if t == nil {
		return ErrTableIsNotConstructed
	}
	return t.guard.Validate(ErrTableIsNotConstructed)
}

func (t *Table) ID() kernel.UUID {
	return t.id
}

func (t *Table) Name() string {
	return t.name
}

func (t *Table) Occupancy() Occupancy {
	return t.occupancy
}

func (t *Table) IsFree() bool {
	return t.occupancy == Free
}

// Occupy seats a new order. Only a free table can be occupied.
func (t *Table) Occupy() error {
	if t.occupancy != Free {
		return errs.NewStatusConflictError("table", t.id.String(), "occupy", t.occupancy.String())
	}
	t.occupancy = Occupied
	return nil
}

// Release frees the table once its order is closed.
func (t *Table) Release() {
	t.occupancy = Free
}

func (t *Table) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Table) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	t.name = name
	return nil
}

func (t *Table) setOccupancy(o Occupancy) error {
	if err := o.Validate(); err != nil {
		return err
	}
	t.occupancy = o
	return nil
}
