package commands

import (
	"errors"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrCreateTableCommandIsNotConstructed = errors.New(
		"CreateTableCommand must be created via NewCreateTableCommand constructor",
	)
	ErrTableNameIsRequired = errs.NewValueIsRequiredError("table name")
)

// CreateTableCommand registers a new dining table. Tables start free.
type CreateTableCommand struct { //nolint:recvcheck //using for validation
	tableID kernel.UUID
	name    string

	guard guard.ConstructorGuard
}

func NewCreateTableCommand(tableID kernel.UUID, name string) (CreateTableCommand, error) {
	cmd := CreateTableCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTableID(tableID),
		cmd.setName(name),
	); err != nil {
		return CreateTableCommand{}, err
	}

	return cmd, nil
}

func (c CreateTableCommand) Validate() error {
	return c.guard.Validate(ErrCreateTableCommandIsNotConstructed)
}

func (c CreateTableCommand) TableID() kernel.UUID {
	return c.tableID
}

func (c CreateTableCommand) Name() string {
	return c.name
}

func (c *CreateTableCommand) setTableID(id kernel.UUID) error {
	if err := validateID("table id", id); err != nil {
		return err
	}

	c.tableID = id
	return nil
}

func (c *CreateTableCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrTableNameIsRequired
	}

	c.name = name
	return nil
}
