package commands

import (
	"errors"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/staff"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrCreateStaffCommandIsNotConstructed = errors.New(
		"CreateStaffCommand must be created via NewCreateStaffCommand constructor",
	)
	ErrStaffNameIsRequired = errs.NewValueIsRequiredError("staff name")
)

// CreateStaffCommand registers a staff member. Used by seeding and the admin API.
type CreateStaffCommand struct { //nolint:recvcheck //using for validation
	staffID kernel.UUID
	name    string
	role    staff.Role

	guard guard.ConstructorGuard
}

func NewCreateStaffCommand(staffID kernel.UUID, name string, role staff.Role) (CreateStaffCommand, error) {
	cmd := CreateStaffCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setStaffID(staffID),
		cmd.setName(name),
		cmd.setRole(role),
	); err != nil {
		return CreateStaffCommand{}, err
	}

	return cmd, nil
}

func (c CreateStaffCommand) Validate() error {
	return c.guard.Validate(ErrCreateStaffCommandIsNotConstructed)
}

func (c CreateStaffCommand) StaffID() kernel.UUID {
	return c.staffID
}

func (c CreateStaffCommand) Name() string {
	return c.name
}

func (c CreateStaffCommand) Role() staff.Role {
	return c.role
}

func (c *CreateStaffCommand) setStaffID(id kernel.UUID) error {
	if err := validateID("staff id", id); err != nil {
		return err
	}

	c.staffID = id
	return nil
}

func (c *CreateStaffCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrStaffNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateStaffCommand) setRole(role staff.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
