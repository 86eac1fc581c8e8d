// Package staff models restaurant employees. The order lifecycle only needs
// to know that the submitting staff member exists.
package staff

import (
	"errors"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrNameIsRequired        = errs.NewValueIsRequiredError("name")
	ErrStaffIsNotConstructed = errors.New("Staff must be created via NewStaff constructor")
)

type Staff struct {
	id    kernel.UUID
	name  string
	role  Role
	guard guard.ConstructorGuard
}

func NewStaff(id kernel.UUID, name string, role Role) (*Staff, error) {
	s := &Staff{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setRole(role),
	); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Staff) Validate() error {
	if s == nil {
		return ErrStaffIsNotConstructed
	}
	return s.guard.Validate(ErrStaffIsNotConstructed)
}

func (s *Staff) ID() kernel.UUID {
	return s.id
}

func (s *Staff) Name() string {
	return s.name
}

func (s *Staff) Role() Role {
	return s.role
}

func (s *Staff) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Staff) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	s.name = name
	return nil
}

func (s *Staff) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	s.role = role
	return nil
}
