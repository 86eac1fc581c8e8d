package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/staff"
	"restaurant/internal/pkg/guard"
)

var ErrListStaffQueryIsNotConstructed = errors.New(
	"ListStaffQuery must be created via NewListStaffQuery constructor",
)

type ListStaffQuery struct {
	guard guard.ConstructorGuard
}

func NewListStaffQuery() ListStaffQuery {
	return ListStaffQuery{guard: guard.NewConstructorGuard()}
}

func (q ListStaffQuery) Validate() error {
	return q.guard.Validate(ErrListStaffQueryIsNotConstructed)
}

type StaffView struct {
	ID   kernel.UUID
	Name string
	Role staff.Role
}
