package staff

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

type Role int

const (
	UnknownRole Role = iota
	Waiter
	Kitchen
	Bar
	Admin
)

var roleNames = map[Role]string{
	Waiter:  "waiter",
	Kitchen: "kitchen",
	Bar:     "bar",
	Admin:   "admin",
}

func ParseRole(s string) (Role, error) {
	for r, name := range roleNames {
		if name == s {
			return r, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
}

func (r Role) Validate() error {
	if _, ok := roleNames[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if s, ok := roleNames[r]; ok {
		return s
	}
	return "unknown"
}
