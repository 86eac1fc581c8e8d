package order

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// ItemStatus tracks preparation of a single order line. It only moves forward:
//
//	Pending ──> Preparing ──> Ready
//	   └──────────────────────^
type ItemStatus int

const (
	UnknownItemStatus ItemStatus = iota
	Pending
	Preparing
	Ready
)

func getItemStatusStrings() map[ItemStatus]string {
	return map[ItemStatus]string{
		UnknownItemStatus: "unknown",
		Pending:           "pending",
		Preparing:         "in-preparation",
		Ready:             "ready",
	}
}

func ParseItemStatus(s string) (ItemStatus, error) {
	for st, name := range getItemStatusStrings() {
		if st != UnknownItemStatus && name == s {
			return st, nil
		}
	}
	return UnknownItemStatus, errs.NewValueIsInvalidErrorWithCause("item status is invalid", fmt.Errorf("%q is not a valid item status", s))
}

func (s ItemStatus) Validate() error {
	if s < Pending || s > Ready {
		return errs.NewValueIsInvalidErrorWithCause("item status is invalid", fmt.Errorf("%d is not a valid item status", s))
	}
	return nil
}

func (s ItemStatus) String() string {
	if str, ok := getItemStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsOutstanding reports whether a station still has work to do on the item.
func (s ItemStatus) IsOutstanding() bool {
	return s == Pending || s == Preparing
}
