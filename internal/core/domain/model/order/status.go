package order

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	New ──(all items ready)──> ReadyToServe ──(serve)──> Served ──(close)──> Closed
//	                               │                                          ▲
//	                               └──────────────────(close)─────────────────┘
//
// InPreparation is a declared value that no operation assigns.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// New is the status of a freshly created order whose items are being prepared.
	New

	// InPreparation is reserved for per-order "work started" tracking.
	InPreparation

	// ReadyToServe means every item of the order is ready. Reached exactly once,
	// by the call that readied the last outstanding item.
	ReadyToServe

	// Served means the staff member confirmed delivery to the table.
	Served

	// Closed is terminal. The table is free again.
	Closed
)

type operation string

const (
	opComplete operation = "complete"
	opServe    operation = "serve"
	opClose    operation = "close"
)

// transitions is the allowed-transition table keyed by (current status, operation).
// Anything missing from it is a conflict.
var transitions = map[Status]map[operation]Status{
	New: {
		opComplete: ReadyToServe,
	},
	ReadyToServe: {
		opServe: Served,
		opClose: Closed,
	},
	Served: {
		opClose: Closed,
	},
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "unknown",
		New:           "new",
		InPreparation: "in-preparation",
		ReadyToServe:  "ready-to-serve",
		Served:        "served",
		Closed:        "closed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:           "new",
		InPreparation: "in-preparation",
		ReadyToServe:  "ready-to-serve",
		Served:        "served",
		Closed:        "closed",
	}
}

// ParseStatus converts a persisted or wire status name into a Status.
func ParseStatus(s string) (Status, error) {
	for st, name := range getValidStatusStrings() {
		if name == s {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and any out-of-range value.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsActive reports whether the order still holds its table.
func (s Status) IsActive() bool {
	return s != Closed && s != Unknown
}

// next looks up the target of op from s.
func (s Status) next(op operation) (Status, bool) {
	to, ok := transitions[s][op]
	return to, ok
}
