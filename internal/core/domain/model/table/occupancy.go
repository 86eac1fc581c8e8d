package table

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Occupancy is the seating state of a table.
//
//	Free ──(order created)──> Occupied ──(order closed)──> Free
//
// PendingPayment is a recognised state that no current operation assigns.
type Occupancy int

const (
	UnknownOccupancy Occupancy = iota
	Free
	Occupied
	PendingPayment
)

func getOccupancyStrings() map[Occupancy]string {
	return map[Occupancy]string{
		UnknownOccupancy: "unknown",
		Free:             "free",
		Occupied:         "occupied",
		PendingPayment:   "pending-payment",
	}
}

func ParseOccupancy(s string) (Occupancy, error) {
	for o, name := range getOccupancyStrings() {
		if o != UnknownOccupancy && name == s {
			return o, nil
		}
	}
	return UnknownOccupancy, errs.NewValueIsInvalidErrorWithCause("occupancy", fmt.Errorf("%q is not a known occupancy", s))
}

func (o Occupancy) Validate() error {
	if o < Free || o > PendingPayment {
		return errs.NewValueIsInvalidErrorWithCause("occupancy", fmt.Errorf("%d is not a valid occupancy", o))
	}
	return nil
}

func (o Occupancy) String() string {
	if s, ok := getOccupancyStrings()[o]; ok {
		return s
	}
	return "unknown"
}
