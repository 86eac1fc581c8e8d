package order

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Destination is the preparation station responsible for an item.
// It is fixed when the item is created.
type Destination int

const (
	UnknownDestination Destination = iota
	Kitchen
	Bar
)

func getDestinationStrings() map[Destination]string {
	return map[Destination]string{
		UnknownDestination: "unknown",
		Kitchen:            "kitchen",
		Bar:                "bar",
	}
}

func ParseDestination(s string) (Destination, error) {
	switch s {
	case "kitchen":
		return Kitchen, nil
	case "bar":
		return Bar, nil
	}
	return UnknownDestination, errs.NewValueIsInvalidErrorWithCause("destination", fmt.Errorf("%q is not a known destination", s))
}

func (d Destination) Validate() error {
	if d != Kitchen && d != Bar {
		return errs.NewValueIsInvalidErrorWithCause("destination", fmt.Errorf("%d is not a valid destination", d))
	}
	return nil
}

func (d Destination) String() string {
	if str, ok := getDestinationStrings()[d]; ok {
		return str
	}
	return "unknown"
}
