package commands

import (
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
)

// validateID names the offending identifier in the returned error.
func validateID(name string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
