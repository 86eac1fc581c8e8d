package queries

import (
	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

func toKernelID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}
