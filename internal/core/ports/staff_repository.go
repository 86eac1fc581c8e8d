package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/staff"
)

type StaffRepository interface {
	Add(ctx context.Context, s *staff.Staff) error
	Get(ctx context.Context, id kernel.UUID) (*staff.Staff, error)
	GetByName(ctx context.Context, name string) (*staff.Staff, error)
}
