package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/table"
)

// TableRepository defines the persistence contract for tables.
type TableRepository interface {
	Add(ctx context.Context, t *table.Table) error
	Update(ctx context.Context, t *table.Table) error
	Get(ctx context.Context, id kernel.UUID) (*table.Table, error)

	// GetForUpdate locks the table row until the transaction ends, so two
	// orders can never claim the same free table.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*table.Table, error)

	GetByName(ctx context.Context, name string) (*table.Table, error)
}
