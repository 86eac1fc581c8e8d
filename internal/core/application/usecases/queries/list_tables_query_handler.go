package queries

import (
	"context"

	"restaurant/internal/core/domain/model/table"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListTablesQueryHandler struct {
	db *gorm.DB
}

func NewListTablesQueryHandler(db *gorm.DB) ListTablesQueryHandler {
	return ListTablesQueryHandler{db: db}
}

// Handle returns every table ordered by name.
func (h ListTablesQueryHandler) Handle(ctx context.Context, query ListTablesQuery) ([]TableView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tables := make([]TableView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, occupancy
		FROM tables
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			view      TableView
			id        uuid.UUID
			occupancy string
		)
		if err = rows.Scan(&id, &view.Name, &occupancy); err != nil {
			return nil, err
		}
		if view.ID, err = toKernelID(id); err != nil {
			return nil, err
		}
		if view.Occupancy, err = table.ParseOccupancy(occupancy); err != nil {
			return nil, err
		}
		tables = append(tables, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tables, nil
}
