// Package tablerepo persists dining tables.
package tablerepo

import (
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/table"

	"github.com/google/uuid"
)

type TableDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Occupancy string    `gorm:"type:varchar(32);not null"`
}

func (TableDTO) TableName() string {
	return "tables"
}

func fromDomain(t *table.Table) TableDTO {
	return TableDTO{
		ID:        t.ID().Bytes(),
		Name:      t.Name(),
		Occupancy: t.Occupancy().String(),
	}
}

func toDomain(dto TableDTO) (*table.Table, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	occupancy, err := table.ParseOccupancy(dto.Occupancy)
	if err != nil {
		return nil, err
	}

	return table.RestoreTable(id, dto.Name, occupancy)
}
