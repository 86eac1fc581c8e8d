// Package staffrepo persists staff members.
package staffrepo

import (
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/staff"

	"github.com/google/uuid"
)

type StaffDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Role string    `gorm:"type:varchar(32);not null"`
}

func (StaffDTO) TableName() string {
	return "staff"
}

func fromDomain(s *staff.Staff) StaffDTO {
	return StaffDTO{
		ID:   s.ID().Bytes(),
		Name: s.Name(),
		Role: s.Role().String(),
	}
}

func toDomain(dto StaffDTO) (*staff.Staff, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := staff.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	return staff.NewStaff(id, dto.Name, role)
}
