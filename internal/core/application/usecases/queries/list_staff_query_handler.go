package queries

import (
	"context"

	"restaurant/internal/core/domain/model/staff"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListStaffQueryHandler struct {
	db *gorm.DB
}

func NewListStaffQueryHandler(db *gorm.DB) ListStaffQueryHandler {
	return ListStaffQueryHandler{db: db}
}

func (h ListStaffQueryHandler) Handle(ctx context.Context, query ListStaffQuery) ([]StaffView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	members := make([]StaffView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`SELECT id, name, role FROM staff ORDER BY name`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			view StaffView
			id   uuid.UUID
			role string
		)
		if err = rows.Scan(&id, &view.Name, &role); err != nil {
			return nil, err
		}
		if view.ID, err = toKernelID(id); err != nil {
			return nil, err
		}
		if view.Role, err = staff.ParseRole(role); err != nil {
			return nil, err
		}
		members = append(members, view)
	}

	return members, rows.Err()
}
