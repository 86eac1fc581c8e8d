package postgres

import (
	"restaurant/internal/adapters/out/postgres/menurepo"
	"restaurant/internal/adapters/out/postgres/orderrepo"
	"restaurant/internal/adapters/out/postgres/staffrepo"
	"restaurant/internal/adapters/out/postgres/tablerepo"

	"gorm.io/gorm"
)

// Migrate creates or updates every table of the store.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&tablerepo.TableDTO{},
		&menurepo.MenuItemDTO{},
		&staffrepo.StaffDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	)
}
