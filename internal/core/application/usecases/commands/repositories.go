// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"restaurant/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks for the narrowest one covering the aggregates it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	TableRepoFactory interface {
		TableRepository() ports.TableRepository
	}

	MenuRepoFactory interface {
		MenuItemRepository() ports.MenuItemRepository
	}

	StaffRepoFactory interface {
		StaffRepository() ports.StaffRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	TableUoW interface {
		TxManager
		TableRepoFactory
	}

	TableUoWFactory interface {
		Create() TableUoW
	}

	MenuUoW interface {
		TxManager
		MenuRepoFactory
	}

	MenuUoWFactory interface {
		Create() MenuUoW
	}

	StaffUoW interface {
		TxManager
		StaffRepoFactory
	}

	StaffUoWFactory interface {
		Create() StaffUoW
	}

	// UoW spans every aggregate. Used by commands that coordinate an order
	// with its table, its staff member and the menu.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   tbl, err := uow.TableRepository().GetForUpdate(ctx, tableID)
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		TableRepoFactory
		MenuRepoFactory
		StaffRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
