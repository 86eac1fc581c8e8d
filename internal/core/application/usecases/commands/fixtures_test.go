package commands_test

import (
	"testing"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/staff"
	"restaurant/internal/core/domain/model/table"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTable(t *testing.T, name string, occupancy table.Occupancy) *table.Table {
	t.Helper()
	tbl, err := table.RestoreTable(kernel.NewUUID(), name, occupancy)
	require.NoError(t, err)
	return tbl
}

func newWaiter(t *testing.T) *staff.Staff {
	t.Helper()
	s, err := staff.NewStaff(kernel.NewUUID(), "Alice", staff.Waiter)
	require.NoError(t, err)
	return s
}

func newMenuItem(t *testing.T, name, price string, category menu.Category, available bool) *menu.MenuItem {
	t.Helper()
	item, err := menu.NewMenuItem(kernel.NewUUID(), name, decimal.RequireFromString(price), category, available)
	require.NoError(t, err)
	return item
}

// newOrder restores an order whose items have the given statuses.
func newOrder(t *testing.T, status order.Status, itemStatuses ...order.ItemStatus) *order.Order {
	t.Helper()
	items := make([]*order.Item, 0, len(itemStatuses))
	for _, s := range itemStatuses {
		item, err := order.RestoreItem(
			kernel.NewUUID(), kernel.NewUUID(), "Burger", 1, decimal.NewFromInt(10), order.Kitchen, s,
		)
		require.NoError(t, err)
		items = append(items, item)
	}

	total := decimal.NewFromInt(int64(10 * len(items)))
	o, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), status, total, time.Now(), 1, items,
	)
	require.NoError(t, err)
	return o
}
