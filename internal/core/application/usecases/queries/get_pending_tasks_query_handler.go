package queries

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingTasksQueryHandler lists pending and in-preparation lines routed to
// a station, oldest order first.
type GetPendingTasksQueryHandler struct {
	db *gorm.DB
}

func NewGetPendingTasksQueryHandler(db *gorm.DB) GetPendingTasksQueryHandler {
	return GetPendingTasksQueryHandler{db: db}
}

// Handle returns an empty slice when the station has nothing to do. Lines of
// the same order keep their submission order.
func (h GetPendingTasksQueryHandler) Handle(ctx context.Context, query GetPendingTasksQuery) ([]PendingTask, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tasks := make([]PendingTask, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			oi.id,
			oi.order_id,
			oi.menu_item_name,
			oi.quantity,
			oi.status,
			t.name,
			o.created_at
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		JOIN tables t ON t.id = o.table_id
		WHERE oi.destination = ?
		  AND oi.status IN (?, ?)
		ORDER BY o.created_at, o.id, oi.position
	`, query.Destination().String(), order.Pending.String(), order.Preparing.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			task            PendingTask
			itemID, orderID uuid.UUID
			status          string
			orderedAt       time.Time
		)

		if err = rows.Scan(
			&itemID,
			&orderID,
			&task.MenuItemName,
			&task.Quantity,
			&status,
			&task.TableName,
			&orderedAt,
		); err != nil {
			return nil, err
		}

		if task.ItemID, err = toKernelID(itemID); err != nil {
			return nil, err
		}
		if task.OrderID, err = toKernelID(orderID); err != nil {
			return nil, err
		}
		if task.Status, err = order.ParseItemStatus(status); err != nil {
			return nil, err
		}
		task.OrderedAt = orderedAt.UTC()

		tasks = append(tasks, task)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
