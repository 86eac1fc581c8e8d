package orderrepo

import (
	"context"
	"errors"

	"restaurant/internal/adapters/out/postgres/dberr"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{
		db: db,
	}
}

// Add inserts the order row and its items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return dberr.Translate("order", aggregate.ID().String(), err)
	}
	return nil
}

// Update writes order and item statuses guarded by the version column.
//
// The compare-and-set on version makes a lost update impossible even without
// the row lock taken by GetForUpdate: a writer holding a stale copy updates
// zero rows and gets errs.ConcurrentUpdateError.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	id := aggregate.ID()
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).
		Where("id = ? AND version = ?", id.Bytes(), aggregate.Version()).
		Updates(map[string]any{
			"status":  aggregate.Status().String(),
			"version": gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return dberr.Translate("order", id.String(), result.Error)
	}

	if result.RowsAffected == 0 {
		if _, err := r.Get(ctx, id); err != nil {
			return err
		}
		return errs.NewConcurrentUpdateError("order", id.String())
	}

	for _, item := range aggregate.Items() {
		err := db.Model(&OrderItemDTO{}).
			Where("id = ? AND order_id = ?", item.ID().Bytes(), id.Bytes()).
			Update("status", item.Status().String()).Error
		if err != nil {
			return dberr.Translate("order", id.String(), err)
		}
	}

	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.load(ctx, r.db, id)
}

// GetForUpdate locks the order row (SELECT ... FOR UPDATE) for the rest of
// the transaction. Items are read after the lock is held, so they reflect
// every sibling update committed before it.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.load(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormOrderRepository) GetOrderIDByItemID(ctx context.Context, itemID kernel.UUID) (kernel.UUID, error) {
	if err := itemID.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	var orderIDs []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&OrderItemDTO{}).
		Where("id = ?", itemID.Bytes()).
		Limit(1).
		Pluck("order_id", &orderIDs).Error
	if err != nil {
		return kernel.UUID{}, err
	}
	if len(orderIDs) == 0 {
		return kernel.UUID{}, errs.NewObjectNotFoundError("order item", itemID.String())
	}

	return kernel.UUIDFromBytes(orderIDs[0][:])
}

func (r *GormOrderRepository) load(ctx context.Context, db *gorm.DB, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, dberr.Translate("order", id.String(), err)
	}

	if err := r.db.WithContext(ctx).
		Where("order_id = ?", dto.ID).
		Order("position").
		Find(&dto.Items).Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}
