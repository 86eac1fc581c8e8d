package tablerepo

import (
	"context"
	"errors"

	"restaurant/internal/adapters/out/postgres/dberr"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTableRepository implements ports.TableRepository using GORM.
type GormTableRepository struct {
	db *gorm.DB
}

func NewGormTableRepository(db *gorm.DB) *GormTableRepository {
	return &GormTableRepository{
		db: db,
	}
}

func (r *GormTableRepository) Add(ctx context.Context, aggregate *table.Table) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return dberr.Translate("table", aggregate.Name(), err)
	}
	return nil
}

// Update persists the occupancy. The name is immutable.
func (r *GormTableRepository) Update(ctx context.Context, aggregate *table.Table) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&TableDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Update("occupancy", aggregate.Occupancy().String())
	if result.Error != nil {
		return dberr.Translate("table", aggregate.ID().String(), result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("table", aggregate.ID().String())
	}
	return nil
}

func (r *GormTableRepository) Get(ctx context.Context, id kernel.UUID) (*table.Table, error) {
	return r.get(ctx, r.db, id)
}

// GetForUpdate takes a row lock (SELECT ... FOR UPDATE). SQLite has no row
// locks and ignores the clause; its single writer serialises transactions instead.
func (r *GormTableRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*table.Table, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormTableRepository) GetByName(ctx context.Context, name string) (*table.Table, error) {
	var dto TableDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("table", name)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormTableRepository) get(ctx context.Context, db *gorm.DB, id kernel.UUID) (*table.Table, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TableDTO
	if err := db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("table", id.String())
		}
		return nil, dberr.Translate("table", id.String(), err)
	}

	return toDomain(dto)
}
