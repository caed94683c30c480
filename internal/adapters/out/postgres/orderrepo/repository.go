package orderrepo

import (
	"context"
	"errors"
	"time"

	"roadside/internal/core/domain/model/kernel"
	"roadside/internal/core/domain/model/order"
	"roadside/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository binds the repository to db, which is a transaction
// when created by the unit of work.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order together with its extra costs.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return err
	}

	return r.saveExtraCosts(ctx, dto.ExtraCosts)
}

// Update writes the mutable state of the order when the stored version still
// matches the one the aggregate was loaded with, and bumps it.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(dto.updatableColumns(dto.Version + 1))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConcurrencyConflictError("order", aggregate.ID().String(), aggregate.Version())
	}

	return r.saveExtraCosts(ctx, dto.ExtraCosts)
}

// saveExtraCosts inserts new ledger entries; existing ones only get their
// active flag refreshed.
func (r *GormOrderRepository) saveExtraCosts(ctx context.Context, costs []ExtraCostDTO) error {
	if len(costs) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"is_active"}),
		}).
		Create(&costs).Error
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("ExtraCosts", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByExtraCostID retrieves the order that owns the extra cost.
func (r *GormOrderRepository) GetByExtraCostID(ctx context.Context, extraCostID kernel.UUID) (*order.Order, error) {
	if err := extraCostID.Validate(); err != nil {
		return nil, err
	}

	var cost ExtraCostDTO
	err := r.db.WithContext(ctx).Select("order_id").First(&cost, "id = ?", extraCostID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("extraCostId", extraCostID.String())
		}
		return nil, err
	}

	orderID, err := kernel.UUIDFromGoogle(cost.OrderID)
	if err != nil {
		return nil, err
	}

	return r.Get(ctx, orderID)
}

// ListStaleAcceptances retrieves orders waiting on a driver since before the
// given instant, oldest first.
func (r *GormOrderRepository) ListStaleAcceptances(
	ctx context.Context, before time.Time, limit int,
) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("ExtraCosts", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Where("status = ? AND status_changed_at < ?", order.AwaitingDriverAcceptance.String(), before.UTC()).
		Order("status_changed_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
