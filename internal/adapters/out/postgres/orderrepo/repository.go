package orderrepo

import (
	"context"
	"errors"

	"foodordering/internal/adapters/out/postgres/pgerr"
	"foodordering/internal/core/domain/model/kernel"
	"foodordering/internal/core/domain/model/order"
	"foodordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Save inserts the order, its items and its address. An order without an id
// is assigned a new one first. A duplicate tracking id returns errs.ConflictError.
func (r *GormOrderRepository) Save(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	if !aggregate.HasID() {
		if err := aggregate.AssignID(kernel.NewOrderID()); err != nil {
			return nil, err
		}
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return nil, errs.NewConflictErrorWithCause("order", err)
		}
		return nil, err
	}

	return aggregate, nil
}

// FindByTrackingID retrieves an order with its items and address.
func (r *GormOrderRepository) FindByTrackingID(
	ctx context.Context,
	trackingID kernel.TrackingID,
) (*order.Order, error) {
	if err := trackingID.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Address").
		First(&dto, "tracking_id = ?", trackingID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", trackingID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
