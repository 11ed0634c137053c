// Package idempotencyrepo stores the Idempotency-Key of create order requests.
package idempotencyrepo

import (
	"context"
	"errors"
	"time"

	"foodordering/internal/adapters/out/postgres/pgerr"
	"foodordering/internal/core/domain/model/kernel"
	"foodordering/internal/core/ports"
	"foodordering/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IdempotencyKeyDTO represents a row of order_idempotency_keys.
type IdempotencyKeyDTO struct {
	Key         string    `gorm:"type:varchar(255);primaryKey"`
	TrackingID  uuid.UUID `gorm:"type:uuid;not null"`
	OrderStatus string    `gorm:"type:varchar(20);not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

func (IdempotencyKeyDTO) TableName() string {
	return "order_idempotency_keys"
}

// GormIdempotencyRepository implements ports.IdempotencyRepository using GORM.
type GormIdempotencyRepository struct {
	db *gorm.DB
}

func NewGormIdempotencyRepository(db *gorm.DB) *GormIdempotencyRepository {
	return &GormIdempotencyRepository{db: db}
}

func (r *GormIdempotencyRepository) Find(ctx context.Context, key string) (ports.IdempotencyRecord, error) {
	var dto IdempotencyKeyDTO
	if err := r.db.WithContext(ctx).First(&dto, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.IdempotencyRecord{}, errs.NewObjectNotFoundError("idempotency key", key)
		}
		return ports.IdempotencyRecord{}, err
	}

	trackingID, err := kernel.UUIDFromBytes(dto.TrackingID[:])
	if err != nil {
		return ports.IdempotencyRecord{}, err
	}
	return ports.IdempotencyRecord{
		Key:         dto.Key,
		TrackingID:  kernel.TrackingID{UUID: trackingID},
		OrderStatus: dto.OrderStatus,
		CreatedAt:   dto.CreatedAt,
	}, nil
}

// Save returns errs.ConflictError when another request stored the key first.
func (r *GormIdempotencyRepository) Save(ctx context.Context, record ports.IdempotencyRecord) error {
	if record.Key == "" {
		return errs.NewValueIsRequiredError("idempotency key")
	}
	dto := IdempotencyKeyDTO{
		Key:         record.Key,
		TrackingID:  record.TrackingID.Bytes(),
		OrderStatus: record.OrderStatus,
		CreatedAt:   record.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return errs.NewConflictErrorWithCause("idempotency key", err)
		}
		return err
	}
	return nil
}
