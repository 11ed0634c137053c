// Package approvalrepo stores restaurant decisions in the order_approvals table.
package approvalrepo

import (
	"context"

	"foodordering/internal/adapters/out/postgres/pgerr"
	"foodordering/internal/core/domain/model/approval"
	"foodordering/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderApprovalDTO represents a row of order_approvals.
type OrderApprovalDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null"`
	OrderID      uuid.UUID `gorm:"type:uuid;not null"`
	Status       string    `gorm:"type:varchar(20);not null"`
}

func (OrderApprovalDTO) TableName() string {
	return "order_approvals"
}

// GormOrderApprovalRepository implements ports.OrderApprovalRepository using GORM.
type GormOrderApprovalRepository struct {
	db *gorm.DB
}

func NewGormOrderApprovalRepository(db *gorm.DB) *GormOrderApprovalRepository {
	return &GormOrderApprovalRepository{db: db}
}

func (r *GormOrderApprovalRepository) Save(ctx context.Context, a *approval.OrderApproval) error {
	dto := OrderApprovalDTO{
		ID:           a.ID().Bytes(),
		RestaurantID: a.RestaurantID().Bytes(),
		OrderID:      a.OrderID().Bytes(),
		Status:       a.Status().String(),
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return errs.NewConflictErrorWithCause("order approval", err)
		}
		return err
	}
	return nil
}
