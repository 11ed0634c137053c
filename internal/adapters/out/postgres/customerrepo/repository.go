// Package customerrepo reads customers from the customers table.
package customerrepo

import (
	"context"
	"errors"

	"foodordering/internal/core/domain/model/customer"
	"foodordering/internal/core/domain/model/kernel"
	"foodordering/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerDTO represents a row of the customers table.
type CustomerDTO struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

// GormCustomerRepository implements ports.CustomerRepository using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// FindCustomer returns errs.ObjectNotFoundError for an unknown id.
func (r *GormCustomerRepository) FindCustomer(ctx context.Context, id kernel.CustomerID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", id.String())
		}
		return nil, err
	}

	return customer.NewCustomer(id)
}
