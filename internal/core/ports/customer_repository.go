package ports

import (
	"context"

	"foodordering/internal/core/domain/model/customer"
	"foodordering/internal/core/domain/model/kernel"
)

// CustomerRepository looks up customers referenced by orders.
type CustomerRepository interface {
	// FindCustomer returns errs.ObjectNotFoundError when the customer does not exist.
	FindCustomer(ctx context.Context, id kernel.CustomerID) (*customer.Customer, error)
}
