// Package customer holds the Customer reference used by the ordering context.
package customer

import (
	"errors"

	"foodordering/internal/core/domain/model/kernel"
)

var (
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

	// ErrCustomerNotFound is the kind of DomainError returned when an order
	// references a customer that does not exist.
	ErrCustomerNotFound = errors.New("customer not found")
)

// Customer is identified by its id only; the ordering context does not own
// any other customer data.
type Customer struct {
	id kernel.CustomerID

	isConstructed bool
}

func NewCustomer(id kernel.CustomerID) (*Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return &Customer{id: id, isConstructed: true}, nil
}

func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

func (c *Customer) ID() kernel.CustomerID {
	return c.id
}
