package order

import (
	"errors"

	"foodordering/internal/core/domain/model/kernel"
	"foodordering/internal/pkg/errs"
	"foodordering/internal/pkg/guard"
)

var ErrStreetAddressIsNotConstructed = errors.New("StreetAddress must be created via NewStreetAddress constructor")

// StreetAddress is the delivery address of an order. It is a value object
// with its own identifier so it can be stored in a separate table.
type StreetAddress struct { //nolint:recvcheck //using for validation
	id         kernel.UUID
	street     string
	postalCode string
	city       string

	guard guard.ConstructorGuard
}

// NewStreetAddress validates that the id is set and that street, postal code
// and city are not empty.
func NewStreetAddress(id kernel.UUID, street, postalCode, city string) (StreetAddress, error) {
	if err := errors.Join(
		id.Validate(),
		requireText("street", street),
		requireText("postalCode", postalCode),
		requireText("city", city),
	); err != nil {
		return StreetAddress{}, err
	}

	return StreetAddress{
		id:         id,
		street:     street,
		postalCode: postalCode,
		city:       city,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (a StreetAddress) Validate() error {
	return a.guard.Validate(ErrStreetAddressIsNotConstructed)
}

func (a StreetAddress) ID() kernel.UUID { return a.id }
func (a StreetAddress) Street() string { return a.street }
func (a StreetAddress) PostalCode() string { return a.postalCode }
func (a StreetAddress) City() string { return a.city }

// IsEqual compares the address fields, ignoring the generated id.
func (a StreetAddress) IsEqual(other StreetAddress) bool {
	return a.street == other.street && a.postalCode == other.postalCode && a.city == other.city
}

func requireText(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
