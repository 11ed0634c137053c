package approval

import (
	"fmt"

	"foodordering/internal/core/domain/model/kernel"
	"foodordering/internal/pkg/errs"
)

// Product is a line of the order as seen by the restaurant: the ordered
// quantity plus the catalog name, price and availability once confirmed.
type Product struct {
	id        kernel.ProductID
	name      string
	price     kernel.Money
	quantity  int
	available bool
}

// NewProduct builds an ordered product before catalog confirmation.
func NewProduct(id kernel.ProductID, quantity int) (*Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	return &Product{id: id, quantity: quantity, price: kernel.ZeroMoney()}, nil
}

// NewCatalogProduct builds a catalog entry as returned by the restaurant repository.
func NewCatalogProduct(id kernel.ProductID, name string, price kernel.Money, available bool) (*Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return &Product{id: id, name: name, price: price, available: available}, nil
}

func (p *Product) ID() kernel.ProductID { return p.id }
func (p *Product) Name() string { return p.name }
func (p *Product) Price() kernel.Money { return p.price }
func (p *Product) Quantity() int { return p.quantity }
func (p *Product) IsAvailable() bool { return p.available }

// UpdateWithConfirmedNamePriceAndAvailability records the catalog data.
func (p *Product) UpdateWithConfirmedNamePriceAndAvailability(name string, price kernel.Money, available bool) {
	p.name = name
	p.price = price
	p.available = available
}
