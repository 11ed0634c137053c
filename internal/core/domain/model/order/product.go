package order

import (
	"foodordering/internal/core/domain/model/kernel"
)

// Product is the product an order item refers to. An order item built from a
// client command only knows the product id; the catalog name and price are
// recorded during validation with UpdateWithConfirmedNameAndPrice.
type Product struct {
	id    kernel.ProductID
	name  string
	price kernel.Money
}

// NewProduct creates a product with catalog data, as returned by the restaurant lookup.
func NewProduct(id kernel.ProductID, name string, price kernel.Money) (*Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return &Product{id: id, name: name, price: price}, nil
}

// NewProductReference creates a product that only carries its id.
func NewProductReference(id kernel.ProductID) (*Product, error) {
	return NewProduct(id, "", kernel.ZeroMoney())
}

func (p *Product) ID() kernel.ProductID { return p.id }
func (p *Product) Name() string { return p.name }
func (p *Product) Price() kernel.Money { return p.price }

// UpdateWithConfirmedNameAndPrice records the catalog name and price.
func (p *Product) UpdateWithConfirmedNameAndPrice(name string, price kernel.Money) {
	p.name = name
	p.price = price
}
