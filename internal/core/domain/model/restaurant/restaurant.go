// Package restaurant holds the restaurant view of the ordering context: the
// catalog products an order may reference and whether the restaurant accepts
// orders.
package restaurant

import (
	"errors"
	"slices"

	"foodordering/internal/core/domain/model/kernel"
	"foodordering/internal/core/domain/model/order"
	"foodordering/internal/pkg/errs"
)

var (
	ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant or NewRestaurantQuery constructor")

	// ErrRestaurantNotFound is the kind of DomainError returned when an order
	// references a restaurant that does not exist.
	ErrRestaurantNotFound = errors.New("restaurant not found")

	// ErrRestaurantNotActive is the kind of DomainError returned when the
	// restaurant does not accept orders.
	ErrRestaurantNotActive = errors.New("restaurant not active")
)

// Restaurant is used in two shapes. A query built by NewRestaurantQuery carries
// the restaurant id and the product ids an order refers to; it is handed to the
// restaurant repository. The result built by NewRestaurant carries the catalog
// name and price of those products and the active flag.
type Restaurant struct {
	id       kernel.RestaurantID
	products []*order.Product
	active   bool

	isConstructed bool
}

// NewRestaurant builds a restaurant with catalog products.
func NewRestaurant(id kernel.RestaurantID, products []*order.Product, active bool) (*Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	for _, p := range products {
		if p == nil {
			return nil, errs.NewValueIsRequiredError("product")
		}
	}
	return &Restaurant{
		id:            id,
		products:      slices.Clone(products),
		active:        active,
		isConstructed: true,
	}, nil
}

// NewRestaurantQuery builds a lookup object with product references only.
func NewRestaurantQuery(id kernel.RestaurantID, productIDs []kernel.ProductID) (*Restaurant, error) {
	products := make([]*order.Product, 0, len(productIDs))
	for _, productID := range productIDs {
		p, err := order.NewProductReference(productID)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return NewRestaurant(id, products, false)
}

func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

func (r *Restaurant) ID() kernel.RestaurantID {
	return r.id
}

func (r *Restaurant) IsActive() bool {
	return r.active
}

// Products returns a copy of the product slice.
func (r *Restaurant) Products() []*order.Product {
	return slices.Clone(r.products)
}

// ProductIDs returns the ids of the products in order.
func (r *Restaurant) ProductIDs() []kernel.ProductID {
	ids := make([]kernel.ProductID, 0, len(r.products))
	for _, p := range r.products {
		ids = append(ids, p.ID())
	}
	return ids
}

// FindProduct returns the catalog product with the given id.
func (r *Restaurant) FindProduct(id kernel.ProductID) (*order.Product, bool) {
	for _, p := range r.products {
		if p.ID() == id {
			return p, true
		}
	}
	return nil, false
}
