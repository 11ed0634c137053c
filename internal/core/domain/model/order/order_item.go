package order

import (
	"errors"
	"fmt"

	"foodordering/internal/core/domain/model/kernel"
	"foodordering/internal/pkg/errs"
)

var ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem constructor")

// OrderItem is a line of an order: a product, a quantity, the unit price the
// client submitted and the subtotal it declared.
//
// An item is built without a reference to its order. The owning order id is
// bound by Order.AssignID once the order has been persisted.
type OrderItem struct {
	id       kernel.OrderItemID
	orderID  kernel.OrderID
	product  *Product
	quantity int
	price    kernel.Money
	subTotal kernel.Money

	isConstructed bool
}

// NewOrderItem validates the shape of an item: a valid id, a product with a
// valid id and a positive quantity. Prices are checked against the catalog by
// the order domain service, not here.
func NewOrderItem(
	id kernel.OrderItemID,
	product *Product,
	quantity int,
	price kernel.Money,
	subTotal kernel.Money,
) (*OrderItem, error) {
	item := &OrderItem{
		price:         price,
		subTotal:      subTotal,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setProduct(product),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreOrderItem rebuilds a persisted item, including its order id.
func RestoreOrderItem(
	id kernel.OrderItemID,
	orderID kernel.OrderID,
	product *Product,
	quantity int,
	price kernel.Money,
	subTotal kernel.Money,
) (*OrderItem, error) {
	item, err := NewOrderItem(id, product, quantity, price, subTotal)
	if err != nil {
		return nil, err
	}
	if err = orderID.Validate(); err != nil {
		return nil, err
	}
	item.orderID = orderID
	return item, nil
}

func (i *OrderItem) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrOrderItemIsNotConstructed
	}
	return nil
}

func (i *OrderItem) ID() kernel.OrderItemID { return i.id }

// OrderID returns the owning order id. It is the zero value until the order
// is assigned an id.
func (i *OrderItem) OrderID() kernel.OrderID { return i.orderID }
func (i *OrderItem) Product() *Product { return i.product }
func (i *OrderItem) Quantity() int { return i.quantity }
func (i *OrderItem) Price() kernel.Money { return i.price }
func (i *OrderItem) SubTotal() kernel.Money { return i.subTotal }

// IsPriceValid reports whether the submitted price is positive, matches the
// confirmed product price and multiplies with the quantity into the subtotal.
// A product that was never confirmed against the catalog has a zero price and
// therefore never matches.
func (i *OrderItem) IsPriceValid() bool {
	return i.price.IsGreaterThanZero() &&
		i.price.IsEqual(i.product.Price()) &&
		i.price.Multiply(i.quantity).IsEqual(i.subTotal)
}

func (i *OrderItem) bindOrder(orderID kernel.OrderID) {
	i.orderID = orderID
}

func (i *OrderItem) setID(id kernel.OrderItemID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *OrderItem) setProduct(product *Product) error {
	if product == nil {
		return errs.NewValueIsRequiredError("product")
	}
	if err := product.ID().Validate(); err != nil {
		return err
	}
	i.product = product
	return nil
}

func (i *OrderItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
