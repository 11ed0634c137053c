// Package dto holds the input and output shapes of the application layer:
// commands built by inbound adapters, responses handed back to them and the
// message payloads exchanged over the broker.
package dto

import (
	"errors"
	"fmt"

	"foodordering/internal/core/domain/model/kernel"
	"foodordering/internal/pkg/errs"
	"foodordering/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemsAreRequired = errors.New("at least one order item is required")
)

// OrderAddress is the delivery address as submitted by the client.
type OrderAddress struct {
	Street     string
	PostalCode string
	City       string
}

// OrderItem is an order line as submitted by the client.
type OrderItem struct {
	ProductID kernel.ProductID
	Quantity  int
	Price     kernel.Money
	SubTotal  kernel.Money
}

// CreateOrderCommand represents a request to place a new order.
//
// Example:
//
//	cmd, err := dto.NewCreateOrderCommand(customerID, restaurantID, price, items, address, "")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	resp, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID     kernel.CustomerID
	restaurantID   kernel.RestaurantID
	price          kernel.Money
	items          []OrderItem
	address        OrderAddress
	idempotencyKey string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates ids, items and address fields. Prices are
// only checked for shape here; consistency with the catalog is a business rule.
// idempotencyKey is optional.
func NewCreateOrderCommand(
	customerID kernel.CustomerID,
	restaurantID kernel.RestaurantID,
	price kernel.Money,
	items []OrderItem,
	address OrderAddress,
	idempotencyKey string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		price:          price,
		idempotencyKey: idempotencyKey,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setRestaurantID(restaurantID),
		cmd.setItems(items),
		cmd.setAddress(address),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) CustomerID() kernel.CustomerID {
	return c.customerID
}

func (c CreateOrderCommand) RestaurantID() kernel.RestaurantID {
	return c.restaurantID
}

// Price returns the total declared by the client.
func (c CreateOrderCommand) Price() kernel.Money {
	return c.price
}

// Items returns a copy of the order lines.
func (c CreateOrderCommand) Items() []OrderItem {
	return append([]OrderItem(nil), c.items...)
}

func (c CreateOrderCommand) Address() OrderAddress {
	return c.address
}

// IdempotencyKey is empty when the client did not send one.
func (c CreateOrderCommand) IdempotencyKey() string {
	return c.idempotencyKey
}

func (c *CreateOrderCommand) setCustomerID(id kernel.CustomerID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	c.customerID = id
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(id kernel.RestaurantID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurantId", err)
	}
	c.restaurantID = id
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItem) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for i, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause(fmt.Sprintf("items[%d].productId", i), err)
		}
		if item.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d].quantity", i),
				fmt.Errorf("%d is not greater than 0", item.Quantity))
		}
	}
	c.items = append([]OrderItem(nil), items...)
	return nil
}

func (c *CreateOrderCommand) setAddress(address OrderAddress) error {
	var missing []error
	if address.Street == "" {
		missing = append(missing, errs.NewValueIsRequiredError("address.street"))
	}
	if address.PostalCode == "" {
		missing = append(missing, errs.NewValueIsRequiredError("address.postalCode"))
	}
	if address.City == "" {
		missing = append(missing, errs.NewValueIsRequiredError("address.city"))
	}
	if err := errors.Join(missing...); err != nil {
		return err
	}
	c.address = address
	return nil
}
