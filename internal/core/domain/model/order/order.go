package order

import (
	"errors"
	"fmt"
	"slices"

	"foodordering/internal/core/domain/model/kernel"
	"foodordering/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderItemPriceInvalid is the kind of DomainError raised when an item price
	// does not match the restaurant catalog or its own subtotal.
	ErrOrderItemPriceInvalid = errors.New("order item price is invalid")

	// ErrOrderTotalPriceMismatch is the kind of DomainError raised when the declared
	// order price differs from the sum of the item subtotals.
	ErrOrderTotalPriceMismatch = errors.New("order total price mismatch")

	// ErrOrderIDAlreadyAssigned is returned by AssignID when the order already
	// carries a different persisted id.
	ErrOrderIDAlreadyAssigned = errors.New("order id is already assigned")
)

// Order is the aggregate root of the ordering context. It owns its items and
// delivery address and drives the order lifecycle from validation to approval
// or cancellation.
//
// Order follows these invariants:
//   - The tracking id is set at construction and never changes
//   - The persisted id is unset until AssignID is called, then never changes
//   - Items are bound to the order id at the same time the id is assigned
//   - Status transitions follow the rules of Status
//   - Can only be created through NewOrder or RestoreOrder
//
// Price consistency (item prices against the catalog, total against the
// items) is a business rule checked by the order domain service before
// Initialize is called.
type Order struct {
	// id is the persisted identifier, zero until AssignID
	id kernel.OrderID

	// trackingID is the identifier handed out to clients
	trackingID kernel.TrackingID

	customerID   kernel.CustomerID
	restaurantID kernel.RestaurantID

	deliveryAddress StreetAddress

	// price is the total declared by the client
	price kernel.Money

	items []*OrderItem

	status Status

	// failureMessages explains why an order was cancelled
	failureMessages []string

	isConstructed bool
}

// NewOrder creates an order in the Unknown status with no persisted id.
//
// Parameters:
//   - trackingID: client facing identifier (must be valid)
//   - customerID, restaurantID: references to other aggregates (must be valid)
//   - deliveryAddress: built with NewStreetAddress
//   - price: total declared by the client
//   - items: at least one item built with NewOrderItem
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewTrackingID(), customerID, restaurantID, address, price, items)
//	if err != nil {
//	    // Handle validation error
//	}
//
// Only shape is validated here. Call the order domain service to validate the
// prices and initiate the order.
func NewOrder(
	trackingID kernel.TrackingID,
	customerID kernel.CustomerID,
	restaurantID kernel.RestaurantID,
	deliveryAddress StreetAddress,
	price kernel.Money,
	items []*OrderItem,
) (*Order, error) {
	order := &Order{
		price:         price,
		status:        Unknown,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setTrackingID(trackingID),
		order.setCustomerID(customerID),
		order.setRestaurantID(restaurantID),
		order.setDeliveryAddress(deliveryAddress),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder rebuilds an order read from persistence. The id is assigned and
// bound into the items, and the stored status and failure messages are kept.
func RestoreOrder(
	id kernel.OrderID,
	trackingID kernel.TrackingID,
	customerID kernel.CustomerID,
	restaurantID kernel.RestaurantID,
	deliveryAddress StreetAddress,
	price kernel.Money,
	items []*OrderItem,
	status Status,
	failureMessages []string,
) (*Order, error) {
	order, err := NewOrder(trackingID, customerID, restaurantID, deliveryAddress, price, items)
	if err != nil {
		return nil, err
	}
	if err = errors.Join(status.Validate(), order.AssignID(id)); err != nil {
		return nil, err
	}
	order.status = status
	order.failureMessages = slices.Clone(failureMessages)
	return order, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their tracking ids, which exist from construction.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.trackingID == other.trackingID
}

// ID returns the persisted id. Check HasID before relying on it.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// HasID reports whether the order has been assigned a persisted id.
func (o *Order) HasID() bool {
	return !o.id.IsZero()
}

func (o *Order) TrackingID() kernel.TrackingID {
	return o.trackingID
}

func (o *Order) CustomerID() kernel.CustomerID {
	return o.customerID
}

func (o *Order) RestaurantID() kernel.RestaurantID {
	return o.restaurantID
}

func (o *Order) DeliveryAddress() StreetAddress {
	return o.deliveryAddress
}

// Price returns the total declared by the client.
func (o *Order) Price() kernel.Money {
	return o.price
}

// Items returns the order items. The slice is a copy, the items are shared.
func (o *Order) Items() []*OrderItem {
	return slices.Clone(o.items)
}

// ItemsTotal returns the sum of the item subtotals.
func (o *Order) ItemsTotal() kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range o.items {
		total = total.Add(item.SubTotal())
	}
	return total
}

func (o *Order) Status() Status {
	return o.status
}

// FailureMessages returns a copy of the recorded failure messages.
func (o *Order) FailureMessages() []string {
	return slices.Clone(o.failureMessages)
}

// AssignID sets the persisted id and binds it into every item.
//
// Assigning the same id twice is a no-op; assigning a different id to an order
// that already has one returns ErrOrderIDAlreadyAssigned.
func (o *Order) AssignID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if o.HasID() {
		if o.id == id {
			return nil
		}
		return fmt.Errorf("%w: %w", errs.NewValueIsInvalidError("order id"), ErrOrderIDAlreadyAssigned)
	}

	o.id = id
	for _, item := range o.items {
		item.bindOrder(id)
	}
	return nil
}

// Initialize moves a validated order to Pending.
func (o *Order) Initialize() error {
	newStatus, err := o.status.Initialize()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Pay moves a Pending order to Paid.
func (o *Order) Pay() error {
	newStatus, err := o.status.Pay()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Approve moves a Paid order to Approved.
func (o *Order) Approve() error {
	newStatus, err := o.status.Approve()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// InitCancel moves a Paid order to Cancelling and records why.
func (o *Order) InitCancel(failureMessages []string) error {
	newStatus, err := o.status.InitCancel()
	if err != nil {
		return err
	}
	o.status = newStatus
	o.addFailureMessages(failureMessages)
	return nil
}

// Cancel moves a Pending or Cancelling order to Cancelled and records why.
func (o *Order) Cancel(failureMessages []string) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = newStatus
	o.addFailureMessages(failureMessages)
	return nil
}

func (o *Order) addFailureMessages(messages []string) {
	for _, m := range messages {
		if m != "" {
			o.failureMessages = append(o.failureMessages, m)
		}
	}
}

func (o *Order) setTrackingID(id kernel.TrackingID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.trackingID = id
	return nil
}

func (o *Order) setCustomerID(id kernel.CustomerID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.RestaurantID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setDeliveryAddress(address StreetAddress) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setItems(items []*OrderItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = slices.Clone(items)
	return nil
}
