package services

import (
	"time"

	"foodordering/internal/core/domain/model/order"
	"foodordering/internal/core/domain/model/restaurant"
	"foodordering/internal/pkg/errs"
)

// OrderDomainService is a domain service that validates a new order against
// the restaurant it targets and drives the later lifecycle steps.
//
// Key responsibilities:
//   - Rejecting orders for inactive restaurants
//   - Confirming every item against the restaurant catalog
//   - Checking item prices and the declared total
//   - Moving the order through its lifecycle and returning events
//
// Business rules:
//   - Validation short-circuits on the first failure
//   - The restaurant check runs first, then items in order, then the total
//   - The submitted item price is never overwritten by the catalog price
//
// Example usage:
//
//	svc := services.NewOrderDomainService()
//	event, err := svc.ValidateAndInitiateOrder(o, r)
//	if errors.Is(err, order.ErrOrderTotalPriceMismatch) {
//	    // err.Error() is safe to show to the client
//	}
type OrderDomainService struct {
	now func() time.Time
}

// NewOrderDomainService creates a service stamping events with the current UTC time.
func NewOrderDomainService() OrderDomainService {
	return OrderDomainService{now: func() time.Time { return time.Now().UTC() }}
}

// ValidateAndInitiateOrder validates o against r and moves it to Pending.
//
// Parameters:
//   - o: an order built by NewOrder, still in the Unknown status
//   - r: the restaurant returned by the restaurant repository
//
// Returns:
//   - order.OrderCreatedEvent with the Pending order
//   - error: a DomainError of kind restaurant.ErrRestaurantNotActive,
//     order.ErrOrderItemPriceInvalid or order.ErrOrderTotalPriceMismatch, or a
//     validation error for objects not built by their constructors
func (s OrderDomainService) ValidateAndInitiateOrder(
	o *order.Order,
	r *restaurant.Restaurant,
) (order.OrderCreatedEvent, error) {
	if err := o.Validate(); err != nil {
		return order.OrderCreatedEvent{}, err
	}
	if err := r.Validate(); err != nil {
		return order.OrderCreatedEvent{}, err
	}

	if err := validateRestaurant(r); err != nil {
		return order.OrderCreatedEvent{}, err
	}

	confirmProducts(o, r)

	if err := validateItemsPrice(o); err != nil {
		return order.OrderCreatedEvent{}, err
	}
	if err := validateTotalPrice(o); err != nil {
		return order.OrderCreatedEvent{}, err
	}

	if err := o.Initialize(); err != nil {
		return order.OrderCreatedEvent{}, err
	}

	return order.OrderCreatedEvent{Order: o, CreatedAt: s.now()}, nil
}

// PayOrder marks a Pending order as Paid.
func (s OrderDomainService) PayOrder(o *order.Order) (order.OrderPaidEvent, error) {
	if err := o.Pay(); err != nil {
		return order.OrderPaidEvent{}, err
	}
	return order.OrderPaidEvent{Order: o, CreatedAt: s.now()}, nil
}

// ApproveOrder marks a Paid order as Approved. No event is produced.
func (s OrderDomainService) ApproveOrder(o *order.Order) error {
	return o.Approve()
}

// CancelOrderPayment starts the cancellation of a Paid order rejected by the
// restaurant. The returned event triggers the payment rollback.
func (s OrderDomainService) CancelOrderPayment(
	o *order.Order,
	failureMessages []string,
) (order.OrderCancelledEvent, error) {
	if err := o.InitCancel(failureMessages); err != nil {
		return order.OrderCancelledEvent{}, err
	}
	return order.OrderCancelledEvent{Order: o, CreatedAt: s.now()}, nil
}

// CancelOrder finishes the cancellation of a Pending or Cancelling order.
func (s OrderDomainService) CancelOrder(o *order.Order, failureMessages []string) error {
	return o.Cancel(failureMessages)
}

func validateRestaurant(r *restaurant.Restaurant) error {
	if !r.IsActive() {
		return errs.NewDomainErrorf(restaurant.ErrRestaurantNotActive,
			"Restaurant with id %s is currently not active!", r.ID())
	}
	return nil
}

// confirmProducts records the catalog name and price on every item product.
// Items whose product is not in the catalog are left unconfirmed.
func confirmProducts(o *order.Order, r *restaurant.Restaurant) {
	for _, item := range o.Items() {
		if catalog, ok := r.FindProduct(item.Product().ID()); ok {
			item.Product().UpdateWithConfirmedNameAndPrice(catalog.Name(), catalog.Price())
		}
	}
}

func validateItemsPrice(o *order.Order) error {
	for _, item := range o.Items() {
		if !item.IsPriceValid() {
			return errs.NewDomainErrorf(order.ErrOrderItemPriceInvalid,
				"Order item price: %s is not valid for product %s", item.Price(), item.Product().ID())
		}
	}
	return nil
}

func validateTotalPrice(o *order.Order) error {
	itemsTotal := o.ItemsTotal()
	if !o.Price().IsEqual(itemsTotal) {
		return errs.NewDomainErrorf(order.ErrOrderTotalPriceMismatch,
			"Total price: %s is not equal to Order items total: %s!", o.Price(), itemsTotal)
	}
	return nil
}
