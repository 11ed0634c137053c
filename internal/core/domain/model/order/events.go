package order

import "time"

// OrderCreatedEvent is returned once an order passed validation and is Pending.
type OrderCreatedEvent struct {
	Order     *Order
	CreatedAt time.Time
}

// OrderPaidEvent is returned when a Pending order is marked as Paid.
type OrderPaidEvent struct {
	Order     *Order
	CreatedAt time.Time
}

// OrderCancelledEvent is returned when a Paid order starts its cancellation.
type OrderCancelledEvent struct {
	Order     *Order
	CreatedAt time.Time
}
