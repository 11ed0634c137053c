// Package order provides the Order aggregate of the food ordering context
// together with its items, products, delivery address and lifecycle.
//
// The package includes:
//   - Order: the aggregate root, identified by a tracking id from construction
//     and by a persisted id once saved
//   - OrderItem and Product: order lines and the catalog data confirmed for them
//   - StreetAddress: the delivery address value object
//   - Status: a state machine that enforces valid order status transitions
//   - OrderCreatedEvent, OrderPaidEvent, OrderCancelledEvent
//
// Key business rules:
//   - Constructors check shape only; price consistency is checked by the
//     order domain service
//   - Order status follows PENDING -> PAID -> APPROVED, with CANCELLING and
//     CANCELLED for failed payments or rejected orders
//   - Item order ids are bound when the order is assigned its persisted id
package order
