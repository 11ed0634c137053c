// Package ports defines the interfaces between the ordering core and its
// adapters: repositories, the unit of work and the message publisher.
package ports

import (
	"context"

	"foodordering/internal/core/domain/model/kernel"
	"foodordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Save persists a new order with its items and delivery address.
	// When the order has no id yet, Save assigns one (order.Order.AssignID),
	// which also binds the id into every item. The returned order is the
	// same aggregate, now carrying its persisted id.
	Save(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// FindByTrackingID loads an order with its items and address.
	// Returns errs.ObjectNotFoundError when no order has the tracking id.
	FindByTrackingID(ctx context.Context, trackingID kernel.TrackingID) (*order.Order, error)
}
