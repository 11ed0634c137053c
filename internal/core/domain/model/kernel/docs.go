// Package kernel provides the value objects shared by every aggregate of the
// ordering domain.
//
// The package includes:
//   - UUID: identifier value object wrapping github.com/google/uuid
//   - CustomerID, RestaurantID, ProductID, OrderID, OrderItemID, TrackingID: typed identifiers
//   - Money: non-negative decimal amount backed by github.com/shopspring/decimal
//
// All types are immutable and compared by value.
package kernel
