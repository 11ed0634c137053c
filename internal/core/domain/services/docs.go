// Package services provides domain services that orchestrate business operations
// across multiple domain entities of the food ordering system.
//
// The package includes:
//   - OrderDomainService: validates a new order against its restaurant and
//     drives the order lifecycle (pay, approve, cancel)
//   - RestaurantApprovalService: decides on the restaurant side whether a paid
//     order is approved or rejected
//
// Domain services do no I/O and keep no state between calls.
package services
