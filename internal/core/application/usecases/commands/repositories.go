// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"foodordering/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OutboxRepoFactory provides access to the outbox within a transaction.
	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// IdempotencyRepoFactory provides access to idempotency keys within a transaction.
	IdempotencyRepoFactory interface {
		IdempotencyRepository() ports.IdempotencyRepository
	}

	// OrderApprovalRepoFactory provides access to approvals within a transaction.
	OrderApprovalRepoFactory interface {
		OrderApprovalRepository() ports.OrderApprovalRepository
	}

	// CreateOrderUoW writes an order, its outbox message and its idempotency
	// key in one transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   saved, err := uow.OrderRepository().Save(ctx, o)
	//   err = uow.OutboxRepository().Add(ctx, msg)
	//
	//   err = uow.Commit(ctx)
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		OutboxRepoFactory
		IdempotencyRepoFactory
	}

	// CreateOrderUoWFactory creates new order unit of work instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// ApprovalUoW writes a restaurant decision and its response message in one transaction.
	ApprovalUoW interface {
		TxManager
		OrderApprovalRepoFactory
		OutboxRepoFactory
	}

	// ApprovalUoWFactory creates new approval unit of work instances.
	ApprovalUoWFactory interface {
		Create() ApprovalUoW
	}

	// OutboxUoW drains the outbox inside one transaction so that fetched rows
	// stay locked until they are marked as sent.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	// OutboxUoWFactory creates new outbox unit of work instances.
	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)
