// Package postgres provides the GORM-based Unit of Work of the ordering service
// together with its schema migrations.
//
// A unit of work groups the writes of one business operation: the order, the
// outbox message announcing it and the idempotency key of the request are
// stored in a single transaction, so a message is never published for an
// order that was rolled back.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	saved, err := uow.OrderRepository().Save(ctx, o)
//	if err != nil {
//	    return err
//	}
//	if err := uow.OutboxRepository().Add(ctx, message); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides isolated transactions
//   - Multiple goroutines should use separate UnitOfWork instances
//   - The outbox relay locks rows with FOR UPDATE SKIP LOCKED, so several
//     relays may drain the same table
package postgres

import (
	"context"

	"foodordering/internal/adapters/out/postgres/approvalrepo"
	"foodordering/internal/adapters/out/postgres/idempotencyrepo"
	"foodordering/internal/adapters/out/postgres/orderrepo"
	"foodordering/internal/adapters/out/postgres/outboxrepo"
	"foodordering/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates a database transaction across the repositories
// of one business operation.
//
// Repositories obtained before Begin run on the plain connection and commit
// immediately. Repositories obtained after Begin are bound to the transaction.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts a transaction. Calling Begin again while a transaction is
// active is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	uow.tx = tx

	return nil
}

// Commit finalizes the transaction. It returns gorm.ErrInvalidTransaction
// when no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction. It returns gorm.ErrInvalidTransaction
// when no transaction is active, which makes a deferred Rollback after a
// successful Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// OrderRepository returns an order repository bound to the current transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

func (uow *GormUnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(uow.conn())
}

func (uow *GormUnitOfWork) IdempotencyRepository() ports.IdempotencyRepository {
	return idempotencyrepo.NewGormIdempotencyRepository(uow.conn())
}

func (uow *GormUnitOfWork) OrderApprovalRepository() ports.OrderApprovalRepository {
	return approvalrepo.NewGormOrderApprovalRepository(uow.conn())
}
