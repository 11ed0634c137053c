package commands_test

import (
	"context"
	"time"

	"foodordering/internal/core/application/usecases/commands"
	"foodordering/internal/core/domain/model/approval"
	"foodordering/internal/core/domain/model/customer"
	"foodordering/internal/core/domain/model/kernel"
	"foodordering/internal/core/domain/model/order"
	"foodordering/internal/core/domain/model/restaurant"
	"foodordering/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) FindCustomer(ctx context.Context, id kernel.CustomerID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}

type MockRestaurantRepository struct{ mock.Mock }

func (m *MockRestaurantRepository) FindRestaurantInformation(
	ctx context.Context,
	query *restaurant.Restaurant,
) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, query)
	r, _ := args.Get(0).(*restaurant.Restaurant)
	return r, args.Error(1)
}

type MockApprovalRestaurantRepository struct{ mock.Mock }

func (m *MockApprovalRestaurantRepository) FindRestaurantInformation(
	ctx context.Context,
	id kernel.RestaurantID,
	productIDs []kernel.ProductID,
) (ports.RestaurantCatalog, error) {
	args := m.Called(ctx, id, productIDs)
	return args.Get(0).(ports.RestaurantCatalog), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

// Save returns the given order when the expectation returns no order and no error.
func (m *MockOrderRepository) Save(ctx context.Context, o *order.Order) (*order.Order, error) {
	args := m.Called(ctx, o)
	saved, _ := args.Get(0).(*order.Order)
	if saved == nil && args.Error(1) == nil {
		saved = o
	}
	return saved, args.Error(1)
}

func (m *MockOrderRepository) FindByTrackingID(ctx context.Context, id kernel.TrackingID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) Add(ctx context.Context, msg ports.OutboxMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockOutboxRepository) FetchPending(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	args := m.Called(ctx, limit)
	msgs, _ := args.Get(0).([]ports.OutboxMessage)
	return msgs, args.Error(1)
}

func (m *MockOutboxRepository) MarkSent(ctx context.Context, ids []kernel.UUID, sentAt time.Time) error {
	args := m.Called(ctx, ids, sentAt)
	return args.Error(0)
}

type MockIdempotencyRepository struct{ mock.Mock }

func (m *MockIdempotencyRepository) Find(ctx context.Context, key string) (ports.IdempotencyRecord, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(ports.IdempotencyRecord), args.Error(1)
}

func (m *MockIdempotencyRepository) Save(ctx context.Context, record ports.IdempotencyRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

type MockOrderApprovalRepository struct{ mock.Mock }

func (m *MockOrderApprovalRepository) Save(ctx context.Context, a *approval.OrderApproval) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

// MockUoW implements both CreateOrderUoW and ApprovalUoW.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) OutboxRepository() ports.OutboxRepository {
	args := m.Called()
	return args.Get(0).(ports.OutboxRepository)
}

func (m *MockUoW) IdempotencyRepository() ports.IdempotencyRepository {
	args := m.Called()
	return args.Get(0).(ports.IdempotencyRepository)
}

func (m *MockUoW) OrderApprovalRepository() ports.OrderApprovalRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderApprovalRepository)
}

type MockCreateOrderUoWFactory struct{ mock.Mock }

func (m *MockCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateOrderUoW)
}

type MockApprovalUoWFactory struct{ mock.Mock }

func (m *MockApprovalUoWFactory) Create() commands.ApprovalUoW {
	args := m.Called()
	return args.Get(0).(commands.ApprovalUoW)
}

type MockOutboxUoWFactory struct{ mock.Mock }

func (m *MockOutboxUoWFactory) Create() commands.OutboxUoW {
	args := m.Called()
	return args.Get(0).(commands.OutboxUoW)
}

type MockMessagePublisher struct{ mock.Mock }

func (m *MockMessagePublisher) Publish(ctx context.Context, topic, key string, payload []byte) error {
	args := m.Called(ctx, topic, key, payload)
	return args.Error(0)
}
