package commands_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"foodordering/internal/core/application/dto"
	"foodordering/internal/core/application/mapper"
	"foodordering/internal/core/application/usecases/commands"
	"foodordering/internal/core/domain/model/customer"
	"foodordering/internal/core/domain/model/kernel"
	"foodordering/internal/core/domain/model/order"
	"foodordering/internal/core/domain/model/restaurant"
	"foodordering/internal/core/ports"
	"foodordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const paymentTopic = "payment-request"

type createOrderFixture struct {
	customerID   kernel.CustomerID
	restaurantID kernel.RestaurantID
	product1     kernel.ProductID
	product2     kernel.ProductID

	customers   *MockCustomerRepository
	restaurants *MockRestaurantRepository
	orders      *MockOrderRepository
	outbox      *MockOutboxRepository
	keys        *MockIdempotencyRepository
	uow         *MockUoW
	factory     *MockCreateOrderUoWFactory
}

func newCreateOrderFixture() *createOrderFixture {
	return &createOrderFixture{
		customerID:   kernel.CustomerID{UUID: kernel.NewUUID()},
		restaurantID: kernel.RestaurantID{UUID: kernel.NewUUID()},
		product1:     kernel.ProductID{UUID: kernel.NewUUID()},
		product2:     kernel.ProductID{UUID: kernel.NewUUID()},
		customers:    new(MockCustomerRepository),
		restaurants:  new(MockRestaurantRepository),
		orders:       new(MockOrderRepository),
		outbox:       new(MockOutboxRepository),
		keys:         new(MockIdempotencyRepository),
		uow:          new(MockUoW),
		factory:      new(MockCreateOrderUoWFactory),
	}
}

func (f *createOrderFixture) handler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(f.customers, f.restaurants, f.factory, paymentTopic, zap.NewNop())
}

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

// command builds the reference order: product-1 × 1 and product-2 × 3.
func (f *createOrderFixture) command(t *testing.T, price, firstItemPrice, key string) dto.CreateOrderCommand {
	t.Helper()
	cmd, err := dto.NewCreateOrderCommand(
		f.customerID,
		f.restaurantID,
		money(t, price),
		[]dto.OrderItem{
			{ProductID: f.product1, Quantity: 1, Price: money(t, firstItemPrice), SubTotal: money(t, firstItemPrice)},
			{ProductID: f.product2, Quantity: 3, Price: money(t, "50.00"), SubTotal: money(t, "150.00")},
		},
		dto.OrderAddress{Street: "street_1", PostalCode: "1000AB", City: "Paris"},
		key,
	)
	require.NoError(t, err)
	return cmd
}

func (f *createOrderFixture) restaurant(t *testing.T, active bool) *restaurant.Restaurant {
	t.Helper()
	p1, err := order.NewProduct(f.product1, "product-1", money(t, "50.00"))
	require.NoError(t, err)
	p2, err := order.NewProduct(f.product2, "product-2", money(t, "50.00"))
	require.NoError(t, err)
	r, err := restaurant.NewRestaurant(f.restaurantID, []*order.Product{p1, p2}, active)
	require.NoError(t, err)
	return r
}

func (f *createOrderFixture) expectLookups(t *testing.T, active bool) {
	t.Helper()
	c, err := customer.NewCustomer(f.customerID)
	require.NoError(t, err)
	f.customers.On("FindCustomer", mock.Anything, f.customerID).Return(c, nil).Once()
	f.restaurants.On("FindRestaurantInformation", mock.Anything, mock.AnythingOfType("*restaurant.Restaurant")).
		Return(f.restaurant(t, active), nil).Once()
}

func (f *createOrderFixture) assertExpectations(t *testing.T) {
	t.Helper()
	f.customers.AssertExpectations(t)
	f.restaurants.AssertExpectations(t)
	f.orders.AssertExpectations(t)
	f.outbox.AssertExpectations(t)
	f.keys.AssertExpectations(t)
	f.uow.AssertExpectations(t)
	f.factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	f := newCreateOrderFixture()
	cmd := f.command(t, "200.00", "50.00", "")

	var saved *order.Order
	var published ports.OutboxMessage

	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.expectLookups(t, true)
	f.uow.On("OrderRepository").Return(f.orders).Once()
	f.orders.On("Save", ctx, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*order.Order)
			require.NoError(t, saved.AssignID(kernel.NewOrderID()))
		}).
		Return(nil, nil).Once()
	f.uow.On("OutboxRepository").Return(f.outbox).Once()
	f.outbox.On("Add", ctx, mock.AnythingOfType("ports.OutboxMessage")).
		Run(func(args mock.Arguments) { published = args.Get(1).(ports.OutboxMessage) }).
		Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	resp, err := f.handler().Handle(ctx, cmd)

	require.NoError(t, err)
	f.assertExpectations(t)

	assert.Equal(t, saved.TrackingID().String(), resp.OrderTrackingID)
	assert.Equal(t, "PENDING", resp.OrderStatus)
	assert.Equal(t, "Order created successfully", resp.Message)
	for _, item := range saved.Items() {
		assert.Equal(t, saved.ID(), item.OrderID())
	}

	assert.Equal(t, paymentTopic, published.Topic)
	assert.Equal(t, saved.ID().String(), published.Key)
	var payment dto.PaymentRequestMessage
	require.NoError(t, json.Unmarshal(published.Payload, &payment))
	assert.Equal(t, saved.ID().String(), payment.OrderID)
	assert.Equal(t, f.customerID.String(), payment.CustomerID)
	assert.Equal(t, "200.00", payment.Price.StringFixed(2))
	assert.Equal(t, dto.PaymentOrderStatusPending, payment.PaymentOrderStatus)
}

func TestCreateOrderCommandHandler_Handle_DomainFailures(t *testing.T) {
	tests := []struct {
		name           string
		price          string
		firstItemPrice string
		active         bool
		kind           error
		message        func(f *createOrderFixture) string
	}{
		{
			name:           "total mismatch",
			price:          "250.00",
			firstItemPrice: "50.00",
			active:         true,
			kind:           order.ErrOrderTotalPriceMismatch,
			message: func(*createOrderFixture) string {
				return "Total price: 250.00 is not equal to Order items total: 200.00!"
			},
		},
		{
			name:           "item price differs from catalog",
			price:          "210.00",
			firstItemPrice: "60.00",
			active:         true,
			kind:           order.ErrOrderItemPriceInvalid,
			message: func(f *createOrderFixture) string {
				return fmt.Sprintf("Order item price: 60.00 is not valid for product %s", f.product1)
			},
		},
		{
			name:           "restaurant not active",
			price:          "200.00",
			firstItemPrice: "50.00",
			active:         false,
			kind:           restaurant.ErrRestaurantNotActive,
			message: func(f *createOrderFixture) string {
				return fmt.Sprintf("Restaurant with id %s is currently not active!", f.restaurantID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			f := newCreateOrderFixture()
			cmd := f.command(t, tt.price, tt.firstItemPrice, "")

			f.factory.On("Create").Return(f.uow).Once()
			f.uow.On("Begin", ctx).Return(nil).Once()
			f.expectLookups(t, tt.active)
			f.uow.On("Rollback", ctx).Return(nil).Once()

			_, err := f.handler().Handle(ctx, cmd)

			require.ErrorIs(t, err, tt.kind)
			require.ErrorIs(t, err, errs.ErrDomain)
			assert.Equal(t, tt.message(f), err.Error())
			f.orders.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
			f.assertExpectations(t)
		})
	}
}

func TestCreateOrderCommandHandler_Handle_CustomerNotFound(t *testing.T) {
	ctx := t.Context()
	f := newCreateOrderFixture()
	cmd := f.command(t, "200.00", "50.00", "")

	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.customers.On("FindCustomer", mock.Anything, f.customerID).
		Return(nil, errs.NewObjectNotFoundError("customer", f.customerID)).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	_, err := f.handler().Handle(ctx, cmd)

	require.ErrorIs(t, err, customer.ErrCustomerNotFound)
	assert.Equal(t, fmt.Sprintf("Could not find customer with customer id: %s", f.customerID), err.Error())
	f.restaurants.AssertNotCalled(t, "FindRestaurantInformation", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_RestaurantNotFound(t *testing.T) {
	ctx := t.Context()
	f := newCreateOrderFixture()
	cmd := f.command(t, "200.00", "50.00", "")
	c, err := customer.NewCustomer(f.customerID)
	require.NoError(t, err)

	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.customers.On("FindCustomer", mock.Anything, f.customerID).Return(c, nil).Once()
	f.restaurants.On("FindRestaurantInformation", mock.Anything, mock.MatchedBy(func(q *restaurant.Restaurant) bool {
		return q.ID() == f.restaurantID && len(q.ProductIDs()) == 2
	})).Return(nil, errs.NewObjectNotFoundError("restaurant", f.restaurantID)).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	_, err = f.handler().Handle(ctx, cmd)

	require.ErrorIs(t, err, restaurant.ErrRestaurantNotFound)
	assert.Equal(t, fmt.Sprintf("Could not find restaurant with restaurant id: %s", f.restaurantID), err.Error())
	f.assertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_IdempotencyReplay(t *testing.T) {
	ctx := t.Context()
	f := newCreateOrderFixture()
	cmd := f.command(t, "200.00", "50.00", "key-1")

	stored, err := mapper.NewOrderDataMapper().CreateOrderCommandToOrder(cmd)
	require.NoError(t, err)
	require.NoError(t, stored.AssignID(kernel.NewOrderID()))
	require.NoError(t, stored.Initialize())
	require.NoError(t, stored.Pay())

	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("IdempotencyRepository").Return(f.keys).Once()
	f.keys.On("Find", ctx, "key-1").
		Return(ports.IdempotencyRecord{Key: "key-1", TrackingID: stored.TrackingID(), OrderStatus: "PENDING"}, nil).Once()
	f.uow.On("OrderRepository").Return(f.orders).Once()
	f.orders.On("FindByTrackingID", ctx, stored.TrackingID()).Return(stored, nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	resp, err := f.handler().Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, dto.CreateOrderResponse{
		OrderTrackingID: stored.TrackingID().String(),
		OrderStatus:     "PAID",
		Message:         "Order created successfully",
	}, resp)
	f.customers.AssertNotCalled(t, "FindCustomer", mock.Anything, mock.Anything)
	f.orders.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_IdempotencyReplayOrderMissing(t *testing.T) {
	ctx := t.Context()
	f := newCreateOrderFixture()
	cmd := f.command(t, "200.00", "50.00", "key-3")
	trackingID := kernel.NewTrackingID()

	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("IdempotencyRepository").Return(f.keys).Once()
	f.keys.On("Find", ctx, "key-3").
		Return(ports.IdempotencyRecord{Key: "key-3", TrackingID: trackingID, OrderStatus: "PENDING"}, nil).Once()
	f.uow.On("OrderRepository").Return(f.orders).Once()
	f.orders.On("FindByTrackingID", ctx, trackingID).
		Return(nil, errs.NewObjectNotFoundError("order", trackingID.String())).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	_, err := f.handler().Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	f.assertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_IdempotencyKeyStored(t *testing.T) {
	ctx := t.Context()
	f := newCreateOrderFixture()
	cmd := f.command(t, "200.00", "50.00", "key-2")

	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("IdempotencyRepository").Return(f.keys).Twice()
	f.keys.On("Find", ctx, "key-2").
		Return(ports.IdempotencyRecord{}, errs.NewObjectNotFoundError("idempotency key", "key-2")).Once()
	f.expectLookups(t, true)
	f.uow.On("OrderRepository").Return(f.orders).Once()
	f.orders.On("Save", ctx, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) {
			require.NoError(t, args.Get(1).(*order.Order).AssignID(kernel.NewOrderID()))
		}).
		Return(nil, nil).Once()
	f.uow.On("OutboxRepository").Return(f.outbox).Once()
	f.outbox.On("Add", ctx, mock.Anything).Return(nil).Once()
	f.keys.On("Save", ctx, mock.MatchedBy(func(r ports.IdempotencyRecord) bool {
		return r.Key == "key-2" && r.OrderStatus == "PENDING" && !r.TrackingID.IsZero()
	})).Return(errs.NewConflictErrorWithCause("idempotency key", errors.New("duplicate"))).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	_, err := f.handler().Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	f.assertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	f := newCreateOrderFixture()

	_, err := f.handler().Handle(t.Context(), dto.CreateOrderCommand{})

	require.ErrorIs(t, err, dto.ErrCreateOrderCommandIsNotConstructed)
	f.factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	f := newCreateOrderFixture()

	mock.InOrder(
		f.factory.On("Create").Return(f.uow).Once(),
		f.uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	_, err := f.handler().Handle(ctx, f.command(t, "200.00", "50.00", ""))

	require.EqualError(t, err, "begin error")
	f.assertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_SaveError(t *testing.T) {
	ctx := t.Context()
	f := newCreateOrderFixture()

	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.expectLookups(t, true)
	f.uow.On("OrderRepository").Return(f.orders).Once()
	f.orders.On("Save", ctx, mock.Anything).Return(nil, errors.New("save error")).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	_, err := f.handler().Handle(ctx, f.command(t, "200.00", "50.00", ""))

	require.EqualError(t, err, "save error")
	f.outbox.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	f := newCreateOrderFixture()

	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.expectLookups(t, true)
	f.uow.On("OrderRepository").Return(f.orders).Once()
	f.orders.On("Save", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			require.NoError(t, args.Get(1).(*order.Order).AssignID(kernel.NewOrderID()))
		}).
		Return(nil, nil).Once()
	f.uow.On("OutboxRepository").Return(f.outbox).Once()
	f.outbox.On("Add", ctx, mock.Anything).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(errors.New("commit error")).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	_, err := f.handler().Handle(ctx, f.command(t, "200.00", "50.00", ""))

	require.EqualError(t, err, "commit error")
	f.assertExpectations(t)
}
