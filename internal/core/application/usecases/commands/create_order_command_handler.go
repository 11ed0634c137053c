package commands

import (
	"context"
	"encoding/json"
	"errors"

	"foodordering/internal/core/application/dto"
	"foodordering/internal/core/application/mapper"
	"foodordering/internal/core/domain/model/customer"
	"foodordering/internal/core/domain/model/kernel"
	"foodordering/internal/core/domain/model/order"
	"foodordering/internal/core/domain/model/restaurant"
	"foodordering/internal/core/domain/services"
	"foodordering/internal/core/ports"
	"foodordering/internal/pkg/errs"

	"go.uber.org/zap"
)

// CreateOrderCommandHandler validates a new order against its customer and
// restaurant and persists it together with the payment request it triggers.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(customers, restaurants, uowFactory, "payment-request", logger)
//	resp, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrDomain) {
//	    // reject the request with err.Error()
//	}
type CreateOrderCommandHandler struct {
	customerRepo        ports.CustomerRepository
	restaurantRepo      ports.RestaurantRepository
	uowFactory          CreateOrderUoWFactory
	orderMapper         mapper.OrderDataMapper
	domainService       services.OrderDomainService
	paymentRequestTopic string
	logger              *zap.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// paymentRequestTopic is the topic the outbox relay publishes the payment request to.
func NewCreateOrderCommandHandler(
	customerRepo ports.CustomerRepository,
	restaurantRepo ports.RestaurantRepository,
	uowFactory CreateOrderUoWFactory,
	paymentRequestTopic string,
	logger *zap.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		customerRepo:        customerRepo,
		restaurantRepo:      restaurantRepo,
		uowFactory:          uowFactory,
		orderMapper:         mapper.NewOrderDataMapper(),
		domainService:       services.NewOrderDomainService(),
		paymentRequestTopic: paymentRequestTopic,
		logger:              logger.With(zap.String("component", "create-order-handler")),
	}
}

// Handle runs the creation workflow: idempotency lookup, customer check,
// restaurant lookup, domain validation and a single transaction storing the
// order, its payment request outbox message and the idempotency key.
//
// A request repeating a stored idempotency key returns the response for the
// order it created, with the order's current status, without creating
// anything. Any failure rolls the transaction back.
func (h CreateOrderCommandHandler) Handle(
	ctx context.Context,
	cmd dto.CreateOrderCommand,
) (dto.CreateOrderResponse, error) {
	if err := cmd.Validate(); err != nil {
		return dto.CreateOrderResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return dto.CreateOrderResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if key := cmd.IdempotencyKey(); key != "" {
		record, err := uow.IdempotencyRepository().Find(ctx, key)
		switch {
		case err == nil:
			return h.replay(ctx, uow.OrderRepository(), record)
		case !errors.Is(err, errs.ErrObjectNotFound):
			return dto.CreateOrderResponse{}, err
		}
	}

	if err := h.checkCustomer(ctx, cmd.CustomerID()); err != nil {
		return dto.CreateOrderResponse{}, err
	}

	r, err := h.findRestaurant(ctx, cmd)
	if err != nil {
		return dto.CreateOrderResponse{}, err
	}

	o, err := h.orderMapper.CreateOrderCommandToOrder(cmd)
	if err != nil {
		return dto.CreateOrderResponse{}, err
	}

	event, err := h.domainService.ValidateAndInitiateOrder(o, r)
	if err != nil {
		return dto.CreateOrderResponse{}, err
	}

	saved, err := uow.OrderRepository().Save(ctx, event.Order)
	if err != nil {
		return dto.CreateOrderResponse{}, err
	}

	if err = h.addPaymentRequest(ctx, uow.OutboxRepository(), saved, event); err != nil {
		return dto.CreateOrderResponse{}, err
	}

	if key := cmd.IdempotencyKey(); key != "" {
		if err = uow.IdempotencyRepository().Save(ctx, ports.IdempotencyRecord{
			Key:         key,
			TrackingID:  saved.TrackingID(),
			OrderStatus: saved.Status().String(),
			CreatedAt:   event.CreatedAt,
		}); err != nil {
			return dto.CreateOrderResponse{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return dto.CreateOrderResponse{}, err
	}

	h.logger.Info("order created",
		zap.String("order_id", saved.ID().String()),
		zap.String("tracking_id", saved.TrackingID().String()))

	return h.orderMapper.OrderToCreateOrderResponse(saved), nil
}

func (h CreateOrderCommandHandler) replay(
	ctx context.Context,
	orders ports.OrderRepository,
	record ports.IdempotencyRecord,
) (dto.CreateOrderResponse, error) {
	o, err := orders.FindByTrackingID(ctx, record.TrackingID)
	if err != nil {
		return dto.CreateOrderResponse{}, err
	}

	h.logger.Info("replaying order creation",
		zap.String("idempotency_key", record.Key),
		zap.String("tracking_id", record.TrackingID.String()),
		zap.String("created_with_status", record.OrderStatus),
		zap.Stringer("status", o.Status()))
	return h.orderMapper.OrderToCreateOrderResponse(o), nil
}

func (h CreateOrderCommandHandler) checkCustomer(ctx context.Context, id kernel.CustomerID) error {
	_, err := h.customerRepo.FindCustomer(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		h.logger.Warn("customer not found", zap.String("customer_id", id.String()))
		return errs.NewDomainErrorf(customer.ErrCustomerNotFound,
			"Could not find customer with customer id: %s", id)
	}
	return err
}

func (h CreateOrderCommandHandler) findRestaurant(
	ctx context.Context,
	cmd dto.CreateOrderCommand,
) (*restaurant.Restaurant, error) {
	query, err := h.orderMapper.CreateOrderCommandToRestaurant(cmd)
	if err != nil {
		return nil, err
	}

	r, err := h.restaurantRepo.FindRestaurantInformation(ctx, query)
	if errors.Is(err, errs.ErrObjectNotFound) {
		h.logger.Warn("restaurant not found", zap.String("restaurant_id", cmd.RestaurantID().String()))
		return nil, errs.NewDomainErrorf(restaurant.ErrRestaurantNotFound,
			"Could not find restaurant with restaurant id: %s", cmd.RestaurantID())
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (h CreateOrderCommandHandler) addPaymentRequest(
	ctx context.Context,
	outbox ports.OutboxRepository,
	o *order.Order,
	event order.OrderCreatedEvent,
) error {
	payload, err := json.Marshal(h.orderMapper.OrderToPaymentRequest(o, event.CreatedAt))
	if err != nil {
		return err
	}
	return outbox.Add(ctx, ports.OutboxMessage{
		ID:        kernel.NewUUID(),
		Topic:     h.paymentRequestTopic,
		Key:       o.ID().String(),
		Payload:   payload,
		CreatedAt: event.CreatedAt,
	})
}
