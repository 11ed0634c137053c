package commands

import (
	"context"
	"encoding/json"
	"errors"

	"foodordering/internal/core/application/dto"
	"foodordering/internal/core/application/mapper"
	"foodordering/internal/core/domain/model/kernel"
	"foodordering/internal/core/domain/model/restaurant"
	"foodordering/internal/core/domain/services"
	"foodordering/internal/core/ports"
	"foodordering/internal/pkg/errs"

	"go.uber.org/zap"
)

// ApproveOrderCommandHandler handles restaurant approval requests for paid orders.
// The decision is stored with its response message in one transaction; the
// outbox relay publishes the response.
type ApproveOrderCommandHandler struct {
	restaurantRepo  ports.ApprovalRestaurantRepository
	uowFactory      ApprovalUoWFactory
	restaurantMap   mapper.RestaurantDataMapper
	approvalService services.RestaurantApprovalService
	responseTopic   string
	logger          *zap.Logger
}

func NewApproveOrderCommandHandler(
	restaurantRepo ports.ApprovalRestaurantRepository,
	uowFactory ApprovalUoWFactory,
	responseTopic string,
	logger *zap.Logger,
) ApproveOrderCommandHandler {
	return ApproveOrderCommandHandler{
		restaurantRepo:  restaurantRepo,
		uowFactory:      uowFactory,
		restaurantMap:   mapper.NewRestaurantDataMapper(),
		approvalService: services.NewRestaurantApprovalService(),
		responseTopic:   responseTopic,
		logger:          logger.With(zap.String("component", "approve-order-handler")),
	}
}

// Handle validates the order on the restaurant side and returns the response
// message that was queued for publishing.
func (h ApproveOrderCommandHandler) Handle(
	ctx context.Context,
	req dto.RestaurantApprovalRequest,
) (dto.RestaurantApprovalResponseMessage, error) {
	r, err := h.restaurantMap.RestaurantApprovalRequestToRestaurant(req)
	if err != nil {
		return dto.RestaurantApprovalResponseMessage{}, err
	}

	catalog, err := h.restaurantRepo.FindRestaurantInformation(ctx, r.ID(), r.ProductIDs())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return dto.RestaurantApprovalResponseMessage{}, errs.NewDomainErrorf(restaurant.ErrRestaurantNotFound,
			"Could not find restaurant with restaurant id: %s", r.ID())
	}
	if err != nil {
		return dto.RestaurantApprovalResponseMessage{}, err
	}
	r.ApplyCatalog(catalog.Active, catalog.Products)

	event, err := h.approvalService.ValidateOrder(r)
	if err != nil {
		return dto.RestaurantApprovalResponseMessage{}, err
	}

	response := h.restaurantMap.OrderApprovalEventToResponse(event, req.SagaID)
	payload, err := json.Marshal(response)
	if err != nil {
		return dto.RestaurantApprovalResponseMessage{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return dto.RestaurantApprovalResponseMessage{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderApprovalRepository().Save(ctx, event.Approval); err != nil {
		return dto.RestaurantApprovalResponseMessage{}, err
	}

	if err = uow.OutboxRepository().Add(ctx, ports.OutboxMessage{
		ID:        kernel.NewUUID(),
		Topic:     h.responseTopic,
		Key:       response.OrderID,
		Payload:   payload,
		CreatedAt: event.CreatedAt,
	}); err != nil {
		return dto.RestaurantApprovalResponseMessage{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return dto.RestaurantApprovalResponseMessage{}, err
	}

	h.logger.Info("order approval processed",
		zap.String("order_id", response.OrderID),
		zap.String("status", response.OrderApprovalStatus),
		zap.Strings("failure_messages", response.FailureMessages))

	return response, nil
}
