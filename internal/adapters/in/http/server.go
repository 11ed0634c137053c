// Package http exposes the ordering use cases over a REST API served by echo.
package http

import (
	"context"
	"net/http"

	"foodordering/internal/core/application/dto"
	"foodordering/internal/core/application/usecases/queries"
	"foodordering/internal/core/domain/model/kernel"
	"foodordering/internal/generated/servers"
	"foodordering/internal/pkg/metrics"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"go.uber.org/zap"
)

type createOrderHandler interface {
	Handle(ctx context.Context, cmd dto.CreateOrderCommand) (dto.CreateOrderResponse, error)
}

type trackOrderHandler interface {
	Handle(ctx context.Context, query queries.TrackOrderQuery) (dto.TrackOrderResponse, error)
}

// Server implements servers.ServerInterface on top of the application handlers.
type Server struct {
	createOrderHandler createOrderHandler
	trackOrderHandler  trackOrderHandler

	metrics *metrics.Metrics
	logger  *zap.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler createOrderHandler,
	trackOrderHandler trackOrderHandler,
	m *metrics.Metrics,
	logger *zap.Logger,
) *Server {
	return &Server{
		createOrderHandler: createOrderHandler,
		trackOrderHandler:  trackOrderHandler,
		metrics:            m,
		logger:             logger.With(zap.String("component", "http-server")),
	}
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context, params servers.CreateOrderParams) error {
	var body servers.CreateOrderRequest
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := toCreateOrderCommand(body, params)
	if err != nil {
		return s.writeError(ctx, err)
	}

	resp, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		s.countRejection(err)
		return s.writeError(ctx, err)
	}
	s.metrics.OrdersCreated.Inc()

	return ctx.JSON(http.StatusCreated, servers.CreateOrderResponse{
		OrderTrackingId: parseUUID(resp.OrderTrackingID),
		OrderStatus:     servers.OrderStatus(resp.OrderStatus),
		Message:         resp.Message,
	})
}

// TrackOrder handles GET /api/v1/orders/{trackingId}.
func (s *Server) TrackOrder(ctx echo.Context, trackingID openapi_types.UUID) error {
	query, err := queries.NewTrackOrderQuery(kernel.TrackingID{UUID: toKernelUUID(trackingID)})
	if err != nil {
		return s.writeError(ctx, err)
	}

	resp, err := s.trackOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.TrackOrderResponse{
		OrderTrackingId: parseUUID(resp.OrderTrackingID),
		OrderStatus:     servers.OrderStatus(resp.OrderStatus),
		FailureMessages: resp.FailureMessages,
	})
}

func toCreateOrderCommand(body servers.CreateOrderRequest, params servers.CreateOrderParams) (dto.CreateOrderCommand, error) {
	price, err := kernel.NewMoney(body.Price)
	if err != nil {
		return dto.CreateOrderCommand{}, err
	}

	items := make([]dto.OrderItem, 0, len(body.Items))
	for _, item := range body.Items {
		itemPrice, priceErr := kernel.NewMoney(item.Price)
		if priceErr != nil {
			return dto.CreateOrderCommand{}, priceErr
		}
		subTotal, subTotalErr := kernel.NewMoney(item.SubTotal)
		if subTotalErr != nil {
			return dto.CreateOrderCommand{}, subTotalErr
		}
		items = append(items, dto.OrderItem{
			ProductID: kernel.ProductID{UUID: toKernelUUID(item.ProductId)},
			Quantity:  item.Quantity,
			Price:     itemPrice,
			SubTotal:  subTotal,
		})
	}

	var idempotencyKey string
	if params.IdempotencyKey != nil {
		idempotencyKey = *params.IdempotencyKey
	}

	return dto.NewCreateOrderCommand(
		kernel.CustomerID{UUID: toKernelUUID(body.CustomerId)},
		kernel.RestaurantID{UUID: toKernelUUID(body.RestaurantId)},
		price,
		items,
		dto.OrderAddress{
			Street:     body.Address.Street,
			PostalCode: body.Address.PostalCode,
			City:       body.Address.City,
		},
		idempotencyKey,
	)
}

// toKernelUUID keeps the nil UUID as the zero kernel.UUID so that command
// validation reports the field as missing.
func toKernelUUID(id uuid.UUID) kernel.UUID {
	u, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}
	}
	return u
}

func parseUUID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}
