// Package mapper converts between application dtos and domain objects.
// Mappers are stateless, do no I/O and never modify their inputs.
package mapper

import (
	"time"

	"foodordering/internal/core/application/dto"
	"foodordering/internal/core/domain/model/kernel"
	"foodordering/internal/core/domain/model/order"
	"foodordering/internal/core/domain/model/restaurant"
)

// OrderDataMapper maps create order commands to the order aggregate and back
// to responses and outgoing messages.
type OrderDataMapper struct{}

func NewOrderDataMapper() OrderDataMapper {
	return OrderDataMapper{}
}

// CreateOrderCommandToOrder builds a new order with a fresh tracking id and no
// persisted id. Items get fresh ids and stay unbound until the order is saved.
func (OrderDataMapper) CreateOrderCommandToOrder(cmd dto.CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	address := cmd.Address()
	deliveryAddress, err := order.NewStreetAddress(kernel.NewUUID(), address.Street, address.PostalCode, address.City)
	if err != nil {
		return nil, err
	}

	items := make([]*order.OrderItem, 0, len(cmd.Items()))
	for _, item := range cmd.Items() {
		product, err := order.NewProductReference(item.ProductID)
		if err != nil {
			return nil, err
		}
		orderItem, err := order.NewOrderItem(kernel.NewOrderItemID(), product, item.Quantity, item.Price, item.SubTotal)
		if err != nil {
			return nil, err
		}
		items = append(items, orderItem)
	}

	return order.NewOrder(
		kernel.NewTrackingID(),
		cmd.CustomerID(),
		cmd.RestaurantID(),
		deliveryAddress,
		cmd.Price(),
		items,
	)
}

// CreateOrderCommandToRestaurant builds the restaurant lookup query with the
// distinct product ids of the command, in first-seen order.
func (OrderDataMapper) CreateOrderCommandToRestaurant(cmd dto.CreateOrderCommand) (*restaurant.Restaurant, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	seen := make(map[kernel.ProductID]struct{}, len(cmd.Items()))
	productIDs := make([]kernel.ProductID, 0, len(cmd.Items()))
	for _, item := range cmd.Items() {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		productIDs = append(productIDs, item.ProductID)
	}

	return restaurant.NewRestaurantQuery(cmd.RestaurantID(), productIDs)
}

func (OrderDataMapper) OrderToCreateOrderResponse(o *order.Order) dto.CreateOrderResponse {
	return dto.CreateOrderResponse{
		OrderTrackingID: o.TrackingID().String(),
		OrderStatus:     o.Status().String(),
		Message:         dto.CreateOrderResponseMessage,
	}
}

// OrderToPaymentRequest builds the payment request for a persisted order.
func (OrderDataMapper) OrderToPaymentRequest(o *order.Order, createdAt time.Time) dto.PaymentRequestMessage {
	return dto.PaymentRequestMessage{
		ID:                 kernel.NewUUID().String(),
		SagaID:             "",
		CustomerID:         o.CustomerID().String(),
		OrderID:            o.ID().String(),
		Price:              o.Price().Amount(),
		CreatedAt:          createdAt,
		PaymentOrderStatus: dto.PaymentOrderStatusPending,
	}
}
