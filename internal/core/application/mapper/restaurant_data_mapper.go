package mapper

import (
	"errors"
	"fmt"

	"foodordering/internal/core/application/dto"
	"foodordering/internal/core/domain/model/approval"
	"foodordering/internal/core/domain/model/kernel"
	"foodordering/internal/core/domain/model/order"
	"foodordering/internal/pkg/errs"
)

// RestaurantDataMapper maps approval requests to the restaurant side
// aggregate and approval events to response messages.
type RestaurantDataMapper struct{}

func NewRestaurantDataMapper() RestaurantDataMapper {
	return RestaurantDataMapper{}
}

// RestaurantApprovalRequestToRestaurant parses the ids and the order status of
// the request. Malformed ids return errs.ValueIsInvalidError, an unknown status
// returns a DomainError of kind order.ErrInvalidEnumValue.
func (RestaurantDataMapper) RestaurantApprovalRequestToRestaurant(
	req dto.RestaurantApprovalRequest,
) (*approval.Restaurant, error) {
	restaurantID, restaurantErr := kernel.RestaurantIDFromString(req.RestaurantID)
	orderID, orderErr := kernel.OrderIDFromString(req.OrderID)
	if err := errors.Join(
		invalidIf("restaurantId", restaurantErr),
		invalidIf("orderId", orderErr),
	); err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(req.RestaurantOrderStatus)
	if err != nil {
		return nil, err
	}

	totalAmount, err := kernel.NewMoney(req.Price)
	if err != nil {
		return nil, err
	}

	products := make([]*approval.Product, 0, len(req.Products))
	for i, p := range req.Products {
		productID, err := kernel.ProductIDFromString(p.ID)
		if err != nil {
			return nil, invalidIf(fmt.Sprintf("products[%d].id", i), err)
		}
		product, err := approval.NewProduct(productID, p.Quantity)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	detail, err := approval.NewOrderDetail(orderID, products, status, totalAmount)
	if err != nil {
		return nil, err
	}

	return approval.NewRestaurant(restaurantID, detail)
}

// OrderApprovalEventToResponse builds the message published on the approval response topic.
func (RestaurantDataMapper) OrderApprovalEventToResponse(
	event approval.OrderApprovalEvent,
	sagaID string,
) dto.RestaurantApprovalResponseMessage {
	failures := event.FailureMessages
	if failures == nil {
		failures = []string{}
	}
	return dto.RestaurantApprovalResponseMessage{
		ID:                  kernel.NewUUID().String(),
		SagaID:              sagaID,
		OrderID:             event.Approval.OrderID().String(),
		RestaurantID:        event.Approval.RestaurantID().String(),
		CreatedAt:           event.CreatedAt,
		OrderApprovalStatus: event.Approval.Status().String(),
		FailureMessages:     failures,
	}
}

func invalidIf(param string, err error) error {
	if err == nil {
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause(param, err)
}
