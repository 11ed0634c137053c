package approval

import (
	"errors"

	"foodordering/internal/core/domain/model/kernel"
)

// OrderApproval is the persisted decision of a restaurant on an order.
type OrderApproval struct {
	id           kernel.UUID
	restaurantID kernel.RestaurantID
	orderID      kernel.OrderID
	status       Status
}

func NewOrderApproval(
	id kernel.UUID,
	restaurantID kernel.RestaurantID,
	orderID kernel.OrderID,
	status Status,
) (*OrderApproval, error) {
	if err := errors.Join(id.Validate(), restaurantID.Validate(), orderID.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	return &OrderApproval{id: id, restaurantID: restaurantID, orderID: orderID, status: status}, nil
}

func (a *OrderApproval) ID() kernel.UUID { return a.id }
func (a *OrderApproval) RestaurantID() kernel.RestaurantID { return a.restaurantID }
func (a *OrderApproval) OrderID() kernel.OrderID { return a.orderID }
func (a *OrderApproval) Status() Status { return a.status }
