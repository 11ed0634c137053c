package dto

// CreateOrderResponseMessage is the fixed message of a successful creation.
const CreateOrderResponseMessage = "Order created successfully"

// CreateOrderResponse is returned to the client after an order was created.
type CreateOrderResponse struct {
	OrderTrackingID string
	OrderStatus     string
	Message         string
}

// TrackOrderResponse is returned by the order tracking query.
type TrackOrderResponse struct {
	OrderTrackingID string
	OrderStatus     string
	FailureMessages []string
}
