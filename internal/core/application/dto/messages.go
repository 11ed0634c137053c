package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentOrderStatus values carried by PaymentRequestMessage.
const (
	PaymentOrderStatusPending   = "PENDING"
	PaymentOrderStatusCancelled = "CANCELLED"
)

// PaymentRequestMessage asks the payment service to charge the customer for an order.
// It is published on the payment request topic keyed by order id.
type PaymentRequestMessage struct {
	ID                 string          `json:"id"`
	SagaID             string          `json:"sagaId"`
	CustomerID         string          `json:"customerId"`
	OrderID            string          `json:"orderId"`
	Price              decimal.Decimal `json:"price"`
	CreatedAt          time.Time       `json:"createdAt"`
	PaymentOrderStatus string          `json:"paymentOrderStatus"`
}

// RestaurantApprovalProduct is an ordered product inside an approval request.
type RestaurantApprovalProduct struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// RestaurantApprovalRequest asks a restaurant to approve a paid order.
type RestaurantApprovalRequest struct {
	ID                    string                      `json:"id"`
	SagaID                string                      `json:"sagaId"`
	RestaurantID          string                      `json:"restaurantId"`
	OrderID               string                      `json:"orderId"`
	RestaurantOrderStatus string                      `json:"restaurantOrderStatus"`
	Products              []RestaurantApprovalProduct `json:"products"`
	Price                 decimal.Decimal             `json:"price"`
	CreatedAt             time.Time                   `json:"createdAt"`
}

// RestaurantApprovalResponseMessage carries the restaurant decision back to the order service.
type RestaurantApprovalResponseMessage struct {
	ID                  string    `json:"id"`
	SagaID              string    `json:"sagaId"`
	OrderID             string    `json:"orderId"`
	RestaurantID        string    `json:"restaurantId"`
	CreatedAt           time.Time `json:"createdAt"`
	OrderApprovalStatus string    `json:"orderApprovalStatus"`
	FailureMessages     []string  `json:"failureMessages"`
}
