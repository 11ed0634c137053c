// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// An order is stored across the orders, order_items and order_addresses tables.
package orderrepo

import (
	"foodordering/internal/core/domain/model/kernel"
	"foodordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the orders table together with its associations.
type OrderDTO struct {
	ID              uuid.UUID        `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID        `gorm:"type:uuid;not null"`
	RestaurantID    uuid.UUID        `gorm:"type:uuid;not null"`
	TrackingID      uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex"`
	Price           decimal.Decimal  `gorm:"type:numeric(10,2);not null"`
	OrderStatus     string           `gorm:"type:varchar(20);not null"`
	FailureMessages string           `gorm:"type:text;not null;default:''"`
	Items           []OrderItemDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Address         *OrderAddressDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents a row of order_items.
type OrderItemDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Price     decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Quantity  int             `gorm:"not null"`
	SubTotal  decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

// OrderAddressDTO represents a row of order_addresses.
type OrderAddressDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Street     string    `gorm:"type:varchar(255);not null"`
	PostalCode string    `gorm:"type:varchar(255);not null"`
	City       string    `gorm:"type:varchar(255);not null"`
}

func (OrderAddressDTO) TableName() string {
	return "order_addresses"
}

// fromDomain converts a persisted order (its id assigned) to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()

	items := make([]OrderItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemDTO{
			ID:        item.ID().Bytes(),
			OrderID:   orderID,
			ProductID: item.Product().ID().Bytes(),
			Price:     item.Price().Amount(),
			Quantity:  item.Quantity(),
			SubTotal:  item.SubTotal().Amount(),
		})
	}

	address := o.DeliveryAddress()
	return OrderDTO{
		ID:              orderID,
		CustomerID:      o.CustomerID().Bytes(),
		RestaurantID:    o.RestaurantID().Bytes(),
		TrackingID:      o.TrackingID().Bytes(),
		Price:           o.Price().Amount(),
		OrderStatus:     o.Status().String(),
		FailureMessages: order.JoinFailureMessages(o.FailureMessages()),
		Items:           items,
		Address: &OrderAddressDTO{
			ID:         address.ID().Bytes(),
			OrderID:    orderID,
			Street:     address.Street(),
			PostalCode: address.PostalCode(),
			City:       address.City(),
		},
	}
}

// toDomain rebuilds the aggregate with RestoreOrder. Item products carry the
// stored item price; product names are not stored with the order.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID := kernel.OrderID{UUID: id}

	trackingID, err := kernel.UUIDFromBytes(dto.TrackingID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.OrderStatus)
	if err != nil {
		return nil, err
	}

	address, err := addressToDomain(dto.Address)
	if err != nil {
		return nil, err
	}

	items := make([]*order.OrderItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(orderID, itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	failures := order.SplitFailureMessages(dto.FailureMessages)

	return order.RestoreOrder(
		orderID,
		kernel.TrackingID{UUID: trackingID},
		kernel.CustomerID{UUID: customerID},
		kernel.RestaurantID{UUID: restaurantID},
		address,
		price,
		items,
		status,
		failures,
	)
}

func addressToDomain(dto *OrderAddressDTO) (order.StreetAddress, error) {
	if dto == nil {
		return order.StreetAddress{}, order.ErrStreetAddressIsNotConstructed
	}
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.StreetAddress{}, err
	}
	return order.NewStreetAddress(id, dto.Street, dto.PostalCode, dto.City)
}

func itemToDomain(orderID kernel.OrderID, dto OrderItemDTO) (*order.OrderItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}
	subTotal, err := kernel.NewMoney(dto.SubTotal)
	if err != nil {
		return nil, err
	}
	product, err := order.NewProduct(kernel.ProductID{UUID: productID}, "", price)
	if err != nil {
		return nil, err
	}
	return order.RestoreOrderItem(kernel.OrderItemID{UUID: id}, orderID, product, dto.Quantity, price, subTotal)
}
