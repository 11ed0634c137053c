package approval

import (
	"errors"
	"slices"

	"foodordering/internal/core/domain/model/kernel"
	"foodordering/internal/core/domain/model/order"
	"foodordering/internal/pkg/errs"
)

// OrderDetail is the order submitted to a restaurant for approval.
type OrderDetail struct {
	id          kernel.OrderID
	products    []*Product
	orderStatus order.Status
	totalAmount kernel.Money
}

func NewOrderDetail(
	id kernel.OrderID,
	products []*Product,
	orderStatus order.Status,
	totalAmount kernel.Money,
) (*OrderDetail, error) {
	var productsErr error
	if len(products) == 0 {
		productsErr = errs.NewValueIsRequiredError("products")
	}
	if err := errors.Join(id.Validate(), orderStatus.Validate(), productsErr); err != nil {
		return nil, err
	}
	return &OrderDetail{
		id:          id,
		products:    slices.Clone(products),
		orderStatus: orderStatus,
		totalAmount: totalAmount,
	}, nil
}

func (d *OrderDetail) ID() kernel.OrderID { return d.id }
func (d *OrderDetail) Products() []*Product { return slices.Clone(d.products) }
func (d *OrderDetail) OrderStatus() order.Status { return d.orderStatus }
func (d *OrderDetail) TotalAmount() kernel.Money { return d.totalAmount }
