package approval

import (
	"errors"
	"fmt"
	"time"

	"foodordering/internal/core/domain/model/kernel"
	"foodordering/internal/core/domain/model/order"
	"foodordering/internal/pkg/errs"
)

var ErrRestaurantIsNotConstructed = errors.New("approval Restaurant must be created via NewRestaurant constructor")

// Restaurant is the restaurant side aggregate deciding whether a paid order is
// accepted. It is built from an approval request and then completed with
// catalog data through ApplyCatalog.
type Restaurant struct {
	id          kernel.RestaurantID
	orderDetail *OrderDetail
	active      bool

	isConstructed bool
}

func NewRestaurant(id kernel.RestaurantID, orderDetail *OrderDetail) (*Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if orderDetail == nil {
		return nil, errs.NewValueIsRequiredError("orderDetail")
	}
	return &Restaurant{id: id, orderDetail: orderDetail, isConstructed: true}, nil
}

func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

func (r *Restaurant) ID() kernel.RestaurantID { return r.id }
func (r *Restaurant) OrderDetail() *OrderDetail { return r.orderDetail }
func (r *Restaurant) IsActive() bool { return r.active }

// ProductIDs returns the ids of the ordered products.
func (r *Restaurant) ProductIDs() []kernel.ProductID {
	ids := make([]kernel.ProductID, 0, len(r.orderDetail.products))
	for _, p := range r.orderDetail.products {
		ids = append(ids, p.id)
	}
	return ids
}

// ApplyCatalog records the active flag and confirms every ordered product found
// in catalog. Products missing from the catalog stay unavailable.
func (r *Restaurant) ApplyCatalog(active bool, catalog []*Product) {
	r.active = active
	byID := make(map[kernel.ProductID]*Product, len(catalog))
	for _, p := range catalog {
		byID[p.id] = p
	}
	for _, p := range r.orderDetail.products {
		if c, ok := byID[p.id]; ok {
			p.UpdateWithConfirmedNamePriceAndAvailability(c.name, c.price, c.available)
		}
	}
}

// ValidateOrder returns the reasons the order cannot be approved. An empty
// result means the order is accepted.
func (r *Restaurant) ValidateOrder() []string {
	var failures []string
	detail := r.orderDetail

	if !r.active {
		failures = append(failures, fmt.Sprintf("Restaurant with id %s is currently not active!", r.id))
	}
	if detail.orderStatus != order.Paid {
		failures = append(failures, fmt.Sprintf("Payment is not completed for order: %s", detail.id))
	}

	total := kernel.ZeroMoney()
	for _, p := range detail.products {
		if !p.available {
			failures = append(failures, fmt.Sprintf("Product with id: %s is not available", p.id))
		}
		total = total.Add(p.price.Multiply(p.quantity))
	}
	if !total.IsEqual(detail.totalAmount) {
		failures = append(failures, fmt.Sprintf("Price total is not correct for order: %s", detail.id))
	}

	return failures
}

// ConstructOrderApproval builds the approval record for the current order.
func (r *Restaurant) ConstructOrderApproval(status Status) (*OrderApproval, error) {
	return NewOrderApproval(kernel.NewUUID(), r.id, r.orderDetail.id, status)
}

// OrderApprovalEvent is the outcome of a restaurant approval.
type OrderApprovalEvent struct {
	Approval        *OrderApproval
	FailureMessages []string
	CreatedAt       time.Time
}
