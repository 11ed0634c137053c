package services

import (
	"time"

	"foodordering/internal/core/domain/model/approval"
)

// RestaurantApprovalService decides whether a restaurant accepts a paid order.
type RestaurantApprovalService struct {
	now func() time.Time
}

func NewRestaurantApprovalService() RestaurantApprovalService {
	return RestaurantApprovalService{now: func() time.Time { return time.Now().UTC() }}
}

// ValidateOrder runs every restaurant check and builds the approval record:
// APPROVED when no check failed, REJECTED with the collected messages otherwise.
// The restaurant must already carry its catalog data (see approval.Restaurant.ApplyCatalog).
func (s RestaurantApprovalService) ValidateOrder(r *approval.Restaurant) (approval.OrderApprovalEvent, error) {
	if err := r.Validate(); err != nil {
		return approval.OrderApprovalEvent{}, err
	}

	failures := r.ValidateOrder()
	status := approval.Approved
	if len(failures) > 0 {
		status = approval.Rejected
	}

	orderApproval, err := r.ConstructOrderApproval(status)
	if err != nil {
		return approval.OrderApprovalEvent{}, err
	}

	return approval.OrderApprovalEvent{
		Approval:        orderApproval,
		FailureMessages: failures,
		CreatedAt:       s.now(),
	}, nil
}
