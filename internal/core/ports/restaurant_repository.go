package ports

import (
	"context"

	"foodordering/internal/core/domain/model/approval"
	"foodordering/internal/core/domain/model/kernel"
	"foodordering/internal/core/domain/model/restaurant"
)

// RestaurantRepository resolves the catalog data needed to validate an order.
type RestaurantRepository interface {
	// FindRestaurantInformation takes a query built by restaurant.NewRestaurantQuery
	// and returns the restaurant with its active flag and the catalog entries of
	// the requested products. Products the restaurant does not sell are absent
	// from the result. Returns errs.ObjectNotFoundError for an unknown restaurant.
	FindRestaurantInformation(ctx context.Context, query *restaurant.Restaurant) (*restaurant.Restaurant, error)
}

// RestaurantCatalog is the restaurant side view of a restaurant: whether it
// is active and its catalog entries for a set of products.
type RestaurantCatalog struct {
	Active   bool
	Products []*approval.Product
}

// ApprovalRestaurantRepository is used by the restaurant approval workflow.
type ApprovalRestaurantRepository interface {
	// FindRestaurantInformation returns errs.ObjectNotFoundError for an unknown restaurant.
	FindRestaurantInformation(
		ctx context.Context,
		id kernel.RestaurantID,
		productIDs []kernel.ProductID,
	) (RestaurantCatalog, error)
}

// OrderApprovalRepository stores restaurant decisions.
type OrderApprovalRepository interface {
	Save(ctx context.Context, orderApproval *approval.OrderApproval) error
}
