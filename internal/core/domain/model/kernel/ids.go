package kernel

// Typed identifiers. Each embeds UUID so String, Bytes, IsZero and Validate
// are shared, while the compiler keeps a CustomerID from being passed where
// a RestaurantID is expected. Values are comparable with ==.
type (
	CustomerID   struct{ UUID }
	RestaurantID struct{ UUID }
	ProductID    struct{ UUID }
	OrderID      struct{ UUID }
	OrderItemID  struct{ UUID }
	// TrackingID is the client facing order identifier, generated when the
	// order is built and independent of the persisted OrderID.
	TrackingID struct{ UUID }
)

func NewOrderID() OrderID { return OrderID{NewUUID()} }
func NewOrderItemID() OrderItemID { return OrderItemID{NewUUID()} }
func NewTrackingID() TrackingID { return TrackingID{NewUUID()} }

func CustomerIDFromString(s string) (CustomerID, error) {
	id, err := UUIDFromString(s)
	return CustomerID{id}, err
}

func RestaurantIDFromString(s string) (RestaurantID, error) {
	id, err := UUIDFromString(s)
	return RestaurantID{id}, err
}

func ProductIDFromString(s string) (ProductID, error) {
	id, err := UUIDFromString(s)
	return ProductID{id}, err
}

func OrderIDFromString(s string) (OrderID, error) {
	id, err := UUIDFromString(s)
	return OrderID{id}, err
}

func TrackingIDFromString(s string) (TrackingID, error) {
	id, err := UUIDFromString(s)
	return TrackingID{id}, err
}
