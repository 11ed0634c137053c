package ports

import (
	"context"
	"time"

	"foodordering/internal/core/domain/model/kernel"
)

// IdempotencyRecord remembers the response of a create order request made
// with an Idempotency-Key.
type IdempotencyRecord struct {
	Key         string
	TrackingID  kernel.TrackingID
	OrderStatus string
	CreatedAt   time.Time
}

type IdempotencyRepository interface {
	// Find returns errs.ObjectNotFoundError when the key was never used.
	Find(ctx context.Context, key string) (IdempotencyRecord, error)

	// Save returns errs.ConflictError when the key is already stored.
	Save(ctx context.Context, record IdempotencyRecord) error
}
