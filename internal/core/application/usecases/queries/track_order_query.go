// Package queries contains read-only operations. Query handlers read straight
// from the database and return flat responses instead of loading aggregates.
package queries

import (
	"errors"

	"foodordering/internal/core/domain/model/kernel"
	"foodordering/internal/pkg/guard"
)

var ErrTrackOrderQueryIsNotConstructed = errors.New(
	"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
)

// TrackOrderQuery looks up an order by the tracking id handed out at creation.
//
// Example:
//
//	query, err := NewTrackOrderQuery(trackingID)
//	if err != nil {
//	    return err
//	}
//	resp, err := handler.Handle(ctx, query)
type TrackOrderQuery struct {
	trackingID kernel.TrackingID

	guard guard.ConstructorGuard
}

func NewTrackOrderQuery(trackingID kernel.TrackingID) (TrackOrderQuery, error) {
	if err := trackingID.Validate(); err != nil {
		return TrackOrderQuery{}, err
	}
	return TrackOrderQuery{trackingID: trackingID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

func (q TrackOrderQuery) TrackingID() kernel.TrackingID {
	return q.trackingID
}
