package queries

import (
	"context"
	"errors"

	"foodordering/internal/core/application/dto"
	"foodordering/internal/core/domain/model/order"
	"foodordering/internal/pkg/errs"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

// TrackOrderQueryHandler returns the current status of an order.
//
// Example:
//
//	handler := NewTrackOrderQueryHandler(db)
//	resp, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown tracking id
//	}
type TrackOrderQueryHandler struct {
	db      *gorm.DB
	builder sq.StatementBuilderType
}

// NewTrackOrderQueryHandler creates a handler reading from db.
// Statements use "?" placeholders, gorm rewrites them for the dialect.
func NewTrackOrderQueryHandler(db *gorm.DB) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}
}

// Handle returns errs.ObjectNotFoundError when no order has the tracking id.
func (h TrackOrderQueryHandler) Handle(ctx context.Context, query TrackOrderQuery) (dto.TrackOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return dto.TrackOrderResponse{}, err
	}

	statement, args, err := h.builder.
		Select("tracking_id", "order_status", "failure_messages").
		From("orders").
		Where(sq.Eq{"tracking_id": query.TrackingID().String()}).
		Limit(1).
		ToSql()
	if err != nil {
		return dto.TrackOrderResponse{}, err
	}

	var row struct {
		TrackingID      string
		OrderStatus     string
		FailureMessages string
	}
	result := h.db.WithContext(ctx).Raw(statement, args...).Scan(&row)
	if result.Error != nil {
		return dto.TrackOrderResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return dto.TrackOrderResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"trackingId", query.TrackingID(), errors.New("order not found"))
	}

	return dto.TrackOrderResponse{
		OrderTrackingID: row.TrackingID,
		OrderStatus:     row.OrderStatus,
		FailureMessages: order.SplitFailureMessages(row.FailureMessages),
	}, nil
}
