// Package kafka consumes restaurant approval requests from Kafka.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"foodordering/internal/core/application/dto"
	"foodordering/internal/pkg/errs"
	"foodordering/internal/pkg/metrics"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	defaultMaxAttempts = 3
	defaultRetryDelay  = 2 * time.Second
)

// messageReader is the subset of *kafka.Reader used by the consumer.
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type approvalHandler interface {
	Handle(ctx context.Context, req dto.RestaurantApprovalRequest) (dto.RestaurantApprovalResponseMessage, error)
}

// ApprovalRequestConsumer feeds restaurant approval requests to the approval
// handler. A message is committed once it was handled or found unprocessable.
// Infrastructure failures are retried up to maxAttempts times.
type ApprovalRequestConsumer struct {
	reader      messageReader
	handler     approvalHandler
	metrics     *metrics.Metrics
	logger      *zap.Logger
	maxAttempts int
	retryDelay  time.Duration
}

func NewApprovalRequestConsumer(
	brokers []string,
	topic, groupID string,
	handler approvalHandler,
	m *metrics.Metrics,
	logger *zap.Logger,
) *ApprovalRequestConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    topic,
		GroupID:  groupID,
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	return newApprovalRequestConsumer(reader, handler, m, logger)
}

func newApprovalRequestConsumer(
	reader messageReader,
	handler approvalHandler,
	m *metrics.Metrics,
	logger *zap.Logger,
) *ApprovalRequestConsumer {
	return &ApprovalRequestConsumer{
		reader:      reader,
		handler:     handler,
		metrics:     m,
		logger:      logger.With(zap.String("component", "approval-request-consumer")),
		maxAttempts: defaultMaxAttempts,
		retryDelay:  defaultRetryDelay,
	}
}

// Run consumes until ctx is cancelled. It returns nil on cancellation.
func (c *ApprovalRequestConsumer) Run(ctx context.Context) error {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			c.logger.Error("failed to fetch message", zap.Error(err))
			if !sleep(ctx, c.retryDelay) {
				return nil
			}
			continue
		}

		c.process(ctx, msg)

		if err = c.reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			c.logger.Error("failed to commit message", zap.Int64("offset", msg.Offset), zap.Error(err))
		}
	}
}

func (c *ApprovalRequestConsumer) process(ctx context.Context, msg kafka.Message) {
	var req dto.RestaurantApprovalRequest
	if err := json.Unmarshal(msg.Value, &req); err != nil {
		c.logger.Error("dropping undecodable approval request",
			zap.Int64("offset", msg.Offset), zap.Error(err))
		return
	}

	for attempt := 1; ; attempt++ {
		resp, err := c.handler.Handle(ctx, req)
		if err == nil {
			c.metrics.Approvals.WithLabelValues(resp.OrderApprovalStatus).Inc()
			c.logger.Debug("approval request handled",
				zap.String("order_id", resp.OrderID),
				zap.String("status", resp.OrderApprovalStatus))
			return
		}
		if !isRetryable(err) {
			c.logger.Warn("rejecting approval request",
				zap.String("order_id", req.OrderID), zap.Error(err))
			return
		}
		if attempt >= c.maxAttempts || !sleep(ctx, c.retryDelay) {
			c.logger.Error("giving up on approval request",
				zap.String("order_id", req.OrderID), zap.Int("attempts", attempt), zap.Error(err))
			return
		}
	}
}

// isRetryable reports whether err may succeed on a later attempt. Validation,
// domain and duplicate errors never do.
func isRetryable(err error) bool {
	switch {
	case errors.Is(err, errs.ErrDomain),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, errs.ErrConflict):
		return false
	default:
		return true
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func (c *ApprovalRequestConsumer) Close() error {
	return c.reader.Close()
}
