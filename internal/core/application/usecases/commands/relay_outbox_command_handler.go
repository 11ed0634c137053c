package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"foodordering/internal/core/domain/model/kernel"
	"foodordering/internal/core/ports"
	"foodordering/internal/pkg/errs"
	"foodordering/internal/pkg/guard"

	"go.uber.org/zap"
)

const maxRelayBatchSize = 10_000

var ErrRelayOutboxCommandIsNotConstructed = errors.New(
	"RelayOutboxCommand must be created via NewRelayOutboxCommand constructor",
)

// RelayOutboxCommand publishes up to BatchSize pending outbox messages.
type RelayOutboxCommand struct {
	batchSize int

	guard guard.ConstructorGuard
}

func NewRelayOutboxCommand(batchSize int) (RelayOutboxCommand, error) {
	if batchSize <= 0 || batchSize > maxRelayBatchSize {
		return RelayOutboxCommand{}, errs.NewValueIsOutOfRangeError("batchSize", batchSize, 1, maxRelayBatchSize)
	}
	return RelayOutboxCommand{batchSize: batchSize, guard: guard.NewConstructorGuard()}, nil
}

func (c RelayOutboxCommand) Validate() error {
	return c.guard.Validate(ErrRelayOutboxCommandIsNotConstructed)
}

func (c RelayOutboxCommand) BatchSize() int {
	return c.batchSize
}

// RelayOutboxCommandHandler publishes pending outbox messages in creation
// order and marks them as sent. Publishing stops at the first failure, so a
// message is never sent before an older one; the failed message and the ones
// after it stay pending for the next run.
type RelayOutboxCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.MessagePublisher
	now        func() time.Time
	logger     *zap.Logger
}

func NewRelayOutboxCommandHandler(
	uowFactory OutboxUoWFactory,
	publisher ports.MessagePublisher,
	logger *zap.Logger,
) RelayOutboxCommandHandler {
	return RelayOutboxCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        func() time.Time { return time.Now().UTC() },
		logger:     logger.With(zap.String("component", "outbox-relay")),
	}
}

// Handle returns the messages that were published. When publishing fails the
// messages published before the failure are still marked as sent and returned
// together with the error.
func (h RelayOutboxCommandHandler) Handle(ctx context.Context, cmd RelayOutboxCommand) ([]ports.OutboxMessage, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pending, err := uow.OutboxRepository().FetchPending(ctx, cmd.BatchSize())
	if err != nil {
		return nil, err
	}
	if len(pending) == 0 {
		return nil, nil
	}

	sent := make([]ports.OutboxMessage, 0, len(pending))
	var publishErr error
	for _, msg := range pending {
		if publishErr = h.publisher.Publish(ctx, msg.Topic, msg.Key, msg.Payload); publishErr != nil {
			h.logger.Warn("failed to publish outbox message",
				zap.String("message_id", msg.ID.String()),
				zap.String("topic", msg.Topic),
				zap.Error(publishErr))
			break
		}
		sent = append(sent, msg)
	}

	if len(sent) > 0 {
		ids := make([]kernel.UUID, 0, len(sent))
		for _, msg := range sent {
			ids = append(ids, msg.ID)
		}
		if err = uow.OutboxRepository().MarkSent(ctx, ids, h.now()); err != nil {
			return nil, err
		}
		if err = uow.Commit(ctx); err != nil {
			return nil, err
		}
	}

	if publishErr != nil {
		return sent, fmt.Errorf("publish outbox message %s: %w", pending[len(sent)].ID, publishErr)
	}
	return sent, nil
}
