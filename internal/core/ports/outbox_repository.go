package ports

import (
	"context"
	"time"

	"foodordering/internal/core/domain/model/kernel"
)

// OutboxMessage is a message stored in the same transaction as the state
// change it announces and relayed to the broker afterwards.
type OutboxMessage struct {
	ID        kernel.UUID
	Topic     string
	Key       string
	Payload   []byte
	CreatedAt time.Time
}

// OutboxRepository stores and drains outbox messages.
type OutboxRepository interface {
	Add(ctx context.Context, message OutboxMessage) error

	// FetchPending returns up to limit unsent messages, oldest first.
	FetchPending(ctx context.Context, limit int) ([]OutboxMessage, error)

	MarkSent(ctx context.Context, ids []kernel.UUID, sentAt time.Time) error
}

// MessagePublisher sends a payload to a broker topic.
type MessagePublisher interface {
	Publish(ctx context.Context, topic, key string, payload []byte) error
}
