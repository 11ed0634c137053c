// Package outboxrepo stores outgoing broker messages in the outbox_messages table.
package outboxrepo

import (
	"context"
	"time"

	"foodordering/internal/core/domain/model/kernel"
	"foodordering/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OutboxMessageDTO represents a row of outbox_messages. SentAt is NULL until
// the relay published the message.
type OutboxMessageDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Topic      string     `gorm:"type:varchar(255);not null"`
	MessageKey string     `gorm:"type:varchar(255);not null"`
	Payload    []byte     `gorm:"type:bytea;not null"`
	CreatedAt  time.Time  `gorm:"not null"`
	SentAt     *time.Time `gorm:"index"`
}

func (OutboxMessageDTO) TableName() string {
	return "outbox_messages"
}

// GormOutboxRepository implements ports.OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

func (r *GormOutboxRepository) Add(ctx context.Context, message ports.OutboxMessage) error {
	if err := message.ID.Validate(); err != nil {
		return err
	}
	dto := OutboxMessageDTO{
		ID:         message.ID.Bytes(),
		Topic:      message.Topic,
		MessageKey: message.Key,
		Payload:    message.Payload,
		CreatedAt:  message.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

// FetchPending locks up to limit unsent messages, oldest first. Rows locked by
// another relay transaction are skipped.
func (r *GormOutboxRepository) FetchPending(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var dtos []OutboxMessageDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("sent_at IS NULL").
		Order("created_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		id, idErr := kernel.UUIDFromBytes(dto.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		messages = append(messages, ports.OutboxMessage{
			ID:        id,
			Topic:     dto.Topic,
			Key:       dto.MessageKey,
			Payload:   dto.Payload,
			CreatedAt: dto.CreatedAt,
		})
	}
	return messages, nil
}

func (r *GormOutboxRepository) MarkSent(ctx context.Context, ids []kernel.UUID, sentAt time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}
	return r.db.WithContext(ctx).
		Model(&OutboxMessageDTO{}).
		Where("id IN ?", raw).
		Update("sent_at", sentAt).Error
}
