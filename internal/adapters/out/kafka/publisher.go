// Package kafka publishes outbox messages to Kafka topics.
package kafka

import (
	"context"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// messageWriter is the subset of *kafka.Writer used by Publisher.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher implements ports.MessagePublisher. One writer serves every topic,
// the topic is set per message.
type Publisher struct {
	writer messageWriter
	now    func() time.Time
}

// NewPublisher creates a publisher for a comma separated broker list.
// Messages with the same key go to the same partition.
func NewPublisher(brokersCSV string) *Publisher {
	return newPublisher(&kafka.Writer{
		Addr:                   kafka.TCP(ParseBrokers(brokersCSV)...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	})
}

func newPublisher(writer messageWriter) *Publisher {
	return &Publisher{writer: writer, now: func() time.Time { return time.Now().UTC() }}
}

func (p *Publisher) Publish(ctx context.Context, topic, key string, payload []byte) error {
	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: payload,
		Time:  p.now(),
	})
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// ParseBrokers splits a comma separated broker list, dropping blanks.
func ParseBrokers(brokersCSV string) []string {
	brokers := []string{}
	for _, b := range strings.Split(brokersCSV, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
