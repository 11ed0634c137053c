package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DB_HOST", "db")
	t.Setenv("KAFKA_BROKERS", "")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "payment-request", cfg.KafkaPaymentRequestTopic)
	assert.Equal(t, 100, cfg.OutboxBatchSize)
	assert.False(t, cfg.KafkaEnabled())
	assert.Equal(t, "postgres://postgres:postgres@db:5432/foodordering?sslmode=disable", cfg.DSN())
}

func TestLoadConfig_InvalidBatchSize(t *testing.T) {
	t.Setenv("OUTBOX_BATCH_SIZE", "many")

	_, err := LoadConfig()

	assert.Error(t, err)
}
