package cmd

import (
	"fmt"
	"net/url"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HTTPPort   string `envconfig:"HTTP_PORT" default:"8080"`
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD" default:"postgres"`
	DBName     string `envconfig:"DB_NAME" default:"foodordering"`
	DBSslMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
	AppMode    string `envconfig:"APP_MODE" default:"DEV"`

	// KafkaBrokers is a comma separated list. Empty disables the Kafka
	// publisher, the approval consumer and the outbox relay.
	KafkaBrokers                     string `envconfig:"KAFKA_BROKERS" default:""`
	KafkaConsumerGroup               string `envconfig:"KAFKA_CONSUMER_GROUP" default:"restaurant-approval"`
	KafkaPaymentRequestTopic         string `envconfig:"KAFKA_PAYMENT_REQUEST_TOPIC" default:"payment-request"`
	KafkaRestaurantApprovalTopic     string `envconfig:"KAFKA_RESTAURANT_APPROVAL_TOPIC" default:"restaurant-approval-request"`
	KafkaRestaurantApprovalRespTopic string `envconfig:"KAFKA_RESTAURANT_APPROVAL_RESPONSE_TOPIC" default:"restaurant-approval-response"`

	OutboxBatchSize int    `envconfig:"OUTBOX_BATCH_SIZE" default:"100"`
	OutboxSchedule  string `envconfig:"OUTBOX_SCHEDULE" default:"*/2 * * * * *"`
}

// LoadConfig reads an optional .env file and then the environment.
// Variables already set in the environment win over the .env file.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// DSN returns the database connection string as a postgres:// URL, accepted
// by both gorm and the migrator.
func (c Config) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": []string{c.DBSslMode}}.Encode(),
	}
	return u.String()
}

func (c Config) KafkaEnabled() bool {
	return c.KafkaBrokers != ""
}
