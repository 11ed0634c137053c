package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodordering/cmd"
	httpin "foodordering/internal/adapters/in/http"
	kafkain "foodordering/internal/adapters/in/kafka"
	kafkaout "foodordering/internal/adapters/out/kafka"
	"foodordering/internal/adapters/out/postgres"
	"foodordering/internal/jobs"
	"foodordering/internal/pkg/logger"
	"foodordering/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	zapLogger, err := logger.New(config.LogLevel, config.AppMode)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		_ = zapLogger.Sync()
	}()

	if err = run(config, zapLogger); err != nil {
		zapLogger.Fatal("application stopped with error", zap.Error(err))
	}
}

func run(config cmd.Config, zapLogger *zap.Logger) error {
	if err := postgres.RunMigrations(config.DSN()); err != nil {
		return err
	}

	gormDB, err := gorm.Open(gorm_postgres.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	app := cmd.NewCompositionRoot(config, gormDB, zapLogger)

	jobManager, closeKafka, err := startKafka(config, &app, m, zapLogger)
	if err != nil {
		return err
	}
	defer closeKafka()
	defer jobManager.StopAll()

	server := httpin.NewServer(app.CreateCreateOrderCommandHandler(), app.CreateTrackOrderQueryHandler(), m, zapLogger)
	e, err := httpin.NewRouter(server, m, zapLogger)
	if err != nil {
		return err
	}

	return serve(e, config, zapLogger)
}

// startKafka wires the outbox relay and the approval consumer. Without
// brokers the outbox keeps accumulating and nothing is consumed.
func startKafka(
	config cmd.Config,
	app *cmd.CompositionRoot,
	m *metrics.Metrics,
	zapLogger *zap.Logger,
) (*jobs.JobManager, func(), error) {
	if !config.KafkaEnabled() {
		zapLogger.Warn("KAFKA_BROKERS is empty, outbox relay and approval consumer are disabled")
		return jobs.NewJobManager(), func() {}, nil
	}

	brokers := kafkaout.ParseBrokers(config.KafkaBrokers)
	publisher := kafkaout.NewPublisher(config.KafkaBrokers)
	relay, err := jobs.NewOutboxRelayJob(
		app.CreateRelayOutboxCommandHandler(publisher),
		config.OutboxSchedule,
		config.OutboxBatchSize,
		m,
		zapLogger,
	)
	if err != nil {
		return nil, nil, err
	}

	consumer := kafkain.NewApprovalRequestConsumer(
		brokers,
		config.KafkaRestaurantApprovalTopic,
		config.KafkaConsumerGroup,
		app.CreateApproveOrderCommandHandler(),
		m,
		zapLogger,
	)

	jobManager := jobs.NewJobManager(relay, jobs.NewConsumerJob(consumer.Run))
	if err = jobManager.StartAll(); err != nil {
		return nil, nil, err
	}

	closeAll := func() {
		if closeErr := consumer.Close(); closeErr != nil {
			zapLogger.Warn("failed to close kafka reader", zap.Error(closeErr))
		}
		if closeErr := publisher.Close(); closeErr != nil {
			zapLogger.Warn("failed to close kafka writer", zap.Error(closeErr))
		}
	}
	return jobManager, closeAll, nil
}

func serve(e *echo.Echo, config cmd.Config, zapLogger *zap.Logger) error {
	if config.AppMode == logger.ModeDevelop {
		e.Logger.SetLevel(log.DEBUG)
	} else {
		e.Logger.SetLevel(log.WARN)
	}

	errCh := make(chan error, 1)
	go func() {
		zapLogger.Info("starting HTTP server", zap.String("port", config.HTTPPort))
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	zapLogger.Info("shutting down HTTP server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return e.Shutdown(ctx)
}
