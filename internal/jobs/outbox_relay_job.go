package jobs

import (
	"context"

	"foodordering/internal/core/application/usecases/commands"
	"foodordering/internal/core/ports"
	"foodordering/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type outboxRelayHandler interface {
	Handle(ctx context.Context, cmd commands.RelayOutboxCommand) ([]ports.OutboxMessage, error)
}

// OutboxRelayJob drains the outbox on a cron schedule.
type OutboxRelayJob struct {
	handler  outboxRelayHandler
	command  commands.RelayOutboxCommand
	schedule string
	cron     *cron.Cron
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewOutboxRelayJob creates the relay job. schedule is a six field cron
// expression (seconds first), e.g. "*/2 * * * * *".
func NewOutboxRelayJob(
	handler outboxRelayHandler,
	schedule string,
	batchSize int,
	m *metrics.Metrics,
	logger *zap.Logger,
) (*OutboxRelayJob, error) {
	cmd, err := commands.NewRelayOutboxCommand(batchSize)
	if err != nil {
		return nil, err
	}
	return &OutboxRelayJob{
		handler:  handler,
		command:  cmd,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		metrics:  m,
		logger:   logger.With(zap.String("component", "outbox_relay_job")),
	}, nil
}

// Start schedules the relay. Overlapping runs are skipped.
func (j *OutboxRelayJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Outbox relay job started", zap.String("schedule", j.schedule))
	return nil
}

// Run performs a single relay pass.
func (j *OutboxRelayJob) Run() {
	sent, err := j.handler.Handle(context.Background(), j.command)
	for _, msg := range sent {
		j.metrics.OutboxPublished.WithLabelValues(msg.Topic, "sent").Inc()
	}
	if err != nil {
		j.metrics.OutboxPublished.WithLabelValues("", "failed").Inc()
		j.logger.Error("Outbox relay job failed", zap.Error(err))
		return
	}
	if len(sent) > 0 {
		j.logger.Debug("Outbox messages relayed", zap.Int("count", len(sent)))
	}
}

// Stop stops scheduling and waits for a running pass to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Outbox relay job stopped")
}
