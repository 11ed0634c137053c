package jobs

import (
	"context"
	"errors"
	"testing"

	"foodordering/internal/core/application/usecases/commands"
	"foodordering/internal/core/ports"
	"foodordering/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockRelayHandler struct {
	mock.Mock
}

func (m *MockRelayHandler) Handle(ctx context.Context, cmd commands.RelayOutboxCommand) ([]ports.OutboxMessage, error) {
	args := m.Called(ctx, cmd)
	sent, _ := args.Get(0).([]ports.OutboxMessage)
	return sent, args.Error(1)
}

func TestOutboxRelayJob_RunCountsPublishedMessages(t *testing.T) {
	handler := &MockRelayHandler{}
	m := metrics.New(prometheus.NewRegistry())
	job, err := NewOutboxRelayJob(handler, "* * * * * *", 5, m, zap.NewNop())
	require.NoError(t, err)

	handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.RelayOutboxCommand) bool {
		return cmd.BatchSize() == 5
	})).Return([]ports.OutboxMessage{{Topic: "payment-request"}, {Topic: "payment-request"}}, nil).Once()

	job.Run()

	assert.InDelta(t, 2, testutil.ToFloat64(m.OutboxPublished.WithLabelValues("payment-request", "sent")), 0)
	handler.AssertExpectations(t)
}

func TestOutboxRelayJob_RunCountsFailures(t *testing.T) {
	handler := &MockRelayHandler{}
	m := metrics.New(prometheus.NewRegistry())
	job, err := NewOutboxRelayJob(handler, "* * * * * *", 5, m, zap.NewNop())
	require.NoError(t, err)

	handler.On("Handle", mock.Anything, mock.Anything).Return(nil, errors.New("broker down")).Once()

	job.Run()

	assert.InDelta(t, 1, testutil.ToFloat64(m.OutboxPublished.WithLabelValues("", "failed")), 0)
}

func TestNewOutboxRelayJob_InvalidBatchSize(t *testing.T) {
	_, err := NewOutboxRelayJob(&MockRelayHandler{}, "* * * * * *", 0, metrics.New(prometheus.NewRegistry()), zap.NewNop())

	require.Error(t, err)
}

func TestOutboxRelayJob_StartRejectsInvalidSchedule(t *testing.T) {
	job, err := NewOutboxRelayJob(&MockRelayHandler{}, "not a schedule", 5,
		metrics.New(prometheus.NewRegistry()), zap.NewNop())
	require.NoError(t, err)

	assert.Error(t, job.Start())
}

type fakeJob struct {
	startErr error
	started  bool
	stopped  bool
}

func (f *fakeJob) Start() error {
	if f.startErr != nil {
		return f.startErr
	}
	f.started = true
	return nil
}

func (f *fakeJob) Stop() { f.stopped = true }

func TestJobManager_StartFailureStopsStartedJobs(t *testing.T) {
	first := &fakeJob{}
	second := &fakeJob{startErr: errors.New("boom")}

	err := NewJobManager(first, second).StartAll()

	require.Error(t, err)
	assert.True(t, first.stopped)
	assert.False(t, second.started)
}

func TestJobManager_StopAll(t *testing.T) {
	first, second := &fakeJob{}, &fakeJob{}
	manager := NewJobManager(first, second)

	require.NoError(t, manager.StartAll())
	manager.StopAll()

	assert.True(t, first.stopped)
	assert.True(t, second.stopped)
}

func TestConsumerJob_StopCancelsRun(t *testing.T) {
	exited := false
	job := NewConsumerJob(func(ctx context.Context) error {
		<-ctx.Done()
		exited = true
		return nil
	})

	require.NoError(t, job.Start())
	job.Stop()

	assert.True(t, exited)
}
