package kafka

import (
	"context"
	"errors"
	"testing"
	"time"

	"foodordering/internal/core/application/dto"
	"foodordering/internal/core/domain/model/restaurant"
	"foodordering/internal/pkg/errs"
	"foodordering/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockReader struct {
	mock.Mock
}

func (m *MockReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	args := m.Called(ctx)
	return args.Get(0).(kafka.Message), args.Error(1)
}

func (m *MockReader) CommitMessages(ctx context.Context, msgs ...kafka.Message) error {
	return m.Called(ctx, msgs).Error(0)
}

func (m *MockReader) Close() error {
	return m.Called().Error(0)
}

type MockApprovalHandler struct {
	mock.Mock
}

func (m *MockApprovalHandler) Handle(
	ctx context.Context,
	req dto.RestaurantApprovalRequest,
) (dto.RestaurantApprovalResponseMessage, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(dto.RestaurantApprovalResponseMessage), args.Error(1)
}

const requestJSON = `{"id":"r-1","sagaId":"s-1","restaurantId":"rest-1","orderId":"order-1",` +
	`"restaurantOrderStatus":"PAID","products":[],"price":"10.00","createdAt":"2024-01-01T00:00:00Z"}`

func newTestConsumer(reader *MockReader, handler *MockApprovalHandler) *ApprovalRequestConsumer {
	c := newApprovalRequestConsumer(reader, handler, metrics.New(prometheus.NewRegistry()), zap.NewNop())
	c.retryDelay = time.Millisecond
	return c
}

// expectOneMessage makes the reader return msg once and then block until the
// context is cancelled.
func expectOneMessage(reader *MockReader, msg kafka.Message, cancel context.CancelFunc) {
	reader.On("FetchMessage", mock.Anything).Return(msg, nil).Once()
	reader.On("CommitMessages", mock.Anything, []kafka.Message{msg}).Return(nil).Once().
		Run(func(mock.Arguments) { cancel() })
	reader.On("FetchMessage", mock.Anything).Return(kafka.Message{}, context.Canceled).Maybe()
}

func TestApprovalRequestConsumer_HandlesAndCommits(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reader := &MockReader{}
	handler := &MockApprovalHandler{}
	msg := kafka.Message{Offset: 7, Value: []byte(requestJSON)}
	expectOneMessage(reader, msg, cancel)

	handler.On("Handle", mock.Anything, mock.MatchedBy(func(req dto.RestaurantApprovalRequest) bool {
		return req.OrderID == "order-1" && req.RestaurantID == "rest-1" && req.Price.String() == "10"
	})).Return(dto.RestaurantApprovalResponseMessage{OrderID: "order-1", OrderApprovalStatus: "APPROVED"}, nil).Once()

	err := newTestConsumer(reader, handler).Run(ctx)

	require.NoError(t, err)
	reader.AssertExpectations(t)
	handler.AssertExpectations(t)
}

func TestApprovalRequestConsumer_UndecodableMessageIsCommitted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reader := &MockReader{}
	handler := &MockApprovalHandler{}
	expectOneMessage(reader, kafka.Message{Value: []byte("not json")}, cancel)

	err := newTestConsumer(reader, handler).Run(ctx)

	require.NoError(t, err)
	handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	reader.AssertExpectations(t)
}

func TestApprovalRequestConsumer_DomainErrorIsNotRetried(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reader := &MockReader{}
	handler := &MockApprovalHandler{}
	expectOneMessage(reader, kafka.Message{Value: []byte(requestJSON)}, cancel)

	handler.On("Handle", mock.Anything, mock.Anything).
		Return(dto.RestaurantApprovalResponseMessage{},
			errs.NewDomainError(restaurant.ErrRestaurantNotFound, "Could not find restaurant")).Once()

	require.NoError(t, newTestConsumer(reader, handler).Run(ctx))
	handler.AssertNumberOfCalls(t, "Handle", 1)
}

func TestApprovalRequestConsumer_TransientErrorIsRetried(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reader := &MockReader{}
	handler := &MockApprovalHandler{}
	expectOneMessage(reader, kafka.Message{Value: []byte(requestJSON)}, cancel)

	handler.On("Handle", mock.Anything, mock.Anything).
		Return(dto.RestaurantApprovalResponseMessage{}, errors.New("connection reset")).Times(2)
	handler.On("Handle", mock.Anything, mock.Anything).
		Return(dto.RestaurantApprovalResponseMessage{OrderID: "order-1"}, nil).Once()

	require.NoError(t, newTestConsumer(reader, handler).Run(ctx))
	handler.AssertNumberOfCalls(t, "Handle", 3)
}

func TestApprovalRequestConsumer_GivesUpAfterMaxAttempts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reader := &MockReader{}
	handler := &MockApprovalHandler{}
	expectOneMessage(reader, kafka.Message{Value: []byte(requestJSON)}, cancel)

	handler.On("Handle", mock.Anything, mock.Anything).
		Return(dto.RestaurantApprovalResponseMessage{}, errors.New("connection reset"))

	require.NoError(t, newTestConsumer(reader, handler).Run(ctx))
	handler.AssertNumberOfCalls(t, "Handle", defaultMaxAttempts)
}

func TestIsRetryable(t *testing.T) {
	assert.False(t, isRetryable(errs.NewValueIsRequiredError("orderId")))
	assert.False(t, isRetryable(errs.NewConflictErrorWithCause("order approval", errors.New("dup"))))
	assert.True(t, isRetryable(errors.New("timeout")))
}
