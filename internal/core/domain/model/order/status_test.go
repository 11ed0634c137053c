package order_test

import (
	"testing"

	"foodordering/internal/core/domain/model/order"
	"foodordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name string
		want order.Status
	}{
		{"PENDING", order.Pending},
		{"PAID", order.Paid},
		{"APPROVED", order.Approved},
		{"CANCELLING", order.Cancelling},
		{"CANCELLED", order.Cancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := order.ParseStatus(tt.name)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.name, got.String())
		})
	}

	for _, name := range []string{"", "paid", "UNKNOWN", "SHIPPED"} {
		t.Run("rejects "+name, func(t *testing.T) {
			got, err := order.ParseStatus(name)

			require.Error(t, err)
			require.ErrorIs(t, err, order.ErrInvalidEnumValue)
			require.ErrorIs(t, err, errs.ErrDomain)
			assert.Equal(t, order.Unknown, got)
		})
	}
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, order.Pending.Validate())
	require.ErrorIs(t, order.Unknown.Validate(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, order.Status(42).Validate(), errs.ErrValueIsInvalid)
	assert.Equal(t, "UNKNOWN", order.Status(42).String())
}

func TestStatus_Transitions(t *testing.T) {
	type transition func(order.Status) (order.Status, error)

	initialize := order.Status.Initialize
	pay := order.Status.Pay
	approve := order.Status.Approve
	initCancel := order.Status.InitCancel
	cancel := order.Status.Cancel

	tests := []struct {
		name    string
		from    order.Status
		apply   transition
		want    order.Status
		wantErr bool
	}{
		{"initialize from unknown", order.Unknown, initialize, order.Pending, false},
		{"initialize twice", order.Pending, initialize, order.Pending, true},
		{"pay pending", order.Pending, pay, order.Paid, false},
		{"pay approved", order.Approved, pay, order.Approved, true},
		{"approve paid", order.Paid, approve, order.Approved, false},
		{"approve pending", order.Pending, approve, order.Pending, true},
		{"init cancel paid", order.Paid, initCancel, order.Cancelling, false},
		{"init cancel pending", order.Pending, initCancel, order.Pending, true},
		{"cancel pending", order.Pending, cancel, order.Cancelled, false},
		{"cancel cancelling", order.Cancelling, cancel, order.Cancelled, false},
		{"cancel paid", order.Paid, cancel, order.Paid, true},
		{"cancel approved", order.Approved, cancel, order.Approved, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.apply(tt.from)

			if tt.wantErr {
				require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatus_TransitionErrorMessage(t *testing.T) {
	_, err := order.Approved.Pay()

	require.Error(t, err)
	assert.Equal(t, "Order is not in correct state for pay operation!", err.Error())
}
