package order_test

import (
	"testing"

	"foodordering/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
)

func TestJoinFailureMessages(t *testing.T) {
	assert.Equal(t, "", order.JoinFailureMessages(nil))
	assert.Equal(t, "Payment failed,Restaurant closed",
		order.JoinFailureMessages([]string{"Payment failed", "Restaurant closed"}))
}

func TestSplitFailureMessages(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		want   []string
	}{
		{"empty", "", []string{}},
		{"single", "a", []string{"a"}},
		{"several", "a,b", []string{"a", "b"}},
		{"message containing the separator", "Price total is not correct, retry", []string{"Price total is not correct", " retry"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, order.SplitFailureMessages(tt.stored))
		})
	}
}
