package kernel_test

import (
	"testing"

	"foodordering/internal/core/domain/model/kernel"
	"foodordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func TestNewMoney(t *testing.T) {
	t.Run("accepts zero and positive amounts", func(t *testing.T) {
		for _, s := range []string{"0", "0.00", "50.00", "1234.5"} {
			_, err := kernel.NewMoney(decimal.RequireFromString(s))
			require.NoError(t, err, s)
		}
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.RequireFromString("-0.01"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects more than two decimal places", func(t *testing.T) {
		_, err := kernel.MoneyFromString("200.001")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "200.001 has more than 2 decimal places")
	})

	t.Run("accepts trailing zeros beyond two decimal places", func(t *testing.T) {
		m, err := kernel.MoneyFromString("200.010")

		require.NoError(t, err)
		assert.Equal(t, "200.01", m.String())
	})

	t.Run("rejects malformed strings", func(t *testing.T) {
		_, err := kernel.MoneyFromString("fifty")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	price := mustMoney(t, "50.00")

	t.Run("multiply by quantity", func(t *testing.T) {
		assert.Equal(t, "150.00", price.Multiply(3).String())
	})

	t.Run("add", func(t *testing.T) {
		assert.Equal(t, "200.00", price.Add(price.Multiply(3)).String())
	})

	t.Run("zero value behaves as zero", func(t *testing.T) {
		var zero kernel.Money

		assert.True(t, zero.IsEqual(kernel.ZeroMoney()))
		assert.Equal(t, "50.00", zero.Add(price).String())
		assert.False(t, zero.IsGreaterThanZero())
	})
}

func TestMoney_IsEqual(t *testing.T) {
	assert.True(t, mustMoney(t, "50").IsEqual(mustMoney(t, "50.00")))
	assert.False(t, mustMoney(t, "49.999").IsEqual(mustMoney(t, "50.00")))
}

func TestMoney_String(t *testing.T) {
	testCases := map[string]string{
		"250":    "250.00",
		"200.00": "200.00",
		"0.5":    "0.50",
		"60.0":   "60.00",
	}
	for in, want := range testCases {
		assert.Equal(t, want, mustMoney(t, in).String(), in)
	}
}
