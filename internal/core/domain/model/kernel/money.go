package kernel

import (
	"fmt"

	"foodordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a non-negative decimal amount. It never goes through float64, so
// equality is exact: 50 and 50.00 are equal, 49.999 and 50.00 are not.
//
// The zero value is a valid amount of 0.00.
//
// Example:
//
//	price, _ := kernel.MoneyFromString("50.00")
//	subTotal := price.Multiply(3)
//	fmt.Println(subTotal) // 150.00
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns an amount of 0.00.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// moneyScale is the number of decimal places of an amount.
const moneyScale = 2

// NewMoney wraps amount. Negative amounts and amounts with more than two
// decimal places are rejected.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money", fmt.Errorf("%s is negative", amount.String()))
	}
	if !amount.Equal(amount.Round(moneyScale)) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money", fmt.Errorf("%s has more than %d decimal places", amount.String(), moneyScale))
	}
	return Money{amount: amount}, nil
}

// MoneyFromString parses a decimal literal such as "200.00".
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", err)
	}
	return NewMoney(amount)
}

// Amount returns the underlying decimal.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// IsGreaterThanZero reports whether the amount is strictly positive.
func (m Money) IsGreaterThanZero() bool {
	return m.amount.IsPositive()
}

// IsEqual compares amounts numerically.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Multiply returns m × quantity.
func (m Money) Multiply(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// String formats the amount with exactly two decimal places.
func (m Money) String() string {
	return m.amount.StringFixed(moneyScale)
}
