// Package money defines the decimal arithmetic policy shared by the whole
// invoice engine: every monetary value and tax rate is a
// shopspring/decimal.Decimal, and all text-to-decimal coercion goes through
// the parse helpers here so a bad literal fails loudly instead of storing a
// wrong value.
package money

import (
	"github.com/shopspring/decimal"
)

// Zero is decimal zero
var Zero = decimal.Zero

// Hundred is used for percentage arithmetic
var Hundred = decimal.NewFromInt(100)

// Parse parses a decimal from string
func Parse(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

// ParseOptional parses a decimal from string, treating the empty string as
// zero. Absent values normalize to zero, never to a null amount.
func ParseOptional(s string) (decimal.Decimal, error) {
	if s == "" {
		return Zero, nil
	}
	return decimal.NewFromString(s)
}

// Sum sums a slice of decimals
func Sum(values []decimal.Decimal) decimal.Decimal {
	result := Zero
	for _, v := range values {
		result = result.Add(v)
	}
	return result
}

// PercentOf computes amount * (rate/100) without rounding.
// Totals keep full precision; rounding is a separate, explicit step.
func PercentOf(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate).Div(Hundred)
}
