package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Strategy selects the tie-breaking rule used when an invoice total is
// collapsed to a whole currency amount. Accounting reconciliation depends on
// which rule produced a number, so the strategy is carried as configuration
// rather than hardcoded.
type Strategy int

const (
	// HalfEven is banker's rounding, the default.
	HalfEven Strategy = iota
	// HalfUp rounds halves away from zero.
	HalfUp
	// HalfDown rounds halves toward zero.
	HalfDown
	// Ceiling rounds toward positive infinity.
	Ceiling
	// Floor rounds toward negative infinity.
	Floor
)

var strategyNames = map[Strategy]string{
	HalfEven: "half-even",
	HalfUp:   "half-up",
	HalfDown: "half-down",
	Ceiling:  "ceiling",
	Floor:    "floor",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}

// ParseStrategy parses a strategy name as used in documents and flags.
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if n == name {
			return s, nil
		}
	}
	return HalfEven, fmt.Errorf("unknown rounding strategy %q", name)
}

var half = decimal.RequireFromString("0.5")

// Round collapses d to an integral value using the strategy.
func (s Strategy) Round(d decimal.Decimal) decimal.Decimal {
	switch s {
	case HalfUp:
		return d.Round(0)
	case HalfDown:
		r := d.Abs().Sub(half).Ceil()
		if d.IsNegative() {
			return r.Neg()
		}
		return r
	case Ceiling:
		return d.RoundCeil(0)
	case Floor:
		return d.RoundFloor(0)
	default:
		return d.RoundBank(0)
	}
}
