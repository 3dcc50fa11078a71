package model

import (
	"github.com/shopspring/decimal"

	"github.com/rezonia/invoice-generator/internal/money"
)

// Item is a single invoice line: quantity, unit price and a tax rate in
// percent. The derived values are recomputed from the current fields on
// every call; fields stay mutable after construction, so nothing is cached.
type Item struct {
	Count       decimal.Decimal
	Price       decimal.Decimal
	Description string
	Unit        string
	// Tax is a percentage. The zero value means untaxed; an absent rate
	// normalizes to zero, never to a null tax.
	Tax decimal.Decimal
}

// NewItem creates an item from its two required fields.
func NewItem(count, price decimal.Decimal) *Item {
	return &Item{Count: count, Price: price}
}

// NewItemFromStrings creates an item by coercing textual count, price and
// tax values. An empty tax means zero. Non-numeric input fails with a
// CoercionError and no item is created.
func NewItemFromStrings(count, price, tax string) (*Item, error) {
	c, err := money.Parse(count)
	if err != nil {
		return nil, NewCoercionError("count", count, err)
	}
	p, err := money.Parse(price)
	if err != nil {
		return nil, NewCoercionError("price", price, err)
	}
	t, err := money.ParseOptional(tax)
	if err != nil {
		return nil, NewCoercionError("tax", tax, err)
	}
	return &Item{Count: c, Price: p, Tax: t}, nil
}

// Total is price times quantity.
func (it *Item) Total() decimal.Decimal {
	return it.Price.Mul(it.Count)
}

// TotalTax is the tax-inclusive line total, price * count * (1 + tax/100).
func (it *Item) TotalTax() decimal.Decimal {
	return it.Total().Add(money.PercentOf(it.Total(), it.Tax))
}

// CountTax is the tax amount carried by this line.
func (it *Item) CountTax() decimal.Decimal {
	return it.TotalTax().Sub(it.Total())
}
