package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rezonia/invoice-generator/internal/money"
)

// Invoice is the aggregate root. It borrows its client, provider and
// creator (they may be shared across invoices and are read live, never
// snapshotted) and exclusively owns its ordered item list. Totals are pure
// functions of the current items; nothing is stored or memoized.
//
// An Invoice is not safe for concurrent mutation. Callers that share one
// instance across goroutines must serialize writes; every item is validated
// before it is appended, so a reader racing a writer can observe a shorter
// list but never a half-added item.
type Invoice struct {
	client   *Party
	provider *Party
	creator  *Creator
	items    []*Item

	Title          string
	Number         string
	VariableSymbol string
	SpecificSymbol string
	IBAN           string
	SWIFT          string

	// Currency is the display currency code; Locale is the BCP-47 tag the
	// renderers use to format amounts. Both arrive as resolved text, the
	// core performs no lookups.
	Currency string
	Locale   string

	Date        time.Time
	DueDate     time.Time
	TaxableDate time.Time

	Paytype string

	// UseTax is set explicitly by the caller; it is not derived from the
	// items. Renderers use it to force the taxed column layout.
	UseTax bool

	// RoundingResult switches Price and PriceTax between full-precision
	// sums and sums rounded to a whole amount with the Rounding strategy.
	RoundingResult bool
	Rounding       money.Strategy
}

// TaxLine is one per-rate group of the VAT breakdown.
type TaxLine struct {
	Rate     decimal.Decimal
	Total    decimal.Decimal
	TotalTax decimal.Decimal
	Tax      decimal.Decimal
}

// NewInvoice creates an invoice bound to its three parties. All three are
// required and the party roles must match their position.
func NewInvoice(client, provider *Party, creator *Creator) (*Invoice, error) {
	if client == nil {
		return nil, NewValidationError("client", nil, "required", "invoice requires a client party")
	}
	if client.Role != RoleClient {
		return nil, NewValidationError("client", client.Role, "role", "party is not a client")
	}
	if provider == nil {
		return nil, NewValidationError("provider", nil, "required", "invoice requires a provider party")
	}
	if provider.Role != RoleProvider {
		return nil, NewValidationError("provider", provider.Role, "role", "party is not a provider")
	}
	if creator == nil {
		return nil, NewValidationError("creator", nil, "required", "invoice requires a creator")
	}
	return &Invoice{
		client:   client,
		provider: provider,
		creator:  creator,
		items:    []*Item{},
		Currency: "CZK",
		Locale:   "cs",
	}, nil
}

// Client returns the client party.
func (inv *Invoice) Client() *Party { return inv.client }

// Provider returns the provider party.
func (inv *Invoice) Provider() *Party { return inv.provider }

// Creator returns the invoice creator.
func (inv *Invoice) Creator() *Creator { return inv.creator }

// Items returns the item list in insertion order.
func (inv *Invoice) Items() []*Item { return inv.items }

// AddItem appends an item to the invoice. A nil item is a precondition
// violation; a rejected item leaves the list untouched.
func (inv *Invoice) AddItem(it *Item) error {
	if it == nil {
		return NewValidationError("item", nil, "required", "cannot add a nil item")
	}
	inv.items = append(inv.items, it)
	return nil
}

func (inv *Invoice) rawPrice() decimal.Decimal {
	totals := make([]decimal.Decimal, len(inv.items))
	for i, it := range inv.items {
		totals[i] = it.Total()
	}
	return money.Sum(totals)
}

func (inv *Invoice) rawPriceTax() decimal.Decimal {
	totals := make([]decimal.Decimal, len(inv.items))
	for i, it := range inv.items {
		totals[i] = it.TotalTax()
	}
	return money.Sum(totals)
}

// Price is the sum of item totals, rounded to a whole amount when
// RoundingResult is set.
func (inv *Invoice) Price() decimal.Decimal {
	return inv.applyRounding(inv.rawPrice())
}

// PriceTax is the sum of tax-inclusive item totals, rounded to a whole
// amount when RoundingResult is set.
func (inv *Invoice) PriceTax() decimal.Decimal {
	return inv.applyRounding(inv.rawPriceTax())
}

func (inv *Invoice) applyRounding(sum decimal.Decimal) decimal.Decimal {
	if inv.RoundingResult {
		return inv.Rounding.Round(sum)
	}
	return sum
}

// DifferenceInRounding is the rounded tax-inclusive total minus the
// unrounded one. It is informational and always computed with the
// configured strategy, whether or not RoundingResult is set.
func (inv *Invoice) DifferenceInRounding() decimal.Decimal {
	raw := inv.rawPriceTax()
	return inv.Rounding.Round(raw).Sub(raw)
}

// VATBreakdown groups the items by exact tax-rate value. Groups appear in
// insertion order of the first item carrying each rate. Rates are matched
// with decimal equality, so 21 and 21.0 land in the same group.
func (inv *Invoice) VATBreakdown() []TaxLine {
	lines := []TaxLine{}
	for _, it := range inv.items {
		idx := -1
		for i := range lines {
			if lines[i].Rate.Equal(it.Tax) {
				idx = i
				break
			}
		}
		if idx < 0 {
			lines = append(lines, TaxLine{Rate: it.Tax})
			idx = len(lines) - 1
		}
		lines[idx].Total = lines[idx].Total.Add(it.Total())
		lines[idx].TotalTax = lines[idx].TotalTax.Add(it.TotalTax())
		lines[idx].Tax = lines[idx].Tax.Add(it.CountTax())
	}
	return lines
}

// VATBreakdownMap is the breakdown keyed by normalized rate string.
// Decimal values cannot key a Go map, so the canonical String form
// (trailing zeros trimmed) stands in for the rate.
func (inv *Invoice) VATBreakdownMap() map[string]TaxLine {
	m := make(map[string]TaxLine)
	for _, line := range inv.VATBreakdown() {
		m[line.Rate.String()] = line
	}
	return m
}
