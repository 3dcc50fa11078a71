package server

import (
	"github.com/shopspring/decimal"
)

// TaxLineOutput is one VAT breakdown group in API responses.
type TaxLineOutput struct {
	Rate     decimal.Decimal `json:"rate"`
	Total    decimal.Decimal `json:"total"`
	TotalTax decimal.Decimal `json:"total_tax"`
	Tax      decimal.Decimal `json:"tax"`
}

// CorrectionOutput echoes the correction reference of the request document.
type CorrectionOutput struct {
	Number string `json:"number"`
	Reason string `json:"reason,omitempty"`
}

// TotalsResponse is the response for the totals endpoint
type TotalsResponse struct {
	Price              decimal.Decimal   `json:"price"`
	PriceTax           decimal.Decimal   `json:"price_tax"`
	RoundingDifference decimal.Decimal   `json:"rounding_difference"`
	Currency           string            `json:"currency"`
	Breakdown          []TaxLineOutput   `json:"breakdown"`
	Correction         *CorrectionOutput `json:"correction,omitempty"`
}

// ErrorResponse is the standard error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
}
