// Package invoicegen provides the public API for building invoices and
// computing their financial totals.
//
// Callers construct the parties and the creator, bind them into an Invoice,
// append items and read the aggregate values. Renderers (PDF, Pohoda XML)
// consume the computed invoice through its read accessors.
//
// Example usage:
//
//	client, _ := invoicegen.NewClient("XYZ Corp")
//	provider, _ := invoicegen.NewProvider("ABC Company")
//	creator, _ := invoicegen.NewCreator("John Doe")
//
//	inv, err := invoicegen.NewInvoice(client, provider, creator)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	item, _ := invoicegen.NewItemFromStrings("5", "290", "21")
//	inv.AddItem(item)
//	fmt.Println(inv.PriceTax())
package invoicegen

import (
	"github.com/rezonia/invoice-generator/internal/model"
	"github.com/rezonia/invoice-generator/internal/money"
)

// Re-export core types for public API
type (
	Invoice    = model.Invoice
	Correction = model.Correction
	Item       = model.Item
	Party      = model.Party
	PartyRole  = model.PartyRole
	Creator    = model.Creator
	TaxLine    = model.TaxLine
	Strategy   = money.Strategy
)

// Re-export party roles
const (
	RoleClient   = model.RoleClient
	RoleProvider = model.RoleProvider
)

// Re-export rounding strategies
const (
	HalfEven = money.HalfEven
	HalfUp   = money.HalfUp
	HalfDown = money.HalfDown
	Ceiling  = money.Ceiling
	Floor    = money.Floor
)

// Re-export constructors
var (
	NewClient          = model.NewClient
	NewProvider        = model.NewProvider
	NewCreator         = model.NewCreator
	NewItem            = model.NewItem
	NewItemFromStrings = model.NewItemFromStrings
	NewInvoice         = model.NewInvoice
	NewCorrection      = model.NewCorrection
	ParseStrategy      = money.ParseStrategy
)

// Re-export error types
type (
	ValidationError = model.ValidationError
	CoercionError   = model.CoercionError
)
