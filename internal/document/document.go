// Package document defines the JSON interchange format accepted by the CLI
// and the HTTP API, and builds validated model entities from it. All the
// entity-level preconditions surface here with field context; a document
// that fails to build produces no partial model.
package document

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rezonia/invoice-generator/internal/model"
	"github.com/rezonia/invoice-generator/internal/money"
)

// dateLayout is the wire format for the three invoice dates.
const dateLayout = "2006-01-02"

// Party mirrors model.Party on the wire.
type Party struct {
	Summary      string `json:"summary"`
	Division     string `json:"division,omitempty"`
	Address      string `json:"address,omitempty"`
	City         string `json:"city,omitempty"`
	ZipCode      string `json:"zip_code,omitempty"`
	Country      string `json:"country,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
	BankName     string `json:"bank_name,omitempty"`
	BankAccount  string `json:"bank_account,omitempty"`
	BankCode     string `json:"bank_code,omitempty"`
	Note         string `json:"note,omitempty"`
	VATID        string `json:"vat_id,omitempty"`
	VATNote      string `json:"vat_note,omitempty"`
	IR           string `json:"ir,omitempty"`
	LogoFilename string `json:"logo_filename,omitempty"`
}

// Creator mirrors model.Creator on the wire.
type Creator struct {
	Name          string `json:"name"`
	StampFilename string `json:"stamp_filename,omitempty"`
}

// Item is one invoice line. Decimal fields accept JSON numbers or numeric
// strings. Count and price are required; a missing tax means zero.
type Item struct {
	Count       *decimal.Decimal `json:"count"`
	Price       *decimal.Decimal `json:"price"`
	Description string           `json:"description,omitempty"`
	Unit        string           `json:"unit,omitempty"`
	Tax         *decimal.Decimal `json:"tax,omitempty"`
}

// CorrectionRef marks a document as a correction of a prior invoice.
type CorrectionRef struct {
	Number string `json:"number"`
	Reason string `json:"reason,omitempty"`
}

// Invoice is the top-level interchange document.
type Invoice struct {
	Title          string `json:"title,omitempty"`
	Number         string `json:"number,omitempty"`
	VariableSymbol string `json:"variable_symbol,omitempty"`
	SpecificSymbol string `json:"specific_symbol,omitempty"`
	IBAN           string `json:"iban,omitempty"`
	SWIFT          string `json:"swift,omitempty"`
	Currency       string `json:"currency,omitempty"`
	Locale         string `json:"locale,omitempty"`

	Date        string `json:"date,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
	TaxableDate string `json:"taxable_date,omitempty"`

	Paytype string `json:"paytype,omitempty"`

	UseTax           bool   `json:"use_tax,omitempty"`
	RoundingResult   bool   `json:"rounding_result,omitempty"`
	RoundingStrategy string `json:"rounding_strategy,omitempty"`

	Client   Party   `json:"client"`
	Provider Party   `json:"provider"`
	Creator  Creator `json:"creator"`
	Items    []Item  `json:"items"`

	Correction *CorrectionRef `json:"correction,omitempty"`
}

// Parse decodes an interchange document from r.
func Parse(r io.Reader) (*Invoice, error) {
	var doc Invoice
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Build materializes the document into a validated model invoice. When the
// document carries a correction block, the returned invoice is the embedded
// invoice of the correction also returned; otherwise the correction is nil.
func (d *Invoice) Build() (*model.Invoice, *model.Correction, error) {
	client, err := buildParty(model.RoleClient, d.Client)
	if err != nil {
		return nil, nil, err
	}
	provider, err := buildParty(model.RoleProvider, d.Provider)
	if err != nil {
		return nil, nil, err
	}
	creator, err := model.NewCreator(d.Creator.Name)
	if err != nil {
		return nil, nil, err
	}
	creator.StampFilename = d.Creator.StampFilename

	var inv *model.Invoice
	var corr *model.Correction
	if d.Correction != nil {
		corr, err = model.NewCorrection(client, provider, creator, d.Correction.Number, d.Correction.Reason)
		if err != nil {
			return nil, nil, err
		}
		inv = &corr.Invoice
	} else {
		inv, err = model.NewInvoice(client, provider, creator)
		if err != nil {
			return nil, nil, err
		}
	}

	if err := d.applyScalars(inv); err != nil {
		return nil, nil, err
	}

	for i, line := range d.Items {
		if line.Count == nil {
			return nil, nil, model.NewValidationError(fmt.Sprintf("items[%d].count", i), nil, "required", "item count must be present")
		}
		if line.Price == nil {
			return nil, nil, model.NewValidationError(fmt.Sprintf("items[%d].price", i), nil, "required", "item price must be present")
		}
		item := model.NewItem(*line.Count, *line.Price)
		item.Description = line.Description
		item.Unit = line.Unit
		if line.Tax != nil {
			item.Tax = *line.Tax
		}
		if err := inv.AddItem(item); err != nil {
			return nil, nil, err
		}
	}

	return inv, corr, nil
}

func (d *Invoice) applyScalars(inv *model.Invoice) error {
	inv.Title = d.Title
	inv.Number = d.Number
	inv.VariableSymbol = d.VariableSymbol
	inv.SpecificSymbol = d.SpecificSymbol
	inv.IBAN = d.IBAN
	inv.SWIFT = d.SWIFT
	if d.Currency != "" {
		inv.Currency = d.Currency
	}
	if d.Locale != "" {
		inv.Locale = d.Locale
	}
	inv.Paytype = d.Paytype
	inv.UseTax = d.UseTax
	inv.RoundingResult = d.RoundingResult

	if d.RoundingStrategy != "" {
		strategy, err := money.ParseStrategy(d.RoundingStrategy)
		if err != nil {
			return model.NewValidationError("rounding_strategy", d.RoundingStrategy, "enum", err.Error())
		}
		inv.Rounding = strategy
	}

	var err error
	if inv.Date, err = parseDate("date", d.Date); err != nil {
		return err
	}
	if inv.DueDate, err = parseDate("due_date", d.DueDate); err != nil {
		return err
	}
	if inv.TaxableDate, err = parseDate("taxable_date", d.TaxableDate); err != nil {
		return err
	}
	return nil
}

func buildParty(role model.PartyRole, p Party) (*model.Party, error) {
	var party *model.Party
	var err error
	switch role {
	case model.RoleClient:
		party, err = model.NewClient(p.Summary)
	default:
		party, err = model.NewProvider(p.Summary)
	}
	if err != nil {
		return nil, err
	}

	party.Division = p.Division
	party.Address = p.Address
	party.City = p.City
	party.ZipCode = p.ZipCode
	party.Country = p.Country
	party.Phone = p.Phone
	party.Email = p.Email
	party.BankName = p.BankName
	party.BankAccount = p.BankAccount
	party.BankCode = p.BankCode
	party.Note = p.Note
	party.VATID = p.VATID
	party.VATNote = p.VATNote
	party.IR = p.IR
	party.LogoFilename = p.LogoFilename
	return party, nil
}

func parseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, model.NewCoercionError(field, value, err)
	}
	return t, nil
}
