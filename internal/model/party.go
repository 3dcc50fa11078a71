// Package model holds the invoice entity model and its arithmetic
// contracts: parties, line items, aggregate totals, per-rate VAT breakdown
// and the rounding difference. Everything here is pure computation over
// caller-supplied data; rendering layers consume it read-only.
package model

import "fmt"

// PartyRole distinguishes the two sides of an invoice. Client and Provider
// share one shape; only the role tag differs.
type PartyRole string

const (
	RoleClient   PartyRole = "client"
	RoleProvider PartyRole = "provider"
)

// Party is the address, contact and banking block for one side of an
// invoice. Summary is required; every other field is optional free text.
// A Party may be attached to any number of invoices; invoices read the
// current field values and never snapshot them.
type Party struct {
	Role    PartyRole
	Summary string

	Division string
	Address  string
	City     string
	ZipCode  string
	Country  string

	Phone string
	Email string

	BankName    string
	BankAccount string
	BankCode    string

	Note    string
	VATID   string
	VATNote string
	// IR is the tax-registration identifier (ICO in the Czech system).
	IR string

	LogoFilename string
}

// NewClient creates a client-side party. Summary is required.
func NewClient(summary string) (*Party, error) {
	return newParty(RoleClient, summary)
}

// NewProvider creates a provider-side party. Summary is required.
func NewProvider(summary string) (*Party, error) {
	return newParty(RoleProvider, summary)
}

func newParty(role PartyRole, summary string) (*Party, error) {
	if summary == "" {
		return nil, NewValidationError("summary", nil, "required", "party summary must not be empty")
	}
	return &Party{Role: role, Summary: summary}, nil
}

// AddressLines returns the display lines of the party address in the order
// renderers print them: summary, optional division, street, "zip city",
// optional country, optional VAT and tax registration lines.
func (p *Party) AddressLines() []string {
	lines := []string{p.Summary}
	if p.Division != "" {
		lines = append(lines, p.Division)
	}
	lines = append(lines,
		p.Address,
		fmt.Sprintf("%s %s", p.ZipCode, p.City),
	)
	if p.Country != "" {
		lines = append(lines, p.Country)
	}
	if p.VATID != "" {
		lines = append(lines, fmt.Sprintf("VAT id: %s", p.VATID))
	}
	if p.IR != "" {
		lines = append(lines, fmt.Sprintf("Tax id: %s", p.IR))
	}
	return lines
}

// ContactLines returns the non-empty contact lines (phone, then email).
func (p *Party) ContactLines() []string {
	lines := make([]string, 0, 2)
	if p.Phone != "" {
		lines = append(lines, p.Phone)
	}
	if p.Email != "" {
		lines = append(lines, p.Email)
	}
	return lines
}

// BankAccountDisplay returns "<account>/<bank code>" when a bank code is
// set, otherwise the bare account number.
func (p *Party) BankAccountDisplay() string {
	if p.BankCode != "" {
		return fmt.Sprintf("%s/%s", p.BankAccount, p.BankCode)
	}
	return p.BankAccount
}
