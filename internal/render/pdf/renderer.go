// Package pdf renders an invoice into a printable A4 document. The layout
// follows the classic single-page invoice: provider and customer blocks,
// payment box, item table with or without tax columns, totals and the VAT
// breakdown. All labels arrive as resolved text via Labels; the renderer
// performs no translation lookups.
package pdf

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rezonia/invoice-generator/internal/model"
)

// Labels holds the display strings of the static layout. Callers wanting a
// localized document pass translated values; the defaults are English.
type Labels struct {
	Invoice            string
	Provider           string
	Customer           string
	PaymentInformation string
	BankAccount        string
	VariableSymbol     string
	SpecificSymbol     string
	IBAN               string
	SWIFT              string
	Date               string
	DueDate            string
	TaxableDate        string
	Paytype            string
	ListOfItems        string
	Description        string
	Units              string
	PricePerOne        string
	TotalPrice         string
	Tax                string
	TotalPriceWithTax  string
	Total              string
	TotalWithTax       string
	Rounding           string
	VATBreakdown       string
	Creator            string
	CorrectionOf       string
	CorrectionReason   string
}

// DefaultLabels returns the English label set.
func DefaultLabels() Labels {
	return Labels{
		Invoice:            "Invoice",
		Provider:           "Provider",
		Customer:           "Customer",
		PaymentInformation: "Payment information",
		BankAccount:        "Bank account",
		VariableSymbol:     "Variable symbol",
		SpecificSymbol:     "Specific symbol",
		IBAN:               "IBAN",
		SWIFT:              "SWIFT",
		Date:               "Date",
		DueDate:            "Due date",
		TaxableDate:        "Taxable date",
		Paytype:            "Paytype",
		ListOfItems:        "List of items",
		Description:        "Description",
		Units:              "Units",
		PricePerOne:        "Price per one",
		TotalPrice:         "Total price",
		Tax:                "Tax",
		TotalPriceWithTax:  "Total price with tax",
		Total:              "Total",
		TotalWithTax:       "Total with tax",
		Rounding:           "Rounding",
		VATBreakdown:       "VAT breakdown",
		Creator:            "Creator",
		CorrectionOf:       "Correction of invoice",
		CorrectionReason:   "Reason",
	}
}

// Renderer draws invoices with the gofpdf core fonts.
type Renderer struct {
	labels Labels
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLabels overrides the default label set.
func WithLabels(labels Labels) Option {
	return func(r *Renderer) {
		r.labels = labels
	}
}

// NewRenderer creates a renderer with the given options.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{labels: DefaultLabels()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render draws the invoice and writes the PDF to w.
func (r *Renderer) Render(inv *model.Invoice, w io.Writer) error {
	return r.render(inv, nil, w)
}

// RenderCorrection draws a correction document: the regular invoice layout
// plus a reference line naming the corrected invoice and the reason.
func (r *Renderer) RenderCorrection(corr *model.Correction, w io.Writer) error {
	if corr == nil {
		return model.NewValidationError("correction", nil, "required", "cannot render a nil correction")
	}
	return r.render(&corr.Invoice, corr, w)
}

func (r *Renderer) render(inv *model.Invoice, corr *model.Correction, w io.Writer) error {
	if inv == nil {
		return model.NewValidationError("invoice", nil, "required", "cannot render a nil invoice")
	}

	printer := newPrinter(inv.Locale)

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetTitle(inv.Title, true)
	doc.SetAuthor(inv.Creator().Name, true)
	doc.SetCreator(inv.Provider().Summary, true)
	doc.AddPage()
	tr := doc.UnicodeTranslatorFromDescriptor("")

	r.drawHeader(doc, tr, inv, corr)
	r.drawParties(doc, tr, inv)
	r.drawPayment(doc, tr, inv)
	r.drawDates(doc, tr, inv)
	r.drawItems(doc, tr, printer, inv)
	r.drawSignature(doc, tr, inv)

	return doc.Output(w)
}

func newPrinter(locale string) *message.Printer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return message.NewPrinter(tag)
}

func (r *Renderer) amount(p *message.Printer, v decimal.Decimal, currency string) string {
	f, _ := v.Float64()
	return p.Sprintf("%.2f %s", f, currency)
}

func (r *Renderer) drawHeader(doc *gofpdf.Fpdf, tr func(string) string, inv *model.Invoice, corr *model.Correction) {
	doc.SetFont("Helvetica", "B", 15)
	title := r.labels.Invoice
	if inv.Title != "" {
		title = inv.Title
	}
	doc.CellFormat(120, 10, tr(title), "", 0, "L", false, 0, "")

	doc.SetFont("Helvetica", "", 10)
	if inv.VariableSymbol != "" {
		doc.CellFormat(70, 10, tr(fmt.Sprintf("%s: %s", r.labels.VariableSymbol, inv.VariableSymbol)), "", 1, "R", false, 0, "")
	} else {
		doc.Ln(10)
	}

	if corr != nil {
		doc.SetFont("Helvetica", "B", 10)
		doc.CellFormat(0, 6, tr(fmt.Sprintf("%s %s", r.labels.CorrectionOf, corr.CorrectedNumber)), "", 1, "L", false, 0, "")
		if corr.Reason != "" {
			doc.SetFont("Helvetica", "", 9)
			doc.CellFormat(0, 5, tr(fmt.Sprintf("%s: %s", r.labels.CorrectionReason, corr.Reason)), "", 1, "L", false, 0, "")
		}
	}
	doc.Ln(4)
}

func (r *Renderer) drawParties(doc *gofpdf.Fpdf, tr func(string) string, inv *model.Invoice) {
	top := doc.GetY()

	r.drawPartyBlock(doc, tr, r.labels.Provider, inv.Provider(), 10, top)
	r.drawPartyBlock(doc, tr, r.labels.Customer, inv.Client(), 110, top)

	// move below the taller of the two blocks
	lines := len(inv.Provider().AddressLines()) + len(inv.Provider().ContactLines())
	if l := len(inv.Client().AddressLines()) + len(inv.Client().ContactLines()); l > lines {
		lines = l
	}
	doc.SetXY(10, top+8+float64(lines)*5+6)
}

func (r *Renderer) drawPartyBlock(doc *gofpdf.Fpdf, tr func(string) string, label string, party *model.Party, x, y float64) {
	doc.SetXY(x, y)
	doc.SetFont("Helvetica", "B", 12)
	doc.CellFormat(90, 7, tr(label), "", 2, "L", false, 0, "")

	doc.SetFont("Helvetica", "", 9)
	for _, line := range party.AddressLines() {
		doc.CellFormat(90, 5, tr(line), "", 2, "L", false, 0, "")
	}
	for _, line := range party.ContactLines() {
		doc.CellFormat(90, 5, tr(line), "", 2, "L", false, 0, "")
	}
	if party.Note != "" {
		doc.CellFormat(90, 5, tr(party.Note), "", 2, "L", false, 0, "")
	}
}

func (r *Renderer) drawPayment(doc *gofpdf.Fpdf, tr func(string) string, inv *model.Invoice) {
	provider := inv.Provider()

	doc.SetFont("Helvetica", "B", 10)
	doc.CellFormat(0, 6, tr(r.labels.PaymentInformation), "", 1, "L", false, 0, "")

	doc.SetFont("Helvetica", "", 9)
	lines := []string{}
	if provider.BankName != "" {
		lines = append(lines, provider.BankName)
	}
	if provider.BankAccount != "" {
		lines = append(lines, fmt.Sprintf("%s: %s", r.labels.BankAccount, provider.BankAccountDisplay()))
	}
	if inv.IBAN != "" {
		lines = append(lines, fmt.Sprintf("%s: %s", r.labels.IBAN, inv.IBAN))
	}
	if inv.SWIFT != "" {
		lines = append(lines, fmt.Sprintf("%s: %s", r.labels.SWIFT, inv.SWIFT))
	}
	if inv.VariableSymbol != "" {
		lines = append(lines, fmt.Sprintf("%s: %s", r.labels.VariableSymbol, inv.VariableSymbol))
	}
	if inv.SpecificSymbol != "" {
		lines = append(lines, fmt.Sprintf("%s: %s", r.labels.SpecificSymbol, inv.SpecificSymbol))
	}
	if inv.Paytype != "" {
		lines = append(lines, fmt.Sprintf("%s: %s", r.labels.Paytype, inv.Paytype))
	}
	for _, line := range lines {
		doc.CellFormat(0, 5, tr(line), "", 1, "L", false, 0, "")
	}
	doc.Ln(2)
}

func (r *Renderer) drawDates(doc *gofpdf.Fpdf, tr func(string) string, inv *model.Invoice) {
	doc.SetFont("Helvetica", "", 9)
	dates := []struct {
		label string
		value time.Time
	}{
		{r.labels.Date, inv.Date},
		{r.labels.DueDate, inv.DueDate},
		{r.labels.TaxableDate, inv.TaxableDate},
	}
	for _, d := range dates {
		if d.value.IsZero() {
			continue
		}
		doc.CellFormat(0, 5, tr(fmt.Sprintf("%s: %s", d.label, d.value.Format("2006-01-02"))), "", 1, "L", false, 0, "")
	}
	doc.Ln(4)
}

func (r *Renderer) drawItems(doc *gofpdf.Fpdf, tr func(string) string, printer *message.Printer, inv *model.Invoice) {
	withTax := inv.UseTax
	for _, item := range inv.Items() {
		if !item.Tax.IsZero() {
			withTax = true
		}
	}

	doc.SetFont("Helvetica", "B", 10)
	doc.CellFormat(0, 6, tr(r.labels.ListOfItems), "", 1, "L", false, 0, "")

	doc.SetFont("Helvetica", "B", 8)
	if withTax {
		doc.CellFormat(60, 6, tr(r.labels.Description), "1", 0, "L", false, 0, "")
		doc.CellFormat(22, 6, tr(r.labels.Units), "1", 0, "R", false, 0, "")
		doc.CellFormat(28, 6, tr(r.labels.PricePerOne), "1", 0, "R", false, 0, "")
		doc.CellFormat(28, 6, tr(r.labels.TotalPrice), "1", 0, "R", false, 0, "")
		doc.CellFormat(14, 6, tr(r.labels.Tax), "1", 0, "R", false, 0, "")
		doc.CellFormat(38, 6, tr(r.labels.TotalPriceWithTax), "1", 1, "R", false, 0, "")
	} else {
		doc.CellFormat(94, 6, tr(r.labels.Description), "1", 0, "L", false, 0, "")
		doc.CellFormat(24, 6, tr(r.labels.Units), "1", 0, "R", false, 0, "")
		doc.CellFormat(36, 6, tr(r.labels.PricePerOne), "1", 0, "R", false, 0, "")
		doc.CellFormat(36, 6, tr(r.labels.TotalPrice), "1", 1, "R", false, 0, "")
	}

	doc.SetFont("Helvetica", "", 8)
	for _, item := range inv.Items() {
		units := item.Count.String()
		if item.Unit != "" {
			units = fmt.Sprintf("%s %s", item.Count, item.Unit)
		}
		if withTax {
			doc.CellFormat(60, 6, tr(item.Description), "1", 0, "L", false, 0, "")
			doc.CellFormat(22, 6, tr(units), "1", 0, "R", false, 0, "")
			doc.CellFormat(28, 6, tr(r.amount(printer, item.Price, inv.Currency)), "1", 0, "R", false, 0, "")
			doc.CellFormat(28, 6, tr(r.amount(printer, item.Total(), inv.Currency)), "1", 0, "R", false, 0, "")
			doc.CellFormat(14, 6, tr(fmt.Sprintf("%s %%", item.Tax)), "1", 0, "R", false, 0, "")
			doc.CellFormat(38, 6, tr(r.amount(printer, item.TotalTax(), inv.Currency)), "1", 1, "R", false, 0, "")
		} else {
			doc.CellFormat(94, 6, tr(item.Description), "1", 0, "L", false, 0, "")
			doc.CellFormat(24, 6, tr(units), "1", 0, "R", false, 0, "")
			doc.CellFormat(36, 6, tr(r.amount(printer, item.Price, inv.Currency)), "1", 0, "R", false, 0, "")
			doc.CellFormat(36, 6, tr(r.amount(printer, item.Total(), inv.Currency)), "1", 1, "R", false, 0, "")
		}
	}
	doc.Ln(3)

	doc.SetFont("Helvetica", "B", 11)
	doc.CellFormat(0, 7, tr(fmt.Sprintf("%s: %s", r.labels.Total, r.amount(printer, inv.Price(), inv.Currency))), "", 1, "R", false, 0, "")
	if withTax {
		doc.CellFormat(0, 7, tr(fmt.Sprintf("%s: %s", r.labels.TotalWithTax, r.amount(printer, inv.PriceTax(), inv.Currency))), "", 1, "R", false, 0, "")
	}
	if inv.RoundingResult {
		doc.SetFont("Helvetica", "", 9)
		doc.CellFormat(0, 5, tr(fmt.Sprintf("%s: %s", r.labels.Rounding, r.amount(printer, inv.DifferenceInRounding(), inv.Currency))), "", 1, "R", false, 0, "")
	}

	if withTax {
		r.drawBreakdown(doc, tr, printer, inv)
	}
}

func (r *Renderer) drawBreakdown(doc *gofpdf.Fpdf, tr func(string) string, printer *message.Printer, inv *model.Invoice) {
	doc.Ln(3)
	doc.SetFont("Helvetica", "B", 9)
	doc.CellFormat(0, 6, tr(r.labels.VATBreakdown), "", 1, "L", false, 0, "")

	doc.SetFont("Helvetica", "B", 8)
	doc.CellFormat(20, 6, tr(r.labels.Tax), "1", 0, "R", false, 0, "")
	doc.CellFormat(40, 6, tr(r.labels.TotalPrice), "1", 0, "R", false, 0, "")
	doc.CellFormat(40, 6, tr(r.labels.Tax), "1", 0, "R", false, 0, "")
	doc.CellFormat(40, 6, tr(r.labels.TotalPriceWithTax), "1", 1, "R", false, 0, "")

	doc.SetFont("Helvetica", "", 8)
	for _, line := range inv.VATBreakdown() {
		doc.CellFormat(20, 6, tr(fmt.Sprintf("%s %%", line.Rate)), "1", 0, "R", false, 0, "")
		doc.CellFormat(40, 6, tr(r.amount(printer, line.Total, inv.Currency)), "1", 0, "R", false, 0, "")
		doc.CellFormat(40, 6, tr(r.amount(printer, line.Tax, inv.Currency)), "1", 0, "R", false, 0, "")
		doc.CellFormat(40, 6, tr(r.amount(printer, line.TotalTax, inv.Currency)), "1", 1, "R", false, 0, "")
	}
}

func (r *Renderer) drawSignature(doc *gofpdf.Fpdf, tr func(string) string, inv *model.Invoice) {
	doc.Ln(10)
	creator := inv.Creator()

	if creator.StampFilename != "" {
		if _, err := os.Stat(creator.StampFilename); err == nil {
			doc.ImageOptions(creator.StampFilename, 130, doc.GetY(), 50, 0, true,
				gofpdf.ImageOptions{ReadDpi: true}, 0, "")
		}
	}

	doc.SetFont("Helvetica", "", 9)
	doc.CellFormat(0, 6, tr(fmt.Sprintf("%s: %s", r.labels.Creator, creator.Name)), "T", 1, "R", false, 0, "")
}
