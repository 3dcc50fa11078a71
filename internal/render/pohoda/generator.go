// Package pohoda exports an invoice as the XML interchange document of the
// Pohoda accounting system. It is a mechanical serializer over the computed
// model: all numbers come from the invoice's read accessors.
package pohoda

import (
	"fmt"
	"io"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rezonia/invoice-generator/internal/model"
)

// XML namespaces of the Pohoda version 2 schema
const (
	dataNS    = "http://www.stormware.cz/schema/version_2/data.xsd"
	invoiceNS = "http://www.stormware.cz/schema/version_2/invoice.xsd"
	typeNS    = "http://www.stormware.cz/schema/version_2/type.xsd"
)

// TaxBand maps a Pohoda rate name onto a percentage. Order matters: the
// summary element emits bands in this order.
type TaxBand struct {
	Name string
	Rate decimal.Decimal
}

// DefaultTaxBands returns the Czech rate mapping Pohoda ships with.
func DefaultTaxBands() []TaxBand {
	return []TaxBand{
		{Name: "high", Rate: decimal.NewFromInt(21)},
		{Name: "low", Rate: decimal.NewFromInt(15)},
		{Name: "none", Rate: decimal.Zero},
	}
}

// Generator builds Pohoda dataPack documents.
type Generator struct {
	bands []TaxBand
}

// Option configures a Generator.
type Option func(*Generator)

// WithTaxBands overrides the default rate mapping.
func WithTaxBands(bands []TaxBand) Option {
	return func(g *Generator) {
		g.bands = bands
	}
}

// NewGenerator creates a generator with the given options.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{bands: DefaultTaxBands()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds the XML document for an invoice. Items whose tax rate has
// no Pohoda band are still exported but reported in the returned warnings,
// since Pohoda will not accept a rate outside its mapping.
func (g *Generator) Generate(inv *model.Invoice) (*etree.Document, []string, error) {
	return g.generate(inv, "issuedInvoice")
}

// GenerateCorrection builds the XML document for a correction. The invoice
// type switches to the corrective document type and the corrected number
// and reason travel in the header text.
func (g *Generator) GenerateCorrection(corr *model.Correction) (*etree.Document, []string, error) {
	doc, warnings, err := g.generate(&corr.Invoice, "issuedCorrectiveTax")
	if err != nil {
		return nil, nil, err
	}
	header := doc.FindElement("//inv:invoiceHeader")
	if header != nil {
		note := header.CreateElement("inv:note")
		note.SetText(fmt.Sprintf("Corrects invoice %s: %s", corr.CorrectedNumber, corr.Reason))
	}
	return doc, warnings, nil
}

// Write generates the invoice document and writes it to w.
func (g *Generator) Write(inv *model.Invoice, w io.Writer) error {
	doc, _, err := g.Generate(inv)
	if err != nil {
		return err
	}
	doc.Indent(2)
	_, err = doc.WriteTo(w)
	return err
}

func (g *Generator) generate(inv *model.Invoice, invoiceType string) (*etree.Document, []string, error) {
	if inv == nil {
		return nil, nil, model.NewValidationError("invoice", nil, "required", "cannot export a nil invoice")
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	dataPack := doc.CreateElement("dat:dataPack")
	dataPack.CreateAttr("xmlns:dat", dataNS)
	dataPack.CreateAttr("xmlns:inv", invoiceNS)
	dataPack.CreateAttr("xmlns:typ", typeNS)
	dataPack.CreateAttr("version", "2.0")
	dataPack.CreateAttr("id", inv.Number)
	dataPack.CreateAttr("ico", inv.Provider().IR)
	dataPack.CreateAttr("application", "invoice-generator")
	dataPack.CreateAttr("note", "Generated by invoice-generator")

	packItem := dataPack.CreateElement("dat:dataPackItem")
	packItem.CreateAttr("version", "2.0")
	packItem.CreateAttr("id", inv.Number)

	xmlInvoice := packItem.CreateElement("inv:invoice")
	xmlInvoice.CreateAttr("version", "2.0")

	g.writeHeader(xmlInvoice.CreateElement("inv:invoiceHeader"), inv, invoiceType)

	detail := xmlInvoice.CreateElement("inv:invoiceDetail")
	var warnings []string
	for _, item := range inv.Items() {
		if warn := g.writeItem(detail, item); warn != "" {
			warnings = append(warnings, warn)
		}
	}

	g.writeSummary(xmlInvoice.CreateElement("inv:invoiceSummary"), inv)

	return doc, warnings, nil
}

func (g *Generator) writeHeader(header *etree.Element, inv *model.Invoice, invoiceType string) {
	setText(header, "inv:invoiceType", invoiceType)

	number := header.CreateElement("inv:number")
	setText(number, "typ:numberRequested", inv.Number)

	setDate(header, "inv:date", inv.Date)
	setDate(header, "inv:dateTax", inv.TaxableDate)
	setDate(header, "inv:dateDue", inv.DueDate)
	setText(header, "inv:text", inv.Title)
	setText(header, "inv:symVar", inv.VariableSymbol)
	setText(header, "inv:symSpec", inv.SpecificSymbol)

	account := header.CreateElement("inv:paymentAccount")
	setText(account, "typ:accountNo", inv.Provider().BankAccount)
	setText(account, "typ:bankCode", inv.Provider().BankCode)

	partner := header.CreateElement("inv:partnerIdentity")
	g.writeAddress(partner, inv.Client(), false)

	mine := header.CreateElement("inv:myIdentity")
	g.writeAddress(mine, inv.Provider(), true)
}

// Field length limits come from the Pohoda schema.
func (g *Generator) writeAddress(parent *etree.Element, party *model.Party, myAddress bool) {
	address := parent.CreateElement("typ:address")
	setText(address, "typ:company", party.Summary)
	setText(address, "typ:street", truncate(party.Address, 64))
	setText(address, "typ:city", truncate(party.City, 45))
	setText(address, "typ:zip", truncate(party.ZipCode, 15))
	setText(address, "typ:phone", truncate(party.Phone, 40))
	setText(address, "typ:ico", party.IR)
	setText(address, "typ:dic", party.VATID)
	setText(address, "typ:email", party.Email)
	// Division and country are not part of myIdentity
	if !myAddress {
		setText(address, "typ:division", truncate(party.Division, 32))
		setText(address, "typ:country", party.Country)
	}
}

func (g *Generator) writeItem(detail *etree.Element, item *model.Item) string {
	el := detail.CreateElement("inv:invoiceItem")
	setText(el, "inv:quantity", item.Count.String())
	setText(el, "inv:unit", item.Unit)

	currency := el.CreateElement("inv:homeCurrency")
	setText(currency, "typ:unitPrice", item.Price.String())

	setText(el, "inv:text", truncate(item.Description, 90))

	if name, ok := g.bandName(item.Tax); ok {
		setText(el, "inv:rateVAT", name)
		return ""
	}
	return fmt.Sprintf("tax rate %s is not among the rates accepted by Pohoda", item.Tax)
}

func (g *Generator) writeSummary(summary *etree.Element, inv *model.Invoice) {
	setText(summary, "inv:roundingDocument", "math2one")

	currency := summary.CreateElement("inv:homeCurrency")
	breakdown := inv.VATBreakdown()
	for _, band := range g.bands {
		line, ok := findLine(breakdown, band.Rate)
		if !ok {
			continue
		}
		camel := cases.Title(language.English).String(band.Name)
		setText(currency, "typ:price"+camel, line.TotalTax.String())
		if band.Name != "none" {
			setText(currency, "typ:price"+camel+"VAT", line.Tax.String())
		}
	}
}

func (g *Generator) bandName(rate decimal.Decimal) (string, bool) {
	for _, band := range g.bands {
		if band.Rate.Equal(rate) {
			return band.Name, true
		}
	}
	return "", false
}

func findLine(breakdown []model.TaxLine, rate decimal.Decimal) (model.TaxLine, bool) {
	for _, line := range breakdown {
		if line.Rate.Equal(rate) {
			return line, true
		}
	}
	return model.TaxLine{}, false
}

func setText(parent *etree.Element, tag, text string) {
	if text == "" {
		return
	}
	parent.CreateElement(tag).SetText(text)
}

func setDate(parent *etree.Element, tag string, t time.Time) {
	if t.IsZero() {
		return
	}
	setText(parent, tag, t.Format("2006-01-02"))
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
