package pohoda_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/invoice-generator/internal/model"
	"github.com/rezonia/invoice-generator/internal/render/pohoda"
)

func sampleInvoice(t *testing.T) *model.Invoice {
	t.Helper()
	client, err := model.NewClient("XYZ Corp")
	require.NoError(t, err)
	client.Address = "Client street 1"
	client.City = "Brno"
	client.ZipCode = "60200"
	client.Country = "CZ"

	provider, err := model.NewProvider("ABC Company")
	require.NoError(t, err)
	provider.Address = "Provider square 2"
	provider.City = "Prague"
	provider.ZipCode = "11000"
	provider.BankAccount = "2600420569"
	provider.BankCode = "2010"
	provider.IR = "12345678"
	provider.VATID = "CZ12345678"

	creator, err := model.NewCreator("John Doe")
	require.NoError(t, err)

	inv, err := model.NewInvoice(client, provider, creator)
	require.NoError(t, err)
	inv.Number = "2026-0042"
	inv.Title = "Consulting services"
	inv.VariableSymbol = "20260042"
	inv.Date = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	inv.DueDate = time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	inv.TaxableDate = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	taxed, err := model.NewItemFromStrings("5", "290", "21")
	require.NoError(t, err)
	taxed.Description = "Consulting"
	taxed.Unit = "hour"
	require.NoError(t, inv.AddItem(taxed))

	free, err := model.NewItemFromStrings("1", "100", "0")
	require.NoError(t, err)
	free.Description = "Shipping"
	require.NoError(t, inv.AddItem(free))

	return inv
}

func TestGenerate(t *testing.T) {
	inv := sampleInvoice(t)
	gen := pohoda.NewGenerator()

	doc, warnings, err := gen.Generate(inv)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "dataPack", root.Tag)
	assert.Equal(t, "2026-0042", root.SelectAttrValue("id", ""))
	assert.Equal(t, "12345678", root.SelectAttrValue("ico", ""))

	header := doc.FindElement("//inv:invoiceHeader")
	require.NotNil(t, header)
	assert.Equal(t, "issuedInvoice", header.SelectElement("inv:invoiceType").Text())
	assert.Equal(t, "2026-08-01", header.SelectElement("inv:date").Text())
	assert.Equal(t, "20260042", header.SelectElement("inv:symVar").Text())

	account := header.FindElement("inv:paymentAccount")
	require.NotNil(t, account)
	assert.Equal(t, "2600420569", account.SelectElement("typ:accountNo").Text())
	assert.Equal(t, "2010", account.SelectElement("typ:bankCode").Text())

	partner := doc.FindElement("//inv:partnerIdentity/typ:address")
	require.NotNil(t, partner)
	assert.Equal(t, "XYZ Corp", partner.SelectElement("typ:company").Text())
	assert.Equal(t, "CZ", partner.SelectElement("typ:country").Text())

	mine := doc.FindElement("//inv:myIdentity/typ:address")
	require.NotNil(t, mine)
	assert.Equal(t, "CZ12345678", mine.SelectElement("typ:dic").Text())
	assert.Nil(t, mine.SelectElement("typ:country"), "country is not part of myIdentity")

	items := doc.FindElements("//inv:invoiceItem")
	require.Len(t, items, 2)
	assert.Equal(t, "5", items[0].SelectElement("inv:quantity").Text())
	assert.Equal(t, "high", items[0].SelectElement("inv:rateVAT").Text())
	assert.Equal(t, "none", items[1].SelectElement("inv:rateVAT").Text())

	summary := doc.FindElement("//inv:invoiceSummary")
	require.NotNil(t, summary)
	assert.Equal(t, "math2one", summary.SelectElement("inv:roundingDocument").Text())

	currency := summary.FindElement("inv:homeCurrency")
	require.NotNil(t, currency)
	// 5 * 290 * 1.21 = 1754.5, tax portion 304.5
	assert.Equal(t, "1754.5", currency.SelectElement("typ:priceHigh").Text())
	assert.Equal(t, "304.5", currency.SelectElement("typ:priceHighVAT").Text())
	assert.Equal(t, "100", currency.SelectElement("typ:priceNone").Text())
	assert.Nil(t, currency.SelectElement("typ:priceNoneVAT"))
}

func TestGenerate_UnmappedRateWarns(t *testing.T) {
	inv := sampleInvoice(t)
	odd, err := model.NewItemFromStrings("1", "100", "13")
	require.NoError(t, err)
	require.NoError(t, inv.AddItem(odd))

	_, warnings, err := pohoda.NewGenerator().Generate(inv)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "13")
}

func TestGenerate_CustomTaxBands(t *testing.T) {
	inv := sampleInvoice(t)
	bands := []pohoda.TaxBand{
		{Name: "high", Rate: decimal.NewFromInt(21)},
		{Name: "low", Rate: decimal.NewFromInt(12)},
		{Name: "none", Rate: decimal.Zero},
	}

	doc, warnings, err := pohoda.NewGenerator(pohoda.WithTaxBands(bands)).Generate(inv)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.NotNil(t, doc.FindElement("//typ:priceHigh"))
}

func TestGenerateCorrection(t *testing.T) {
	client, _ := model.NewClient("XYZ Corp")
	provider, _ := model.NewProvider("ABC Company")
	creator, _ := model.NewCreator("John Doe")
	corr, err := model.NewCorrection(client, provider, creator, "2026-0007", "wrong quantity")
	require.NoError(t, err)
	corr.Number = "2026-0042"

	doc, _, err := pohoda.NewGenerator().GenerateCorrection(corr)
	require.NoError(t, err)

	header := doc.FindElement("//inv:invoiceHeader")
	require.NotNil(t, header)
	assert.Equal(t, "issuedCorrectiveTax", header.SelectElement("inv:invoiceType").Text())

	note := header.SelectElement("inv:note")
	require.NotNil(t, note)
	assert.Contains(t, note.Text(), "2026-0007")
	assert.Contains(t, note.Text(), "wrong quantity")
}

func TestWrite(t *testing.T) {
	inv := sampleInvoice(t)

	var buf bytes.Buffer
	require.NoError(t, pohoda.NewGenerator().Write(inv, &buf))

	out := buf.String()
	assert.Contains(t, out, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, out, "dat:dataPack")
	assert.Contains(t, out, "inv:invoiceItem")
}

func TestGenerate_NilInvoice(t *testing.T) {
	_, _, err := pohoda.NewGenerator().Generate(nil)
	require.Error(t, err)
}
