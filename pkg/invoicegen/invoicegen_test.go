package invoicegen_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/invoice-generator/pkg/invoicegen"
)

func TestPublicAPI_EndToEnd(t *testing.T) {
	client, err := invoicegen.NewClient("XYZ Corp")
	require.NoError(t, err)
	provider, err := invoicegen.NewProvider("ABC Company")
	require.NoError(t, err)
	creator, err := invoicegen.NewCreator("John Doe")
	require.NoError(t, err)

	inv, err := invoicegen.NewInvoice(client, provider, creator)
	require.NoError(t, err)

	item, err := invoicegen.NewItemFromStrings("5", "290", "21")
	require.NoError(t, err)
	require.NoError(t, inv.AddItem(item))

	assert.True(t, inv.Price().Equal(decimal.NewFromInt(1450)))
	assert.True(t, inv.PriceTax().Equal(decimal.RequireFromString("1754.5")))

	inv.RoundingResult = true
	assert.True(t, inv.PriceTax().Equal(decimal.NewFromInt(1754)))

	inv.Rounding = invoicegen.HalfUp
	assert.True(t, inv.PriceTax().Equal(decimal.NewFromInt(1755)))

	breakdown := inv.VATBreakdown()
	require.Len(t, breakdown, 1)
	assert.True(t, breakdown[0].Tax.Equal(decimal.RequireFromString("304.5")))
}

func TestParseStrategy(t *testing.T) {
	s, err := invoicegen.ParseStrategy("half-up")
	require.NoError(t, err)
	assert.Equal(t, invoicegen.HalfUp, s)
}
