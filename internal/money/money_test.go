package money_test

import (
	"testing"

	dec "github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/invoice-generator/internal/money"
)

func TestParse(t *testing.T) {
	d, err := money.Parse("123456.78")
	require.NoError(t, err)
	assert.True(t, d.Equal(dec.RequireFromString("123456.78")))

	_, err = money.Parse("not-a-number")
	require.Error(t, err)
}

func TestParseOptional(t *testing.T) {
	d, err := money.ParseOptional("")
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	d, err = money.ParseOptional("21")
	require.NoError(t, err)
	assert.True(t, d.Equal(dec.NewFromInt(21)))

	_, err = money.ParseOptional("x")
	require.Error(t, err)
}

func TestSum(t *testing.T) {
	values := []dec.Decimal{
		dec.NewFromInt(100),
		dec.NewFromInt(200),
		dec.NewFromInt(300),
	}
	result := money.Sum(values)
	assert.True(t, result.Equal(dec.NewFromInt(600)))
}

func TestSum_Empty(t *testing.T) {
	result := money.Sum(nil)
	assert.True(t, result.IsZero())
}

func TestPercentOf(t *testing.T) {
	// 21% of 1450 = 304.5, kept at full precision
	result := money.PercentOf(dec.NewFromInt(1450), dec.NewFromInt(21))
	assert.True(t, result.Equal(dec.RequireFromString("304.5")))
}
