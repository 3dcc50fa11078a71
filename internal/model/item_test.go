package model_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/invoice-generator/internal/model"
)

func TestItem_Totals(t *testing.T) {
	item := model.NewItem(decimal.NewFromInt(42), decimal.NewFromInt(666))
	item.Tax = decimal.NewFromInt(21)

	assert.True(t, item.Total().Equal(decimal.NewFromInt(27972)),
		"expected total 27972, got %s", item.Total())
	assert.True(t, item.TotalTax().Equal(decimal.RequireFromString("33846.12")),
		"expected total with tax 33846.12, got %s", item.TotalTax())
}

func TestItem_TotalsFromStrings(t *testing.T) {
	item, err := model.NewItemFromStrings("42", "666", "21")
	require.NoError(t, err)

	assert.True(t, item.Count.Equal(decimal.NewFromInt(42)))
	assert.True(t, item.Price.Equal(decimal.NewFromInt(666)))
	assert.True(t, item.Tax.Equal(decimal.NewFromInt(21)))
	assert.True(t, item.Total().Equal(decimal.NewFromInt(27972)))
	assert.True(t, item.TotalTax().Equal(decimal.RequireFromString("33846.12")))
}

func TestItem_FromStrings_Coercion(t *testing.T) {
	_, err := model.NewItemFromStrings("nope", "666", "")
	var cerr *model.CoercionError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "count", cerr.Field)

	_, err = model.NewItemFromStrings("42", "a lot", "")
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "price", cerr.Field)

	_, err = model.NewItemFromStrings("42", "666", "some")
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "tax", cerr.Field)
}

func TestItem_AbsentTaxIsZero(t *testing.T) {
	item, err := model.NewItemFromStrings("24", "42", "")
	require.NoError(t, err)

	assert.True(t, item.Tax.IsZero())
	assert.True(t, item.TotalTax().Equal(decimal.NewFromInt(1008)))
	assert.True(t, item.TotalTax().Equal(item.Total()))
}

func TestItem_CountTax(t *testing.T) {
	item := model.NewItem(decimal.NewFromInt(2), decimal.NewFromInt(50))
	item.Tax = decimal.NewFromInt(50)
	assert.True(t, item.CountTax().Equal(decimal.NewFromInt(50)))

	untaxed := model.NewItem(decimal.NewFromInt(2), decimal.NewFromInt(50))
	assert.True(t, untaxed.CountTax().IsZero())
}

func TestItem_FractionalTax(t *testing.T) {
	item, err := model.NewItemFromStrings("24", "42", "99.9")
	require.NoError(t, err)

	assert.True(t, item.TotalTax().Equal(decimal.RequireFromString("2014.992")),
		"expected 2014.992, got %s", item.TotalTax())
	assert.True(t, item.CountTax().Equal(item.TotalTax().Sub(item.Total())))
}

func TestItem_DerivedValuesFollowMutation(t *testing.T) {
	item := model.NewItem(decimal.NewFromInt(1), decimal.NewFromInt(100))
	assert.True(t, item.Total().Equal(decimal.NewFromInt(100)))

	item.Count = decimal.NewFromInt(3)
	item.Price = decimal.NewFromInt(200)
	item.Tax = decimal.NewFromInt(10)

	assert.True(t, item.Total().Equal(decimal.NewFromInt(600)))
	assert.True(t, item.TotalTax().Equal(decimal.NewFromInt(660)))
}
