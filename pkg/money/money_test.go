package money

import (
	"testing"

	"github.com/angelmondragon/shopfront/pkg/enums"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "Ksh 6,100", Format(decimal.NewFromInt(6100), enums.CurrencyKES))
	assert.Equal(t, "Ksh 800", Format(decimal.NewFromInt(800), enums.CurrencyKES))
	assert.Equal(t, "$120", Format(decimal.NewFromInt(120), enums.CurrencyUSD))
	assert.Equal(t, "$1,234.50", Format(decimal.RequireFromString("1234.5"), enums.CurrencyUSD))
	assert.Equal(t, "-Ksh 15", Format(decimal.NewFromInt(-15), enums.CurrencyKES))
	assert.Equal(t, "Ksh 0", Format(decimal.Zero, enums.CurrencyKES))
}

func TestParse(t *testing.T) {
	amount, currency, err := Parse("$120", enums.CurrencyKES)
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.NewFromInt(120)))
	assert.Equal(t, enums.CurrencyUSD, currency)

	amount, currency, err = Parse("Ksh 4,500", enums.CurrencyUSD)
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.NewFromInt(4500)))
	assert.Equal(t, enums.CurrencyKES, currency)

	amount, currency, err = Parse(" 80 ", enums.CurrencyKES)
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.NewFromInt(80)))
	assert.Equal(t, enums.CurrencyKES, currency)

	_, _, err = Parse("$", enums.CurrencyKES)
	assert.Error(t, err)
	_, _, err = Parse("twelve", enums.CurrencyKES)
	assert.Error(t, err)
}
