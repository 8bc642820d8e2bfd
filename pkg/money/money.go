// Package money renders and parses the display amounts used across the
// storefront screens.
package money

import (
	"fmt"
	"strings"

	"github.com/angelmondragon/shopfront/pkg/enums"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Format renders an amount with the currency symbol and thousands grouping,
// e.g. "Ksh 6,100" or "$12.50". Whole amounts drop the fraction.
func Format(amount decimal.Decimal, currency enums.Currency) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}
	return sign + currency.Symbol() + FormatNumber(amount)
}

// FormatNumber renders an amount with thousands grouping and no symbol.
func FormatNumber(amount decimal.Decimal) string {
	if amount.Equal(amount.Truncate(0)) {
		return printer.Sprintf("%d", amount.IntPart())
	}
	f, _ := amount.Round(2).Float64()
	return printer.Sprintf("%.2f", f)
}

// Parse reads amounts such as "$120", "Ksh 4,500" or "80" and reports the
// currency detected from the prefix. Bare numbers default to fallback.
func Parse(value string, fallback enums.Currency) (decimal.Decimal, enums.Currency, error) {
	raw := strings.TrimSpace(value)
	currency := fallback
	switch {
	case strings.HasPrefix(raw, "$"):
		currency = enums.CurrencyUSD
		raw = strings.TrimPrefix(raw, "$")
	case strings.HasPrefix(strings.ToLower(raw), "ksh"):
		currency = enums.CurrencyKES
		raw = raw[len("ksh"):]
	}
	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if raw == "" {
		return decimal.Zero, currency, fmt.Errorf("empty amount %q", value)
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, currency, fmt.Errorf("parse amount %q: %w", value, err)
	}
	return amount, currency, nil
}
