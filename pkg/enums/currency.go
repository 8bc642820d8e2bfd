package enums

import "fmt"

// Currency represents the denominations the storefront displays.
type Currency string

const (
	CurrencyKES Currency = "KES"
	CurrencyUSD Currency = "USD"
)

var validCurrencies = []Currency{
	CurrencyKES,
	CurrencyUSD,
}

// String implements fmt.Stringer.
func (c Currency) String() string {
	return string(c)
}

// Symbol is the prefix used when rendering amounts.
func (c Currency) Symbol() string {
	switch c {
	case CurrencyUSD:
		return "$"
	case CurrencyKES:
		return "Ksh "
	}
	return string(c) + " "
}

// IsValid reports whether the currency is recognized.
func (c Currency) IsValid() bool {
	for _, candidate := range validCurrencies {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCurrency converts a raw string into a Currency.
func ParseCurrency(value string) (Currency, error) {
	for _, candidate := range validCurrencies {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid currency %q", value)
}
