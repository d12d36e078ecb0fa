package types

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money is a monetary amount in a single currency.
//
// ValueInBaseUnits carries the amount in the currency's smallest
// denomination and its sign determines polarity: negative amounts are
// debits, positive amounts are credits.
type Money struct {
	CurrencyCode     string `json:"currencyCode"`
	Value            string `json:"value"`
	ValueInBaseUnits int64  `json:"valueInBaseUnits"`
}

// Decimal returns the amount as a decimal in major currency units.
// It prefers the server-provided string value and falls back to the
// base units when the string does not parse.
func (m Money) Decimal() decimal.Decimal {
	d, err := decimal.NewFromString(m.Value)
	if err != nil {
		return decimal.New(m.ValueInBaseUnits, -2)
	}
	return d
}

// IsDebit reports whether the amount is negative.
func (m Money) IsDebit() bool {
	return m.ValueInBaseUnits < 0
}

// Display returns the amount formatted for presentation. Debits are
// rendered with a "-$" prefix and the magnitude without its sign,
// credits and zero amounts with a "$" prefix.
func (m Money) Display() string {
	value := m.Decimal().Abs().StringFixed(2)
	if m.IsDebit() {
		return "-$" + value
	}
	return "$" + value
}

// DisplayAbsolute returns the unsigned amount with a "$" prefix.
func (m Money) DisplayAbsolute() string {
	return "$" + m.Decimal().Abs().StringFixed(2)
}

// Equal reports whether two amounts are the same currency and value.
func (m Money) Equal(n Money) bool {
	return m.CurrencyCode == n.CurrencyCode && m.ValueInBaseUnits == n.ValueInBaseUnits
}

// ParseMoney parses a display string like "-$12.34" or "12.34" into a
// Money value in the given currency.
func ParseMoney(currencyCode, s string) (Money, error) {
	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	s = strings.TrimPrefix(s, "$")

	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	if negative {
		d = d.Neg()
	}

	return Money{
		CurrencyCode:     currencyCode,
		Value:            d.StringFixed(2),
		ValueInBaseUnits: d.Shift(2).IntPart(),
	}, nil
}
