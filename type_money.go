package simulador

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is an amount in a currency, used by views to display engine figures.
//
// The engine computes in float64. Money only rounds and formats, halfway
// cases are rounded away from zero on the currency's minor unit.
type Money struct {
	value decimal.Decimal // major unit value
	cur   string
}

// USD returns an amount in US dollars.
func USD(v float64) Money { return Money{value: decimal.NewFromFloat(v), cur: money.USD} }

// BRL returns an amount in Brazilian reais.
func BRL(v float64) Money { return Money{value: decimal.NewFromFloat(v), cur: money.BRL} }

// Round returns m rounded to the currency's minor unit.
func (m Money) Round() Money {
	return Money{value: m.value.Round(int32(m.currency().Fraction)), cur: m.cur}
}

// Cents returns m as an integer number of minor units.
func (m Money) Cents() int64 {
	return m.value.Shift(int32(m.currency().Fraction)).Round(0).IntPart()
}

// Float returns the rounded value, for numeric cells.
func (m Money) Float() float64 { return m.Round().value.InexactFloat64() }

// currency returns the money's currency definition.
func (m Money) currency() money.Currency {
	// money.New always yields a non nil currency, even for unknown codes.
	return *money.New(0, m.cur).Currency()
}

// numberFormatter prints "1,234.56": thousands separator, two decimals and
// no currency symbol.
var numberFormatter = money.NewFormatter(2, ".", ",", "", "1")

// Number returns the amount with a thousands separator and two decimals,
// without currency symbol. This is the format of table cells.
func (m Money) Number() string {
	return numberFormatter.Format(m.Cents())
}

// String returns the amount formatted according to its currency, e.g. "$1,234.56"
// or "R$1.234,56".
func (m Money) String() string {
	cur := m.currency()
	return cur.Formatter().Format(m.Cents())
}
