package simulador

import "fmt"

// Percent is a rate expressed in percent: Percent(5) is 5%.
type Percent float64

// PercentOf converts a fraction into a Percent.
func PercentOf(fraction float64) Percent { return Percent(fraction * 100) }

// Fraction returns the rate as a fraction.
func (p Percent) Fraction() float64 { return float64(p) / 100 }

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}
