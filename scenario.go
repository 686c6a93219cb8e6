package simulador

// Scenario identifies one of the simulated investment vehicles.
type Scenario int

const (
	ETF    Scenario = iota // dividend-paying ETF
	Bond                   // coupon bond with coupon reinvestment
	Mutual                 // accumulating mutual fund
)

// Scenarios lists the vehicles in display order.
var Scenarios = [...]Scenario{ETF, Bond, Mutual}

// Name returns the label displayed in summary tables.
func (s Scenario) Name() string {
	switch s {
	case ETF:
		return "ETF c/ Dividendos"
	case Bond:
		return "Bond c/ Cupom"
	case Mutual:
		return "Mutual Fund Acumulativo"
	}
	return "?"
}

// String returns the short label used in column headers.
func (s Scenario) String() string {
	switch s {
	case ETF:
		return "ETF"
	case Bond:
		return "Bond"
	case Mutual:
		return "Mutual"
	}
	return "?"
}

// ScenarioResult is the outcome of one simulation.
type ScenarioResult struct {
	Scenario Scenario
	// Yearly holds the gross value in USD at the end of each simulated year.
	Yearly []float64
	TaxUS  float64 // US tax, in USD
	TaxBR  float64 // Brazilian tax, in USD
}

// Final returns the gross value in USD at the end of the horizon.
func (r ScenarioResult) Final() float64 {
	if len(r.Yearly) == 0 {
		return 0
	}
	return r.Yearly[len(r.Yearly)-1]
}

// gainTax is the Brazilian tax due at redemption on the gain over the
// contributed capital. Losses are not taxed.
func gainTax(p Params, final float64) float64 {
	gain := final - p.Contributed()
	return max(gain*BRIncomeTaxRate, 0)
}
