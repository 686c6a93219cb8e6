package simulador

import "math"

const MonthsPerYear = 12

// Tax policy constants. They are simplifications, not tax law.
const (
	USWithholdingRate = 0.30 // withheld at source on ETF dividends
	BRIncomeTaxRate   = 0.15 // bond coupons on receipt, fund gains at redemption
)

// CompoundMonthly returns the monthly rate equivalent to the annual rate r
// compounded twelve times: (1+r)^(1/12) - 1.
func CompoundMonthly(r float64) float64 {
	return math.Pow(1+r, 1.0/MonthsPerYear) - 1
}

// SimpleMonthly returns the share of an annual yield paid each month: r/12.
func SimpleMonthly(r float64) float64 {
	return r / MonthsPerYear
}

// Rates holds the monthly rates derived from a parameter set.
//
// Growth rates compound, coupon and dividend yields are paid proportionally.
type Rates struct {
	ETFGrowth    float64
	DivYield     float64
	BondCoupon   float64
	Reinvest     float64
	MutualGrowth float64
}

// NewRates derives the monthly rates from p.
func NewRates(p Params) Rates {
	return Rates{
		ETFGrowth:    CompoundMonthly(p.ETFGrowthAnnual),
		DivYield:     SimpleMonthly(p.DivYieldAnnual),
		BondCoupon:   SimpleMonthly(p.BondCouponAnnual),
		Reinvest:     CompoundMonthly(p.ReinvestRateAnnual),
		MutualGrowth: CompoundMonthly(p.MutualGrowthAnnual),
	}
}
