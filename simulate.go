package simulador

// All simulators step month by month. A month's contribution is added before
// that month's yield or growth, so it earns the same month's return.

// SimulateETF projects a dividend-paying ETF.
//
// Dividends are paid monthly on the current value, withheld at source in the
// US and the remainder is reinvested together with the month's price
// appreciation. The gain over the contributed capital is taxed in Brazil at
// redemption.
func SimulateETF(p Params, r Rates) ScenarioResult {
	res := ScenarioResult{Scenario: ETF, Yearly: make([]float64, 0, p.Years)}
	value := p.USDInitial
	for m := 1; m <= p.Months(); m++ {
		value += p.MonthlyContrib
		dividend := value * r.DivYield
		res.TaxUS += dividend * USWithholdingRate
		value = (value + dividend*(1-USWithholdingRate)) * (1 + r.ETFGrowth)
		if m%MonthsPerYear == 0 {
			res.Yearly = append(res.Yearly, value)
		}
	}
	res.TaxBR = gainTax(p, value)
	return res
}

// SimulateBond projects a coupon bond whose after-tax coupons are reinvested.
//
// Coupons are paid on the contributed principal only and taxed in Brazil on
// receipt. The reinvestment pool does not earn coupons, it compounds at the
// reinvestment rate. There is no US tax and no terminal gains tax.
func SimulateBond(p Params, r Rates) ScenarioResult {
	res := ScenarioResult{Scenario: Bond, Yearly: make([]float64, 0, p.Years)}
	principal := p.USDInitial
	reinvested := 0.0
	for m := 1; m <= p.Months(); m++ {
		principal += p.MonthlyContrib
		coupon := principal * r.BondCoupon
		res.TaxBR += coupon * BRIncomeTaxRate
		reinvested = (reinvested + coupon*(1-BRIncomeTaxRate)) * (1 + r.Reinvest)
		if m%MonthsPerYear == 0 {
			res.Yearly = append(res.Yearly, principal+reinvested)
		}
	}
	return res
}

// SimulateMutual projects an accumulating fund: returns stay in the fund and
// the gain is taxed in Brazil at redemption only.
func SimulateMutual(p Params, r Rates) ScenarioResult {
	res := ScenarioResult{Scenario: Mutual, Yearly: make([]float64, 0, p.Years)}
	value := p.USDInitial
	for m := 1; m <= p.Months(); m++ {
		value += p.MonthlyContrib
		value *= 1 + r.MutualGrowth
		if m%MonthsPerYear == 0 {
			res.Yearly = append(res.Yearly, value)
		}
	}
	res.TaxBR = gainTax(p, value)
	return res
}
