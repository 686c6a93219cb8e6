package simulador

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Params is the set of assumptions a projection is computed from.
//
// Rates are fractions (0.05 is 5%), amounts are in USD and exchange rates in
// BRL per USD.
type Params struct {
	Years          int     `json:"years" yaml:"years"`
	USDInitial     float64 `json:"usd_initial" yaml:"usd_initial"`
	MonthlyContrib float64 `json:"monthly_contrib" yaml:"monthly_contrib"`

	ETFGrowthAnnual    float64 `json:"etf_growth_annual" yaml:"etf_growth_annual"`
	DivYieldAnnual     float64 `json:"div_yield_annual" yaml:"div_yield_annual"`
	BondCouponAnnual   float64 `json:"bond_coupon_annual" yaml:"bond_coupon_annual"`
	ReinvestRateAnnual float64 `json:"reinvest_rate_annual" yaml:"reinvest_rate_annual"`
	MutualGrowthAnnual float64 `json:"mutual_growth_annual" yaml:"mutual_growth_annual"`

	// FXBuy is collected but does not enter any computation yet.
	FXBuy  float64 `json:"fx_buy" yaml:"fx_buy"`
	FXSell float64 `json:"fx_sell" yaml:"fx_sell"`
}

// Months is the number of simulated monthly steps.
func (p Params) Months() int { return p.Years * MonthsPerYear }

// Contributed is the total capital put in over the horizon, in USD.
func (p Params) Contributed() float64 {
	return p.USDInitial + p.MonthlyContrib*float64(p.Months())
}

// Field describes one input of the parameter set: its key, its label on the
// input surfaces, its admissible domain and its form defaults.
type Field struct {
	Key   string // snake_case key used in YAML, JSON and HTML forms
	Flag  string // command line flag name
	Label string

	// Min and Max bound the valid domain. Max is +Inf for unbounded amounts.
	Min, Max float64
	// InputMax is the upper bound proposed by input forms, it can be lower than Max.
	InputMax float64
	Default  float64
	Step     float64 // zero when the input has no step
	Percent  bool    // entered in percent, stored as a fraction
	Integer  bool

	get func(*Params) float64
	set func(*Params, float64)
}

// Get returns the value of this field in p, in storage unit.
func (f Field) Get(p *Params) float64 { return f.get(p) }

// Input returns the value of this field in p in the unit used by input
// surfaces: percent for rates.
func (f Field) Input(p *Params) float64 {
	v := f.get(p)
	if f.Percent {
		return float64(PercentOf(v))
	}
	return v
}

// SetInput stores v, expressed in the input unit, in p.
func (f Field) SetInput(p *Params, v float64) {
	if f.Percent {
		v = Percent(v).Fraction()
	}
	f.set(p, v)
}

// ParseInput parses s in the input unit of this field and stores it in p.
// A decimal comma is accepted, thousands separators are not. Parse failures
// are reported as a ValidationError.
func (f Field) ParseInput(p *Params, s string) error {
	s = strings.TrimSpace(s)
	num, err := decimalPoint(s)
	if err != nil {
		return &ValidationError{Field: f.Key, Value: math.NaN(), Reason: fmt.Sprintf("%q %v", s, err)}
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return &ValidationError{Field: f.Key, Value: math.NaN(), Reason: fmt.Sprintf("%q is not a number", s)}
	}
	if f.Integer && v != math.Trunc(v) {
		return &ValidationError{Field: f.Key, Value: v, Reason: "must be a whole number"}
	}
	f.SetInput(p, v)
	return nil
}

var errGrouping = errors.New("must not contain thousands separators")

// decimalPoint turns a decimal comma into a point. A comma is a decimal
// separator only when it is the single separator of s and is not followed by
// exactly three digits, "10,000" is rejected rather than read as 10.
func decimalPoint(s string) (string, error) {
	i := strings.IndexByte(s, ',')
	if i < 0 {
		return s, nil
	}
	if strings.Count(s, ",") > 1 || strings.ContainsRune(s, '.') {
		return "", errGrouping
	}
	frac := s[i+1:]
	if len(frac) == 3 && strings.Trim(frac, "0123456789") == "" {
		return "", errGrouping
	}
	return s[:i] + "." + frac, nil
}

// inf is used as Max for amounts with no upper bound in the domain.
var inf = math.Inf(1)

// Fields lists every parameter in display order.
var Fields = []Field{
	{
		Key: "years", Flag: "years", Label: "Prazo de investimento (anos)",
		Min: 1, Max: 50, InputMax: 50, Default: 10, Step: 1, Integer: true,
		get: func(p *Params) float64 { return float64(p.Years) },
		set: func(p *Params, v float64) { p.Years = int(math.Round(v)) },
	},
	{
		Key: "usd_initial", Flag: "usd-initial", Label: "Aporte inicial único (USD)",
		Min: 0, Max: inf, InputMax: 1_000_000, Default: 10_000, Step: 100,
		get: func(p *Params) float64 { return p.USDInitial },
		set: func(p *Params, v float64) { p.USDInitial = v },
	},
	{
		Key: "monthly_contrib", Flag: "monthly-contrib", Label: "Contribuição mensal (USD)",
		Min: 0, Max: inf, InputMax: 100_000, Default: 0, Step: 100,
		get: func(p *Params) float64 { return p.MonthlyContrib },
		set: func(p *Params, v float64) { p.MonthlyContrib = v },
	},
	{
		Key: "etf_growth_annual", Flag: "etf-growth", Label: "Valorização anual do ETF (%)",
		Min: 0, Max: 0.20, InputMax: 0.20, Default: 0.05, Percent: true,
		get: func(p *Params) float64 { return p.ETFGrowthAnnual },
		set: func(p *Params, v float64) { p.ETFGrowthAnnual = v },
	},
	{
		Key: "div_yield_annual", Flag: "div-yield", Label: "Dividend yield anual ETF (%)",
		Min: 0, Max: 0.10, InputMax: 0.10, Default: 0.02, Percent: true,
		get: func(p *Params) float64 { return p.DivYieldAnnual },
		set: func(p *Params, v float64) { p.DivYieldAnnual = v },
	},
	{
		Key: "bond_coupon_annual", Flag: "bond-coupon", Label: "Cupom anual do bond (%)",
		Min: 0, Max: 0.15, InputMax: 0.15, Default: 0.04, Percent: true,
		get: func(p *Params) float64 { return p.BondCouponAnnual },
		set: func(p *Params, v float64) { p.BondCouponAnnual = v },
	},
	{
		Key: "reinvest_rate_annual", Flag: "reinvest-rate", Label: "Taxa de reinv. dos cupons (%)",
		Min: 0, Max: 0.10, InputMax: 0.10, Default: 0.02, Percent: true,
		get: func(p *Params) float64 { return p.ReinvestRateAnnual },
		set: func(p *Params, v float64) { p.ReinvestRateAnnual = v },
	},
	{
		Key: "mutual_growth_annual", Flag: "mutual-growth", Label: "Valorização anual do mutual fund (%)",
		Min: 0, Max: 0.20, InputMax: 0.20, Default: 0.05, Percent: true,
		get: func(p *Params) float64 { return p.MutualGrowthAnnual },
		set: func(p *Params, v float64) { p.MutualGrowthAnnual = v },
	},
	{
		Key: "fx_buy", Flag: "fx-buy", Label: "Câmbio na compra (BRL/USD)",
		Min: 1, Max: 20, InputMax: 20, Default: 5.5, Step: 0.1,
		get: func(p *Params) float64 { return p.FXBuy },
		set: func(p *Params, v float64) { p.FXBuy = v },
	},
	{
		Key: "fx_sell", Flag: "fx-sell", Label: "Câmbio na venda (BRL/USD)",
		Min: 1, Max: 20, InputMax: 20, Default: 6.0, Step: 0.1,
		get: func(p *Params) float64 { return p.FXSell },
		set: func(p *Params, v float64) { p.FXSell = v },
	},
}

// LookupField returns the field named key, matching either its Key or its Flag.
func LookupField(key string) (Field, bool) {
	for _, f := range Fields {
		if f.Key == key || f.Flag == key {
			return f, true
		}
	}
	return Field{}, false
}

// DefaultParams returns the parameters proposed by the input form.
func DefaultParams() Params {
	var p Params
	for _, f := range Fields {
		f.set(&p, f.Default)
	}
	return p
}

// Validate checks every field against its domain and returns a
// ValidationErrors listing all the offending fields, or nil.
func (p Params) Validate() error {
	var errs ValidationErrors
	for _, f := range Fields {
		v := f.get(&p)
		switch {
		case math.IsNaN(v) || math.IsInf(v, 0):
			errs = append(errs, &ValidationError{Field: f.Key, Value: v, Reason: "not a finite number"})
		case v < f.Min || v > f.Max:
			errs = append(errs, &ValidationError{Field: f.Key, Value: v, Reason: outOfRange(f)})
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func outOfRange(f Field) string {
	unit := func(v float64) string {
		if f.Percent {
			return fmt.Sprintf("%g%%", v*100)
		}
		return fmt.Sprintf("%g", v)
	}
	if math.IsInf(f.Max, 1) {
		return "must be at least " + unit(f.Min)
	}
	return fmt.Sprintf("must be between %s and %s", unit(f.Min), unit(f.Max))
}

// String returns a compact, single line representation of p.
func (p Params) String() string {
	var b strings.Builder
	for i, f := range Fields {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%s=%g", f.Key, f.get(&p))
	}
	return b.String()
}
