package simulador

// SummaryRow holds the final figures of one scenario.
type SummaryRow struct {
	Scenario Scenario
	FinalUSD float64 // gross value at the end of the horizon
	TaxUSUSD float64
	TaxBRUSD float64
	NetUSD   float64 // FinalUSD - TaxBRUSD
	NetBRL   float64 // NetUSD at the terminal exchange rate
}

// Name returns the scenario label.
func (r SummaryRow) Name() string { return r.Scenario.Name() }

// Summary returns one row per scenario, in display order.
//
// The US tax is reported but not deducted: ETF withholding is taken at source
// and the yearly values are already net of it.
func (p *Projection) Summary() []SummaryRow {
	rows := make([]SummaryRow, 0, len(Scenarios))
	for _, s := range Scenarios {
		res := p.Results[s]
		row := SummaryRow{
			Scenario: s,
			FinalUSD: res.Final(),
			TaxUSUSD: res.TaxUS,
			TaxBRUSD: res.TaxBR,
		}
		row.NetUSD = row.FinalUSD - row.TaxBRUSD
		row.NetBRL = p.BRL(row.NetUSD)
		rows = append(rows, row)
	}
	return rows
}

// YearRow holds the gross value of each scenario at the end of a year.
type YearRow struct {
	Year int // 1 based
	USD  [len(Scenarios)]float64
	BRL  [len(Scenarios)]float64
}

// Yearly returns the year by year evolution of the three scenarios.
func (p *Projection) Yearly() []YearRow {
	rows := make([]YearRow, p.Params.Years)
	for i := range rows {
		rows[i].Year = i + 1
		for _, s := range Scenarios {
			v := p.Results[s].Yearly[i]
			rows[i].USD[s] = v
			rows[i].BRL[s] = p.BRL(v)
		}
	}
	return rows
}

// SeriesBRL returns the yearly gross value of s converted to BRL.
func (p *Projection) SeriesBRL(s Scenario) []float64 {
	yearly := p.Results[s].Yearly
	res := make([]float64, len(yearly))
	for i, v := range yearly {
		res[i] = p.BRL(v)
	}
	return res
}
