package simulador

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestProject_InvalidParams(t *testing.T) {
	for _, p := range []Params{
		params(func(p *Params) { p.Years = 0 }),
		params(func(p *Params) { p.FXSell = 0 }),
	} {
		proj, err := Project(p)
		if proj != nil {
			t.Errorf("Project(%v) = %v, want nil", p, proj)
		}
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("Project(%v) error = %v, want a *ValidationError", p, err)
		}
	}
}

func TestProject_Summary(t *testing.T) {
	p := params(func(p *Params) {
		p.Years = 10
		p.USDInitial = 10_000
		p.MonthlyContrib = 0
		p.FXSell = 6.0
	})
	proj, err := Project(p)
	if err != nil {
		t.Fatalf("Project() = %v", err)
	}

	rows := proj.Summary()
	if len(rows) != 3 {
		t.Fatalf("len(Summary()) = %d, want 3", len(rows))
	}
	for i, s := range []Scenario{ETF, Bond, Mutual} {
		if rows[i].Scenario != s {
			t.Errorf("rows[%d].Scenario = %v, want %v", i, rows[i].Scenario, s)
		}
	}
	for _, row := range rows {
		if row.NetUSD != row.FinalUSD-row.TaxBRUSD {
			t.Errorf("%v: NetUSD = %v, want %v", row.Scenario, row.NetUSD, row.FinalUSD-row.TaxBRUSD)
		}
		if row.NetBRL != row.NetUSD*6.0 {
			t.Errorf("%v: NetBRL = %v, want %v", row.Scenario, row.NetBRL, row.NetUSD*6.0)
		}
	}

	mutual := rows[Mutual]
	wantFinal := 10_000 * math.Pow(1.05, 10)
	if !near(mutual.FinalUSD, wantFinal, 1e-6) {
		t.Errorf("Mutual FinalUSD = %v, want %v", mutual.FinalUSD, wantFinal)
	}
	wantTax := (wantFinal - 10_000) * 0.15
	if !near(mutual.TaxBRUSD, wantTax, 1e-6) {
		t.Errorf("Mutual TaxBRUSD = %v, want %v", mutual.TaxBRUSD, wantTax)
	}
	if !near(mutual.NetBRL, (wantFinal-wantTax)*6, 0.5) {
		t.Errorf("Mutual NetBRL = %v, want %v", mutual.NetBRL, (wantFinal-wantTax)*6)
	}
	if rows[Bond].TaxUSUSD != 0 || rows[Mutual].TaxUSUSD != 0 {
		t.Errorf("only the ETF pays US tax: %+v", rows)
	}
	if rows[ETF].TaxUSUSD <= 0 {
		t.Errorf("ETF TaxUSUSD = %v, want positive", rows[ETF].TaxUSUSD)
	}
}

func TestProject_FXBuyIsInert(t *testing.T) {
	a, err := Project(params(func(p *Params) { p.FXBuy = 1 }))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Project(params(func(p *Params) { p.FXBuy = 20 }))
	if err != nil {
		t.Fatal(err)
	}
	for i, row := range a.Summary() {
		if row != b.Summary()[i] {
			t.Errorf("fx_buy changed the summary: %+v != %+v", row, b.Summary()[i])
		}
	}
}

func TestProject_Yearly(t *testing.T) {
	p := params(func(p *Params) { p.Years = 4; p.MonthlyContrib = 200; p.FXSell = 5 })
	proj, err := Project(p)
	if err != nil {
		t.Fatal(err)
	}
	rows := proj.Yearly()
	if len(rows) != 4 {
		t.Fatalf("len(Yearly()) = %d, want 4", len(rows))
	}
	for i, row := range rows {
		if row.Year != i+1 {
			t.Errorf("rows[%d].Year = %d, want %d", i, row.Year, i+1)
		}
		for _, s := range Scenarios {
			if row.USD[s] != proj.Results[s].Yearly[i] {
				t.Errorf("year %d %v: USD = %v, want %v", row.Year, s, row.USD[s], proj.Results[s].Yearly[i])
			}
			if row.BRL[s] != row.USD[s]*5 {
				t.Errorf("year %d %v: BRL = %v, want %v", row.Year, s, row.BRL[s], row.USD[s]*5)
			}
		}
	}
	brl := proj.SeriesBRL(Bond)
	if len(brl) != 4 || brl[3] != rows[3].BRL[Bond] {
		t.Errorf("SeriesBRL(Bond) = %v, want last %v", brl, rows[3].BRL[Bond])
	}
}

func TestProject_Deterministic(t *testing.T) {
	p := params(func(p *Params) { p.Years = 50; p.MonthlyContrib = 1234.56 })
	first, err := Project(p)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 20; i++ {
		again, err := Project(p)
		if err != nil {
			t.Fatal(err)
		}
		for _, s := range Scenarios {
			a, b := first.Results[s], again.Results[s]
			if a.TaxUS != b.TaxUS || a.TaxBR != b.TaxBR || len(a.Yearly) != len(b.Yearly) {
				t.Fatalf("run %d %v: %+v != %+v", i, s, b, a)
			}
			for y := range a.Yearly {
				if math.Float64bits(a.Yearly[y]) != math.Float64bits(b.Yearly[y]) {
					t.Fatalf("run %d %v year %d: %v != %v", i, s, y+1, b.Yearly[y], a.Yearly[y])
				}
			}
		}
		j1, _ := json.Marshal(first)
		j2, _ := json.Marshal(again)
		if !bytes.Equal(j1, j2) {
			t.Fatalf("run %d: JSON differs", i)
		}
	}
}

func TestProjection_MarshalJSON(t *testing.T) {
	proj, err := Project(params(func(p *Params) {
		p.Years = 1
		p.USDInitial = 1000
		p.BondCouponAnnual = 0.12
		p.ReinvestRateAnnual = 0
		p.FXSell = 5
	}))
	if err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(proj)
	if err != nil {
		t.Fatalf("json.Marshal() = %v", err)
	}
	var got struct {
		Params  Params `json:"params"`
		Summary []struct {
			Scenario string  `json:"scenario"`
			Name     string  `json:"name"`
			FinalUSD float64 `json:"final_usd"`
			TaxBRUSD float64 `json:"tax_br_usd"`
			NetBRL   float64 `json:"net_brl"`
		} `json:"summary"`
		Yearly []map[string]float64 `json:"yearly"`
	}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("json.Unmarshal() = %v\n%s", err, data)
	}
	if got.Params != proj.Params {
		t.Errorf("params = %+v, want %+v", got.Params, proj.Params)
	}
	bond := got.Summary[Bond]
	if bond.Scenario != "bond" || bond.Name != "Bond c/ Cupom" {
		t.Errorf("summary[1] = %+v", bond)
	}
	if bond.FinalUSD != 1102 || bond.TaxBRUSD != 18 || bond.NetBRL != 5420 {
		t.Errorf("bond figures = %+v, want 1102, 18, 5420", bond)
	}
	if len(got.Yearly) != 1 || got.Yearly[0]["year"] != 1 || got.Yearly[0]["bond_brl"] != 5510 {
		t.Errorf("yearly = %v", got.Yearly)
	}
	// keys keep their insertion order
	if !bytes.HasPrefix(data, []byte(`{"params":`)) {
		t.Errorf("JSON does not start with params: %s", data)
	}
}
