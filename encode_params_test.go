package simulador

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDecodeParams(t *testing.T) {
	input := `
years: 20
monthly_contrib: 500
etf_growth_annual: 0.07
`
	got, err := DecodeParams(strings.NewReader(input), DefaultParams())
	if err != nil {
		t.Fatalf("DecodeParams() = %v", err)
	}
	want := DefaultParams()
	want.Years = 20
	want.MonthlyContrib = 500
	want.ETFGrowthAnnual = 0.07
	if got != want {
		t.Errorf("DecodeParams() = %v, want %v", got, want)
	}
}

func TestDecodeParams_Empty(t *testing.T) {
	got, err := DecodeParams(strings.NewReader(""), DefaultParams())
	if err != nil {
		t.Fatalf("DecodeParams() = %v", err)
	}
	if got != DefaultParams() {
		t.Errorf("DecodeParams() = %v, want defaults", got)
	}
}

func TestDecodeParams_UnknownKey(t *testing.T) {
	_, err := DecodeParams(strings.NewReader("yearz: 3\n"), DefaultParams())
	if err == nil {
		t.Error("DecodeParams() = nil, want an error for an unknown key")
	}
}

func TestEncodeParams_RoundTrip(t *testing.T) {
	p := params(func(p *Params) { p.Years = 33; p.FXSell = 5.87; p.DivYieldAnnual = 0.035 })
	var buf bytes.Buffer
	if err := EncodeParams(&buf, p); err != nil {
		t.Fatalf("EncodeParams() = %v", err)
	}
	if !strings.Contains(buf.String(), "fx_sell: 5.87") {
		t.Errorf("EncodeParams() = %q, missing fx_sell", buf.String())
	}

	path := filepath.Join(t.TempDir(), "params.yaml")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := LoadParams(path, Params{})
	if err != nil {
		t.Fatalf("LoadParams() = %v", err)
	}
	if got != p {
		t.Errorf("LoadParams() = %v, want %v", got, p)
	}
}

func TestLoadParams_Missing(t *testing.T) {
	_, err := LoadParams(filepath.Join(t.TempDir(), "nope.yaml"), DefaultParams())
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadParams() = %v, want os.ErrNotExist", err)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"SCE_YEARS":                "25",
		"SCE_ETF_GROWTH_ANNUAL":    "8",
		"SCE_FX_SELL":              "5,4",
		"SCE_MUTUAL_GROWTH_ANNUAL": "",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	p := DefaultParams()
	if err := ApplyEnv(&p, lookup); err != nil {
		t.Fatalf("ApplyEnv() = %v", err)
	}
	if p.Years != 25 || !near(p.ETFGrowthAnnual, 0.08, 1e-12) || p.FXSell != 5.4 {
		t.Errorf("ApplyEnv() = %v", p)
	}
	if p.MutualGrowthAnnual != 0.05 {
		t.Errorf("empty variable changed mutual_growth_annual to %v", p.MutualGrowthAnnual)
	}

	env["SCE_YEARS"] = "ten"
	err := ApplyEnv(&p, lookup)
	if !errors.Is(err, ErrInvalidParameter) || !strings.Contains(err.Error(), "SCE_YEARS") {
		t.Errorf("ApplyEnv() = %v, want a validation error naming SCE_YEARS", err)
	}

	env["SCE_YEARS"] = "25"
	env["SCE_USD_INITIAL"] = "10,000"
	p = DefaultParams()
	err = ApplyEnv(&p, lookup)
	if !errors.Is(err, ErrInvalidParameter) || !strings.Contains(err.Error(), "SCE_USD_INITIAL") {
		t.Errorf("ApplyEnv() = %v, want a validation error naming SCE_USD_INITIAL", err)
	}
	if p.USDInitial != 10_000 {
		t.Errorf("ApplyEnv() set usd_initial to %v, want it unchanged", p.USDInitial)
	}
}
