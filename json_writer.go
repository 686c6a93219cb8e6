package simulador

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// jsonObjectWriter builds a JSON object keeping the fields in insertion order.
// Its zero value is ready to use.
type jsonObjectWriter struct {
	bytes.Buffer
	err error
}

// Append adds a key-value pair, the value is marshaled with json.Marshal.
func (w *jsonObjectWriter) Append(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	valBytes, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("failed to marshal value for key %q: %w", key, err)
		return w
	}
	fmt.Fprintf(w, "%q:", key)
	w.Write(valBytes)
	w.WriteString(",")
	return w
}

// MarshalJSON wraps the fields in braces.
func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	content := bytes.TrimSuffix(w.Bytes(), []byte(","))
	final := make([]byte, 0, len(content)+2)
	final = append(final, '{')
	final = append(final, content...)
	final = append(final, '}')
	return final, nil
}

// MarshalJSON encodes a row with the engine figures rounded to cents.
func (r SummaryRow) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("scenario", strings.ToLower(r.Scenario.String()))
	w.Append("name", r.Name())
	w.Append("final_usd", USD(r.FinalUSD).Float())
	w.Append("tax_us_usd", USD(r.TaxUSUSD).Float())
	w.Append("tax_br_usd", USD(r.TaxBRUSD).Float())
	w.Append("net_usd", USD(r.NetUSD).Float())
	w.Append("net_brl", BRL(r.NetBRL).Float())
	return w.MarshalJSON()
}

func (r YearRow) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("year", r.Year)
	for _, s := range Scenarios {
		w.Append(strings.ToLower(s.String())+"_usd", USD(r.USD[s]).Float())
	}
	for _, s := range Scenarios {
		w.Append(strings.ToLower(s.String())+"_brl", BRL(r.BRL[s]).Float())
	}
	return w.MarshalJSON()
}

// MarshalJSON encodes the parameters, the summary and the yearly evolution,
// in that order.
func (p *Projection) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("params", p.Params)
	w.Append("summary", p.Summary())
	w.Append("yearly", p.Yearly())
	return w.MarshalJSON()
}
