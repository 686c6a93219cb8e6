// Package renderer implements the views over a projection: markdown tables,
// a terminal chart, a spreadsheet workbook and an HTML page.
//
// Views only read a *simulador.Projection, swapping one of them never touches
// the engine.
package renderer

import (
	"fmt"
	"io"
	"sort"

	"github.com/etnz/simulador"
)

// View renders a projection to w.
type View interface {
	Render(w io.Writer, p *simulador.Projection) error
}

// Views indexes the available views by name.
var Views = map[string]View{
	"summary":  SummaryTable{Title: "Tabela Resumo"},
	"yearly":   YearlyTable{Title: "Evolução Ano a Ano"},
	"chart":    Chart{Height: DefaultChartHeight, Width: DefaultChartWidth},
	"workbook": Workbook{},
	"html":     Page{},
}

// Lookup returns the view registered as name.
func Lookup(name string) (View, error) {
	v, ok := Views[name]
	if !ok {
		return nil, fmt.Errorf("unknown view %q, available views: %v", name, ViewNames())
	}
	return v, nil
}

// ViewNames returns the registered view names, sorted.
func ViewNames() []string {
	names := make([]string, 0, len(Views))
	for name := range Views {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
