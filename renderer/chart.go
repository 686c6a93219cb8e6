package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/simulador"
	"github.com/guptarohit/asciigraph"
)

const (
	DefaultChartHeight = 15
	DefaultChartWidth  = 72
)

// seriesColors are the colors of the ETF, Bond and Mutual lines.
var seriesColors = []asciigraph.AnsiColor{asciigraph.Blue, asciigraph.Red, asciigraph.Green}

// Chart plots the gross value in BRL of each scenario, year by year.
type Chart struct {
	Height, Width int
	Color         bool // ANSI colors, for terminals
}

func (v Chart) Render(w io.Writer, p *simulador.Projection) error {
	_, err := fmt.Fprintln(w, v.Plot(p))
	return err
}

// Plot returns the chart as text.
//
// Without colors the lines cannot be told apart, the legend then gives the
// final value of each scenario instead of its color.
func (v Chart) Plot(p *simulador.Projection) string {
	var series [][]float64
	var legends []string
	hi := 0.0
	for _, s := range simulador.Scenarios {
		brl := p.SeriesBRL(s)
		series = append(series, brl)
		legends = append(legends, s.String())
		for _, x := range brl {
			hi = max(hi, x)
		}
	}

	opts := []asciigraph.Option{
		asciigraph.Height(v.Height),
		asciigraph.Caption(fmt.Sprintf("Valor bruto em BRL (câmbio %.2f), anos 1 a %d", p.Params.FXSell, p.Params.Years)),
		asciigraph.LowerBound(0),
		asciigraph.Precision(0),
	}
	if v.Width > 1 {
		opts = append(opts, asciigraph.Width(v.Width))
	}
	if hi == 0 {
		// nothing invested, keep a non empty vertical axis
		opts = append(opts, asciigraph.UpperBound(1))
	}
	if v.Color {
		// legends index the series colors, they go together
		opts = append(opts,
			asciigraph.SeriesLegends(legends...),
			asciigraph.SeriesColors(seriesColors...),
		)
		return asciigraph.PlotMany(series, opts...)
	}

	var b strings.Builder
	b.WriteString(asciigraph.PlotMany(series, opts...))
	b.WriteString("\n\n")
	for i, s := range simulador.Scenarios {
		if i > 0 {
			b.WriteString("   ")
		}
		brl := series[s]
		fmt.Fprintf(&b, "%s: %v", s, simulador.BRL(brl[len(brl)-1]))
	}
	return b.String()
}
