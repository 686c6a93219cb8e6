package renderer

import (
	"io"
	"strconv"

	"github.com/etnz/simulador"
	md "github.com/nao1215/markdown"
)

// YearlyHeader lists the columns of the "Ano_a_Ano" table.
func YearlyHeader() []string {
	header := []string{"Ano"}
	for _, s := range simulador.Scenarios {
		header = append(header, s.String()+" (USD)")
	}
	for _, s := range simulador.Scenarios {
		header = append(header, s.String()+" (BRL)")
	}
	return header
}

// YearlyTable renders the gross value of each scenario at the end of every
// year, in USD and BRL.
type YearlyTable struct {
	Title string
}

func (v YearlyTable) Render(w io.Writer, p *simulador.Projection) error {
	var rows [][]string
	for _, y := range p.Yearly() {
		row := []string{strconv.Itoa(y.Year)}
		for _, s := range simulador.Scenarios {
			row = append(row, simulador.USD(y.USD[s]).Number())
		}
		for _, s := range simulador.Scenarios {
			row = append(row, simulador.BRL(y.BRL[s]).Number())
		}
		rows = append(rows, row)
	}

	doc := md.NewMarkdown(w)
	if v.Title != "" {
		doc.H2(v.Title)
	}
	table(doc, YearlyHeader(), rows)
	return doc.Build()
}
