package renderer

import (
	"io"

	"github.com/etnz/simulador"
	md "github.com/nao1215/markdown"
)

// SummaryHeader lists the columns of the summary table.
var SummaryHeader = []string{
	"Cenário",
	"Valor Final (USD)",
	"Imposto EUA (USD)",
	"Imposto Brasil (USD)",
	"Valor Líquido (USD)",
	"Valor Líquido (BRL)",
}

// SummaryRows formats the summary as text cells, numbers with a thousands
// separator and two decimals.
func SummaryRows(p *simulador.Projection) [][]string {
	var rows [][]string
	for _, r := range p.Summary() {
		rows = append(rows, []string{
			r.Name(),
			simulador.USD(r.FinalUSD).Number(),
			simulador.USD(r.TaxUSUSD).Number(),
			simulador.USD(r.TaxBRUSD).Number(),
			simulador.USD(r.NetUSD).Number(),
			simulador.BRL(r.NetBRL).Number(),
		})
	}
	return rows
}

// SummaryTable renders the final figures of each scenario as a markdown table.
type SummaryTable struct {
	Title string // optional H2 title
}

func (v SummaryTable) Render(w io.Writer, p *simulador.Projection) error {
	doc := md.NewMarkdown(w)
	if v.Title != "" {
		doc.H2(v.Title)
	}
	table(doc, SummaryHeader, SummaryRows(p))
	return doc.Build()
}

// table adds a table keeping the header as written: the default table
// upper-cases it.
func table(doc *md.Markdown, header []string, rows [][]string) {
	doc.CustomTable(md.TableSet{Header: header, Rows: rows}, md.TableOptions{AutoFormatHeaders: false})
}
