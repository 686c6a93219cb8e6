package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/simulador"
	"github.com/etnz/simulador/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	paramFlags
	raw bool
}

func (*summaryCmd) Name() string { return "summary" }
func (*summaryCmd) Synopsis() string {
	return "display the final gross and net values of each scenario"
}
func (*summaryCmd) Usage() string {
	return `sce summary [-years <n>] [-usd-initial <usd>] [...]

  Displays the summary table: final value, US and Brazilian taxes, and the
  net value in USD and BRL of the ETF, Bond and Mutual Fund scenarios.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	c.paramFlags.SetFlags(f)
	f.BoolVar(&c.raw, "raw", false, "Print raw markdown instead of rendering it for the terminal.")
}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	proj, err := c.Project(ctx)
	if err != nil {
		return exitStatus(err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Projeção em %d anos\n\n", proj.Params.Years)
	renderParams(&b, proj.Params)
	if err := (renderer.SummaryTable{Title: "Tabela Resumo"}).Render(&b, proj); err != nil {
		return exitStatus(err)
	}
	if c.raw {
		fmt.Print(b.String())
		return subcommands.ExitSuccess
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

// renderParams lists the parameters in input units.
func renderParams(b *strings.Builder, p simulador.Params) {
	for _, f := range simulador.Fields {
		v := f.Input(&p)
		switch {
		case f.Percent:
			fmt.Fprintf(b, "* %s: %v\n", f.Label, simulador.Percent(v))
		case f.Integer:
			fmt.Fprintf(b, "* %s: %d\n", f.Label, int(v))
		default:
			fmt.Fprintf(b, "* %s: %g\n", f.Label, v)
		}
	}
	b.WriteString("\n")
}
