package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/simulador/renderer"
	"github.com/google/subcommands"
)

type yearlyCmd struct {
	paramFlags
	raw bool
}

func (*yearlyCmd) Name() string     { return "yearly" }
func (*yearlyCmd) Synopsis() string { return "display the year by year value of each scenario" }
func (*yearlyCmd) Usage() string {
	return `sce yearly [<parameter flags>]

  Displays the gross value of each scenario at the end of every year, in USD
  and in BRL at the selling exchange rate.
`
}

func (c *yearlyCmd) SetFlags(f *flag.FlagSet) {
	c.paramFlags.SetFlags(f)
	f.BoolVar(&c.raw, "raw", false, "Print raw markdown instead of rendering it for the terminal.")
}

func (c *yearlyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	proj, err := c.Project(ctx)
	if err != nil {
		return exitStatus(err)
	}
	var b strings.Builder
	if err := (renderer.YearlyTable{Title: "Evolução Ano a Ano"}).Render(&b, proj); err != nil {
		return exitStatus(err)
	}
	if c.raw {
		fmt.Print(b.String())
	} else {
		printMarkdown(b.String())
	}
	return subcommands.ExitSuccess
}
