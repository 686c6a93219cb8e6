package cmd

import (
	"context"
	"flag"
	"os"

	"github.com/etnz/simulador/renderer"
	"github.com/google/subcommands"
)

type chartCmd struct {
	paramFlags
	height, width int
	color         bool
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "plot the evolution in BRL of each scenario" }
func (*chartCmd) Usage() string {
	return `sce chart [-height <rows>] [-width <columns>] [<parameter flags>]

  Plots the gross value in BRL of the three scenarios, year by year.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	c.paramFlags.SetFlags(f)
	f.IntVar(&c.height, "height", renderer.DefaultChartHeight, "Chart height in rows.")
	f.IntVar(&c.width, "width", renderer.DefaultChartWidth, "Chart width in columns, 0 for one column per year.")
	f.BoolVar(&c.color, "color", true, "Color the series.")
}

func (c *chartCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	proj, err := c.Project(ctx)
	if err != nil {
		return exitStatus(err)
	}
	chart := renderer.Chart{Height: c.height, Width: c.width, Color: c.color}
	return exitStatus(chart.Render(os.Stdout, proj))
}
