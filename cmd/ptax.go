package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/simulador"
	"github.com/google/subcommands"
)

type ptaxCmd struct {
	date string
}

func (*ptaxCmd) Name() string { return "ptax" }
func (*ptaxCmd) Synopsis() string {
	return "show the PTAX USD/BRL rate published by the Banco Central do Brasil"
}
func (*ptaxCmd) Usage() string {
	return `sce ptax [-d <YYYY-MM-DD>]

  Shows the latest PTAX quote published on or before the given day. Use
  'sce <command> -ptax' to run a projection at that rate.
`
}

func (c *ptaxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Day of the quote, defaults to today.")
}

func (c *ptaxCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day := time.Now()
	if c.date != "" {
		var err error
		day, err = time.Parse(time.DateOnly, c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid day %q: %v\n", c.date, err)
			return subcommands.ExitUsageError
		}
	}

	cfg := NewConfig()
	q, err := simulador.NewPTAX(simulador.PTAXBaseURL, cfg.Cache).Latest(ctx, day)
	if err != nil {
		return exitStatus(err)
	}
	fmt.Printf("PTAX %s\n", q.Date.Format(time.DateOnly))
	fmt.Printf("  compra: %.4f\n", q.Buy)
	fmt.Printf("  venda:  %.4f\n", q.Sell)
	return subcommands.ExitSuccess
}
