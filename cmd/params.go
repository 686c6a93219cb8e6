package cmd

import (
	"context"
	"flag"
	"os"

	"github.com/etnz/simulador"
	"github.com/google/subcommands"
)

type paramsCmd struct {
	paramFlags
	check bool
}

func (*paramsCmd) Name() string     { return "params" }
func (*paramsCmd) Synopsis() string { return "print the effective parameters as YAML" }
func (*paramsCmd) Usage() string {
	return `sce params [-check] [<parameter flags>]

  Prints the parameters resolved from the defaults, the parameter file, the
  SCE_* environment variables and the flags, in the parameter file format.
  The output can be saved and reused with -params.
`
}

func (c *paramsCmd) SetFlags(f *flag.FlagSet) {
	c.paramFlags.SetFlags(f)
	f.BoolVar(&c.check, "check", false, "Also validate the parameters.")
}

func (c *paramsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := c.Params(ctx, NewConfig())
	if err != nil {
		return exitStatus(err)
	}
	if c.check {
		if err := p.Validate(); err != nil {
			return exitStatus(err)
		}
	}
	return exitStatus(simulador.EncodeParams(os.Stdout, p))
}
