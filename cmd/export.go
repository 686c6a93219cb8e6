package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/simulador/renderer"
	"github.com/google/subcommands"
)

type exportCmd struct {
	paramFlags
	output string
	format string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the projection to an Excel workbook" }
func (*exportCmd) Usage() string {
	return `sce export [-o <file>] [-format <view>] [<parameter flags>]

  Writes a workbook with a "Resumo" sheet (the summary table) and an
  "Ano_a_Ano" sheet (the yearly values in USD and BRL).

  -format writes another view instead: ` + strings.Join(renderer.ViewNames(), ", ") + `.
  Only the workbook defaults to a file, the other views default to stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	c.paramFlags.SetFlags(f)
	f.StringVar(&c.output, "o", "", "Output file, - for stdout. Defaults to "+renderer.WorkbookFilename+" for the workbook.")
	f.StringVar(&c.format, "format", "workbook", "View to write: "+strings.Join(renderer.ViewNames(), ", ")+".")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	view, err := renderer.Lookup(c.format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	proj, err := c.Project(ctx)
	if err != nil {
		return exitStatus(err)
	}

	output := c.output
	if output == "" {
		output = "-"
		if c.format == "workbook" {
			output = renderer.WorkbookFilename
		}
	}
	if output == "-" {
		return exitStatus(view.Render(os.Stdout, proj))
	}

	if err := writeFile(output, func(w io.Writer) error { return view.Render(w, proj) }); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", output, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Successfully exported the projection to %s\n", output)
	return subcommands.ExitSuccess
}

// writeFile creates name and writes it with write.
func writeFile(name string, write func(io.Writer) error) error {
	out, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := write(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
