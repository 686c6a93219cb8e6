package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
)

type jsonCmd struct {
	paramFlags
	query string
}

func (*jsonCmd) Name() string     { return "json" }
func (*jsonCmd) Synopsis() string { return "print the projection as JSON" }
func (*jsonCmd) Usage() string {
	return `sce json [-q <jsonpath>] [<parameter flags>]

  Prints the parameters, the summary and the yearly values as a JSON object.
  With -q only the value selected by the JSONPath expression is printed, e.g.

    sce json -q '$.summary[2].net_brl'
`
}

func (c *jsonCmd) SetFlags(f *flag.FlagSet) {
	c.paramFlags.SetFlags(f)
	f.StringVar(&c.query, "q", "", "JSONPath expression selecting the value to print.")
}

func (c *jsonCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	proj, err := c.Project(ctx)
	if err != nil {
		return exitStatus(err)
	}

	var v any = proj
	if c.query != "" {
		v, err = query(proj, c.query)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return exitStatus(err)
	}
	return subcommands.ExitSuccess
}

// query evaluates a JSONPath expression on the JSON form of v.
func query(v any, path string) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return nil, err
	}
	res, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", path, err)
	}
	return res, nil
}
