// Package cmd implements the CLI application projecting capital held abroad.
package cmd

import (
	"flag"

	"github.com/google/subcommands"
)

// Commands lists the subcommands, a main package registers them on a
// subcommands.Commander.
var Commands = []subcommands.Command{
	&summaryCmd{},
	&yearlyCmd{},
	&chartCmd{},
	&exportCmd{},
	&jsonCmd{},
	&paramsCmd{},
	&ptaxCmd{},
	&serveCmd{},
	&topicCmd{},
}

// Register the subcommands.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd, "")
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	paramsFile = flag.String("params", "", "Path to a YAML parameter file. Defaults to $SCE_PARAMS_FILE.")
	Verbose    = flag.Bool("v", false, "Verbose output, same as SCE_LOG_LEVEL=debug.")
	logFile    = flag.String("log-file", "", "Write logs to this file, rotated. Defaults to $SCE_LOG_FILE.")
)
