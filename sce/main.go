// Command sce projects a capital invested abroad under three scenarios: an
// ETF paying dividends, a coupon bond and an accumulating mutual fund.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/simulador/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// a missing .env is fine, variables may come from the environment
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.Warnf("cannot load .env: %v", err)
	}

	cmd.Completion().Complete("sce")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	cmd.SetupLogging(cmd.NewConfig())
	os.Exit(int(commander.Execute(context.Background())))
}
