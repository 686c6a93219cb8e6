package cmd

import (
	"flag"

	"github.com/etnz/simulador/docs"
	"github.com/etnz/simulador/renderer"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion: subcommands,
// their flags and the values they accept.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub: make(map[string]*complete.Command, len(Commands)),
		Flags: map[string]complete.Predictor{
			"params":   predict.Files("*.yaml"),
			"log-file": predict.Files("*"),
			"v":        predict.Nothing,
		},
	}
	for _, c := range Commands {
		root.Sub[c.Name()] = commandCompletion(c)
	}
	return root
}

func commandCompletion(c subcommands.Command) *complete.Command {
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)

	cc := &complete.Command{Flags: make(map[string]complete.Predictor)}
	f.VisitAll(func(fl *flag.Flag) {
		switch fl.Name {
		case "o":
			cc.Flags[fl.Name] = predict.Files("*.xlsx")
		case "format":
			cc.Flags[fl.Name] = predict.Set(renderer.ViewNames())
		default:
			if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
				cc.Flags[fl.Name] = predict.Nothing
			} else {
				cc.Flags[fl.Name] = predict.Something
			}
		}
	})
	if c.Name() == "topic" {
		if topics, err := docs.GetAllTopics(); err == nil {
			cc.Args = predict.Set(append(topics, "readme"))
		}
	}
	return cc
}
