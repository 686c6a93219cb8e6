package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/etnz/simulador"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

// paramFlags binds one command line flag per parameter. Flags are kept as raw
// text and applied last, on top of the parameter file and the environment.
type paramFlags struct {
	raw  map[string]string // flag values by field key
	ptax bool
}

type fieldValue struct {
	field simulador.Field
	raw   map[string]string
}

func (v fieldValue) String() string {
	if v.raw == nil {
		return ""
	}
	return v.raw[v.field.Key]
}

func (v fieldValue) Set(s string) error {
	// check it now, so that flag reports the error with the usage
	p := simulador.DefaultParams()
	if err := v.field.ParseInput(&p, s); err != nil {
		return err
	}
	v.raw[v.field.Key] = s
	return nil
}

// SetFlags registers the parameter flags on f.
func (pf *paramFlags) SetFlags(f *flag.FlagSet) {
	pf.raw = make(map[string]string)
	defaults := simulador.DefaultParams()
	for _, field := range simulador.Fields {
		usage := field.Label
		if field.Percent {
			usage += ", in percent"
		}
		usage += fmt.Sprintf(". Default %g.", field.Input(&defaults))
		f.Var(fieldValue{field: field, raw: pf.raw}, field.Flag, usage)
	}
	f.BoolVar(&pf.ptax, "ptax", false, "Set fx-buy and fx-sell from the latest PTAX quote of the Banco Central do Brasil.")
}

// Params resolves the parameter set: defaults, then the parameter file, then
// SCE_* environment variables, then the PTAX quote if requested, then flags.
func (pf *paramFlags) Params(ctx context.Context, cfg *Config) (simulador.Params, error) {
	p := simulador.DefaultParams()
	if cfg.ParamsFile != "" {
		var err error
		p, err = simulador.LoadParams(cfg.ParamsFile, p)
		if errors.Is(err, fs.ErrNotExist) {
			logrus.Warnf("parameter file %q does not exist, using defaults", cfg.ParamsFile)
		} else if err != nil {
			return p, err
		}
	}
	if err := simulador.ApplyEnv(&p, os.LookupEnv); err != nil {
		return p, err
	}
	if pf.ptax {
		x := simulador.NewPTAX(simulador.PTAXBaseURL, cfg.Cache)
		q, err := x.Latest(ctx, time.Now())
		if err != nil {
			return p, fmt.Errorf("cannot fetch PTAX quote: %w", err)
		}
		logrus.Infof("PTAX %s: buy %.4f sell %.4f", q.Date.Format(time.DateOnly), q.Buy, q.Sell)
		q.Apply(&p)
	}
	for _, field := range simulador.Fields {
		if s, ok := pf.raw[field.Key]; ok {
			if err := field.ParseInput(&p, s); err != nil {
				return p, err
			}
		}
	}
	return p, nil
}

// Project resolves the parameters and runs the projection.
func (pf *paramFlags) Project(ctx context.Context) (*simulador.Projection, error) {
	p, err := pf.Params(ctx, NewConfig())
	if err != nil {
		return nil, err
	}
	return simulador.Project(p)
}

// exitStatus reports err on stderr and maps it to an exit status.
func exitStatus(err error) subcommands.ExitStatus {
	if err == nil {
		return subcommands.ExitSuccess
	}
	if errors.Is(err, simulador.ErrInvalidParameter) {
		fmt.Fprintf(os.Stderr, "Error: invalid parameters: %v\n", err)
		return subcommands.ExitUsageError
	}
	if errors.Is(err, simulador.ErrInternal) {
		logrus.WithError(err).Error("projection failed")
		fmt.Fprintln(os.Stderr, "Error: the projection could not be computed.")
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
