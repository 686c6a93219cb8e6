package cmd

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/etnz/simulador/web"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

type serveCmd struct {
	paramFlags
	addr string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the interactive simulator page" }
func (*serveCmd) Usage() string {
	return `sce serve [-addr <host:port>] [<parameter flags>]

  Serves the simulator form, the summary, the chart and the Excel export.
  The parameter flags set the initial values of the form.

  Routes:
    GET /                 the page, parameters are read from the query
    GET /export.xlsx      the workbook
    GET /api/projection   the projection as JSON
    GET /healthz          liveness
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	c.paramFlags.SetFlags(f)
	f.StringVar(&c.addr, "addr", "", "Listen address. Defaults to $SCE_ADDR or :8080.")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := NewConfig()
	if c.addr != "" {
		cfg.Addr = c.addr
	}
	base, err := c.Params(ctx, cfg)
	if err != nil {
		return exitStatus(err)
	}
	if err := base.Validate(); err != nil {
		return exitStatus(err)
	}

	log := logrus.StandardLogger()
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           web.NewServer(base, log).Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		log.Infof("listening on %s", cfg.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return exitStatus(err)
		}
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return exitStatus(err)
		}
	}
	return subcommands.ExitSuccess
}
