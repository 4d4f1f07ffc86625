package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/subcommands"
	"github.com/lzcampos/investment-calculator/internal/engine"
	"github.com/lzcampos/investment-calculator/internal/server"
)

type serveCmd struct {
	port int
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the simulation HTTP API" }
func (*serveCmd) Usage() string {
	return `serve [-port <port>]

  Starts the HTTP API. The port defaults to PORT from the environment.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.port, "port", 0, "listen port, overrides PORT")
}

func (c *serveCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx, os.Stdout)
	if err != nil {
		fail("%v", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	port := a.cfg.Port
	if c.port > 0 {
		port = c.port
	}
	srv := server.New(server.Config{
		Port:           port,
		RequestTimeout: a.cfg.RequestTimeout,
		Log:            a.log,
		Simulator:      engine.NewEngine(a.db, a.log),
		Directory:      a.db,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		if err != nil {
			a.log.Error().Err(err).Msg("HTTP server failed")
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	case <-quit:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.log.Error().Err(err).Msg("Server forced to shutdown")
		return subcommands.ExitFailure
	}
	a.log.Info().Msg("Server stopped")
	return subcommands.ExitSuccess
}
