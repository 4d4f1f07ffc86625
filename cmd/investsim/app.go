package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/lzcampos/investment-calculator/internal/config"
	"github.com/lzcampos/investment-calculator/internal/logger"
	"github.com/lzcampos/investment-calculator/internal/repository"
	"github.com/rs/zerolog"
)

// app bundles what every command needs: configuration, a logger and the database.
type app struct {
	cfg *config.Config
	log zerolog.Logger
	db  *repository.Database
}

// openApp loads configuration and connects to the database. Logs go to logOut so
// that commands printing results on stdout keep it clean.
func openApp(ctx context.Context, logOut io.Writer) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	log := logger.NewWithWriter(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty}, logOut)

	db, err := repository.NewDatabase(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return &app{cfg: cfg, log: log, db: db}, nil
}

func (a *app) Close() {
	a.db.Close()
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
