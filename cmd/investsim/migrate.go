package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
)

type migrateCmd struct{}

func (*migrateCmd) Name() string     { return "migrate" }
func (*migrateCmd) Synopsis() string { return "create the database schema" }
func (*migrateCmd) Usage() string {
	return `migrate

  Creates the securities, prices and dividends tables if they do not exist.
`
}

func (*migrateCmd) SetFlags(*flag.FlagSet) {}

func (*migrateCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx, os.Stderr)
	if err != nil {
		fail("%v", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	if err := a.db.Migrate(ctx); err != nil {
		fail("migrate: %v", err)
		return subcommands.ExitFailure
	}
	a.log.Info().Msg("Schema up to date")
	return subcommands.ExitSuccess
}
