package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/google/subcommands"
	"github.com/lzcampos/investment-calculator/internal/repository"
)

type searchCmd struct {
	limit int
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search securities by symbol, name or price" }
func (*searchCmd) Usage() string {
	return `search [-limit <n>] <query>

  Lists securities whose symbol or name contains the query.
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "limit", repository.DefaultSearchLimit, "maximum number of results")
}

func (c *searchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	q := strings.Join(f.Args(), " ")
	if strings.TrimSpace(q) == "" {
		fail("a query is required")
		return subcommands.ExitUsageError
	}

	a, err := openApp(ctx, os.Stderr)
	if err != nil {
		fail("%v", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	items, err := a.db.SearchSecurities(ctx, q, c.limit)
	if err != nil {
		fail("%v", err)
		return subcommands.ExitFailure
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSYMBOL\tNAME\tCURRENCY")
	for _, s := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", s.Id, s.Symbol, s.DisplayName(), s.Currency)
	}
	if err := w.Flush(); err != nil {
		fail("%v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
