package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/google/subcommands"
	"github.com/lzcampos/investment-calculator/internal/engine"
	"github.com/lzcampos/investment-calculator/types"
)

type simulateCmd struct {
	stockID   int64
	initial   string
	start     string
	monthly   string
	noMonthly bool
	reinvest  bool
	asJSON    bool
	csvPath   string
}

func (*simulateCmd) Name() string     { return "simulate" }
func (*simulateCmd) Synopsis() string { return "run a buy-and-hold simulation for one security" }
func (*simulateCmd) Usage() string {
	return `simulate -stock <id> -start <date> [-initial <amount>] [-monthly <amount>] [-reinvest] [-json] [-csv <file>]

  Simulates buying a security at its first monthly close on or after -start,
  then contributing -monthly every following month.
  - start: a date (2006-01-02) or a unix timestamp in seconds.
  - csv: also write the ledger to this file.
`
}

func (c *simulateCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.stockID, "stock", 0, "security id (required)")
	f.StringVar(&c.initial, "initial", "0", "initial investment")
	f.StringVar(&c.start, "start", "", "investment start (required)")
	f.StringVar(&c.monthly, "monthly", "0", "monthly investment")
	f.BoolVar(&c.noMonthly, "no-monthly", false, "disable monthly contributions")
	f.BoolVar(&c.reinvest, "reinvest", false, "reinvest dividends")
	f.BoolVar(&c.asJSON, "json", false, "print the result as JSON")
	f.StringVar(&c.csvPath, "csv", "", "write the ledger as CSV to this file")
}

func (c *simulateCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.stockID == 0 || c.start == "" {
		fail("-stock and -start are required")
		return subcommands.ExitUsageError
	}
	start, err := parseStart(c.start)
	if err != nil {
		fail("%v", err)
		return subcommands.ExitUsageError
	}

	a, err := openApp(ctx, os.Stderr)
	if err != nil {
		fail("%v", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	enabled := !c.noMonthly
	params := types.SimulationParams{
		SecurityID:        json.Number(strconv.FormatInt(c.stockID, 10)),
		InitialInvestment: json.Number(c.initial),
		InvestmentStart:   json.Number(strconv.FormatInt(start, 10)),
		MonthlyInvestment: json.Number(c.monthly),
		MonthlyEnabled:    &enabled,
		ReinvestDividends: c.reinvest,
	}

	result, err := engine.NewEngine(a.db, a.log).Run(ctx, params)
	if err != nil {
		var rangeErr *engine.StartBeforeRangeError
		if errors.As(err, &rangeErr) {
			fail("%s: earliest available start is %s", engine.ErrorKind(err), time.Unix(rangeErr.Earliest, 0).UTC().Format(time.DateOnly))
		} else {
			fail("%s: %v", engine.ErrorKind(err), err)
		}
		return subcommands.ExitFailure
	}

	if c.asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			fail("encode result: %v", err)
			return subcommands.ExitFailure
		}
	} else {
		engine.PrintReport(os.Stdout, result)
	}

	if c.csvPath != "" {
		if err := engine.WriteLedgerCSVFile(c.csvPath, result.Ledger); err != nil {
			fail("write ledger: %v", err)
			return subcommands.ExitFailure
		}
		a.log.Info().Str("path", c.csvPath).Int("operations", len(result.Ledger)).Msg("Ledger written")
	}
	return subcommands.ExitSuccess
}

// parseStart accepts a calendar date in UTC or a unix timestamp in seconds.
func parseStart(s string) (int64, error) {
	if ts, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ts, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return 0, fmt.Errorf("invalid start %q: want YYYY-MM-DD or unix seconds", s)
	}
	return t.Unix(), nil
}
