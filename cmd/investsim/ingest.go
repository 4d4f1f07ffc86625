package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/subcommands"
	"github.com/lzcampos/investment-calculator/internal/ingest"
	"github.com/lzcampos/investment-calculator/internal/yahoo"
)

type ingestCmd struct {
	csvPath string
	limit   int
}

func (*ingestCmd) Name() string     { return "ingest" }
func (*ingestCmd) Synopsis() string { return "load monthly prices and dividends for listed tickers" }
func (*ingestCmd) Usage() string {
	return `ingest [-csv <file>] [-limit <n>]

  Reads tickers from the CSV's Ticker column and replaces each security's
  monthly price and dividend history with a fresh download.
  - csv: defaults to TICKERS_CSV from the environment.
  - limit: only ingest the first n tickers.
`
}

func (c *ingestCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.csvPath, "csv", "", "tickers CSV, overrides TICKERS_CSV")
	f.IntVar(&c.limit, "limit", 0, "ingest at most n tickers (0 for all)")
}

func (c *ingestCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := openApp(ctx, os.Stderr)
	if err != nil {
		fail("%v", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	path := a.cfg.TickersCSV
	if c.csvPath != "" {
		path = c.csvPath
	}
	f, err := os.Open(path)
	if err != nil {
		fail("open tickers: %v", err)
		return subcommands.ExitFailure
	}
	tickers, err := ingest.ReadTickers(f)
	f.Close()
	if err != nil {
		fail("read %s: %v", path, err)
		return subcommands.ExitFailure
	}
	if c.limit > 0 && c.limit < len(tickers) {
		tickers = tickers[:c.limit]
	}
	a.log.Info().Str("csv", path).Int("tickers", len(tickers)).Msg("Starting ingest")

	client := yahoo.NewClient(a.cfg.YahooBaseURL, a.log)
	in := ingest.NewIngester(client, a.db, a.log, a.cfg.YahooSymbolSuffix, a.cfg.IngestDelay, os.Stderr)
	report, err := in.Run(ctx, tickers)
	report.Print(os.Stdout, 10)
	if err != nil {
		a.log.Warn().Err(err).Int("done", len(report.Results)).Msg("Ingest interrupted")
		return subcommands.ExitFailure
	}
	if len(report.Failures()) == len(report.Results) && len(report.Results) > 0 {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
