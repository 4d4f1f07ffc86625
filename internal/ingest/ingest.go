// Package ingest loads monthly price and dividend history from the chart API
// into the store.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/lzcampos/investment-calculator/internal/yahoo"
	"github.com/lzcampos/investment-calculator/types"
	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
)

var ErrMissingSymbol = errors.New("missing symbol in chart meta")

type chartSource interface {
	GetMonthlyChart(ctx context.Context, symbol string) (*yahoo.Chart, error)
}

type store interface {
	UpsertSecurity(ctx context.Context, s types.Security) (int64, error)
	ReplaceHistory(ctx context.Context, securityID int64, prices []types.PricePoint, dividends []types.DividendEvent) error
}

type Ingester struct {
	source       chartSource
	store        store
	log          zerolog.Logger
	symbolSuffix string
	delay        time.Duration
	progress     io.Writer
}

func NewIngester(source chartSource, store store, log zerolog.Logger, symbolSuffix string, delay time.Duration, progress io.Writer) *Ingester {
	return &Ingester{
		source:       source,
		store:        store,
		log:          log.With().Str("component", "ingest").Logger(),
		symbolSuffix: symbolSuffix,
		delay:        delay,
		progress:     progress,
	}
}

// TickerResult is the outcome for one ticker. Err is nil on success.
type TickerResult struct {
	Ticker            string
	SecurityID        int64
	PricesInserted    int
	DividendsInserted int
	Err               error
}

type Report struct {
	Results []TickerResult
}

func (r Report) Failures() []TickerResult {
	var out []TickerResult
	for _, res := range r.Results {
		if res.Err != nil {
			out = append(out, res)
		}
	}
	return out
}

// Totals returns the number of successful tickers and the rows they inserted.
func (r Report) Totals() (ok, prices, dividends int) {
	for _, res := range r.Results {
		if res.Err != nil {
			continue
		}
		ok++
		prices += res.PricesInserted
		dividends += res.DividendsInserted
	}
	return ok, prices, dividends
}

// Print writes the totals and the first maxFailures failures to w.
func (r Report) Print(w io.Writer, maxFailures int) {
	ok, prices, dividends := r.Totals()
	failures := r.Failures()
	fmt.Fprintf(w, "Ingest complete. Stocks: %d ok, %d failed.\n", ok, len(failures))
	fmt.Fprintf(w, "Inserted price rows: %d, dividend rows: %d\n", prices, dividends)
	if len(failures) == 0 {
		return
	}
	fmt.Fprintln(w, "Some failures:")
	for _, f := range failures[:min(maxFailures, len(failures))] {
		fmt.Fprintf(w, " - %s: %v\n", f.Ticker, f.Err)
	}
	if extra := len(failures) - maxFailures; extra > 0 {
		fmt.Fprintf(w, " ... and %d more.\n", extra)
	}
}

// Run ingests tickers one at a time, pausing between requests. A failing ticker
// is recorded and skipped; a cancelled context stops the run.
func (in *Ingester) Run(ctx context.Context, tickers []string) (Report, error) {
	report := Report{Results: make([]TickerResult, 0, len(tickers))}
	bar := initProgressBar(len(tickers), in.progress)

	for i, ticker := range tickers {
		if i > 0 && in.delay > 0 {
			select {
			case <-ctx.Done():
				return report, ctx.Err()
			case <-time.After(in.delay):
			}
		}
		if err := ctx.Err(); err != nil {
			return report, err
		}

		bar.Describe(ticker)
		res := in.ingestTicker(ctx, ticker)
		if res.Err != nil {
			in.log.Warn().Err(res.Err).Str("ticker", ticker).Msg("Ticker ingestion failed")
		}
		report.Results = append(report.Results, res)
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	ok, prices, dividends := report.Totals()
	in.log.Info().
		Int("ok", ok).
		Int("failed", len(report.Results)-ok).
		Int("prices", prices).
		Int("dividends", dividends).
		Msg("Ingest complete")
	return report, nil
}

func (in *Ingester) ingestTicker(ctx context.Context, ticker string) TickerResult {
	res := TickerResult{Ticker: ticker}

	chart, err := in.source.GetMonthlyChart(ctx, ticker+in.symbolSuffix)
	if err != nil {
		res.Err = err
		return res
	}
	if chart.Meta.Symbol == "" {
		res.Err = ErrMissingSymbol
		return res
	}

	id, err := in.store.UpsertSecurity(ctx, convertMeta(chart.Meta))
	if err != nil {
		res.Err = err
		return res
	}
	res.SecurityID = id

	prices, dividends := convertHistory(chart)
	if err := in.store.ReplaceHistory(ctx, id, prices, dividends); err != nil {
		res.Err = fmt.Errorf("replace history: %w", err)
		return res
	}
	res.PricesInserted = len(prices)
	res.DividendsInserted = len(dividends)
	return res
}

func convertMeta(m yahoo.Meta) types.Security {
	return types.Security{
		Symbol:               m.Symbol,
		Currency:             m.Currency,
		ExchangeName:         m.ExchangeName,
		FullExchangeName:     m.FullExchangeName,
		InstrumentType:       m.InstrumentType,
		FirstTradeDate:       m.FirstTradeDate,
		Timezone:             m.Timezone,
		ExchangeTimezoneName: m.ExchangeTimezoneName,
		RegularMarketPrice:   m.RegularMarketPrice,
		LongName:             m.LongName,
		ShortName:            m.ShortName,
	}
}

func convertHistory(chart *yahoo.Chart) ([]types.PricePoint, []types.DividendEvent) {
	prices := make([]types.PricePoint, 0, len(chart.Prices))
	for _, p := range chart.Prices {
		prices = append(prices, types.PricePoint{
			Timestamp: p.Timestamp,
			Open:      p.Open,
			Low:       p.Low,
			Close:     p.Close,
		})
	}
	dividends := make([]types.DividendEvent, 0, len(chart.Dividends))
	for _, d := range chart.Dividends {
		dividends = append(dividends, types.DividendEvent{
			AnnounceTimestamp: d.AnnounceTimestamp,
			PaymentTimestamp:  d.PaymentTimestamp,
			Amount:            d.Amount,
		})
	}
	return prices, dividends
}

func initProgressBar(maxTicks int, w io.Writer) *progressbar.ProgressBar {
	return progressbar.NewOptions(maxTicks,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetDescription("Ingesting tickers..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}
