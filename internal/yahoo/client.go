package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const DefaultBaseURL = "https://query1.finance.yahoo.com/v8/finance/chart"

// Client is a Yahoo Finance chart API client
type Client struct {
	client  *http.Client
	baseURL string
	log     zerolog.Logger
}

// NewClient creates a new Yahoo Finance client. An empty baseURL uses DefaultBaseURL.
func NewClient(baseURL string, log zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log.With().Str("client", "yahoo").Logger(),
	}
}

// GetMonthlyChart fetches the full monthly history of symbol with its dividend events.
func (c *Client) GetMonthlyChart(ctx context.Context, symbol string) (*Chart, error) {
	params := url.Values{}
	params.Add("range", "max")
	params.Add("interval", "1mo")
	params.Add("events", "div,split")
	reqURL := c.baseURL + "/" + url.PathEscape(symbol) + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	// Set headers to mimic browser
	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch chart: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo chart API returned status %d: %s", resp.StatusCode, string(body))
	}

	var result chartResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if result.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo chart API error %s: %s", result.Chart.Error.Code, result.Chart.Error.Description)
	}
	if len(result.Chart.Result) == 0 {
		return nil, fmt.Errorf("empty chart result for %s", symbol)
	}

	chart := convertChart(result)
	c.log.Debug().
		Str("symbol", symbol).
		Int("prices", len(chart.Prices)).
		Int("dividends", len(chart.Dividends)).
		Msg("Fetched monthly chart")
	return chart, nil
}

func convertChart(resp chartResponse) *Chart {
	data := resp.Chart.Result[0]
	meta := data.Meta
	chart := &Chart{
		Meta: Meta{
			Currency:             str(meta.Currency),
			Symbol:               str(meta.Symbol),
			ExchangeName:         str(meta.ExchangeName),
			FullExchangeName:     str(meta.FullExchangeName),
			InstrumentType:       str(meta.InstrumentType),
			FirstTradeDate:       nonZero(meta.FirstTradeDate),
			Timezone:             str(meta.Timezone),
			ExchangeTimezoneName: str(meta.ExchangeTimezoneName),
			RegularMarketPrice:   nullDecimal(meta.RegularMarketPrice),
			LongName:             str(meta.LongName),
			ShortName:            str(meta.ShortName),
		},
	}

	var lows, opens, closes []*float64
	if len(data.Indicators.Quote) > 0 {
		q := data.Indicators.Quote[0]
		lows, opens, closes = q.Low, q.Open, q.Close
	}
	for i, ts := range data.Timestamp {
		if ts == 0 {
			continue
		}
		chart.Prices = append(chart.Prices, Price{
			Timestamp: ts,
			Low:       nullDecimal(at(lows, i)),
			Open:      nullDecimal(at(opens, i)),
			Close:     nullDecimal(at(closes, i)),
		})
	}

	for key, ev := range data.Events.Dividends {
		announce, err := strconv.ParseInt(key, 10, 64)
		if err != nil || announce == 0 {
			continue
		}
		chart.Dividends = append(chart.Dividends, Dividend{
			AnnounceTimestamp: announce,
			PaymentTimestamp:  nonZero(ev.Date),
			Amount:            nullDecimal(ev.Amount),
		})
	}
	sort.Slice(chart.Dividends, func(i, j int) bool {
		return chart.Dividends[i].AnnounceTimestamp < chart.Dividends[j].AnnounceTimestamp
	})
	return chart
}

func at(values []*float64, i int) *float64 {
	if i >= len(values) {
		return nil
	}
	return values[i]
}

func nullDecimal(v *float64) decimal.NullDecimal {
	if v == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: decimal.NewFromFloat(*v), Valid: true}
}

func nonZero(v *int64) *int64 {
	if v == nil || *v == 0 {
		return nil
	}
	return v
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
