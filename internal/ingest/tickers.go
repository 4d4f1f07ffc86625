package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrNoTickerColumn = errors.New("no Ticker column in header")

// ReadTickers reads the Ticker (or ticker) column of a CSV with a header row.
// Blank and repeated tickers are dropped; order is preserved.
func ReadTickers(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoTickerColumn
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	col := -1
	for i, name := range header {
		name = strings.TrimPrefix(strings.TrimSpace(name), "\ufeff")
		if name == "Ticker" || (name == "ticker" && col == -1) {
			col = i
		}
	}
	if col == -1 {
		return nil, ErrNoTickerColumn
	}

	var tickers []string
	seen := make(map[string]struct{})
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}
		if col >= len(record) {
			continue
		}
		ticker := strings.TrimSpace(record[col])
		if ticker == "" {
			continue
		}
		if _, ok := seen[ticker]; ok {
			continue
		}
		seen[ticker] = struct{}{}
		tickers = append(tickers, ticker)
	}
	return tickers, nil
}
