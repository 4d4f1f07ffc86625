package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lzcampos/investment-calculator/internal/repository/queries"
	"github.com/lzcampos/investment-calculator/types"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const (
	DefaultSearchLimit = 20
	MaxSearchLimit     = 100
)

// GetSecurity retrieves a types.Security by its id.
func (db *Database) GetSecurity(ctx context.Context, id int64) (*types.Security, error) {
	row, err := db.securities.GetSecurity(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("id %d %w", id, ErrSecurityNotFound)
		}
		return nil, err
	}
	security := convertSecurity(row)
	return &security, nil
}

// SearchSecurities matches q as a case-insensitive substring of the symbol and
// names, and exactly against the market price and first trade date when q is a
// number. An empty q matches nothing.
func (db *Database) SearchSecurities(ctx context.Context, q string, limit int) ([]types.Security, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return []types.Security{}, nil
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	limit = min(limit, MaxSearchLimit)

	args := queries.SearchSecuritiesParams{
		Pattern: "%" + q + "%",
		Limit:   int32(limit),
	}
	if n, err := decimal.NewFromString(q); err == nil {
		args.Number = decimal.NullDecimal{Decimal: n, Valid: true}
	}

	rows, err := db.securities.SearchSecurities(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", q, err)
	}
	out := make([]types.Security, 0, len(rows))
	for _, row := range rows {
		out = append(out, convertSecurity(row))
	}
	return out, nil
}

// UpsertSecurity stores s keyed by its symbol and returns its id.
func (db *Database) UpsertSecurity(ctx context.Context, s types.Security) (int64, error) {
	if s.Symbol == "" {
		return 0, errors.New("upsert security: missing symbol")
	}
	id, err := db.securities.UpsertSecurity(ctx, queries.Security{
		Symbol:               s.Symbol,
		Currency:             nullString(s.Currency),
		ExchangeName:         nullString(s.ExchangeName),
		FullExchangeName:     nullString(s.FullExchangeName),
		InstrumentType:       nullString(s.InstrumentType),
		FirstTradeDate:       s.FirstTradeDate,
		Timezone:             nullString(s.Timezone),
		ExchangeTimezoneName: nullString(s.ExchangeTimezoneName),
		RegularMarketPrice:   s.RegularMarketPrice,
		LongName:             nullString(s.LongName),
		ShortName:            nullString(s.ShortName),
	})
	if err != nil {
		return 0, fmt.Errorf("upsert security %s: %w", s.Symbol, err)
	}
	return id, nil
}

func convertSecurity(row queries.Security) types.Security {
	return types.Security{
		Id:                   row.ID,
		Symbol:               row.Symbol,
		Currency:             deref(row.Currency),
		ExchangeName:         deref(row.ExchangeName),
		FullExchangeName:     deref(row.FullExchangeName),
		InstrumentType:       deref(row.InstrumentType),
		FirstTradeDate:       row.FirstTradeDate,
		Timezone:             deref(row.Timezone),
		ExchangeTimezoneName: deref(row.ExchangeTimezoneName),
		RegularMarketPrice:   row.RegularMarketPrice,
		LongName:             deref(row.LongName),
		ShortName:            deref(row.ShortName),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
