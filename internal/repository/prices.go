package repository

import (
	"context"
	"fmt"

	"github.com/lzcampos/investment-calculator/internal/repository/queries"
	"github.com/lzcampos/investment-calculator/types"
)

// GetEarliestPriceTimestamp returns the first price timestamp of a security, or
// ErrNoPriceData when it has none.
func (db *Database) GetEarliestPriceTimestamp(ctx context.Context, securityID int64) (int64, error) {
	ts, err := db.prices.GetEarliestPriceTimestamp(ctx, securityID)
	if err != nil {
		return 0, err
	}
	if ts == nil {
		return 0, ErrNoPriceData
	}
	return *ts, nil
}

// GetPricesFrom returns the prices at or after start in ascending order.
func (db *Database) GetPricesFrom(ctx context.Context, securityID int64, start int64) ([]types.PricePoint, error) {
	rows, err := db.prices.GetPricesFrom(ctx, queries.GetPricesFromParams{SecurityID: securityID, Start: start})
	if err != nil {
		return nil, err
	}
	return convertPrices(rows), nil
}

// GetDividendsFrom returns the dividends announced at or after start.
func (db *Database) GetDividendsFrom(ctx context.Context, securityID int64, start int64) ([]types.DividendEvent, error) {
	rows, err := db.dividends.GetDividendsFrom(ctx, queries.GetDividendsFromParams{SecurityID: securityID, Start: start})
	if err != nil {
		return nil, err
	}
	return convertDividends(rows), nil
}

// ReplaceHistory swaps the stored series of a security for the given ones in a
// single transaction.
func (db *Database) ReplaceHistory(ctx context.Context, securityID int64, prices []types.PricePoint, dividends []types.DividendEvent) error {
	return db.inTx(ctx, func(q historyRepository) error {
		if err := q.DeletePrices(ctx, securityID); err != nil {
			return fmt.Errorf("delete prices: %w", err)
		}
		if err := q.DeleteDividends(ctx, securityID); err != nil {
			return fmt.Errorf("delete dividends: %w", err)
		}
		for _, p := range prices {
			err := q.InsertPrice(ctx, queries.SecurityPrice{
				SecurityID: securityID,
				Ts:         p.Timestamp,
				LowPrice:   p.Low,
				OpenPrice:  p.Open,
				ClosePrice: p.Close,
			})
			if err != nil {
				return fmt.Errorf("insert price %d: %w", p.Timestamp, err)
			}
		}
		for _, d := range dividends {
			err := q.InsertDividend(ctx, queries.SecurityDividend{
				SecurityID: securityID,
				AnnounceTs: d.AnnounceTimestamp,
				PaymentTs:  d.PaymentTimestamp,
				Amount:     d.Amount,
			})
			if err != nil {
				return fmt.Errorf("insert dividend %d: %w", d.AnnounceTimestamp, err)
			}
		}
		return nil
	})
}

func convertPrices(rows []queries.SecurityPrice) []types.PricePoint {
	prices := make([]types.PricePoint, 0, len(rows))
	for _, row := range rows {
		prices = append(prices, types.PricePoint{
			Timestamp: row.Ts,
			Open:      row.OpenPrice,
			Low:       row.LowPrice,
			Close:     row.ClosePrice,
		})
	}
	return prices
}

func convertDividends(rows []queries.SecurityDividend) []types.DividendEvent {
	dividends := make([]types.DividendEvent, 0, len(rows))
	for _, row := range rows {
		dividends = append(dividends, types.DividendEvent{
			AnnounceTimestamp: row.AnnounceTs,
			PaymentTimestamp:  row.PaymentTs,
			Amount:            row.Amount,
		})
	}
	return dividends
}
