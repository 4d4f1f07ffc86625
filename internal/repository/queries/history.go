package queries

import (
	"context"

	"github.com/jackc/pgx/v5"
)

const getEarliestPriceTimestamp = `SELECT MIN(ts) FROM security_prices WHERE security_id = $1`

// GetEarliestPriceTimestamp returns nil when the security has no prices.
func (q *Queries) GetEarliestPriceTimestamp(ctx context.Context, securityID int64) (*int64, error) {
	var ts *int64
	err := q.db.QueryRow(ctx, getEarliestPriceTimestamp, securityID).Scan(&ts)
	return ts, err
}

const getPricesFrom = `SELECT security_id, ts, low_price, open_price, close_price
FROM security_prices
WHERE security_id = $1 AND ts >= $2
ORDER BY ts ASC`

type GetPricesFromParams struct {
	SecurityID int64
	Start      int64
}

func (q *Queries) GetPricesFrom(ctx context.Context, arg GetPricesFromParams) ([]SecurityPrice, error) {
	rows, err := q.db.Query(ctx, getPricesFrom, arg.SecurityID, arg.Start)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[SecurityPrice])
}

const getDividendsFrom = `SELECT security_id, announce_ts, payment_ts, amount
FROM security_dividends
WHERE security_id = $1 AND announce_ts >= $2
ORDER BY announce_ts ASC`

type GetDividendsFromParams struct {
	SecurityID int64
	Start      int64
}

func (q *Queries) GetDividendsFrom(ctx context.Context, arg GetDividendsFromParams) ([]SecurityDividend, error) {
	rows, err := q.db.Query(ctx, getDividendsFrom, arg.SecurityID, arg.Start)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[SecurityDividend])
}

const deletePrices = `DELETE FROM security_prices WHERE security_id = $1`

func (q *Queries) DeletePrices(ctx context.Context, securityID int64) error {
	_, err := q.db.Exec(ctx, deletePrices, securityID)
	return err
}

const deleteDividends = `DELETE FROM security_dividends WHERE security_id = $1`

func (q *Queries) DeleteDividends(ctx context.Context, securityID int64) error {
	_, err := q.db.Exec(ctx, deleteDividends, securityID)
	return err
}

const insertPrice = `INSERT INTO security_prices (security_id, ts, low_price, open_price, close_price)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (security_id, ts) DO UPDATE SET
	low_price = EXCLUDED.low_price,
	open_price = EXCLUDED.open_price,
	close_price = EXCLUDED.close_price`

func (q *Queries) InsertPrice(ctx context.Context, arg SecurityPrice) error {
	_, err := q.db.Exec(ctx, insertPrice, arg.SecurityID, arg.Ts, arg.LowPrice, arg.OpenPrice, arg.ClosePrice)
	return err
}

const insertDividend = `INSERT INTO security_dividends (security_id, announce_ts, payment_ts, amount)
VALUES ($1, $2, $3, $4)
ON CONFLICT (security_id, announce_ts) DO UPDATE SET
	payment_ts = EXCLUDED.payment_ts,
	amount = EXCLUDED.amount`

func (q *Queries) InsertDividend(ctx context.Context, arg SecurityDividend) error {
	_, err := q.db.Exec(ctx, insertDividend, arg.SecurityID, arg.AnnounceTs, arg.PaymentTs, arg.Amount)
	return err
}
