package queries

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const securityColumns = `id, symbol, currency, exchange_name, full_exchange_name, instrument_type,
	first_trade_date, timezone, exchange_timezone_name, regular_market_price, long_name, short_name`

const getSecurity = `SELECT ` + securityColumns + `
FROM securities
WHERE id = $1`

func (q *Queries) GetSecurity(ctx context.Context, id int64) (Security, error) {
	rows, err := q.db.Query(ctx, getSecurity, id)
	if err != nil {
		return Security{}, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[Security])
}

const searchSecurities = `SELECT ` + securityColumns + `
FROM securities
WHERE symbol ILIKE $1
   OR long_name ILIKE $1
   OR short_name ILIKE $1
   OR ($2::numeric IS NOT NULL AND (regular_market_price = $2 OR first_trade_date = $2))
ORDER BY symbol ASC
LIMIT $3`

type SearchSecuritiesParams struct {
	Pattern string
	Number  decimal.NullDecimal
	Limit   int32
}

func (q *Queries) SearchSecurities(ctx context.Context, arg SearchSecuritiesParams) ([]Security, error) {
	rows, err := q.db.Query(ctx, searchSecurities, arg.Pattern, arg.Number, arg.Limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Security])
}

const upsertSecurity = `INSERT INTO securities (
	symbol, currency, exchange_name, full_exchange_name, instrument_type, first_trade_date,
	timezone, exchange_timezone_name, regular_market_price, long_name, short_name
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT (symbol) DO UPDATE SET
	currency = EXCLUDED.currency,
	exchange_name = EXCLUDED.exchange_name,
	full_exchange_name = EXCLUDED.full_exchange_name,
	instrument_type = EXCLUDED.instrument_type,
	first_trade_date = EXCLUDED.first_trade_date,
	timezone = EXCLUDED.timezone,
	exchange_timezone_name = EXCLUDED.exchange_timezone_name,
	regular_market_price = EXCLUDED.regular_market_price,
	long_name = EXCLUDED.long_name,
	short_name = EXCLUDED.short_name
RETURNING id`

func (q *Queries) UpsertSecurity(ctx context.Context, arg Security) (int64, error) {
	var id int64
	err := q.db.QueryRow(ctx, upsertSecurity,
		arg.Symbol,
		arg.Currency,
		arg.ExchangeName,
		arg.FullExchangeName,
		arg.InstrumentType,
		arg.FirstTradeDate,
		arg.Timezone,
		arg.ExchangeTimezoneName,
		arg.RegularMarketPrice,
		arg.LongName,
		arg.ShortName,
	).Scan(&id)
	return id, err
}
