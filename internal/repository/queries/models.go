package queries

import (
	"github.com/shopspring/decimal"
)

type Security struct {
	ID                   int64               `db:"id"`
	Symbol               string              `db:"symbol"`
	Currency             *string             `db:"currency"`
	ExchangeName         *string             `db:"exchange_name"`
	FullExchangeName     *string             `db:"full_exchange_name"`
	InstrumentType       *string             `db:"instrument_type"`
	FirstTradeDate       *int64              `db:"first_trade_date"`
	Timezone             *string             `db:"timezone"`
	ExchangeTimezoneName *string             `db:"exchange_timezone_name"`
	RegularMarketPrice   decimal.NullDecimal `db:"regular_market_price"`
	LongName             *string             `db:"long_name"`
	ShortName            *string             `db:"short_name"`
}

type SecurityPrice struct {
	SecurityID int64               `db:"security_id"`
	Ts         int64               `db:"ts"`
	LowPrice   decimal.NullDecimal `db:"low_price"`
	OpenPrice  decimal.NullDecimal `db:"open_price"`
	ClosePrice decimal.NullDecimal `db:"close_price"`
}

type SecurityDividend struct {
	SecurityID int64               `db:"security_id"`
	AnnounceTs int64               `db:"announce_ts"`
	PaymentTs  *int64              `db:"payment_ts"`
	Amount     decimal.NullDecimal `db:"amount"`
}
