package yahoo

import (
	"github.com/shopspring/decimal"
)

// Chart is the monthly history of one symbol as returned by the chart API.
type Chart struct {
	Meta      Meta
	Prices    []Price
	Dividends []Dividend
}

// Meta describes the security. Missing values are left empty.
type Meta struct {
	Currency             string
	Symbol               string
	ExchangeName         string
	FullExchangeName     string
	InstrumentType       string
	FirstTradeDate       *int64
	Timezone             string
	ExchangeTimezoneName string
	RegularMarketPrice   decimal.NullDecimal
	LongName             string
	ShortName            string
}

type Price struct {
	Timestamp int64
	Low       decimal.NullDecimal
	Open      decimal.NullDecimal
	Close     decimal.NullDecimal
}

type Dividend struct {
	AnnounceTimestamp int64
	PaymentTimestamp  *int64
	Amount            decimal.NullDecimal
}

// chartResponse mirrors the JSON payload. Yahoo returns null for missing
// samples, hence the pointers.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Currency             *string  `json:"currency"`
				Symbol               *string  `json:"symbol"`
				ExchangeName         *string  `json:"exchangeName"`
				FullExchangeName     *string  `json:"fullExchangeName"`
				InstrumentType       *string  `json:"instrumentType"`
				FirstTradeDate       *int64   `json:"firstTradeDate"`
				Timezone             *string  `json:"timezone"`
				ExchangeTimezoneName *string  `json:"exchangeTimezoneName"`
				RegularMarketPrice   *float64 `json:"regularMarketPrice"`
				LongName             *string  `json:"longName"`
				ShortName            *string  `json:"shortName"`
			} `json:"meta"`
			Timestamp []int64 `json:"timestamp"`
			Events    struct {
				Dividends map[string]struct {
					Amount *float64 `json:"amount"`
					Date   *int64   `json:"date"`
				} `json:"dividends"`
			} `json:"events"`
			Indicators struct {
				Quote []struct {
					Low   []*float64 `json:"low"`
					Open  []*float64 `json:"open"`
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}
