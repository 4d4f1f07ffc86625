package types

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type Security struct {
	Id                   int64               `json:"id"`
	Symbol               string              `json:"symbol"`
	Currency             string              `json:"currency,omitempty"`
	ExchangeName         string              `json:"exchangeName,omitempty"`
	FullExchangeName     string              `json:"fullExchangeName,omitempty"`
	InstrumentType       string              `json:"instrumentType,omitempty"`
	FirstTradeDate       *int64              `json:"firstTradeDate"`
	Timezone             string              `json:"timezone,omitempty"`
	ExchangeTimezoneName string              `json:"exchangeTimezoneName,omitempty"`
	RegularMarketPrice   decimal.NullDecimal `json:"regularMarketPrice"`
	LongName             string              `json:"longName,omitempty"`
	ShortName            string              `json:"shortName,omitempty"`
}

// MarshalJSON renders the market price as a bare number, or null when unknown.
func (s Security) MarshalJSON() ([]byte, error) {
	type plain Security
	var price *json.Number
	if s.RegularMarketPrice.Valid {
		n := number(s.RegularMarketPrice.Decimal)
		price = &n
	}
	return json.Marshal(struct {
		plain
		RegularMarketPrice *json.Number `json:"regularMarketPrice"`
	}{plain(s), price})
}

// DisplayName prefers the long name, then the short name, then the symbol.
func (s Security) DisplayName() string {
	if s.LongName != "" {
		return s.LongName
	}
	if s.ShortName != "" {
		return s.ShortName
	}
	return s.Symbol
}

// SecurityRef is the subset of a Security reported with a simulation.
type SecurityRef struct {
	Id             int64  `json:"id"`
	Symbol         string `json:"symbol"`
	DisplayName    string `json:"displayName"`
	FirstTradeDate *int64 `json:"firstTradeDate"`
	Currency       string `json:"-"`
}

func (s Security) Ref() SecurityRef {
	return SecurityRef{
		Id:             s.Id,
		Symbol:         s.Symbol,
		DisplayName:    s.DisplayName(),
		FirstTradeDate: s.FirstTradeDate,
		Currency:       s.Currency,
	}
}
