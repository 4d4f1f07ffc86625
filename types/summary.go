package types

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type Summary struct {
	TotalAmount    decimal.Decimal
	TotalDividends decimal.Decimal
	Profit         decimal.Decimal
	Investment     decimal.Decimal
	Shares         int64
	LastPrice      decimal.Decimal
	Cash           decimal.Decimal
	Security       SecurityRef
}

func (s Summary) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		TotalAmount    json.Number `json:"totalAmount"`
		TotalDividends json.Number `json:"totalDividends"`
		Profit         json.Number `json:"profit"`
		Investment     json.Number `json:"investment"`
		Shares         int64       `json:"shares"`
		LastPrice      json.Number `json:"lastPrice"`
		Cash           json.Number `json:"cash"`
		Security       SecurityRef `json:"security"`
	}{
		TotalAmount:    number(s.TotalAmount),
		TotalDividends: number(s.TotalDividends),
		Profit:         number(s.Profit),
		Investment:     number(s.Investment),
		Shares:         s.Shares,
		LastPrice:      number(s.LastPrice),
		Cash:           number(s.Cash),
		Security:       s.Security,
	})
}

// Result is the outcome of one simulation run.
type Result struct {
	Summary Summary     `json:"summary"`
	Ledger  []Operation `json:"ledger"`
}
