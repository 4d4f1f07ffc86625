package types

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type OperationKind string

const (
	OperationInitialInvestment   OperationKind = "initial_investment"
	OperationMonthlyInvestment   OperationKind = "monthly_investment"
	OperationDividendsReceived   OperationKind = "dividends_received"
	OperationDividendsReinvested OperationKind = "dividends_received_and_reinvested"
)

// Operation is one ledger entry, either a Contribution or a DividendPayout.
type Operation interface {
	Kind() OperationKind
	Time() int64
	Executed() Fill
	isOperation()
}

// Fill is the position right after an operation. Money fields are rounded to cents.
type Fill struct {
	PriceUsed        decimal.Decimal
	SharesBought     int64
	TotalShares      int64
	AvailableCash    decimal.Decimal
	TotalContributed decimal.Decimal
}

// Contribution is fresh capital put into the position and spent on whole shares.
type Contribution struct {
	Initial   bool
	Timestamp int64
	Amount    decimal.Decimal
	Fill      Fill
}

func (c Contribution) Kind() OperationKind {
	if c.Initial {
		return OperationInitialInvestment
	}
	return OperationMonthlyInvestment
}

func (c Contribution) Time() int64    { return c.Timestamp }
func (c Contribution) Executed() Fill { return c.Fill }
func (Contribution) isOperation()     {}

func (c Contribution) MarshalJSON() ([]byte, error) {
	out := newOperationJSON(c)
	out.Amount = number(c.Amount)
	return json.Marshal(out)
}

// DividendPayout is the dividend cash credited for one price period.
type DividendPayout struct {
	Reinvested bool
	Timestamp  int64
	Amount     decimal.Decimal
	Fill       Fill
}

func (d DividendPayout) Kind() OperationKind {
	if d.Reinvested {
		return OperationDividendsReinvested
	}
	return OperationDividendsReceived
}

func (d DividendPayout) Time() int64    { return d.Timestamp }
func (d DividendPayout) Executed() Fill { return d.Fill }
func (DividendPayout) isOperation()     {}

func (d DividendPayout) MarshalJSON() ([]byte, error) {
	out := newOperationJSON(d)
	out.DividendAmount = number(d.Amount)
	return json.Marshal(out)
}

type operationJSON struct {
	Kind             OperationKind `json:"kind"`
	Timestamp        int64         `json:"timestamp"`
	PriceUsed        json.Number   `json:"priceUsed"`
	SharesBought     int64         `json:"sharesBought"`
	TotalShares      int64         `json:"totalShares"`
	AvailableCash    json.Number   `json:"availableCash"`
	TotalContributed json.Number   `json:"totalContributed"`
	Amount           json.Number   `json:"amount,omitempty"`
	DividendAmount   json.Number   `json:"dividendAmount,omitempty"`
}

func newOperationJSON(op Operation) operationJSON {
	fill := op.Executed()
	return operationJSON{
		Kind:             op.Kind(),
		Timestamp:        op.Time(),
		PriceUsed:        number(fill.PriceUsed),
		SharesBought:     fill.SharesBought,
		TotalShares:      fill.TotalShares,
		AvailableCash:    number(fill.AvailableCash),
		TotalContributed: number(fill.TotalContributed),
	}
}

// number renders a decimal as a bare JSON number.
func number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}
