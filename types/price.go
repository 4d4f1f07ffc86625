package types

import (
	"github.com/shopspring/decimal"
)

// PricePoint is one monthly bar of a security. Only Close drives the simulation.
type PricePoint struct {
	Timestamp int64               `json:"timestamp"`
	Open      decimal.NullDecimal `json:"open"`
	Low       decimal.NullDecimal `json:"low"`
	Close     decimal.NullDecimal `json:"close"`
}

// ClosePrice returns the close, or zero when the feed had none.
func (p PricePoint) ClosePrice() decimal.Decimal {
	if !p.Close.Valid {
		return decimal.Zero
	}
	return p.Close.Decimal
}

type DividendEvent struct {
	AnnounceTimestamp int64               `json:"announceTimestamp"`
	PaymentTimestamp  *int64              `json:"paymentTimestamp"`
	Amount            decimal.NullDecimal `json:"amount"`
}

// EffectiveTimestamp is the payment date when known, the announce date otherwise.
func (d DividendEvent) EffectiveTimestamp() int64 {
	if d.PaymentTimestamp != nil && *d.PaymentTimestamp != 0 {
		return *d.PaymentTimestamp
	}
	return d.AnnounceTimestamp
}

func (d DividendEvent) AmountPerShare() decimal.Decimal {
	if !d.Amount.Valid {
		return decimal.Zero
	}
	return d.Amount.Decimal
}
