package engine

import (
	"github.com/lzcampos/investment-calculator/types"
	"github.com/shopspring/decimal"
)

// position is the running state of a simulation. Methods return the next state
// and never modify the receiver, so a run is a fold over the price series.
// Money is kept unrounded; rounding only happens in fill.
type position struct {
	cash        decimal.Decimal
	shares      int64
	contributed decimal.Decimal
	dividends   decimal.Decimal
}

func newPosition() position {
	return position{
		cash:        decimal.Zero,
		contributed: decimal.Zero,
		dividends:   decimal.Zero,
	}
}

// contribute adds fresh capital and spends the whole cash balance on shares.
func (p position) contribute(amount, price decimal.Decimal) (position, int64) {
	p.cash = p.cash.Add(amount)
	p.contributed = p.contributed.Add(amount)
	return p.buy(price)
}

// receiveDividend credits dividend cash without touching contributions.
func (p position) receiveDividend(amount decimal.Decimal) position {
	p.cash = p.cash.Add(amount)
	p.dividends = p.dividends.Add(amount)
	return p
}

// buy spends cash on as many whole shares as price allows. A price that is not
// positive buys nothing.
func (p position) buy(price decimal.Decimal) (position, int64) {
	if !price.IsPositive() || !p.cash.IsPositive() {
		return p, 0
	}
	quotient, remainder := p.cash.QuoRem(price, 0)
	bought := quotient.IntPart()
	p.cash = remainder
	p.shares += bought
	return p, bought
}

func (p position) value(price decimal.Decimal) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(p.shares)).Add(p.cash)
}

func (p position) fill(price decimal.Decimal, bought int64) types.Fill {
	return types.Fill{
		PriceUsed:        price,
		SharesBought:     bought,
		TotalShares:      p.shares,
		AvailableCash:    roundCents(p.cash),
		TotalContributed: roundCents(p.contributed),
	}
}

func roundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
