package engine

import (
	"github.com/lzcampos/investment-calculator/types"
	"github.com/shopspring/decimal"
)

// Simulate replays the contribution strategy of req over prices and returns the
// ledger and summary. prices must be ascending by timestamp. Simulate does no I/O
// and is safe to call concurrently.
func Simulate(prices []types.PricePoint, dividends []types.DividendEvent, req types.SimulationRequest, security types.SecurityRef) types.Result {
	if len(prices) == 0 {
		return types.Result{Summary: summarize(newPosition(), decimal.Zero, security)}
	}
	schedule := newDividendSchedule(dividends)

	// At most one contribution and one dividend payout per period.
	ledger := make([]types.Operation, 0, 2*len(prices))

	pos, initial := contribute(newPosition(), true, req.InitialInvestment, prices[0])
	ledger = append(ledger, initial)

	for i := 1; i < len(prices); i++ {
		var ops []types.Operation
		pos, ops = step(pos, prices[i-1], prices[i], schedule, req)
		ledger = append(ledger, ops...)
	}

	last := prices[len(prices)-1].ClosePrice()
	return types.Result{
		Summary: summarize(pos, last, security),
		Ledger:  ledger,
	}
}

// step advances pos from prev to curr: the monthly contribution first, then the
// dividends effective in (prev, curr] paid on the shares held after it.
func step(pos position, prev, curr types.PricePoint, schedule dividendSchedule, req types.SimulationRequest) (position, []types.Operation) {
	var ops []types.Operation
	price := curr.ClosePrice()

	if req.MonthlyInvestment.IsPositive() {
		var op types.Operation
		pos, op = contribute(pos, false, req.MonthlyInvestment, curr)
		ops = append(ops, op)
	}

	perShare := schedule.perShareBetween(prev.Timestamp, curr.Timestamp)
	received := perShare.Mul(decimal.NewFromInt(pos.shares))
	if !received.IsPositive() {
		return pos, ops
	}

	pos = pos.receiveDividend(received)
	var bought int64
	if req.ReinvestDividends {
		pos, bought = pos.buy(price)
	}
	ops = append(ops, types.DividendPayout{
		Reinvested: req.ReinvestDividends,
		Timestamp:  curr.Timestamp,
		Amount:     roundCents(received),
		Fill:       pos.fill(price, bought),
	})
	return pos, ops
}

func contribute(pos position, initial bool, amount decimal.Decimal, at types.PricePoint) (position, types.Operation) {
	price := at.ClosePrice()
	next, bought := pos.contribute(amount, price)
	return next, types.Contribution{
		Initial:   initial,
		Timestamp: at.Timestamp,
		Amount:    roundCents(amount),
		Fill:      next.fill(price, bought),
	}
}
