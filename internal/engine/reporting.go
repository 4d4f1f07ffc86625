package engine

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/lzcampos/investment-calculator/types"
	"github.com/shopspring/decimal"
)

// summarize values the final position at lastPrice. The totals are computed on
// the unrounded state and rounded once for reporting.
func summarize(pos position, lastPrice decimal.Decimal, security types.SecurityRef) types.Summary {
	total := pos.value(lastPrice)
	return types.Summary{
		TotalAmount:    roundCents(total),
		TotalDividends: roundCents(pos.dividends),
		Profit:         roundCents(total.Sub(pos.contributed)),
		Investment:     roundCents(pos.contributed),
		Shares:         pos.shares,
		LastPrice:      lastPrice,
		Cash:           roundCents(pos.cash),
		Security:       security,
	}
}

// PrintReport writes a human readable summary followed by the ledger.
func PrintReport(w io.Writer, result *types.Result) {
	s := result.Summary
	cur := s.Security.Currency

	fmt.Fprintln(w, "===== Investment Report =====")
	fmt.Fprintf(w, "Security:              %s (%s)\n", s.Security.DisplayName, s.Security.Symbol)
	if s.Security.FirstTradeDate != nil {
		fmt.Fprintf(w, "First Trade Date:      %s\n", formatDate(*s.Security.FirstTradeDate))
	}
	if len(result.Ledger) > 0 {
		fmt.Fprintf(w, "Period:                %s - %s\n",
			formatDate(result.Ledger[0].Time()),
			formatDate(result.Ledger[len(result.Ledger)-1].Time()))
	}

	fmt.Fprintln(w, "\n-- Performance --")
	fmt.Fprintf(w, "Total Amount:          %s\n", formatMoney(s.TotalAmount, cur))
	fmt.Fprintf(w, "Invested:              %s\n", formatMoney(s.Investment, cur))
	fmt.Fprintf(w, "Profit:                %s\n", formatMoney(s.Profit, cur))
	fmt.Fprintf(w, "Dividends:             %s\n", formatMoney(s.TotalDividends, cur))

	fmt.Fprintln(w, "\n-- Position --")
	fmt.Fprintf(w, "Shares:                %d\n", s.Shares)
	fmt.Fprintf(w, "Last Price:            %s\n", formatMoney(s.LastPrice, cur))
	fmt.Fprintf(w, "Cash:                  %s\n", formatMoney(s.Cash, cur))

	fmt.Fprintln(w, "\n-- Ledger --")
	for _, op := range result.Ledger {
		fill := op.Executed()
		line := fmt.Sprintf("%s  %-34s price %s  bought %d  shares %d  cash %s",
			formatDate(op.Time()), op.Kind(), formatMoney(fill.PriceUsed, cur),
			fill.SharesBought, fill.TotalShares, formatMoney(fill.AvailableCash, cur))
		if payout, ok := op.(types.DividendPayout); ok {
			line += "  dividends " + formatMoney(payout.Amount, cur)
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w, "=============================")
}

// formatMoney uses the currency's own format, or two plain decimals when the
// currency is unknown.
func formatMoney(d decimal.Decimal, currency string) string {
	cur := money.GetCurrency(strings.ToUpper(currency))
	if cur == nil {
		return d.StringFixed(2)
	}
	return cur.Formatter().Format(d.Shift(int32(cur.Fraction)).Round(0).IntPart())
}

func formatDate(ts int64) string {
	return time.Unix(ts, 0).UTC().Format("2006-01-02")
}
