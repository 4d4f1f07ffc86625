package engine

import (
	"sort"

	"github.com/lzcampos/investment-calculator/types"
	"github.com/shopspring/decimal"
)

// dividendSchedule holds dividend events ordered by effective timestamp.
type dividendSchedule struct {
	timestamps []int64
	amounts    []decimal.Decimal
}

func newDividendSchedule(events []types.DividendEvent) dividendSchedule {
	sorted := append([]types.DividendEvent(nil), events...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].EffectiveTimestamp() < sorted[j].EffectiveTimestamp()
	})
	s := dividendSchedule{
		timestamps: make([]int64, len(sorted)),
		amounts:    make([]decimal.Decimal, len(sorted)),
	}
	for i, ev := range sorted {
		s.timestamps[i] = ev.EffectiveTimestamp()
		s.amounts[i] = ev.AmountPerShare()
	}
	return s
}

// perShareBetween sums the per-share amounts of events effective in (prev, curr].
func (s dividendSchedule) perShareBetween(prev, curr int64) decimal.Decimal {
	lo := sort.Search(len(s.timestamps), func(i int) bool { return s.timestamps[i] > prev })
	hi := sort.Search(len(s.timestamps), func(i int) bool { return s.timestamps[i] > curr })
	total := decimal.Zero
	for i := lo; i < hi; i++ {
		total = total.Add(s.amounts[i])
	}
	return total
}
