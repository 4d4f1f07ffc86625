package engine

import (
	"context"

	"github.com/lzcampos/investment-calculator/types"
)

// dataStore is the security and history lookup the engine reads from.
type dataStore interface {
	GetSecurity(ctx context.Context, id int64) (*types.Security, error)
	GetEarliestPriceTimestamp(ctx context.Context, securityID int64) (int64, error)
	GetPricesFrom(ctx context.Context, securityID int64, start int64) ([]types.PricePoint, error)
	GetDividendsFrom(ctx context.Context, securityID int64, start int64) ([]types.DividendEvent, error)
}
