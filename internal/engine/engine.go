package engine

import (
	"context"
	"fmt"

	"github.com/lzcampos/investment-calculator/types"
	"github.com/rs/zerolog"
)

// Engine validates requests, loads the series they need and runs Simulate.
// It holds no per-request state.
type Engine struct {
	db  dataStore
	log zerolog.Logger
}

func NewEngine(db dataStore, log zerolog.Logger) *Engine {
	return &Engine{
		db:  db,
		log: log.With().Str("component", "engine").Logger(),
	}
}

type feed struct {
	security  *types.Security
	prices    []types.PricePoint
	dividends []types.DividendEvent
}

func (e *Engine) Run(ctx context.Context, params types.SimulationParams) (*types.Result, error) {
	req, err := ValidateParams(params)
	if err != nil {
		return nil, err
	}
	// Load the data
	data, err := e.loadData(ctx, req)
	if err != nil {
		return nil, err
	}

	result := Simulate(data.prices, data.dividends, req, data.security.Ref())

	e.log.Debug().
		Int64("stock_id", req.SecurityID).
		Int64("start", req.StartTimestamp).
		Int("prices", len(data.prices)).
		Int("dividends", len(data.dividends)).
		Int("operations", len(result.Ledger)).
		Msg("Simulation complete")
	return &result, nil
}

// loadData resolves the security and the range of series starting at req.StartTimestamp.
func (e *Engine) loadData(ctx context.Context, req types.SimulationRequest) (*feed, error) {
	security, err := e.db.GetSecurity(ctx, req.SecurityID)
	if err != nil {
		return nil, fmt.Errorf("stock %d: %w", req.SecurityID, err)
	}

	earliest, err := e.db.GetEarliestPriceTimestamp(ctx, req.SecurityID)
	if err != nil {
		return nil, fmt.Errorf("stock %d: %w", req.SecurityID, err)
	}
	if req.StartTimestamp < earliest {
		return nil, &StartBeforeRangeError{Start: req.StartTimestamp, Earliest: earliest}
	}

	prices, err := e.db.GetPricesFrom(ctx, req.SecurityID, req.StartTimestamp)
	if err != nil {
		return nil, fmt.Errorf("prices for stock %d: %w", req.SecurityID, err)
	}
	if len(prices) == 0 {
		return nil, fmt.Errorf("stock %d from %d: %w", req.SecurityID, req.StartTimestamp, ErrNoDataFromStart)
	}

	dividends, err := e.db.GetDividendsFrom(ctx, req.SecurityID, req.StartTimestamp)
	if err != nil {
		return nil, fmt.Errorf("dividends for stock %d: %w", req.SecurityID, err)
	}

	return &feed{
		security:  security,
		prices:    prices,
		dividends: dividends,
	}, nil
}
