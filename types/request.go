package types

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// SimulationParams is a simulation request as a caller submits it.
type SimulationParams struct {
	SecurityID        json.Number `json:"stock_id"`
	InitialInvestment json.Number `json:"initial_investment"`
	InvestmentStart   json.Number `json:"investment_start"`
	MonthlyInvestment json.Number `json:"monthly_investment"`
	MonthlyEnabled    *bool       `json:"monthly_enabled,omitempty"`
	ReinvestDividends bool        `json:"reinvest_dividends"`
}

// SimulationRequest is a validated SimulationParams.
type SimulationRequest struct {
	SecurityID        int64
	InitialInvestment decimal.Decimal
	StartTimestamp    int64
	MonthlyInvestment decimal.Decimal
	ReinvestDividends bool
}
