package engine

import (
	"encoding/json"
	"strconv"

	"github.com/lzcampos/investment-calculator/types"
	"github.com/shopspring/decimal"
)

// ValidateParams turns raw caller input into a SimulationRequest. Missing amounts
// default to zero and a disabled monthly contribution is forced to zero.
func ValidateParams(p types.SimulationParams) (types.SimulationRequest, error) {
	req := types.SimulationRequest{ReinvestDividends: p.ReinvestDividends}

	if p.SecurityID == "" {
		return req, &InvalidParameterError{Field: "stock_id", Reason: "is required"}
	}
	id, err := strconv.ParseInt(p.SecurityID.String(), 10, 64)
	if err != nil || id <= 0 {
		return req, &InvalidParameterError{Field: "stock_id", Reason: "must be a positive integer"}
	}
	req.SecurityID = id

	if p.InvestmentStart == "" {
		return req, &InvalidParameterError{Field: "investment_start", Reason: "is required"}
	}
	start, err := strconv.ParseInt(p.InvestmentStart.String(), 10, 64)
	if err != nil {
		return req, &InvalidParameterError{Field: "investment_start", Reason: "must be epoch seconds"}
	}
	req.StartTimestamp = start

	if req.InitialInvestment, err = parseAmount("initial_investment", p.InitialInvestment); err != nil {
		return req, err
	}
	if p.MonthlyEnabled != nil && !*p.MonthlyEnabled {
		req.MonthlyInvestment = decimal.Zero
		return req, nil
	}
	if req.MonthlyInvestment, err = parseAmount("monthly_investment", p.MonthlyInvestment); err != nil {
		return req, err
	}
	return req, nil
}

func parseAmount(field string, n json.Number) (decimal.Decimal, error) {
	if n == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return decimal.Zero, &InvalidParameterError{Field: field, Reason: "must be a number"}
	}
	if d.IsNegative() {
		return decimal.Zero, &InvalidParameterError{Field: field, Reason: "must not be negative"}
	}
	return d, nil
}
