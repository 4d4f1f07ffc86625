package engine

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/lzcampos/investment-calculator/types"
)

func TestValidateParams(t *testing.T) {
	disabled := false
	enabled := true
	tests := []struct {
		name        string
		params      types.SimulationParams
		wantField   string
		wantInitial string
		wantMonthly string
		wantStart   int64
	}{
		{
			name:        "valid request",
			params:      params("3", "1000", "1600000000", "150", nil),
			wantInitial: "1000", wantMonthly: "150", wantStart: 1600000000,
		},
		{
			name:        "missing amounts default to zero",
			params:      params("3", "", "1600000000", "", nil),
			wantInitial: "0", wantMonthly: "0", wantStart: 1600000000,
		},
		{
			name:        "disabled monthly contribution is forced to zero",
			params:      params("3", "1000", "1600000000", "150", &disabled),
			wantInitial: "1000", wantMonthly: "0", wantStart: 1600000000,
		},
		{
			name:        "enabled monthly contribution is kept",
			params:      params("3", "1000", "1600000000", "150", &enabled),
			wantInitial: "1000", wantMonthly: "150", wantStart: 1600000000,
		},
		{
			name:        "negative start is a valid epoch",
			params:      params("3", "1", "-86400", "0", nil),
			wantInitial: "1", wantMonthly: "0", wantStart: -86400,
		},
		{name: "missing stock id", params: params("", "1000", "1600000000", "0", nil), wantField: "stock_id"},
		{name: "zero stock id", params: params("0", "1000", "1600000000", "0", nil), wantField: "stock_id"},
		{name: "fractional stock id", params: params("1.5", "1000", "1600000000", "0", nil), wantField: "stock_id"},
		{name: "missing start", params: params("3", "1000", "", "0", nil), wantField: "investment_start"},
		{name: "fractional start", params: params("3", "1000", "1600000000.5", "0", nil), wantField: "investment_start"},
		{name: "negative initial investment", params: params("3", "-1", "1600000000", "0", nil), wantField: "initial_investment"},
		{name: "non numeric initial investment", params: params("3", "NaN", "1600000000", "0", nil), wantField: "initial_investment"},
		{name: "negative monthly investment", params: params("3", "1000", "1600000000", "-5", nil), wantField: "monthly_investment"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateParams(tt.params)
			if tt.wantField != "" {
				var invalid *InvalidParameterError
				if !errors.As(err, &invalid) {
					t.Fatalf("ValidateParams() error = %v, want InvalidParameterError", err)
				}
				if invalid.Field != tt.wantField {
					t.Errorf("ValidateParams() field = %s, want %s", invalid.Field, tt.wantField)
				}
				if !errors.Is(err, ErrInvalidParameter) {
					t.Errorf("ValidateParams() error does not wrap ErrInvalidParameter")
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateParams() unexpected error = %v", err)
			}
			if got.SecurityID != 3 {
				t.Errorf("ValidateParams() SecurityID = %d, want 3", got.SecurityID)
			}
			if got.StartTimestamp != tt.wantStart {
				t.Errorf("ValidateParams() StartTimestamp = %d, want %d", got.StartTimestamp, tt.wantStart)
			}
			if !got.InitialInvestment.Equal(dec(tt.wantInitial)) {
				t.Errorf("ValidateParams() InitialInvestment = %s, want %s", got.InitialInvestment, tt.wantInitial)
			}
			if !got.MonthlyInvestment.Equal(dec(tt.wantMonthly)) {
				t.Errorf("ValidateParams() MonthlyInvestment = %s, want %s", got.MonthlyInvestment, tt.wantMonthly)
			}
			if !got.ReinvestDividends {
				t.Errorf("ValidateParams() ReinvestDividends = false, want true")
			}
		})
	}
}

func params(id, initial, start, monthly string, monthlyEnabled *bool) types.SimulationParams {
	return types.SimulationParams{
		SecurityID:        json.Number(id),
		InitialInvestment: json.Number(initial),
		InvestmentStart:   json.Number(start),
		MonthlyInvestment: json.Number(monthly),
		MonthlyEnabled:    monthlyEnabled,
		ReinvestDividends: true,
	}
}
