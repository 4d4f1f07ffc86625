package engine

import (
	"errors"
	"fmt"

	"github.com/lzcampos/investment-calculator/internal/repository"
)

// Global error declarations.
var (
	ErrInvalidParameter          = errors.New("invalid parameter")
	ErrSecurityNotFound          = repository.ErrSecurityNotFound
	ErrNoPriceData               = repository.ErrNoPriceData
	ErrStartBeforeAvailableRange = errors.New("investment start before earliest available price")
	ErrNoDataFromStart           = errors.New("no price data from start date")
)

// InvalidParameterError names the request field that failed validation.
type InvalidParameterError struct {
	Field  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidParameter, e.Field, e.Reason)
}

func (e *InvalidParameterError) Unwrap() error { return ErrInvalidParameter }

// StartBeforeRangeError carries the earliest start the caller can retry with.
type StartBeforeRangeError struct {
	Start    int64
	Earliest int64
}

func (e *StartBeforeRangeError) Error() string {
	return fmt.Sprintf("%s: start %d, earliest %d", ErrStartBeforeAvailableRange, e.Start, e.Earliest)
}

func (e *StartBeforeRangeError) Unwrap() error { return ErrStartBeforeAvailableRange }

const (
	KindInvalidParameter          = "invalid_parameter"
	KindSecurityNotFound          = "stock_not_found"
	KindNoPriceData               = "no_price_data_for_stock"
	KindStartBeforeAvailableRange = "investment_start_before_earliest_available"
	KindNoDataFromStart           = "no_price_data_from_start"
	KindInternal                  = "internal_error"
)

// ErrorKind maps err to the machine-readable kind reported to callers.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidParameter):
		return KindInvalidParameter
	case errors.Is(err, ErrSecurityNotFound):
		return KindSecurityNotFound
	case errors.Is(err, ErrNoPriceData):
		return KindNoPriceData
	case errors.Is(err, ErrStartBeforeAvailableRange):
		return KindStartBeforeAvailableRange
	case errors.Is(err, ErrNoDataFromStart):
		return KindNoDataFromStart
	default:
		return KindInternal
	}
}
