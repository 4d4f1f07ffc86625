package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/lzcampos/investment-calculator/internal/repository"
	"github.com/lzcampos/investment-calculator/types"
	"github.com/rs/zerolog"
)

type mockDataStore struct {
	security    *types.Security
	securityErr error
	earliest    int64
	earliestErr error
	prices      []types.PricePoint
	pricesErr   error
	dividends   []types.DividendEvent

	pricesFrom    int64
	dividendsFrom int64
}

func (m *mockDataStore) GetSecurity(_ context.Context, id int64) (*types.Security, error) {
	if m.securityErr != nil {
		return nil, m.securityErr
	}
	s := *m.security
	s.Id = id
	return &s, nil
}

func (m *mockDataStore) GetEarliestPriceTimestamp(_ context.Context, _ int64) (int64, error) {
	return m.earliest, m.earliestErr
}

func (m *mockDataStore) GetPricesFrom(_ context.Context, _ int64, start int64) ([]types.PricePoint, error) {
	m.pricesFrom = start
	if m.pricesErr != nil {
		return nil, m.pricesErr
	}
	var out []types.PricePoint
	for _, p := range m.prices {
		if p.Timestamp >= start {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockDataStore) GetDividendsFrom(_ context.Context, _ int64, start int64) ([]types.DividendEvent, error) {
	m.dividendsFrom = start
	var out []types.DividendEvent
	for _, d := range m.dividends {
		if d.AnnounceTimestamp >= start {
			out = append(out, d)
		}
	}
	return out, nil
}

func newMockStore() *mockDataStore {
	return &mockDataStore{
		security: &types.Security{Symbol: "ITSA4.SA", LongName: "Itausa S.A.", Currency: "BRL"},
		earliest: 1000,
		prices:   []types.PricePoint{mockPrice(1000, "10"), mockPrice(2000, "10"), mockPrice(3000, "20")},
	}
}

func TestEngine_Run(t *testing.T) {
	errDown := errors.New("connection refused")
	tests := []struct {
		name         string
		store        func() *mockDataStore
		params       types.SimulationParams
		wantErr      error
		wantKind     string
		wantEarliest int64
		wantTotal    string
	}{
		{
			name:      "buy and hold",
			store:     newMockStore,
			params:    params("5", "100", "1000", "0", nil),
			wantTotal: "200",
		},
		{
			name:      "start after the earliest price skips earlier points",
			store:     newMockStore,
			params:    params("5", "100", "2500", "0", nil),
			wantTotal: "100",
		},
		{
			name:     "invalid parameter",
			store:    newMockStore,
			params:   params("5", "-100", "1000", "0", nil),
			wantErr:  ErrInvalidParameter,
			wantKind: KindInvalidParameter,
		},
		{
			name: "security not found",
			store: func() *mockDataStore {
				m := newMockStore()
				m.securityErr = repository.ErrSecurityNotFound
				return m
			},
			params:   params("5", "100", "1000", "0", nil),
			wantErr:  ErrSecurityNotFound,
			wantKind: KindSecurityNotFound,
		},
		{
			name: "no price data",
			store: func() *mockDataStore {
				m := newMockStore()
				m.earliestErr = repository.ErrNoPriceData
				return m
			},
			params:   params("5", "100", "1000", "0", nil),
			wantErr:  ErrNoPriceData,
			wantKind: KindNoPriceData,
		},
		{
			name:         "start before the available range",
			store:        newMockStore,
			params:       params("5", "100", "999", "0", nil),
			wantErr:      ErrStartBeforeAvailableRange,
			wantKind:     KindStartBeforeAvailableRange,
			wantEarliest: 1000,
		},
		{
			name:     "no data from start",
			store:    newMockStore,
			params:   params("5", "100", "4000", "0", nil),
			wantErr:  ErrNoDataFromStart,
			wantKind: KindNoDataFromStart,
		},
		{
			name: "collaborator failure",
			store: func() *mockDataStore {
				m := newMockStore()
				m.pricesErr = errDown
				return m
			},
			params:   params("5", "100", "1000", "0", nil),
			wantErr:  errDown,
			wantKind: KindInternal,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := tt.store()
			eng := NewEngine(store, zerolog.Nop())

			got, err := eng.Run(context.Background(), tt.params)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Run() error = %v, wantErr %v", err, tt.wantErr)
				}
				if kind := ErrorKind(err); kind != tt.wantKind {
					t.Errorf("ErrorKind() = %s, want %s", kind, tt.wantKind)
				}
				if got != nil {
					t.Errorf("Run() returned a partial result: %+v", got)
				}
				if tt.wantEarliest != 0 {
					var rangeErr *StartBeforeRangeError
					if !errors.As(err, &rangeErr) || rangeErr.Earliest != tt.wantEarliest {
						t.Errorf("Run() error = %v, want earliest %d", err, tt.wantEarliest)
					}
				}
				return
			}
			if err != nil {
				t.Fatalf("Run() unexpected error = %v", err)
			}
			if !got.Summary.TotalAmount.Equal(dec(tt.wantTotal)) {
				t.Errorf("Run() TotalAmount = %s, want %s", got.Summary.TotalAmount, tt.wantTotal)
			}
			if got.Summary.Security.Id != 5 || got.Summary.Security.DisplayName != "Itausa S.A." {
				t.Errorf("Run() security = %+v", got.Summary.Security)
			}
			if store.pricesFrom != store.dividendsFrom {
				t.Errorf("Run() fetched prices from %d and dividends from %d", store.pricesFrom, store.dividendsFrom)
			}
		})
	}
}
