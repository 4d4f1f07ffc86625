package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/lzcampos/investment-calculator/internal/repository/queries"
	"github.com/lzcampos/investment-calculator/types"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type mockSecuritiesRepository struct {
	sqlError   error
	rows       []queries.Security
	lastSearch queries.SearchSecuritiesParams
	searched   bool
	upserted   queries.Security
}

func TestDatabase_GetSecurity(t *testing.T) {
	tests := []struct {
		name    string
		id      int64
		want    *types.Security
		sqlErr  error
		wantErr error
	}{
		{"should throw ErrSecurityNotFound", 1, nil, pgx.ErrNoRows, ErrSecurityNotFound},
		{"should pass through other errors", 1, nil, errors.New("conn reset"), nil},
		{"should return security", 1, &types.Security{Id: 1, Symbol: "PETR4.SA", LongName: "Petroleo Brasileiro S.A."}, nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := &Database{
				securities: &mockSecuritiesRepository{sqlError: tt.sqlErr},
			}
			got, err := db.GetSecurity(context.Background(), tt.id)
			if tt.sqlErr != nil {
				if err == nil {
					t.Fatalf("GetSecurity() error = nil, want %v", tt.sqlErr)
				}
				if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
					t.Errorf("GetSecurity() error = %v, wantErr %v", err, tt.wantErr)
				}
				if tt.wantErr == nil && errors.Is(err, ErrSecurityNotFound) {
					t.Errorf("GetSecurity() error = %v, should not be ErrSecurityNotFound", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetSecurity() unexpected error = %v", err)
			}
			if got.Symbol != tt.want.Symbol || got.Id != tt.want.Id {
				t.Errorf("GetSecurity() got = %v, want %v", got, tt.want)
			}
			if got.DisplayName() != tt.want.LongName {
				t.Errorf("GetSecurity() display name = %v, want %v", got.DisplayName(), tt.want.LongName)
			}
			if got.ShortName != "" || got.Currency != "BRL" {
				t.Errorf("GetSecurity() nullable columns = %+v", got)
			}
		})
	}
}

func TestDatabase_SearchSecurities(t *testing.T) {
	tests := []struct {
		name        string
		q           string
		limit       int
		wantQuery   bool
		wantPattern string
		wantLimit   int32
		wantNumber  string
	}{
		{name: "empty query returns nothing", q: "   ", limit: 10},
		{name: "default limit", q: "petr", limit: 0, wantQuery: true, wantPattern: "%petr%", wantLimit: DefaultSearchLimit},
		{name: "limit is capped", q: "petr", limit: 500, wantQuery: true, wantPattern: "%petr%", wantLimit: MaxSearchLimit},
		{name: "numeric query also matches numbers", q: " 38.5 ", limit: 5, wantQuery: true, wantPattern: "%38.5%", wantLimit: 5, wantNumber: "38.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockSecuritiesRepository{rows: []queries.Security{{ID: 1, Symbol: "PETR4.SA"}, {ID: 2, Symbol: "PETR3.SA"}}}
			db := &Database{securities: mock}

			got, err := db.SearchSecurities(context.Background(), tt.q, tt.limit)
			if err != nil {
				t.Fatalf("SearchSecurities() error = %v", err)
			}
			if !tt.wantQuery {
				if mock.searched || len(got) != 0 || got == nil {
					t.Errorf("SearchSecurities() = %v, searched %v, want empty non-nil without query", got, mock.searched)
				}
				return
			}
			if len(got) != 2 || got[0].Symbol != "PETR4.SA" {
				t.Errorf("SearchSecurities() = %v", got)
			}
			if mock.lastSearch.Pattern != tt.wantPattern {
				t.Errorf("SearchSecurities() pattern = %q, want %q", mock.lastSearch.Pattern, tt.wantPattern)
			}
			if mock.lastSearch.Limit != tt.wantLimit {
				t.Errorf("SearchSecurities() limit = %d, want %d", mock.lastSearch.Limit, tt.wantLimit)
			}
			if tt.wantNumber == "" && mock.lastSearch.Number.Valid {
				t.Errorf("SearchSecurities() number = %v, want none", mock.lastSearch.Number)
			}
			if tt.wantNumber != "" && !mock.lastSearch.Number.Decimal.Equal(decimal.RequireFromString(tt.wantNumber)) {
				t.Errorf("SearchSecurities() number = %v, want %s", mock.lastSearch.Number, tt.wantNumber)
			}
		})
	}
}

func TestDatabase_UpsertSecurity(t *testing.T) {
	mock := &mockSecuritiesRepository{}
	db := &Database{securities: mock}

	if _, err := db.UpsertSecurity(context.Background(), types.Security{}); err == nil {
		t.Errorf("UpsertSecurity() without symbol error = nil")
	}

	id, err := db.UpsertSecurity(context.Background(), types.Security{Symbol: "VALE3.SA", Currency: "BRL"})
	if err != nil {
		t.Fatalf("UpsertSecurity() error = %v", err)
	}
	if id != 42 {
		t.Errorf("UpsertSecurity() id = %d, want 42", id)
	}
	if mock.upserted.Currency == nil || *mock.upserted.Currency != "BRL" {
		t.Errorf("UpsertSecurity() currency = %v, want BRL", mock.upserted.Currency)
	}
	if mock.upserted.LongName != nil {
		t.Errorf("UpsertSecurity() long name = %v, want NULL", *mock.upserted.LongName)
	}
}

func (m *mockSecuritiesRepository) GetSecurity(_ context.Context, id int64) (queries.Security, error) {
	if m.sqlError != nil {
		return queries.Security{}, m.sqlError
	}
	currency := "BRL"
	longName := "Petroleo Brasileiro S.A."
	return queries.Security{
		ID:       id,
		Symbol:   "PETR4.SA",
		Currency: &currency,
		LongName: &longName,
	}, nil
}

func (m *mockSecuritiesRepository) SearchSecurities(_ context.Context, arg queries.SearchSecuritiesParams) ([]queries.Security, error) {
	m.searched = true
	m.lastSearch = arg
	if m.sqlError != nil {
		return nil, m.sqlError
	}
	return m.rows, nil
}

func (m *mockSecuritiesRepository) UpsertSecurity(_ context.Context, arg queries.Security) (int64, error) {
	m.upserted = arg
	if m.sqlError != nil {
		return 0, m.sqlError
	}
	return 42, nil
}
