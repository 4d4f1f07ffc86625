package types

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestSecurity_MarshalJSON(t *testing.T) {
	first := int64(946818000)
	tests := []struct {
		name     string
		security Security
		want     string
	}{
		{
			name: "price as number",
			security: Security{
				Id:                 1,
				Symbol:             "PETR4.SA",
				Currency:           "BRL",
				FirstTradeDate:     &first,
				RegularMarketPrice: decimal.NewNullDecimal(decimal.RequireFromString("38.5")),
				LongName:           "Petrobras",
			},
			want: `{"id":1,"symbol":"PETR4.SA","currency":"BRL","firstTradeDate":946818000,"longName":"Petrobras","regularMarketPrice":38.5}`,
		},
		{
			name:     "unknown price as null",
			security: Security{Id: 2, Symbol: "VALE3.SA"},
			want:     `{"id":2,"symbol":"VALE3.SA","firstTradeDate":null,"regularMarketPrice":null}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.security)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Marshal() got = %s, want %s", got, tt.want)
			}
		})
	}
}
