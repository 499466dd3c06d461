package domain

import (
	"encoding/json"
	"testing"
)

func TestNormalizeAmount(t *testing.T) {
	text := "250"
	tests := []struct {
		name string
		in   any
		want float64
	}{
		{name: "float", in: 199.5, want: 199.5},
		{name: "int", in: 500, want: 500},
		{name: "int64", in: int64(1200), want: 1200},
		{name: "numeric string", in: "100", want: 100},
		{name: "decimal string", in: "42.75", want: 42.75},
		{name: "padded string", in: "  42.5 ", want: 42.5},
		{name: "json number", in: json.Number("310"), want: 310},
		{name: "string pointer", in: &text, want: 250},
		{name: "nil", in: nil, want: 0},
		{name: "nil string pointer", in: (*string)(nil), want: 0},
		{name: "empty string", in: "", want: 0},
		{name: "non-numeric string", in: "donation", want: 0},
		{name: "nan string", in: "NaN", want: 0},
		{name: "inf string", in: "+Inf", want: 0},
		{name: "negative clamped", in: "-50", want: 0},
		{name: "unsupported type", in: []string{"100"}, want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeAmount(tc.in); got != tc.want {
				t.Fatalf("NormalizeAmount(%#v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeAmountIdempotent(t *testing.T) {
	inputs := []any{"100", 42.5, nil, "not-a-number", -7}
	for _, in := range inputs {
		once := NormalizeAmount(in)
		if twice := NormalizeAmount(once); twice != once {
			t.Fatalf("NormalizeAmount not idempotent for %#v: %v then %v", in, once, twice)
		}
	}
}
