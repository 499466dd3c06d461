package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// NormalizeAmount converts a raw donation amount into a finite, non-negative
// float64. The raw value may be a number of any width, a numeric string, a
// json.Number, a string pointer, or missing entirely. Anything absent or
// unparsable contributes exactly 0 so that aggregation stays total-preserving
// over partially populated records. It never returns an error.
func NormalizeAmount(v any) float64 {
	switch val := v.(type) {
	case nil:
		return 0
	case float64:
		return clampAmount(val)
	case float32:
		return clampAmount(float64(val))
	case int:
		return clampAmount(float64(val))
	case int32:
		return clampAmount(float64(val))
	case int64:
		return clampAmount(float64(val))
	case uint64:
		return clampAmount(float64(val))
	case json.Number:
		return parseAmount(val.String())
	case string:
		return parseAmount(val)
	case *string:
		if val == nil {
			return 0
		}
		return parseAmount(*val)
	}
	return 0
}

func parseAmount(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return clampAmount(f)
}

func clampAmount(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}
