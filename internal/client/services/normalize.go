package services

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// decodeRecords parses raw as a JSON array and returns its object elements.
// Anything else (absent key, invalid JSON, a non-array document, scalar
// elements) yields no records. skipped counts the dropped elements.
func decodeRecords(raw []byte) (records []map[string]any, skipped int) {
	if len(raw) == 0 {
		return nil, 0
	}
	var items []any
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, 0
	}
	records = make([]map[string]any, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			skipped++
			continue
		}
		records = append(records, m)
	}
	return records, skipped
}

// asString coerces a decoded JSON value to a string. Missing values and
// composite values produce fallback.
func asString(v any, fallback string) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fallback
	}
}

// asNumber coerces a decoded JSON value to a finite float. Numeric strings
// are parsed; everything else produces fallback.
func asNumber(v any, fallback float64) float64 {
	var n float64
	switch x := v.(type) {
	case float64:
		n = x
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return fallback
		}
		n = f
	case bool:
		if x {
			n = 1
		}
	default:
		return fallback
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return fallback
	}
	return n
}

// asInt rounds a coerced number to the nearest integer and clamps it.
func asInt(v any, fallback, lo, hi int) int {
	n := math.Round(asNumber(v, float64(fallback)))
	return int(math.Max(float64(lo), math.Min(float64(hi), n)))
}

// asMillis coerces a timestamp in unix milliseconds.
func asMillis(v any, fallback int64) int64 {
	n := asNumber(v, math.NaN())
	if math.IsNaN(n) {
		return fallback
	}
	return int64(math.Round(n))
}
