package web

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number decodes a JSON number or numeric string without failing the whole
// body when the value is malformed. Clients of the web UI send form values as
// strings, so "5" and 5 are equivalent.
type Number struct {
	Value float64
	Set   bool
	Valid bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	n.Set = true

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	switch v := raw.(type) {
	case float64:
		n.Value, n.Valid = v, true
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			n.Set = false
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
			n.Value, n.Valid = f, true
		}
	}
	return nil
}

// Float returns 0 when absent, NaN when present but not numeric, the value otherwise.
func (n Number) Float() float64 {
	switch {
	case !n.Set:
		return 0
	case !n.Valid:
		return math.NaN()
	default:
		return n.Value
	}
}

// Int64 truncates the value toward zero, so 1.6 is 1. Absent, invalid or
// out-of-range values become 0.
func (n Number) Int64() int64 {
	if !n.Valid {
		return 0
	}
	v := math.Trunc(n.Value)
	if v < math.MinInt64 || v >= math.MaxInt64 {
		return 0
	}
	return int64(v)
}
