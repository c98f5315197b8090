package models

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// toFloat converts a decoded value into a price. Strings are trimmed and must
// parse as a decimal float; booleans count as 1 and 0.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case nil:
		return 0, false
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	case string:
		return parseFloat(strings.TrimSpace(n))
	case json.Number:
		return parseFloat(n.String())
	}

	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, false
	}
	return f, true
}

// toInt converts a decoded value into a quantity. Fractional numbers are
// truncated toward zero; strings must hold a base-10 integer.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case nil:
		return 0, false
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		return i, err == nil
	case json.Number:
		if i, err := strconv.Atoi(n.String()); err == nil {
			return i, true
		}
		f, ok := parseFloat(n.String())
		if !ok {
			return 0, false
		}
		return truncate(f)
	case float64:
		return truncate(n)
	case float32:
		return truncate(float64(n))
	}

	i, err := cast.ToIntE(v)
	if err != nil {
		return 0, false
	}
	return i, true
}

func parseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Overflow still yields ±Inf, which is a usable price.
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return f, true
		}
		return 0, false
	}
	return f, true
}

func truncate(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	t := math.Trunc(f)
	if t >= math.MaxInt64 || t < math.MinInt64 {
		return 0, false
	}
	return int(t), true
}
