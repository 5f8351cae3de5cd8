package sparse

import (
	"math"
	"strconv"
	"strings"
)

// toFloat converts Go numeric kinds and number boxes to float64.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case *Box:
		if n != nil && n.kind == KindNumber {
			return toFloat(n.value)
		}
	}
	return 0, false
}

// toInteger floors a numeric value to an int. When parseStrings is set,
// decimal strings are accepted too. NaN and infinities are rejected.
func toInteger(v any, parseStrings bool) (int, bool) {
	f, ok := toFloat(v)
	if !ok && parseStrings {
		if s, isStr := v.(string); isStr {
			parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			f, ok = parsed, err == nil
		}
	}
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(math.Floor(f)), true
}
