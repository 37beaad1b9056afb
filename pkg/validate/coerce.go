package validate

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// AsString returns value when it is a string.
func AsString(value any) (string, bool) {
	s, ok := value.(string)
	return s, ok
}

// AsInt converts JSON numbers, Go integers and numeric strings to int64.
// Integral floats (25000.0) are accepted; fractions are not.
func AsInt(value any) (int64, bool) {
	switch v := value.(type) {
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n, true
		}
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt(f)
	case float64:
		return floatToInt(v)
	case int:
		return int64(v), true
	case int64:
		return v, true
	case int32:
		return int64(v), true
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		return n, err == nil
	}
	return 0, false
}

// floatToInt rejects fractions and anything outside [-2^63, 2^63).
// float64(math.MaxInt64) rounds up to 2^63, so the upper bound is exclusive.
func floatToInt(f float64) (int64, bool) {
	if f != math.Trunc(f) || f >= 1<<63 || f < -(1<<63) {
		return 0, false
	}
	return int64(f), true
}

// AsBool accepts true/false, 1/0 and the strings "1" and "0".
func AsBool(value any) (bool, bool) {
	switch v := value.(type) {
	case bool:
		return v, true
	case json.Number:
		return intToBool(v.String())
	case float64:
		return intToBool(strconv.FormatFloat(v, 'f', -1, 64))
	case int:
		return intToBool(strconv.Itoa(v))
	case int64:
		return intToBool(strconv.FormatInt(v, 10))
	case string:
		return intToBool(strings.TrimSpace(v))
	}
	return false, false
}

func intToBool(s string) (bool, bool) {
	switch s {
	case "1":
		return true, true
	case "0":
		return false, true
	}
	return false, false
}
