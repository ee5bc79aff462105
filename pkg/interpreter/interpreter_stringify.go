package interpreter

import (
	"math"
	"strconv"
	"strings"

	"snol/interpreter-go/pkg/runtime"
)

func valueToString(val runtime.Value) string {
	switch v := val.(type) {
	case runtime.IntegerValue:
		return strconv.FormatInt(v.Val, 10)
	case runtime.FloatValue:
		return formatFloat(v.Val)
	case runtime.NullValue, nil:
		return "null"
	default:
		return "<unknown>"
	}
}

// formatFloat prints six decimals, then drops trailing zeros while keeping at
// least one digit after the point.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	text := strconv.FormatFloat(f, 'f', 6, 64)
	text = strings.TrimRight(text, "0")
	if strings.HasSuffix(text, ".") {
		text += "0"
	}
	return text
}
