package interpreter

import (
	"strconv"
	"strings"

	"snol/interpreter-go/pkg/runtime"
)

// ParseNumber validates one line of BEG input. It accepts an optional sign,
// at least one digit, then optionally a point and more digits. Text without a point is
// an Integer and must fit in 64 bits; anything else is a Float.
func ParseNumber(text string) (runtime.Value, bool) {
	text = strings.TrimSpace(text)
	if !isNumeral(text) {
		return nil, false
	}
	if !strings.Contains(text, ".") {
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, false
		}
		return runtime.IntegerValue{Val: v}, true
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(text, "."), 64)
	if err != nil {
		return nil, false
	}
	return runtime.FloatValue{Val: v}, true
}

func isNumeral(text string) bool {
	i := 0
	if i < len(text) && (text[i] == '+' || text[i] == '-') {
		i++
	}
	digits := 0
	for i < len(text) && isDigit(text[i]) {
		i++
		digits++
	}
	if digits == 0 {
		return false
	}
	if i < len(text) && text[i] == '.' {
		i++
		for i < len(text) && isDigit(text[i]) {
			i++
		}
	}
	return i == len(text)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
