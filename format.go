package csvframe

import (
	"encoding"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// formatCell renders v without locale influence. ok is false when v has no
// textual form.
func formatCell(v any, naRep string) (string, bool) {
	switch x := normalize(v).(type) {
	case nil:
		return naRep, true
	case int64:
		return strconv.FormatInt(x, 10), true
	case uint64:
		return strconv.FormatUint(x, 10), true
	case uint:
		return strconv.FormatUint(uint64(x), 10), true
	case float64:
		if math.IsNaN(x) {
			return naRep, true
		}
		return formatFloat(x), true
	case bool:
		if x {
			return "True", true
		}
		return "False", true
	case string:
		return x, true
	case encoding.TextMarshaler:
		b, err := x.MarshalText()
		if err != nil {
			return "", false
		}
		return string(b), true
	case fmt.Stringer:
		return x.String(), true
	}
	return "", false
}

// formatFloat writes the shortest text that parses back to f. Exponents in
// [-4, 16) use positional notation with at least one fractional digit.
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	sci := strconv.FormatFloat(f, 'e', -1, 64)
	exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if err != nil || exp < -4 || exp >= 16 {
		return sci
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
