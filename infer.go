package csvframe

import (
	"math"
	"strconv"
	"strings"
)

// defaultNAValues are the cell spellings read as missing.
var defaultNAValues = []string{
	"", "#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
	"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "None", "n/a",
	"nan", "null",
}

var (
	trueValues  = map[string]bool{"True": true, "TRUE": true, "true": true}
	falseValues = map[string]bool{"False": true, "FALSE": true, "false": true}
)

type naSet map[string]struct{}

func newNASet(extra []string, withDefaults bool) naSet {
	set := make(naSet, len(defaultNAValues)+len(extra))
	if withDefaults {
		for _, s := range defaultNAValues {
			set[s] = struct{}{}
		}
	}
	for _, s := range extra {
		set[s] = struct{}{}
	}
	return set
}

func (s naSet) has(cell string) bool {
	_, ok := s[cell]
	return ok
}

// inferColumn converts raw cell text into a typed column. Candidates are
// tried narrowest first: int64, float64, bool, then string.
func inferColumn(name string, raw []string, na naSet) *Column {
	values := make([]any, len(raw))
	isInt, isFloat, isBool := true, true, true
	present := 0

	for _, s := range raw {
		if na.has(s) {
			continue
		}
		present++
		num := strings.TrimSpace(s)
		if isInt {
			if _, err := strconv.ParseInt(num, 10, 64); err != nil {
				isInt = false
			}
		}
		if isFloat {
			if _, ok := parseFloat(num); !ok {
				isFloat = false
			}
		}
		if isBool && !trueValues[s] && !falseValues[s] {
			isBool = false
		}
		if !isInt && !isFloat && !isBool {
			break
		}
	}

	typ := ColumnTypeString
	switch {
	case present == 0:
		typ = ColumnTypeFloat
	case isInt:
		typ = ColumnTypeInt
	case isFloat:
		typ = ColumnTypeFloat
	case isBool:
		typ = ColumnTypeBool
	}

	for i, s := range raw {
		if na.has(s) {
			continue
		}
		switch typ {
		case ColumnTypeInt:
			values[i], _ = strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		case ColumnTypeFloat:
			values[i], _ = parseFloat(strings.TrimSpace(s))
		case ColumnTypeBool:
			values[i] = trueValues[s]
		default:
			values[i] = s
		}
	}
	return &Column{name: name, typ: typ, values: values}
}

// parseFloat accepts decimal and scientific notation and infinities.
// NaN spellings, hex floats and digit separators are not numbers here.
func parseFloat(s string) (float64, bool) {
	if s == "" || strings.ContainsAny(s, "xX_") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}
