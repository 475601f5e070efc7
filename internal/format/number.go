package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// maxExactInteger is the magnitude below which integral values are printed
// without an exponent.
const maxExactInteger = 1e15

// FormatNumber renders v in its shortest round-tripping form. Integral
// values below 1e15 are printed without an exponent ("2000000" rather
// than "2e+06").
func FormatNumber(v float64) string {
	if math.Trunc(v) == v && math.Abs(v) < maxExactInteger {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// JoinValues renders values separated by single spaces, without brackets.
func JoinValues(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = FormatNumber(v)
	}
	return strings.Join(parts, " ")
}

// FormatValues renders values as a bracketed list: "[1 2 3]".
func FormatValues(values []float64) string {
	return "[" + JoinValues(values) + "]"
}

// FormatValuesTruncated renders values like FormatValues, but lists longer
// than limit keep only their first and last edges elements.
func FormatValuesTruncated(values []float64, limit, edges int) string {
	if len(values) <= limit || 2*edges >= len(values) {
		return FormatValues(values)
	}
	omitted := len(values) - 2*edges
	return fmt.Sprintf("[%s ... (%d more) ... %s]",
		JoinValues(values[:edges]), omitted, JoinValues(values[len(values)-edges:]))
}
