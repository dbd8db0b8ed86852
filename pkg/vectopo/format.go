package vectopo

import "strconv"

// DefaultPrecision is the decimal precision used for coordinate output
// when the caller does not fix one.
const DefaultPrecision = 6

// FormatDouble formats a floating value with a fixed decimal
// precision. All numeric report output goes through this one
// primitive, so formatting is identical across sections and never
// locale-dependent.
func FormatDouble(v float64, precision int) string {
	if precision < 0 {
		precision = DefaultPrecision
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}
