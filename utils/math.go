package utils

import "math"

// Round rounds a number to 2 decimal places for monetary calculations
func Round(num float64) float64 {
	return math.Round(num*MoneyPrecision) / MoneyPrecision
}

// WithinTolerance reports whether two amounts differ by at most
// SplitSumTolerance. A tiny epsilon keeps an exactly-at-tolerance
// difference from failing on binary float noise.
func WithinTolerance(a, b float64) bool {
	return math.Abs(a-b) <= SplitSumTolerance+1e-9
}
