// Package mathutil provides common mathematical utility functions.
package mathutil

import "math"

// RoundUnit rounds a value to the nearest whole currency unit. All
// monetary amounts in a quote are expressed in whole units of the
// effective currency.
func RoundUnit(val float64) float64 {
	return math.Round(val)
}

// ClampInt constrains an integer to the inclusive range [min, max].
func ClampInt(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampFloat constrains a float to the inclusive range [min, max].
func ClampFloat(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the maximum of two float64 values
func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// MaxInt returns the maximum of two int values
func MaxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
