// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/voyageware/farequote/internal/quote"
)

// SurchargeAmount returns the amount of the first surcharge with the given
// tag and whether such a line exists.
func SurchargeAmount(result quote.Result, tag quote.Tag) (float64, bool) {
	for _, line := range result.Surcharges {
		if line.Tag == tag {
			return line.Amount, true
		}
	}
	return 0, false
}

// Tags returns the surcharge tags of a result in order.
func Tags(result quote.Result) []quote.Tag {
	tags := make([]quote.Tag, 0, len(result.Surcharges))
	for _, line := range result.Surcharges {
		tags = append(tags, line.Tag)
	}
	return tags
}

// FloatPtr returns a pointer to the given float64, for building carrier
// rule configs in tests.
func FloatPtr(v float64) *float64 { return &v }

// IntPtr returns a pointer to the given int.
func IntPtr(v int) *int { return &v }

// BoolPtr returns a pointer to the given bool.
func BoolPtr(v bool) *bool { return &v }
