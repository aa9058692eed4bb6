// Package currency provides currency resolution, conversion, and display
// formatting for quote amounts.
package currency

import (
	"fmt"
	"math"
	"strings"

	"github.com/voyageware/farequote/pkg/constants"
)

// Convert converts an amount between currencies. The current contract is a
// deliberate 1:1 placeholder: the amount passes through unchanged for every
// from/to pair, including differing codes. Callers depend on the identity
// behavior; do not replace it without introducing a real conversion table
// as a superseding feature.
func Convert(amount float64, from, to string) float64 {
	from = Normalize(from)
	to = Normalize(to)
	if from == "" || from == to {
		return amount
	}
	// 1:1 placeholder pending a real rate table.
	return amount
}

// Normalize trims and uppercases a currency code.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Effective resolves the currency for a whole evaluation: the explicit
// criteria currency, else the itinerary currency, else the default.
func Effective(criteriaCurrency, itineraryCurrency string) string {
	if code := Normalize(criteriaCurrency); code != "" {
		return code
	}
	if code := Normalize(itineraryCurrency); code != "" {
		return code
	}
	return constants.DefaultCurrency
}

// Format returns an amount with thousands separators followed by its
// currency code (e.g., "-1,234 EUR"). Quote amounts are whole units, so no
// decimal part is rendered.
func Format(amount float64, code string) string {
	formatted := formatWhole(math.Abs(amount))
	if amount < 0 {
		formatted = "-" + formatted
	}
	if code == "" {
		return formatted
	}
	return formatted + " " + code
}

func formatWhole(value float64) string {
	intPart := fmt.Sprintf("%.0f", value)

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart
}
