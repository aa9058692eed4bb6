// Package output provides utilities for formatting and displaying quote results.
package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/voyageware/farequote/internal/quote"
	"github.com/voyageware/farequote/pkg/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable breakdown.
func PrettyFormat(result quote.Result) {
	p := message.NewPrinter(language.English)

	fmt.Printf("Tag               | Amount          | Label\n")
	fmt.Printf("___               | ______          | _____\n")
	for _, line := range result.Surcharges {
		fmt.Printf("%-17s | %-15s | %s\n", line.Tag, currency.Format(line.Amount, result.Currency), line.Label)
	}
	if len(result.Surcharges) == 0 {
		fmt.Printf("(no surcharges)\n")
	}
	_, _ = p.Printf("Total: %d %s\n", int64(result.Total), result.Currency)

	for _, warning := range result.Warnings {
		fmt.Printf("Warning: %s\n", warning)
	}
	if !result.Eligible {
		fmt.Printf("NOT ELIGIBLE: %s\n", strings.Join(result.Reasons, "; "))
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(result quote.Result) {
	fmt.Print(CsvString(result))
}

// CsvString returns the comma-separated value rendering of a quote.
func CsvString(result quote.Result) string {
	var builder strings.Builder

	builder.WriteString("\"tag\",\"label\",\"amount\"\n")
	for _, line := range result.Surcharges {
		builder.WriteString(fmt.Sprintf("\"%s\",\"%s\",\"%.0f\"\n", line.Tag, line.Label, line.Amount))
	}
	builder.WriteString(fmt.Sprintf("\"TOTAL\",\"%s\",\"%.0f\"\n", result.Currency, result.Total))

	return builder.String()
}

// JSONString returns the JSON rendering of a quote.
func JSONString(result quote.Result) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}
	return string(data), nil
}
