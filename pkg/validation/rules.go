package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/voyageware/farequote/internal/config"
	"github.com/voyageware/farequote/pkg/constants"
)

// ValidateCarrierRules inspects a carrier rule table and returns warnings
// for values the evaluator will silently correct (clamped percentages,
// floored ages) or that look like configuration mistakes (negative fees,
// non-uppercase codes). Warnings never block evaluation.
func ValidateCarrierRules(carriers map[string]config.CarrierRuleConfig) []string {
	var warnings []string

	codes := make([]string, 0, len(carriers))
	for code := range carriers {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		cfg := carriers[code]

		if code != strings.ToUpper(strings.TrimSpace(code)) {
			warnings = append(warnings, fmt.Sprintf("Carrier code '%s' is not uppercase - it will be normalized on load", code))
		}

		warnings = append(warnings, validateChildPricing(code, cfg.ChildPricing)...)
		warnings = append(warnings, validateBaggage(code, cfg.Baggage)...)
		warnings = append(warnings, validateMinorPolicy(code, cfg.UnaccompaniedMinor)...)
	}

	return warnings
}

func validateChildPricing(code string, pricing *config.ChildPricingPolicy) []string {
	if pricing == nil {
		return nil
	}

	var warnings []string
	if pct := pricing.ChildPercentOfAdult; pct != nil && (*pct < 0 || *pct > constants.MaxChildPercentOfAdult) {
		warnings = append(warnings, fmt.Sprintf("Carrier '%s' childPercentOfAdult %.2f is outside [0, %.1f] and will be clamped",
			code, *pct, constants.MaxChildPercentOfAdult))
	}
	if pct := pricing.InfantNoSeatPercent; pct != nil && (*pct < 0 || *pct > constants.MaxInfantNoSeatPercent) {
		warnings = append(warnings, fmt.Sprintf("Carrier '%s' infantNoSeatPercent %.2f is outside [0, %.1f] and will be clamped",
			code, *pct, constants.MaxInfantNoSeatPercent))
	}
	return warnings
}

func validateBaggage(code string, baggage *config.BaggagePolicy) []string {
	if baggage == nil {
		return nil
	}

	var warnings []string
	if fee := baggage.CabinBagFee; fee != nil && *fee < 0 {
		warnings = append(warnings, fmt.Sprintf("Carrier '%s' has a negative cabinBagFee (%.2f)", code, *fee))
	}
	if fee := baggage.HoldBagFee; fee != nil && *fee < 0 {
		warnings = append(warnings, fmt.Sprintf("Carrier '%s' has a negative holdBagFee (%.2f)", code, *fee))
	}
	if count := baggage.IncludedCabinBags; count != nil && *count < 0 {
		warnings = append(warnings, fmt.Sprintf("Carrier '%s' has a negative includedCabinBags (%d)", code, *count))
	}
	if count := baggage.IncludedHoldBags; count != nil && *count < 0 {
		warnings = append(warnings, fmt.Sprintf("Carrier '%s' has a negative includedHoldBags (%d)", code, *count))
	}
	return warnings
}

func validateMinorPolicy(code string, minor *config.UnaccompaniedMinorPolicy) []string {
	if minor == nil {
		return nil
	}

	var warnings []string
	if minor.MandatoryBelowAge != nil && minor.AllowedUpToAge != nil && *minor.AllowedUpToAge < *minor.MandatoryBelowAge {
		warnings = append(warnings, fmt.Sprintf("Carrier '%s' UM allowedUpToAge (%d) is below mandatoryBelowAge (%d) - it will be floored",
			code, *minor.AllowedUpToAge, *minor.MandatoryBelowAge))
	}
	if minor.Fee != nil && *minor.Fee < 0 {
		warnings = append(warnings, fmt.Sprintf("Carrier '%s' has a negative UM fee (%.2f)", code, *minor.Fee))
	}
	return warnings
}
