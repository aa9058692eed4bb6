package quote

import (
	"fmt"

	"github.com/voyageware/farequote/pkg/constants"
	"github.com/voyageware/farequote/pkg/currency"
	"github.com/voyageware/farequote/pkg/mathutil"
	"go.uber.org/zap"
)

// resolvedMinorPolicy is an unaccompanied-minor policy with defaults
// applied. The allowed-up-to age is floored to the mandatory-below age.
type resolvedMinorPolicy struct {
	mandatoryBelowAge int
	allowedUpToAge    int
	fee               float64
	feeCurrency       string
	perSegment        bool
}

// applyUnaccompaniedMinor charges the UM service fee when the service was
// requested and enforces the mandatory-UM eligibility gate when it was not.
// The fee is charged for the request itself: a request with no child aboard
// produces a warning but still charges.
func (ev *evaluation) applyUnaccompaniedMinor() {
	policy := ev.resolveMinorPolicy()

	if ev.criteria.UMRequested {
		if len(ev.criteria.ChildAges) == 0 {
			ev.warn("UM requested but no eligible child detected")
		}

		segments := 1
		if policy.perSegment {
			segments = ev.itinerary.Segments
		}
		fee := mathutil.RoundUnit(currency.Convert(policy.fee, policy.feeCurrency, ev.currency)) * float64(segments)
		if fee > 0 {
			ev.addSurcharge(TagUnaccompanied, "Unaccompanied minor service", fee)
		}
		ev.logger.Debug("UM service charged",
			zap.String("op", "quote.applyUnaccompaniedMinor"),
			zap.Float64("fee", fee),
		)
		return
	}

	if youngest, ok := ev.youngestChildAge(); ok && youngest < policy.mandatoryBelowAge {
		ev.logger.Debug("mandatory UM gate failed",
			zap.String("op", "quote.applyUnaccompaniedMinor"),
			zap.String("carrier", ev.itinerary.Carrier),
			zap.Int("youngest", youngest),
			zap.Int("mandatory_below", policy.mandatoryBelowAge),
		)
		ev.reject(fmt.Sprintf("UM obligatoire jusqu'à %d ans sur %s, cochez l'option UM.",
			policy.mandatoryBelowAge, ev.itinerary.Carrier))
	}
}

func (ev *evaluation) resolveMinorPolicy() resolvedMinorPolicy {
	resolved := resolvedMinorPolicy{
		mandatoryBelowAge: constants.DefaultUMMandatoryBelowAge,
		allowedUpToAge:    constants.DefaultUMAllowedUpToAge,
		fee:               constants.DefaultUMFee,
		feeCurrency:       constants.DefaultUMFeeCurrency,
		perSegment:        true,
	}

	if policy := ev.cfg.UnaccompaniedMinor; policy != nil {
		if policy.MandatoryBelowAge != nil {
			resolved.mandatoryBelowAge = *policy.MandatoryBelowAge
		}
		if policy.AllowedUpToAge != nil {
			resolved.allowedUpToAge = *policy.AllowedUpToAge
		}
		if policy.Fee != nil {
			resolved.fee = *policy.Fee
		}
		if policy.FeeCurrency != "" {
			resolved.feeCurrency = policy.FeeCurrency
		}
		if policy.PerSegment != nil {
			resolved.perSegment = *policy.PerSegment
		}
	}

	resolved.allowedUpToAge = mathutil.MaxInt(resolved.allowedUpToAge, resolved.mandatoryBelowAge)
	return resolved
}

func (ev *evaluation) youngestChildAge() (int, bool) {
	ages := ev.criteria.ChildAges
	if len(ages) == 0 {
		return 0, false
	}
	youngest := ages[0]
	for _, age := range ages[1:] {
		if age < youngest {
			youngest = age
		}
	}
	return youngest, true
}
