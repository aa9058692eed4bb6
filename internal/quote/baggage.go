package quote

import (
	"fmt"

	"github.com/voyageware/farequote/internal/config"
	"github.com/voyageware/farequote/pkg/constants"
	"go.uber.org/zap"
)

// resolvedBaggage is a baggage policy with every default and brand override
// already applied.
type resolvedBaggage struct {
	includedCabin int
	includedHold  int
	cabinFee      float64
	holdFee       float64
	perSegment    bool
}

// applyBaggage computes excess-baggage fees for cabin and hold baggage
// independently. Infants are excluded from the eligible headcount since
// they are assumed seatless.
func (ev *evaluation) applyBaggage() {
	policy := ev.resolveBaggage()
	headcount := ev.criteria.Adults + len(ev.criteria.ChildAges)

	segments := 1
	if policy.perSegment {
		segments = ev.itinerary.Segments
	}

	cabinExcess := headcount*ev.criteria.CabinBags - headcount*policy.includedCabin
	if cabinExcess > 0 {
		amount := policy.cabinFee * float64(cabinExcess) * float64(segments)
		ev.addSurcharge(TagBagCabin, fmt.Sprintf("Excess cabin baggage x %d", cabinExcess), amount)
	}

	holdExcess := headcount*ev.criteria.HoldBags - headcount*policy.includedHold
	if holdExcess > 0 {
		amount := policy.holdFee * float64(holdExcess) * float64(segments)
		ev.addSurcharge(TagBagHold, fmt.Sprintf("Excess hold baggage x %d", holdExcess), amount)
	}

	ev.logger.Debug("baggage policy applied",
		zap.String("op", "quote.applyBaggage"),
		zap.Int("headcount", headcount),
		zap.Int("cabin_excess", maxInt0(cabinExcess)),
		zap.Int("hold_excess", maxInt0(holdExcess)),
	)
}

// resolveBaggage merges the carrier's baggage policy with the documented
// defaults, then applies the first matching brand override: effective fare
// brand first, then effective cabin class. Overrides only touch included
// counts; fee amounts are never overridden per brand.
func (ev *evaluation) resolveBaggage() resolvedBaggage {
	resolved := resolvedBaggage{
		includedCabin: constants.DefaultIncludedCabinBags,
		includedHold:  constants.DefaultIncludedHoldBags,
		cabinFee:      constants.DefaultCabinBagFee,
		holdFee:       constants.DefaultHoldBagFee,
		perSegment:    true,
	}

	policy := ev.cfg.Baggage
	if policy == nil {
		return resolved
	}

	if policy.IncludedCabinBags != nil {
		resolved.includedCabin = *policy.IncludedCabinBags
	}
	if policy.IncludedHoldBags != nil {
		resolved.includedHold = *policy.IncludedHoldBags
	}
	if policy.CabinBagFee != nil {
		resolved.cabinFee = *policy.CabinBagFee
	}
	if policy.HoldBagFee != nil {
		resolved.holdFee = *policy.HoldBagFee
	}
	if policy.PerSegment != nil {
		resolved.perSegment = *policy.PerSegment
	}

	if override := ev.lookupOverride(policy); override != nil {
		if override.IncludedCabinBags != nil {
			resolved.includedCabin = *override.IncludedCabinBags
		}
		if override.IncludedHoldBags != nil {
			resolved.includedHold = *override.IncludedHoldBags
		}
	}

	return resolved
}

func (ev *evaluation) lookupOverride(policy *config.BaggagePolicy) *config.BaggageOverride {
	if len(policy.BrandOverrides) == 0 {
		return nil
	}
	if brand := ev.effectiveBrand(); brand != "" {
		if override, ok := policy.BrandOverrides[brand]; ok {
			return &override
		}
	}
	if override, ok := policy.BrandOverrides[ev.effectiveCabin()]; ok {
		return &override
	}
	return nil
}

// effectiveBrand prefers the traveler's fare brand over the itinerary's.
func (ev *evaluation) effectiveBrand() string {
	if ev.criteria.FareBrand != "" {
		return ev.criteria.FareBrand
	}
	return ev.itinerary.FareBrand
}

// effectiveCabin prefers the traveler's cabin class over the itinerary's,
// defaulting to economy.
func (ev *evaluation) effectiveCabin() string {
	if ev.criteria.CabinClass != "" {
		return ev.criteria.CabinClass
	}
	if ev.itinerary.CabinClass != "" {
		return ev.itinerary.CabinClass
	}
	return CabinEco
}

func maxInt0(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
