package quote

import (
	"fmt"

	"github.com/voyageware/farequote/pkg/constants"
	"github.com/voyageware/farequote/pkg/mathutil"
	"go.uber.org/zap"
)

// applyAdultFare adds the adult contribution to the running total. It is
// always added, regardless of child or infant presence, and produces no
// surcharge line.
func (ev *evaluation) applyAdultFare() {
	ev.total += float64(ev.criteria.Adults) * ev.base
}

// applyChildFare adds one aggregate CHILD_ADJ line covering all children.
// The per-child amount is rounded to the nearest whole unit before
// multiplying by headcount.
func (ev *evaluation) applyChildFare() {
	children := len(ev.criteria.ChildAges)
	if children == 0 {
		return
	}

	percent := constants.DefaultChildPercentOfAdult
	if pricing := ev.cfg.ChildPricing; pricing != nil && pricing.ChildPercentOfAdult != nil {
		percent = *pricing.ChildPercentOfAdult
	}
	percent = mathutil.ClampFloat(percent, 0, constants.MaxChildPercentOfAdult)

	perChild := mathutil.RoundUnit(ev.base * percent)
	amount := perChild * float64(children)

	ev.logger.Debug("child fare applied",
		zap.String("op", "quote.applyChildFare"),
		zap.Int("children", children),
		zap.Float64("per_child", perChild),
	)
	ev.addSurcharge(TagChildAdjustment, fmt.Sprintf("Child fare x %d", children), amount)
}

// applyInfantFare adds one aggregate INFANT_ADJ line. All infants are
// priced under the no-seat assumption; the carrier's infantSeatPercent is
// never consulted on this path.
func (ev *evaluation) applyInfantFare() {
	infants := ev.criteria.Infants
	if infants == 0 {
		return
	}

	percent := constants.DefaultInfantNoSeatPercent
	if pricing := ev.cfg.ChildPricing; pricing != nil && pricing.InfantNoSeatPercent != nil {
		percent = *pricing.InfantNoSeatPercent
	}
	percent = mathutil.ClampFloat(percent, 0, constants.MaxInfantNoSeatPercent)

	perInfant := mathutil.RoundUnit(ev.base * percent)
	amount := perInfant * float64(infants)

	ev.logger.Debug("infant fare applied",
		zap.String("op", "quote.applyInfantFare"),
		zap.Int("infants", infants),
		zap.Float64("per_infant", perInfant),
	)
	ev.addSurcharge(TagInfantAdjustment, fmt.Sprintf("Infant fare x %d", infants), amount)
}
