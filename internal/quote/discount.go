package quote

import (
	"github.com/voyageware/farequote/pkg/constants"
	"github.com/voyageware/farequote/pkg/mathutil"
	"go.uber.org/zap"
)

// applyResidentDiscount applies the flat residency discount as the last
// line of the quote. Skipped when the eligibility gate already failed.
func (ev *evaluation) applyResidentDiscount() {
	if ev.rejected || !ev.criteria.Resident {
		return
	}

	discount := mathutil.RoundUnit(ev.total * constants.ResidentDiscountRate)
	ev.logger.Debug("resident discount applied",
		zap.String("op", "quote.applyResidentDiscount"),
		zap.Float64("discount", discount),
	)
	ev.addSurcharge(TagResidentDiscount, "Resident discount (10%)", -discount)
}
