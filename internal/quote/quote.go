package quote

import (
	"github.com/voyageware/farequote/internal/config"
	"github.com/voyageware/farequote/internal/rules"
	"github.com/voyageware/farequote/pkg/currency"
	"github.com/voyageware/farequote/pkg/mathutil"
	"go.uber.org/zap"
)

// Engine evaluates quotes against a carrier rule snapshot. Evaluation is a
// pure, synchronous computation; an Engine is safe for concurrent use.
type Engine struct {
	logger *zap.Logger
}

// NewEngine creates a quote engine with the given logger.
// If logger is nil, it will use a no-op logger to prevent panics.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger}
}

// evaluation is the accumulator threaded through the pricing stages. Stages
// only append surcharges and grow the running total; nothing is mutated
// after being appended, so the line order is exactly the evaluation order.
type evaluation struct {
	logger    *zap.Logger
	criteria  TravelerCriteria
	itinerary Itinerary
	cfg       config.CarrierRuleConfig

	currency   string
	base       float64 // adult base fare converted to the effective currency
	total      float64
	surcharges []Surcharge
	warnings   []string
	rejected   bool
	reasons    []string
}

// Evaluate computes a quote for the given itinerary and traveler criteria
// using the carrier rules in the snapshot. Range anomalies are clamped and
// unknown carriers fall back to default policies, so evaluation itself
// never fails; ineligibility is reported on the Result, not as an error.
func (e *Engine) Evaluate(snapshot *rules.Snapshot, itinerary Itinerary, criteria TravelerCriteria) Result {
	const op = "quote.Evaluate"

	itinerary = NormalizeItinerary(itinerary)
	criteria = NormalizeCriteria(criteria)

	effectiveCurrency := currency.Effective(criteria.Currency, itinerary.Currency)
	ev := &evaluation{
		logger:    e.logger,
		criteria:  criteria,
		itinerary: itinerary,
		cfg:       snapshot.Lookup(itinerary.Carrier),
		currency:  effectiveCurrency,
		base:      currency.Convert(itinerary.BaseFare, itinerary.Currency, effectiveCurrency),
	}

	e.logger.Debug("evaluating quote",
		zap.String("op", op),
		zap.String("carrier", itinerary.Carrier),
		zap.String("currency", effectiveCurrency),
		zap.Float64("base_fare", ev.base),
		zap.Int("adults", criteria.Adults),
		zap.Int("children", len(criteria.ChildAges)),
		zap.Int("infants", criteria.Infants),
	)

	ev.applyAdultFare()
	ev.applyChildFare()
	ev.applyInfantFare()
	ev.applyBaggage()
	ev.applyUnaccompaniedMinor()
	ev.applyResidentDiscount()

	result := ev.assemble()
	e.logger.Debug("quote evaluated",
		zap.String("op", op),
		zap.Float64("total", result.Total),
		zap.Int("surcharges", len(result.Surcharges)),
		zap.Bool("eligible", result.Eligible),
	)
	return result
}

// addSurcharge appends a line item and applies its signed amount to the
// running total.
func (ev *evaluation) addSurcharge(tag Tag, label string, amount float64) {
	ev.surcharges = append(ev.surcharges, Surcharge{Tag: tag, Label: label, Amount: amount})
	ev.total += amount
}

func (ev *evaluation) warn(message string) {
	ev.warnings = append(ev.warnings, message)
}

// reject fails the eligibility gate. The total accumulated so far is kept;
// later pricing stages become no-ops.
func (ev *evaluation) reject(reason string) {
	ev.rejected = true
	ev.reasons = append(ev.reasons, reason)
}

// assemble applies final rounding and produces the immutable outcome
// record. The total is never negative.
func (ev *evaluation) assemble() Result {
	return Result{
		Total:      mathutil.Max(0, mathutil.RoundUnit(ev.total)),
		Currency:   ev.currency,
		Surcharges: ev.surcharges,
		Warnings:   ev.warnings,
		Eligible:   !ev.rejected,
		Reasons:    ev.reasons,
	}
}
