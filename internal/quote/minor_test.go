package quote

import (
	"strings"
	"testing"

	"github.com/voyageware/farequote/internal/config"
	"github.com/voyageware/farequote/internal/rules"
	"go.uber.org/zap"
)

func minorSnapshot(policy *config.UnaccompaniedMinorPolicy) *rules.Snapshot {
	return rules.NewSnapshot(map[string]config.CarrierRuleConfig{
		"AF": {UnaccompaniedMinor: policy},
	})
}

func TestMinorMandatoryGate(t *testing.T) {
	engine := NewEngine(zap.NewNop())

	// Child age 8, mandatory below 12, UM not requested: rejected with the
	// partial total (adult + child contributions) intact.
	result := engine.Evaluate(nil, defaultItinerary(), TravelerCriteria{
		Adults:    1,
		ChildAges: []int{8},
	})

	if result.Eligible {
		t.Fatal("expected eligible = false")
	}
	if len(result.Reasons) != 1 {
		t.Fatalf("expected one rejection reason, got %d", len(result.Reasons))
	}
	expectedReason := "UM obligatoire jusqu'à 12 ans sur AF, cochez l'option UM."
	if result.Reasons[0] != expectedReason {
		t.Errorf("reason = %q, expected %q", result.Reasons[0], expectedReason)
	}
	if result.Total != 350 { // 200 adult + 150 child, no UM, no discount
		t.Errorf("partial total = %.2f, expected 350", result.Total)
	}
	if line := result.FindSurcharge(TagUnaccompanied); line != nil {
		t.Errorf("unexpected UM line on rejection")
	}
}

func TestMinorGatePassesWithRequest(t *testing.T) {
	engine := NewEngine(zap.NewNop())

	result := engine.Evaluate(nil, defaultItinerary(), TravelerCriteria{
		Adults:      1,
		ChildAges:   []int{8},
		UMRequested: true,
	})

	if !result.Eligible {
		t.Fatalf("expected eligible = true, reasons: %v", result.Reasons)
	}

	line := result.FindSurcharge(TagUnaccompanied)
	if line == nil {
		t.Fatal("expected a UM surcharge line")
	}
	if line.Amount != 50 { // default fee, one segment
		t.Errorf("UM amount = %.2f, expected 50", line.Amount)
	}
	if result.Total != 400 { // 200 + 150 + 50
		t.Errorf("total = %.2f, expected 400", result.Total)
	}
}

func TestMinorGateSkipsResidentDiscount(t *testing.T) {
	engine := NewEngine(zap.NewNop())

	result := engine.Evaluate(nil, defaultItinerary(), TravelerCriteria{
		Adults:    1,
		ChildAges: []int{8},
		Resident:  true,
	})

	if result.Eligible {
		t.Fatal("expected eligible = false")
	}
	if line := result.FindSurcharge(TagResidentDiscount); line != nil {
		t.Errorf("unexpected RESIDENT_DISCOUNT line after rejection")
	}
	if result.Total != 350 {
		t.Errorf("partial total = %.2f, expected 350", result.Total)
	}
}

func TestMinorGateUsesYoungestChild(t *testing.T) {
	engine := NewEngine(zap.NewNop())

	tests := []struct {
		name     string
		ages     []int
		eligible bool
	}{
		{
			name:     "Youngest below threshold",
			ages:     []int{11, 5},
			eligible: false,
		},
		{
			name:     "Minimum child age is below the default threshold",
			ages:     []int{2},
			eligible: false,
		},
		{
			name:     "No children",
			ages:     nil,
			eligible: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := engine.Evaluate(nil, defaultItinerary(), TravelerCriteria{
				Adults:    1,
				ChildAges: tt.ages,
			})
			if result.Eligible != tt.eligible {
				t.Errorf("eligible = %v, expected %v", result.Eligible, tt.eligible)
			}
		})
	}
}

func TestMinorCarrierThreshold(t *testing.T) {
	engine := NewEngine(zap.NewNop())

	// Carrier lowers the mandatory age to 6: an 8-year-old passes.
	snapshot := minorSnapshot(&config.UnaccompaniedMinorPolicy{MandatoryBelowAge: intPtr(6)})

	result := engine.Evaluate(snapshot, defaultItinerary(), TravelerCriteria{
		Adults:    1,
		ChildAges: []int{8},
	})
	if !result.Eligible {
		t.Errorf("expected eligible = true with mandatory-below 6, reasons: %v", result.Reasons)
	}

	result = engine.Evaluate(snapshot, defaultItinerary(), TravelerCriteria{
		Adults:    1,
		ChildAges: []int{5},
	})
	if result.Eligible {
		t.Error("expected eligible = false for a 5-year-old")
	}
	if !strings.Contains(result.Reasons[0], "jusqu'à 6 ans") {
		t.Errorf("reason should name the carrier threshold: %q", result.Reasons[0])
	}
}

func TestMinorFeeChargedWithoutChild(t *testing.T) {
	engine := NewEngine(zap.NewNop())

	// The fee is charged for the request itself; the missing child only
	// produces a warning.
	result := engine.Evaluate(nil, defaultItinerary(), TravelerCriteria{
		Adults:      1,
		UMRequested: true,
	})

	found := false
	for _, warning := range result.Warnings {
		if warning == "UM requested but no eligible child detected" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a no-eligible-child warning, got %v", result.Warnings)
	}

	line := result.FindSurcharge(TagUnaccompanied)
	if line == nil {
		t.Fatal("expected a UM surcharge line despite the warning")
	}
	if line.Amount != 50 {
		t.Errorf("UM amount = %.2f, expected 50", line.Amount)
	}
}

func TestMinorFeePerSegment(t *testing.T) {
	engine := NewEngine(zap.NewNop())

	tests := []struct {
		name     string
		policy   *config.UnaccompaniedMinorPolicy
		segments int
		expected float64
	}{
		{
			name:     "Default policy multiplies per segment",
			policy:   nil,
			segments: 3,
			expected: 150,
		},
		{
			name:     "Flat fee when per-segment disabled",
			policy:   &config.UnaccompaniedMinorPolicy{Fee: floatPtr(80), PerSegment: boolPtr(false)},
			segments: 3,
			expected: 80,
		},
		{
			name:     "Zero fee emits no line",
			policy:   &config.UnaccompaniedMinorPolicy{Fee: floatPtr(0)},
			segments: 2,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			itinerary := defaultItinerary()
			itinerary.Segments = tt.segments
			result := engine.Evaluate(minorSnapshot(tt.policy), itinerary, TravelerCriteria{
				Adults:      1,
				ChildAges:   []int{9},
				UMRequested: true,
			})

			line := result.FindSurcharge(TagUnaccompanied)
			if tt.expected == 0 {
				if line != nil {
					t.Errorf("unexpected UM line with amount %.2f", line.Amount)
				}
				return
			}
			if line == nil {
				t.Fatal("expected a UM surcharge line")
			}
			if line.Amount != tt.expected {
				t.Errorf("UM amount = %.2f, expected %.2f", line.Amount, tt.expected)
			}
		})
	}
}

func TestMinorFeeCurrencyConversionPlaceholder(t *testing.T) {
	engine := NewEngine(zap.NewNop())

	// The UM fee currency differs from the effective currency; the 1:1
	// conversion placeholder keeps the amount unchanged.
	snapshot := minorSnapshot(&config.UnaccompaniedMinorPolicy{Fee: floatPtr(65), FeeCurrency: "USD"})

	result := engine.Evaluate(snapshot, defaultItinerary(), TravelerCriteria{
		Adults:      1,
		UMRequested: true,
	})

	line := result.FindSurcharge(TagUnaccompanied)
	if line == nil {
		t.Fatal("expected a UM surcharge line")
	}
	if line.Amount != 65 {
		t.Errorf("UM amount = %.2f, expected 65", line.Amount)
	}
}
