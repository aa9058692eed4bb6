// Package quote implements the fare-pricing rule evaluator: given an
// itinerary and a traveler profile, it computes a final total plus an
// itemized, auditable list of surcharges and discounts, enforcing
// carrier-specific eligibility constraints along the way.
package quote

// Tag identifies a surcharge line item.
type Tag string

// Surcharge tags, in the fixed order lines are appended to a result.
const (
	TagChildAdjustment  Tag = "CHILD_ADJ"
	TagInfantAdjustment Tag = "INFANT_ADJ"
	TagBagCabin         Tag = "BAG_CABIN"
	TagBagHold          Tag = "BAG_HOLD"
	TagUnaccompanied    Tag = "UM"
	TagResidentDiscount Tag = "RESIDENT_DISCOUNT"
)

// Fare brands recognized after normalization. Unknown brands normalize to
// the empty brand.
const (
	BrandBasic = "basic"
	BrandFlex  = "flex"
)

// Cabin classes recognized after normalization. Unknown classes normalize
// to economy.
const (
	CabinEco      = "eco"
	CabinPremium  = "premium"
	CabinBusiness = "business"
	CabinFirst    = "first"
)

// TravelerCriteria is the traveler/criteria profile supplied by the caller.
// Values are clamped to safe bounds before use; out-of-range inputs are
// silently corrected, never rejected.
type TravelerCriteria struct {
	Adults      int    `yaml:"adults" json:"adults"`
	ChildAges   []int  `yaml:"childAges,omitempty" json:"childAges,omitempty"`
	Infants     int    `yaml:"infants,omitempty" json:"infants,omitempty"`
	FareBrand   string `yaml:"fareBrand,omitempty" json:"fareBrand,omitempty"`
	CabinClass  string `yaml:"cabinClass,omitempty" json:"cabinClass,omitempty"`
	CabinBags   int    `yaml:"cabinBags,omitempty" json:"cabinBags,omitempty"` // requested per traveler
	HoldBags    int    `yaml:"holdBags,omitempty" json:"holdBags,omitempty"`   // requested per traveler
	Resident    bool   `yaml:"resident,omitempty" json:"resident,omitempty"`
	Currency    string `yaml:"currency,omitempty" json:"currency,omitempty"`
	UMRequested bool   `yaml:"umRequested,omitempty" json:"umRequested,omitempty"`
}

// Itinerary is the priced journey supplied by the caller, sourced from
// upstream search-result data.
type Itinerary struct {
	BaseFare   float64 `yaml:"baseFare" json:"baseFare"` // adult base fare
	Currency   string  `yaml:"currency,omitempty" json:"currency,omitempty"`
	Segments   int     `yaml:"segments" json:"segments"`
	Carrier    string  `yaml:"carrier" json:"carrier"`
	FareBrand  string  `yaml:"fareBrand,omitempty" json:"fareBrand,omitempty"`
	CabinClass string  `yaml:"cabinClass,omitempty" json:"cabinClass,omitempty"`
}

// Surcharge is one signed line item of a quote. Discounts carry negative
// amounts. Lines are appended in a fixed evaluation order and never mutated
// afterwards.
type Surcharge struct {
	Tag    Tag     `json:"tag"`
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// Result is the outcome of one evaluation. Total is a non-negative whole
// amount in the effective currency. When Eligible is false, Reasons is
// non-empty and Total holds the partial total accumulated before the
// eligibility gate fired.
type Result struct {
	Total      float64     `json:"total"`
	Currency   string      `json:"currency"`
	Surcharges []Surcharge `json:"surcharges,omitempty"`
	Warnings   []string    `json:"warnings,omitempty"`
	Eligible   bool        `json:"eligible"`
	Reasons    []string    `json:"reasons,omitempty"`
}

// FindSurcharge returns the first surcharge with the given tag, or nil.
func (r *Result) FindSurcharge(tag Tag) *Surcharge {
	for i := range r.Surcharges {
		if r.Surcharges[i].Tag == tag {
			return &r.Surcharges[i]
		}
	}
	return nil
}
