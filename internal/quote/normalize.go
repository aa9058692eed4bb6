package quote

import (
	"strings"

	"github.com/voyageware/farequote/pkg/constants"
	"github.com/voyageware/farequote/pkg/currency"
	"github.com/voyageware/farequote/pkg/mathutil"
)

// NormalizeCriteria clamps and sanitizes raw traveler criteria into safe
// bounds. Out-of-range values are corrected silently.
func NormalizeCriteria(criteria TravelerCriteria) TravelerCriteria {
	criteria.Adults = mathutil.ClampInt(criteria.Adults, constants.MinAdults, constants.MaxAdults)

	ages := criteria.ChildAges
	if len(ages) > constants.MaxChildren {
		ages = ages[:constants.MaxChildren]
	}
	clamped := make([]int, len(ages))
	for i, age := range ages {
		clamped[i] = mathutil.ClampInt(age, constants.MinChildAge, constants.MaxChildAge)
	}
	criteria.ChildAges = clamped

	criteria.Infants = mathutil.ClampInt(criteria.Infants, 0, constants.MaxInfants)
	criteria.CabinBags = mathutil.ClampInt(criteria.CabinBags, 0, constants.MaxBagsPerTraveler)
	criteria.HoldBags = mathutil.ClampInt(criteria.HoldBags, 0, constants.MaxBagsPerTraveler)
	criteria.FareBrand = normalizeBrand(criteria.FareBrand)
	criteria.CabinClass = normalizeCabin(criteria.CabinClass)
	criteria.Currency = currency.Normalize(criteria.Currency)

	return criteria
}

// NormalizeItinerary clamps and sanitizes raw itinerary data.
func NormalizeItinerary(itinerary Itinerary) Itinerary {
	if itinerary.BaseFare < 0 {
		itinerary.BaseFare = 0
	}
	itinerary.Segments = mathutil.ClampInt(itinerary.Segments, constants.MinSegments, constants.MaxSegments)
	itinerary.Carrier = strings.ToUpper(strings.TrimSpace(itinerary.Carrier))
	itinerary.FareBrand = normalizeBrand(itinerary.FareBrand)
	itinerary.CabinClass = normalizeCabin(itinerary.CabinClass)
	itinerary.Currency = currency.Normalize(itinerary.Currency)

	return itinerary
}

func normalizeBrand(brand string) string {
	switch strings.ToLower(strings.TrimSpace(brand)) {
	case BrandBasic:
		return BrandBasic
	case BrandFlex:
		return BrandFlex
	default:
		return ""
	}
}

func normalizeCabin(cabin string) string {
	switch strings.ToLower(strings.TrimSpace(cabin)) {
	case CabinEco:
		return CabinEco
	case CabinPremium:
		return CabinPremium
	case CabinBusiness:
		return CabinBusiness
	case CabinFirst:
		return CabinFirst
	default:
		// Unknown classes resolve to economy at lookup time.
		return ""
	}
}
