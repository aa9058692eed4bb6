// Package constants provides shared constants for the farequote application.
package constants

// DefaultCurrency is used when neither the traveler criteria nor the
// itinerary carry a currency code.
const DefaultCurrency = "EUR"

// Traveler clamp bounds
const (
	// MinAdults is the minimum adult count after normalization
	MinAdults = 1

	// MaxAdults is the maximum adult count after normalization
	MaxAdults = 9

	// MinChildAge is the youngest age treated as a child
	MinChildAge = 2

	// MaxChildAge is the oldest age treated as a child
	MaxChildAge = 11

	// MaxChildren is the maximum number of child ages retained
	MaxChildren = 9

	// MaxInfants is the maximum infant count after normalization
	MaxInfants = 3

	// MaxBagsPerTraveler is the maximum requested bags per traveler,
	// separately for cabin and hold
	MaxBagsPerTraveler = 2

	// MinSegments is the minimum itinerary segment count
	MinSegments = 1

	// MaxSegments is the maximum itinerary segment count
	MaxSegments = 20
)

// Child and infant pricing defaults
const (
	// DefaultChildPercentOfAdult is the child fare as a fraction of the adult fare
	DefaultChildPercentOfAdult = 0.75

	// MaxChildPercentOfAdult caps carrier-configured child percentages
	MaxChildPercentOfAdult = 1.5

	// DefaultInfantNoSeatPercent is the seatless infant fare as a fraction of the adult fare
	DefaultInfantNoSeatPercent = 0.10

	// MaxInfantNoSeatPercent caps carrier-configured infant percentages
	MaxInfantNoSeatPercent = 1.0
)

// Baggage policy defaults
const (
	// DefaultIncludedCabinBags is the included cabin bag count per traveler
	DefaultIncludedCabinBags = 1

	// DefaultIncludedHoldBags is the included hold bag count per traveler
	DefaultIncludedHoldBags = 0

	// DefaultCabinBagFee is the per-bag excess fee for cabin baggage
	DefaultCabinBagFee = 20.0

	// DefaultHoldBagFee is the per-bag excess fee for hold baggage
	DefaultHoldBagFee = 30.0
)

// Unaccompanied minor policy defaults
const (
	// DefaultUMMandatoryBelowAge is the age below which the UM service is mandatory
	DefaultUMMandatoryBelowAge = 12

	// DefaultUMAllowedUpToAge is the oldest age the UM service covers
	DefaultUMAllowedUpToAge = 16

	// DefaultUMFee is the UM service fee
	DefaultUMFee = 50.0

	// DefaultUMFeeCurrency is the currency of the default UM fee
	DefaultUMFeeCurrency = "EUR"
)

// ResidentDiscountRate is the flat residency discount applied to the
// running total. Not carrier-configurable.
const ResidentDiscountRate = 0.10

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultCarrierRulesFile is the default carrier rules file name
	DefaultCarrierRulesFile = "carriers.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the quote API
	DefaultServerAddress = ":8080"

	// DefaultMaxRequestSizeBytes is the default maximum request body size (256 KB)
	DefaultMaxRequestSizeBytes int64 = 256 * 1024
)
