package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// CarrierRuleConfig holds the pricing rules for one carrier. Every section
// is optional; each pricing policy supplies its own defaults for absent
// fields, so an entirely empty record is valid and means "use every
// default". Fields are pointers so that an explicit zero can be told apart
// from an absent value.
type CarrierRuleConfig struct {
	ChildPricing       *ChildPricingPolicy       `yaml:"childPricing,omitempty"`
	Baggage            *BaggagePolicy            `yaml:"baggage,omitempty"`
	UnaccompaniedMinor *UnaccompaniedMinorPolicy `yaml:"unaccompaniedMinor,omitempty"`
}

// ChildPricingPolicy holds child and infant fares as fractions of the
// adult base fare.
type ChildPricingPolicy struct {
	ChildPercentOfAdult *float64 `yaml:"childPercentOfAdult,omitempty"`
	InfantNoSeatPercent *float64 `yaml:"infantNoSeatPercent,omitempty"`
	InfantSeatPercent   *float64 `yaml:"infantSeatPercent,omitempty"`
}

// BaggagePolicy holds included baggage counts, excess fees, and fare-brand
// overrides.
type BaggagePolicy struct {
	IncludedCabinBags *int                       `yaml:"includedCabinBags,omitempty"`
	IncludedHoldBags  *int                       `yaml:"includedHoldBags,omitempty"`
	CabinBagFee       *float64                   `yaml:"cabinBagFee,omitempty"`
	HoldBagFee        *float64                   `yaml:"holdBagFee,omitempty"`
	PerSegment        *bool                      `yaml:"perSegment,omitempty"`
	BrandOverrides    map[string]BaggageOverride `yaml:"brandOverrides,omitempty"`
}

// BaggageOverride adjusts included baggage counts for a fare brand or cabin
// class. Fee amounts are never overridden per brand.
type BaggageOverride struct {
	IncludedCabinBags *int `yaml:"includedCabinBags,omitempty"`
	IncludedHoldBags  *int `yaml:"includedHoldBags,omitempty"`
}

// UnaccompaniedMinorPolicy holds the carrier's UM service rules.
type UnaccompaniedMinorPolicy struct {
	MandatoryBelowAge *int     `yaml:"mandatoryBelowAge,omitempty"`
	AllowedUpToAge    *int     `yaml:"allowedUpToAge,omitempty"`
	Fee               *float64 `yaml:"fee,omitempty"`
	FeeCurrency       string   `yaml:"feeCurrency,omitempty"`
	PerSegment        *bool    `yaml:"perSegment,omitempty"`
}

// carrierRulesDocument is the on-disk shape of a carrier rules file.
type carrierRulesDocument struct {
	Carriers map[string]CarrierRuleConfig `yaml:"carriers"`
}

// LoadCarrierRules takes a file path as input and loads the YAML-formatted
// carrier rule table there. The table is decoded with yaml.v3 rather than
// viper because viper lowercases map keys, and carrier codes are the keys.
func LoadCarrierRules(rulesPath string) (map[string]CarrierRuleConfig, error) {
	file, err := os.Open(rulesPath)
	if err != nil {
		return nil, fmt.Errorf("error reading carrier rules file, %s", err)
	}
	defer func() {
		_ = file.Close()
	}()

	return LoadCarrierRulesFromReader(file)
}

// LoadCarrierRulesFromReader loads a YAML-formatted carrier rule table from
// an in-memory source.
func LoadCarrierRulesFromReader(r io.Reader) (map[string]CarrierRuleConfig, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading carrier rules data, %v", err)
	}

	var document carrierRulesDocument
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("unable to decode carrier rules into struct, %s", err)
	}

	return document.Carriers, nil
}
