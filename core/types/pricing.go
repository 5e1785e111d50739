// Package types - Catalog types
package types

// Currency represents a currency code
type Currency string

// CurrencyEUR is the only currency the engine prices in
const CurrencyEUR Currency = "EUR"

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// Tier identifies a service tier
type Tier string

const (
	TierBasic      Tier = "BASIC"
	TierPremium    Tier = "PREMIUM"
	TierEnterprise Tier = "ENTERPRISE"
)

// String returns the string representation
func (t Tier) String() string {
	return string(t)
}

// Valid reports whether the value is part of the closed enumeration
func (t Tier) Valid() bool {
	switch t {
	case TierBasic, TierPremium, TierEnterprise:
		return true
	}
	return false
}

// ModuleCategory groups add-on modules by concern
type ModuleCategory string

const (
	CategoryMedia     ModuleCategory = "MEDIA"
	CategoryLegal     ModuleCategory = "LEGAL"
	CategoryMarketing ModuleCategory = "MARKETING"
	CategoryService   ModuleCategory = "SERVICE"
	CategoryTechnical ModuleCategory = "TECHNICAL"
)

// String returns the string representation
func (c ModuleCategory) String() string {
	return string(c)
}

// PricingModule is an optional, separately priced add-on service.
// Prices are integer minor currency units (euro cents). Instances are
// immutable once registered in the catalog.
type PricingModule struct {
	// ID uniquely identifies the module
	ID string `json:"id"`

	// Name is the display name
	Name string `json:"name"`

	// Category groups the module by concern
	Category ModuleCategory `json:"category"`

	// BasePrice is the fixed price component in minor units
	BasePrice int64 `json:"base_price"`

	// PricePerSqm is an optional per-square-meter component in minor
	// units; zero means the module has no area pricing
	PricePerSqm int64 `json:"price_per_sqm,omitempty"`

	// OneTime indicates a one-off charge rather than a recurring one
	OneTime bool `json:"one_time"`

	// Recommended marks the module for the recommendation engine
	Recommended bool `json:"recommended"`

	// RequiredForTier lists the tiers this module is mandatory for
	RequiredForTier []Tier `json:"required_for_tier,omitempty"`

	// EstimatedDeliveryDays is the production lead time in days
	EstimatedDeliveryDays int `json:"estimated_delivery_days"`

	// Features lists what the module includes
	Features []string `json:"features"`
}

// RequiredFor reports whether the module is mandatory for the tier
func (m *PricingModule) RequiredFor(tier Tier) bool {
	for _, t := range m.RequiredForTier {
		if t == tier {
			return true
		}
	}
	return false
}

// HasAreaPricing reports whether the module carries a per-sqm component
func (m *PricingModule) HasAreaPricing() bool {
	return m.PricePerSqm > 0
}

// BasePackage is the fixed-price service bundle of one tier.
// Exactly one exists per tier; immutable once registered.
type BasePackage struct {
	// Tier identifies the service tier
	Tier Tier `json:"tier"`

	// Name is the display name
	Name string `json:"name"`

	// Price is the fixed package price in minor units
	Price int64 `json:"price"`

	// Features lists what the package includes
	Features []string `json:"features"`
}
