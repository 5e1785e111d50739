// Package types - Shared domain types for the pricing engine
package types

// PropertyType classifies the marketed property
type PropertyType string

const (
	PropertyWohnung          PropertyType = "WOHNUNG"
	PropertyHaus             PropertyType = "HAUS"
	PropertyReihenhaus       PropertyType = "REIHENHAUS"
	PropertyDoppelhaus       PropertyType = "DOPPELHAUS"
	PropertyMehrfamilienhaus PropertyType = "MEHRFAMILIENHAUS"
	PropertyGewerbe          PropertyType = "GEWERBE"
)

// String returns the string representation
func (p PropertyType) String() string {
	return string(p)
}

// Valid reports whether the value is part of the closed enumeration
func (p PropertyType) Valid() bool {
	switch p {
	case PropertyWohnung, PropertyHaus, PropertyReihenhaus,
		PropertyDoppelhaus, PropertyMehrfamilienhaus, PropertyGewerbe:
		return true
	}
	return false
}

// Region identifies the marketing region of the property
type Region string

const (
	RegionMuenchen    Region = "MUENCHEN"
	RegionBayern      Region = "BAYERN"
	RegionDeutschland Region = "DEUTSCHLAND"
	RegionEuropa      Region = "EUROPA"
)

// String returns the string representation
func (r Region) String() string {
	return string(r)
}

// Valid reports whether the value is part of the closed enumeration
func (r Region) Valid() bool {
	switch r {
	case RegionMuenchen, RegionBayern, RegionDeutschland, RegionEuropa:
		return true
	}
	return false
}

// LuxuryClass classifies the fit and finish of the property
type LuxuryClass string

const (
	LuxuryStandard LuxuryClass = "STANDARD"
	LuxuryPremium  LuxuryClass = "PREMIUM"
	LuxuryLuxury   LuxuryClass = "LUXURY"
)

// String returns the string representation
func (l LuxuryClass) String() string {
	return string(l)
}

// Valid reports whether the value is part of the closed enumeration.
// The empty value is valid: luxury class is optional.
func (l LuxuryClass) Valid() bool {
	switch l {
	case "", LuxuryStandard, LuxuryPremium, LuxuryLuxury:
		return true
	}
	return false
}

// PropertySpecs describes the property a quotation is priced for.
// It is a transient input value with no persisted identity.
// A zero LivingArea / TotalArea / RoomCount means "not provided".
type PropertySpecs struct {
	// Type is the property category
	Type PropertyType `json:"type"`

	// LivingArea is the living area in square meters, if known
	LivingArea float64 `json:"living_area,omitempty"`

	// TotalArea is the total plot area in square meters, if known
	TotalArea float64 `json:"total_area,omitempty"`

	// RoomCount is the number of rooms, if known
	RoomCount float64 `json:"room_count,omitempty"`

	// Region is the marketing region
	Region Region `json:"region"`

	// LuxuryClass is the optional fit-and-finish classification
	LuxuryClass LuxuryClass `json:"luxury_class,omitempty"`
}
