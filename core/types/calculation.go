// Package types - Calculation result types
package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdjustmentType identifies one rule of the adjustment pipeline
type AdjustmentType string

const (
	AdjustmentPropertyType AdjustmentType = "PROPERTY_TYPE"
	AdjustmentRegion       AdjustmentType = "REGION"
	AdjustmentLuxury       AdjustmentType = "LUXURY"
	AdjustmentSize         AdjustmentType = "SIZE"
)

// String returns the string representation
func (a AdjustmentType) String() string {
	return string(a)
}

// ModuleLine is one priced module selection in a calculation
type ModuleLine struct {
	// Module is a snapshot of the priced catalog module
	Module PricingModule `json:"module"`

	// Quantity is the number of units priced, at least 1
	Quantity int `json:"quantity"`

	// UnitPrice is the per-unit price in minor units
	UnitPrice decimal.Decimal `json:"unit_price"`

	// TotalPrice is UnitPrice multiplied by Quantity
	TotalPrice decimal.Decimal `json:"total_price"`

	// Note explains a non-obvious price component, such as an
	// applied area surcharge
	Note string `json:"note,omitempty"`
}

// Adjustment is one non-neutral multiplicative surcharge that was
// applied to the running subtotal
type Adjustment struct {
	// Type identifies the pipeline rule that produced the adjustment
	Type AdjustmentType `json:"type"`

	// Factor is the multiplier the rule yielded
	Factor decimal.Decimal `json:"factor"`

	// Amount is the surcharge in minor units, computed against the
	// subtotal as adjusted by all prior rules
	Amount decimal.Decimal `json:"amount"`

	// Description is a human-readable explanation
	Description string `json:"description"`
}

// DeliveryEstimate is the projected production window
type DeliveryEstimate struct {
	// Min is the lower bound
	Min int `json:"min"`

	// Max is the upper bound
	Max int `json:"max"`

	// Unit is the time unit of Min and Max, always "days"
	Unit string `json:"unit"`
}

// PricingCalculation is the fully itemized result of one quotation.
// Monetary values are exact decimals denominated in minor currency
// units; no rounding is performed by the engine.
type PricingCalculation struct {
	// BasePackage is a snapshot of the priced tier package
	BasePackage BasePackage `json:"base_package"`

	// Modules lists the priced module selections, in selection order
	Modules []ModuleLine `json:"modules"`

	// Adjustments lists the applied non-neutral adjustments, in
	// pipeline order
	Adjustments []Adjustment `json:"adjustments"`

	// Subtotal is base package + module totals + adjustment amounts
	Subtotal decimal.Decimal `json:"subtotal"`

	// TotalAdjustments is the sum of all adjustment amounts
	TotalAdjustments decimal.Decimal `json:"total_adjustments"`

	// Tax is the VAT on the subtotal
	Tax decimal.Decimal `json:"tax"`

	// Total is Subtotal + Tax, exactly
	Total decimal.Decimal `json:"total"`

	// Currency is always EUR
	Currency Currency `json:"currency"`

	// ValidUntil is the end of the 30-day validity window
	ValidUntil time.Time `json:"valid_until"`

	// EstimatedDelivery is the projected production window
	EstimatedDelivery DeliveryEstimate `json:"estimated_delivery"`
}
