// Package api - Request/response types
package api

import (
	"immoquote/core/pricing"
	"immoquote/core/types"
	"immoquote/internal/errors"
)

// QuoteRequest is the inbound quotation contract
type QuoteRequest struct {
	// Tier is the requested service tier
	Tier types.Tier `json:"tier"`

	// SelectedModules lists the requested add-ons
	SelectedModules []pricing.ModuleSelection `json:"selected_modules"`

	// PropertySpecs describes the marketed property
	PropertySpecs types.PropertySpecs `json:"property_specs"`

	// Reference is free text identifying the deal; only used when the
	// quote is persisted
	Reference string `json:"reference,omitempty"`
}

// QuoteResponse wraps a created quote
type QuoteResponse struct {
	QuoteNumber string                    `json:"quote_number"`
	Calculation *types.PricingCalculation `json:"calculation"`
}

// RecommendationResponse lists suggested modules
type RecommendationResponse struct {
	Tier    types.Tier            `json:"tier"`
	Modules []types.PricingModule `json:"modules"`
}

// validateQuoteRequest rejects requests the engine would not accept
// anyway, before any work happens. Deeper validation (areas, quantities)
// is the engine's job.
func validateQuoteRequest(req *QuoteRequest) error {
	if req.Tier == "" {
		return errors.Validation("tier is required")
	}
	if req.PropertySpecs.Type == "" {
		return errors.Validation("property_specs.type is required")
	}
	if req.PropertySpecs.Region == "" {
		return errors.Validation("property_specs.region is required")
	}
	return nil
}
