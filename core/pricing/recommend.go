// Package pricing - Module recommendations
package pricing

import (
	"immoquote/core/catalog"
	"immoquote/core/types"
	"immoquote/internal/errors"
)

// basicAllowed is the small set of recommended modules offered with the
// entry tier
var basicAllowed = map[string]bool{
	catalog.ModuleProfessionalPhotography: true,
	catalog.ModuleFloorPlan:               true,
	catalog.ModuleEnergyCertificate:       true,
}

// premiumDenied removes enterprise-grade recommendations from the
// premium tier
var premiumDenied = map[string]bool{
	catalog.ModuleAnalyticsDashboard: true,
}

// Recommender suggests add-on modules for a tier and property
type Recommender struct {
	catalog *catalog.Catalog
}

// NewRecommender creates a recommender over the given catalog
func NewRecommender(cat *catalog.Catalog) *Recommender {
	return &Recommender{catalog: cat}
}

// Recommend returns the modules suggested for the tier and property:
// every module the tier requires, every recommended module the tier
// allows, plus a legal review for commercial properties and drone
// photography for luxury ones. The result carries no duplicates and
// follows catalog declaration order, conditional appends last.
func (r *Recommender) Recommend(tier types.Tier, specs types.PropertySpecs) ([]types.PricingModule, error) {
	if !tier.Valid() {
		return nil, errors.UnknownTier(string(tier))
	}

	seen := make(map[string]bool)
	var out []types.PricingModule

	add := func(m types.PricingModule) {
		if !seen[m.ID] {
			seen[m.ID] = true
			out = append(out, m)
		}
	}

	for _, m := range r.catalog.Modules() {
		if m.RequiredFor(tier) {
			add(m)
			continue
		}
		if m.Recommended && tierAllows(tier, m.ID) {
			add(m)
		}
	}

	if specs.Type == types.PropertyGewerbe {
		if m, ok := r.catalog.Module(catalog.ModuleLegalReview); ok {
			add(m)
		}
	}
	if specs.LuxuryClass == types.LuxuryLuxury {
		if m, ok := r.catalog.Module(catalog.ModuleDronePhotography); ok {
			add(m)
		}
	}

	return out, nil
}

// tierAllows applies the per-tier allow/deny rules for recommended
// modules
func tierAllows(tier types.Tier, moduleID string) bool {
	switch tier {
	case types.TierBasic:
		return basicAllowed[moduleID]
	case types.TierPremium:
		return !premiumDenied[moduleID]
	default:
		return true
	}
}
