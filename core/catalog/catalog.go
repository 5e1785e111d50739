// Package catalog - Authoritative service catalog
// Defines the canonical base packages and add-on modules with their
// prices. This is the source of truth for everything the engine sells.
// The catalog is built once at process start and is read-only afterwards,
// so concurrent lookups need no locking.
package catalog

import (
	"immoquote/core/types"
	"immoquote/internal/errors"
)

// Module ids referenced by pricing and recommendation rules.
const (
	ModuleProfessionalPhotography = "professional-photography"
	ModuleDronePhotography        = "drone-photography"
	ModuleVirtualTour             = "virtual-tour-360"
	ModuleFloorPlan               = "floor-plan-2d"
	ModuleVirtualStaging          = "virtual-staging"
	ModuleEnergyCertificate       = "energy-certificate"
	ModuleLegalReview             = "legal-review"
	ModuleExposeCopywriting       = "expose-copywriting"
	ModuleSocialMediaCampaign     = "social-media-campaign"
	ModulePortalListing           = "premium-portal-listing"
	ModuleLeadQualification       = "lead-qualification"
	ModuleViewingCoordination     = "viewing-coordination"
	ModuleCustomDomain            = "custom-domain"
	ModuleAnalyticsDashboard      = "analytics-dashboard"
	ModuleSEOOptimization         = "seo-optimization"
)

// Catalog holds the base packages and add-on modules
type Catalog struct {
	packages map[types.Tier]types.BasePackage
	modules  map[string]types.PricingModule
	order    []string
}

// New creates an empty catalog
func New() *Catalog {
	return &Catalog{
		packages: make(map[types.Tier]types.BasePackage),
		modules:  make(map[string]types.PricingModule),
	}
}

// RegisterPackage adds a base package to the catalog
func (c *Catalog) RegisterPackage(p types.BasePackage) {
	c.packages[p.Tier] = p
}

// RegisterModule adds a module to the catalog
func (c *Catalog) RegisterModule(m types.PricingModule) {
	if _, exists := c.modules[m.ID]; !exists {
		c.order = append(c.order, m.ID)
	}
	c.modules[m.ID] = m
}

// Package returns the base package for a tier. It fails for a tier
// outside the closed enumeration; with validated input this is
// unreachable, but the lookup stays defensive.
func (c *Catalog) Package(tier types.Tier) (types.BasePackage, error) {
	p, ok := c.packages[tier]
	if !ok {
		return types.BasePackage{}, errors.UnknownTier(string(tier))
	}
	return p, nil
}

// Module returns the module with the given id
func (c *Catalog) Module(id string) (types.PricingModule, bool) {
	m, ok := c.modules[id]
	return m, ok
}

// Packages returns all base packages ordered BASIC, PREMIUM, ENTERPRISE
func (c *Catalog) Packages() []types.BasePackage {
	out := make([]types.BasePackage, 0, len(c.packages))
	for _, tier := range []types.Tier{types.TierBasic, types.TierPremium, types.TierEnterprise} {
		if p, ok := c.packages[tier]; ok {
			out = append(out, p)
		}
	}
	return out
}

// Modules returns all modules in declaration order
func (c *Catalog) Modules() []types.PricingModule {
	out := make([]types.PricingModule, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.modules[id])
	}
	return out
}

// Default builds the full production catalog. The result is validated;
// a broken compiled-in catalog is a programming error and panics.
func Default() *Catalog {
	c := New()
	registerPackages(c)
	registerModules(c)
	if err := c.Validate(); err != nil {
		panic("catalog: invalid compiled-in catalog: " + err.Error())
	}
	return c
}
