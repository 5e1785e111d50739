// Package catalog - Add-on module definitions
// This is the source of truth for everything that can be sold on top of
// a base package. Prices are euro cents; per-sqm components apply only
// when the property provides a living area.
package catalog

import "immoquote/core/types"

// registerModules populates the catalog with all add-on modules
func registerModules(c *Catalog) {
	// Media
	c.RegisterModule(types.PricingModule{
		ID:                    ModuleProfessionalPhotography,
		Name:                  "Professional photography",
		Category:              types.CategoryMedia,
		BasePrice:             29900,
		OneTime:               true,
		Recommended:           true,
		RequiredForTier:       []types.Tier{types.TierPremium, types.TierEnterprise},
		EstimatedDeliveryDays: 5,
		Features: []string{
			"On-site shooting, up to 30 edited photos",
			"HDR interior shots",
			"Web and print resolution",
		},
	})
	c.RegisterModule(types.PricingModule{
		ID:                    ModuleDronePhotography,
		Name:                  "Drone photography",
		Category:              types.CategoryMedia,
		BasePrice:             39900,
		OneTime:               true,
		Recommended:           true,
		EstimatedDeliveryDays: 7,
		Features: []string{
			"Aerial photos and 4K video",
			"Licensed pilot, flight permit included",
		},
	})
	c.RegisterModule(types.PricingModule{
		ID:                    ModuleVirtualTour,
		Name:                  "360° virtual tour",
		Category:              types.CategoryMedia,
		BasePrice:             49900,
		PricePerSqm:           150,
		OneTime:               true,
		Recommended:           true,
		EstimatedDeliveryDays: 10,
		Features: []string{
			"Matterport-style walkthrough",
			"Hotspot annotations",
			"Embeddable player",
		},
	})
	c.RegisterModule(types.PricingModule{
		ID:                    ModuleFloorPlan,
		Name:                  "2D floor plan",
		Category:              types.CategoryMedia,
		BasePrice:             14900,
		PricePerSqm:           50,
		OneTime:               true,
		Recommended:           true,
		EstimatedDeliveryDays: 3,
		Features: []string{
			"Redrawn from existing plans or on-site measurement",
			"Furnished and unfurnished variants",
		},
	})
	c.RegisterModule(types.PricingModule{
		ID:                    ModuleVirtualStaging,
		Name:                  "Virtual staging",
		Category:              types.CategoryMedia,
		BasePrice:             34900,
		OneTime:               true,
		EstimatedDeliveryDays: 7,
		Features: []string{
			"Digitally furnished photos, up to 5 rooms",
			"Three interior styles to choose from",
		},
	})

	// Legal
	c.RegisterModule(types.PricingModule{
		ID:                    ModuleEnergyCertificate,
		Name:                  "Energy certificate",
		Category:              types.CategoryLegal,
		BasePrice:             24900,
		OneTime:               true,
		Recommended:           true,
		EstimatedDeliveryDays: 10,
		Features: []string{
			"Demand or consumption certificate per GEG",
			"Valid for 10 years",
		},
	})
	c.RegisterModule(types.PricingModule{
		ID:                    ModuleLegalReview,
		Name:                  "Legal listing review",
		Category:              types.CategoryLegal,
		BasePrice:             44900,
		OneTime:               true,
		RequiredForTier:       []types.Tier{types.TierEnterprise},
		EstimatedDeliveryDays: 14,
		Features: []string{
			"Exposé and microsite copy reviewed by a lawyer",
			"Wettbewerbsrecht and GDPR compliance check",
		},
	})

	// Marketing
	c.RegisterModule(types.PricingModule{
		ID:                    ModuleExposeCopywriting,
		Name:                  "Exposé copywriting",
		Category:              types.CategoryMarketing,
		BasePrice:             19900,
		OneTime:               true,
		Recommended:           true,
		RequiredForTier:       []types.Tier{types.TierEnterprise},
		EstimatedDeliveryDays: 4,
		Features: []string{
			"Professional listing copy in German and English",
			"Two revision rounds",
		},
	})
	c.RegisterModule(types.PricingModule{
		ID:                    ModuleSocialMediaCampaign,
		Name:                  "Social media campaign",
		Category:              types.CategoryMarketing,
		BasePrice:             59900,
		OneTime:               true,
		Recommended:           true,
		EstimatedDeliveryDays: 5,
		Features: []string{
			"Targeted Meta and Instagram ads, 4 weeks",
			"Ad creatives produced from your media",
			"Weekly performance report",
		},
	})
	c.RegisterModule(types.PricingModule{
		ID:                    ModulePortalListing,
		Name:                  "Premium portal listing",
		Category:              types.CategoryMarketing,
		BasePrice:             39900,
		OneTime:               true,
		EstimatedDeliveryDays: 2,
		Features: []string{
			"Top placement on the major listing portals, 4 weeks",
		},
	})

	// Service
	c.RegisterModule(types.PricingModule{
		ID:                    ModuleLeadQualification,
		Name:                  "Lead qualification",
		Category:              types.CategoryService,
		BasePrice:             29900,
		EstimatedDeliveryDays: 3,
		Features: []string{
			"Telephone pre-qualification of incoming leads",
			"Monthly, cancellable",
		},
	})
	c.RegisterModule(types.PricingModule{
		ID:                    ModuleViewingCoordination,
		Name:                  "Viewing coordination",
		Category:              types.CategoryService,
		BasePrice:             49900,
		EstimatedDeliveryDays: 5,
		Features: []string{
			"Scheduling and confirmation of viewing appointments",
			"Monthly, cancellable",
		},
	})

	// Technical
	c.RegisterModule(types.PricingModule{
		ID:                    ModuleCustomDomain,
		Name:                  "Custom domain",
		Category:              types.CategoryTechnical,
		BasePrice:             9900,
		OneTime:               true,
		EstimatedDeliveryDays: 2,
		Features: []string{
			"Own .de domain incl. registration and TLS",
		},
	})
	c.RegisterModule(types.PricingModule{
		ID:                    ModuleAnalyticsDashboard,
		Name:                  "Analytics dashboard",
		Category:              types.CategoryTechnical,
		BasePrice:             19900,
		Recommended:           true,
		RequiredForTier:       []types.Tier{types.TierEnterprise},
		EstimatedDeliveryDays: 3,
		Features: []string{
			"Visitor and lead funnel metrics",
			"Cookieless, GDPR-compliant tracking",
		},
	})
	c.RegisterModule(types.PricingModule{
		ID:                    ModuleSEOOptimization,
		Name:                  "SEO optimization",
		Category:              types.CategoryTechnical,
		BasePrice:             24900,
		OneTime:               true,
		Recommended:           true,
		EstimatedDeliveryDays: 7,
		Features: []string{
			"Structured data, sitemap, meta copy",
			"Local search optimization",
		},
	})
}
