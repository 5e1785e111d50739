// Package catalog - Base package definitions
package catalog

import "immoquote/core/types"

// registerPackages populates the catalog with the three service tiers.
// Prices are euro cents.
func registerPackages(c *Catalog) {
	c.RegisterPackage(types.BasePackage{
		Tier:  types.TierBasic,
		Name:  "Basic",
		Price: 99900,
		Features: []string{
			"Property microsite with responsive design",
			"Up to 20 photos",
			"Contact form with lead capture",
			"3 months hosting included",
		},
	})

	c.RegisterPackage(types.BasePackage{
		Tier:  types.TierPremium,
		Name:  "Premium",
		Price: 179900,
		Features: []string{
			"Everything in Basic",
			"Up to 60 photos and video embedding",
			"Custom color scheme and typography",
			"Lead scoring and e-mail notifications",
			"12 months hosting included",
		},
	})

	c.RegisterPackage(types.BasePackage{
		Tier:  types.TierEnterprise,
		Name:  "Enterprise",
		Price: 299900,
		Features: []string{
			"Everything in Premium",
			"Unlimited media",
			"Multi-language microsite",
			"CRM integration and API access",
			"Dedicated account manager",
			"24 months hosting included",
		},
	})
}
