// Package catalog - Catalog validation
// Ensures catalog integrity before the catalog is put into service.
package catalog

import (
	"fmt"

	"immoquote/core/types"
)

// moduleRule is a validation rule applied to every module
type moduleRule func(*types.PricingModule) error

func moduleRules() []moduleRule {
	return []moduleRule{
		validateModuleIdentity,
		validateModulePrices,
		validateModuleTiers,
		validateModuleDelivery,
	}
}

// Validate checks the catalog invariants: exactly one package per tier
// with a non-negative price, and well-formed modules.
func (c *Catalog) Validate() error {
	for _, tier := range []types.Tier{types.TierBasic, types.TierPremium, types.TierEnterprise} {
		p, ok := c.packages[tier]
		if !ok {
			return fmt.Errorf("catalog: missing base package for tier %s", tier)
		}
		if p.Price < 0 {
			return fmt.Errorf("catalog: package %s: negative price %d", tier, p.Price)
		}
		if p.Name == "" {
			return fmt.Errorf("catalog: package %s: empty name", tier)
		}
	}

	rules := moduleRules()
	for _, id := range c.order {
		m := c.modules[id]
		for _, rule := range rules {
			if err := rule(&m); err != nil {
				return fmt.Errorf("catalog: module %s: %w", id, err)
			}
		}
	}
	return nil
}

func validateModuleIdentity(m *types.PricingModule) error {
	if m.ID == "" {
		return fmt.Errorf("empty id")
	}
	if m.Name == "" {
		return fmt.Errorf("empty name")
	}
	switch m.Category {
	case types.CategoryMedia, types.CategoryLegal, types.CategoryMarketing,
		types.CategoryService, types.CategoryTechnical:
	default:
		return fmt.Errorf("unknown category %q", m.Category)
	}
	return nil
}

func validateModulePrices(m *types.PricingModule) error {
	if m.BasePrice < 0 {
		return fmt.Errorf("negative base price %d", m.BasePrice)
	}
	if m.PricePerSqm < 0 {
		return fmt.Errorf("negative per-sqm price %d", m.PricePerSqm)
	}
	return nil
}

func validateModuleTiers(m *types.PricingModule) error {
	for _, t := range m.RequiredForTier {
		if !t.Valid() {
			return fmt.Errorf("unknown tier %q in required_for_tier", t)
		}
	}
	return nil
}

func validateModuleDelivery(m *types.PricingModule) error {
	if m.EstimatedDeliveryDays < 0 {
		return fmt.Errorf("negative delivery days %d", m.EstimatedDeliveryDays)
	}
	return nil
}
