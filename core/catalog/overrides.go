// Package catalog - Pricing overrides
// Sales occasionally re-prices packages or modules without a release.
// An optional HCL file, applied once at startup before the catalog is
// put into service, overrides individual catalog prices:
//
//	package "PREMIUM" {
//	  price = 189900
//	}
//
//	module "drone-photography" {
//	  base_price    = 42900
//	  price_per_sqm = 0
//	}
package catalog

import (
	"github.com/hashicorp/hcl/v2/hclsimple"

	"immoquote/core/types"
	"immoquote/internal/errors"
)

// Overrides is the decoded pricing overrides file
type Overrides struct {
	Packages []PackageOverride `hcl:"package,block"`
	Modules  []ModuleOverride  `hcl:"module,block"`
}

// PackageOverride re-prices one base package
type PackageOverride struct {
	Tier  string `hcl:"tier,label"`
	Price int64  `hcl:"price"`
}

// ModuleOverride re-prices one module; absent attributes keep the
// compiled-in value
type ModuleOverride struct {
	ID          string `hcl:"id,label"`
	BasePrice   *int64 `hcl:"base_price,optional"`
	PricePerSqm *int64 `hcl:"price_per_sqm,optional"`
}

// LoadOverrides parses an HCL pricing overrides file
func LoadOverrides(path string) (*Overrides, error) {
	var o Overrides
	if err := hclsimple.DecodeFile(path, nil, &o); err != nil {
		return nil, errors.Wrap(errors.TypeConfig, "parse pricing overrides", err).
			WithContext("file", path)
	}
	return &o, nil
}

// Apply rewrites catalog prices from the overrides. Every override must
// reference an existing entry and keep prices non-negative; the catalog
// is re-validated afterwards.
func (c *Catalog) Apply(o *Overrides) error {
	for _, po := range o.Packages {
		tier := types.Tier(po.Tier)
		p, ok := c.packages[tier]
		if !ok {
			return errors.Newf(errors.TypeConfig, "pricing overrides: unknown package tier %q", po.Tier)
		}
		if po.Price < 0 {
			return errors.Newf(errors.TypeConfig, "pricing overrides: package %s: negative price %d", po.Tier, po.Price)
		}
		p.Price = po.Price
		c.packages[tier] = p
	}

	for _, mo := range o.Modules {
		m, ok := c.modules[mo.ID]
		if !ok {
			return errors.Newf(errors.TypeConfig, "pricing overrides: unknown module %q", mo.ID)
		}
		if mo.BasePrice != nil {
			m.BasePrice = *mo.BasePrice
		}
		if mo.PricePerSqm != nil {
			m.PricePerSqm = *mo.PricePerSqm
		}
		c.modules[mo.ID] = m
	}

	if err := c.Validate(); err != nil {
		return errors.Wrap(errors.TypeConfig, "pricing overrides produced an invalid catalog", err)
	}
	return nil
}

// ApplyOverridesFile loads and applies a pricing overrides file
func (c *Catalog) ApplyOverridesFile(path string) error {
	o, err := LoadOverrides(path)
	if err != nil {
		return err
	}
	return c.Apply(o)
}
