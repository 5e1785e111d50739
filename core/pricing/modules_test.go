package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"immoquote/core/catalog"
	"immoquote/core/types"
)

func mustModule(t *testing.T, id string) types.PricingModule {
	t.Helper()
	m, ok := catalog.Default().Module(id)
	require.True(t, ok, "module %s missing from catalog", id)
	return m
}

func TestPriceModule_QuantityLinearity(t *testing.T) {
	m := mustModule(t, catalog.ModuleDronePhotography)
	specs := types.PropertySpecs{Type: types.PropertyHaus, Region: types.RegionBayern}

	for qty := 1; qty <= 5; qty++ {
		line := priceModule(m, qty, specs)
		assert.Equal(t, qty, line.Quantity)
		assert.True(t, line.TotalPrice.Equal(line.UnitPrice.Mul(decimal.NewFromInt(int64(qty)))),
			"qty %d: total %s unit %s", qty, line.TotalPrice, line.UnitPrice)
	}
}

func TestPriceModule_ZeroQuantityDefaultsToOne(t *testing.T) {
	m := mustModule(t, catalog.ModuleFloorPlan)
	line := priceModule(m, 0, types.PropertySpecs{Type: types.PropertyWohnung, Region: types.RegionDeutschland})
	assert.Equal(t, 1, line.Quantity)
	assert.True(t, line.TotalPrice.Equal(line.UnitPrice))
}

func TestPriceModule_AreaComponentRequiresLivingArea(t *testing.T) {
	m := mustModule(t, catalog.ModuleVirtualTour) // 49900 + 150/sqm

	// Without a living area only the base price applies
	line := priceModule(m, 1, types.PropertySpecs{Type: types.PropertyHaus, Region: types.RegionBayern})
	assert.True(t, line.UnitPrice.Equal(dec("49900")))
	assert.Empty(t, line.Note)

	// With a living area the per-sqm component is added and noted
	line = priceModule(m, 1, types.PropertySpecs{
		Type: types.PropertyHaus, Region: types.RegionBayern, LivingArea: 120,
	})
	assert.True(t, line.UnitPrice.Equal(dec("67900")), "got %s", line.UnitPrice)
	assert.NotEmpty(t, line.Note)
}

func TestPriceModule_AreaPricingWithFractionalArea(t *testing.T) {
	m := mustModule(t, catalog.ModuleFloorPlan) // 14900 + 50/sqm
	line := priceModule(m, 2, types.PropertySpecs{
		Type: types.PropertyWohnung, Region: types.RegionDeutschland, LivingArea: 87.5,
	})
	// 14900 + 50*87.5 = 19275 per unit
	assert.True(t, line.UnitPrice.Equal(dec("19275")), "got %s", line.UnitPrice)
	assert.True(t, line.TotalPrice.Equal(dec("38550")), "got %s", line.TotalPrice)
}

func TestPriceModule_NoAreaPricingIgnoresLivingArea(t *testing.T) {
	m := mustModule(t, catalog.ModuleSocialMediaCampaign)
	line := priceModule(m, 1, types.PropertySpecs{
		Type: types.PropertyHaus, Region: types.RegionBayern, LivingArea: 500,
	})
	assert.True(t, line.UnitPrice.Equal(dec("59900")))
	assert.Empty(t, line.Note)
}
