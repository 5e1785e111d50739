package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"immoquote/core/types"
	"immoquote/internal/errors"
)

func TestDefault_IsValidAndComplete(t *testing.T) {
	cat := Default()

	require.NoError(t, cat.Validate())

	packages := cat.Packages()
	require.Len(t, packages, 3)
	assert.Equal(t, types.TierBasic, packages[0].Tier)
	assert.Equal(t, types.TierPremium, packages[1].Tier)
	assert.Equal(t, types.TierEnterprise, packages[2].Tier)
	assert.Equal(t, int64(99900), packages[0].Price)
	assert.Equal(t, int64(179900), packages[1].Price)

	assert.NotEmpty(t, cat.Modules())
}

func TestPackage_UnknownTier(t *testing.T) {
	cat := Default()

	_, err := cat.Package("PLATINUM")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeUnknownTier), "got %v", err)
}

func TestModule_Lookup(t *testing.T) {
	cat := Default()

	m, ok := cat.Module(ModuleDronePhotography)
	require.True(t, ok)
	assert.Equal(t, int64(39900), m.BasePrice)
	assert.False(t, m.HasAreaPricing())

	_, ok = cat.Module("no-such-module")
	assert.False(t, ok)
}

func TestModules_DeclarationOrderIsStable(t *testing.T) {
	a := Default().Modules()
	b := Default().Modules()
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].ID, b[i].ID)
	}
}

func TestValidate_RejectsBrokenEntries(t *testing.T) {
	cases := []struct {
		name   string
		module types.PricingModule
	}{
		{
			name:   "empty id",
			module: types.PricingModule{Name: "x", Category: types.CategoryMedia},
		},
		{
			name:   "unknown category",
			module: types.PricingModule{ID: "x", Name: "x", Category: "OTHER"},
		},
		{
			name:   "negative base price",
			module: types.PricingModule{ID: "x", Name: "x", Category: types.CategoryMedia, BasePrice: -1},
		},
		{
			name: "unknown required tier",
			module: types.PricingModule{
				ID: "x", Name: "x", Category: types.CategoryMedia,
				RequiredForTier: []types.Tier{"GOLD"},
			},
		},
		{
			name: "negative delivery days",
			module: types.PricingModule{
				ID: "x", Name: "x", Category: types.CategoryMedia,
				EstimatedDeliveryDays: -3,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cat := New()
			registerPackages(cat)
			cat.RegisterModule(tc.module)
			assert.Error(t, cat.Validate())
		})
	}
}

func TestValidate_RequiresAllThreePackages(t *testing.T) {
	cat := New()
	cat.RegisterPackage(types.BasePackage{Tier: types.TierBasic, Name: "Basic", Price: 1})
	assert.Error(t, cat.Validate())
}
