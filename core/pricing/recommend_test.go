package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"immoquote/core/catalog"
	"immoquote/core/types"
	"immoquote/internal/errors"
)

func moduleIDs(modules []types.PricingModule) []string {
	ids := make([]string, len(modules))
	for i, m := range modules {
		ids[i] = m.ID
	}
	return ids
}

func TestRecommend_EnterpriseGetsAllRecommendedAndRequired(t *testing.T) {
	cat := catalog.Default()
	rec := NewRecommender(cat)

	modules, err := rec.Recommend(types.TierEnterprise, types.PropertySpecs{
		Type:   types.PropertyWohnung,
		Region: types.RegionDeutschland,
	})
	require.NoError(t, err)

	ids := moduleIDs(modules)
	for _, m := range cat.Modules() {
		if m.Recommended || m.RequiredFor(types.TierEnterprise) {
			assert.Contains(t, ids, m.ID)
		}
	}

	// No duplicates
	seen := make(map[string]int)
	for _, id := range ids {
		seen[id]++
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, "module %s appears %d times", id, n)
	}
}

func TestRecommend_BasicUsesAllowList(t *testing.T) {
	rec := NewRecommender(catalog.Default())

	modules, err := rec.Recommend(types.TierBasic, types.PropertySpecs{
		Type:   types.PropertyWohnung,
		Region: types.RegionDeutschland,
	})
	require.NoError(t, err)

	ids := moduleIDs(modules)
	assert.ElementsMatch(t, []string{
		catalog.ModuleProfessionalPhotography,
		catalog.ModuleFloorPlan,
		catalog.ModuleEnergyCertificate,
	}, ids)
}

func TestRecommend_PremiumDeniesEnterpriseGradeModules(t *testing.T) {
	rec := NewRecommender(catalog.Default())

	modules, err := rec.Recommend(types.TierPremium, types.PropertySpecs{
		Type:   types.PropertyWohnung,
		Region: types.RegionDeutschland,
	})
	require.NoError(t, err)

	ids := moduleIDs(modules)
	assert.NotContains(t, ids, catalog.ModuleAnalyticsDashboard)
	assert.Contains(t, ids, catalog.ModuleDronePhotography)
	assert.Contains(t, ids, catalog.ModuleSocialMediaCampaign)
}

func TestRecommend_CommercialPropertyAddsLegalReview(t *testing.T) {
	rec := NewRecommender(catalog.Default())

	modules, err := rec.Recommend(types.TierBasic, types.PropertySpecs{
		Type:   types.PropertyGewerbe,
		Region: types.RegionMuenchen,
	})
	require.NoError(t, err)
	assert.Contains(t, moduleIDs(modules), catalog.ModuleLegalReview)
}

func TestRecommend_LuxuryPropertyAddsDronePhotographyOnce(t *testing.T) {
	rec := NewRecommender(catalog.Default())

	// PREMIUM already recommends drone photography; the luxury append
	// must not duplicate it.
	modules, err := rec.Recommend(types.TierPremium, types.PropertySpecs{
		Type:        types.PropertyHaus,
		Region:      types.RegionMuenchen,
		LuxuryClass: types.LuxuryLuxury,
	})
	require.NoError(t, err)

	count := 0
	for _, id := range moduleIDs(modules) {
		if id == catalog.ModuleDronePhotography {
			count++
		}
	}
	assert.Equal(t, 1, count)

	// BASIC does not allow drone photography, but luxury adds it
	modules, err = rec.Recommend(types.TierBasic, types.PropertySpecs{
		Type:        types.PropertyHaus,
		Region:      types.RegionMuenchen,
		LuxuryClass: types.LuxuryLuxury,
	})
	require.NoError(t, err)
	assert.Contains(t, moduleIDs(modules), catalog.ModuleDronePhotography)
}

func TestRecommend_UnknownTierFails(t *testing.T) {
	rec := NewRecommender(catalog.Default())

	_, err := rec.Recommend("GOLD", types.PropertySpecs{})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeUnknownTier), "got %v", err)
}
