package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"immoquote/core/types"
)

func seedQuote(t *testing.T, s *MemoryStore, tier types.Tier, status QuoteStatus, ref string) string {
	t.Helper()
	number, err := s.Create(context.Background(), Quote{
		Status:    status,
		Tier:      tier,
		Reference: ref,
	})
	require.NoError(t, err)
	return number
}

func TestMemoryStore_CreateAssignsNumberAndDefaults(t *testing.T) {
	s := NewMemoryStore()

	number, err := s.Create(context.Background(), Quote{Tier: types.TierBasic})
	require.NoError(t, err)
	assert.Regexp(t, `^Q-[0-9A-F]{8}$`, number)

	q, err := s.Get(context.Background(), number)
	require.NoError(t, err)
	assert.Equal(t, StatusDraft, q.Status)
	assert.False(t, q.CreatedAt.IsZero())
}

func TestMemoryStore_GetUnknownNumber(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.Get(context.Background(), "Q-MISSING1")
	assert.Error(t, err)
}

func TestMemoryStore_ListFilters(t *testing.T) {
	s := NewMemoryStore()
	seedQuote(t, s, types.TierBasic, StatusDraft, "Leopoldstraße 12, München")
	seedQuote(t, s, types.TierPremium, StatusSent, "Gewerbepark Ost")
	seedQuote(t, s, types.TierPremium, StatusAccepted, "Seestraße 3")

	list, err := s.List(context.Background(), ListFilter{Tier: types.TierPremium}, Page{})
	require.NoError(t, err)
	assert.Equal(t, 2, list.Total)

	list, err = s.List(context.Background(), ListFilter{Status: StatusSent}, Page{})
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "Gewerbepark Ost", list.Quotes[0].Reference)

	list, err = s.List(context.Background(), ListFilter{Search: "seestraße"}, Page{})
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)

	list, err = s.List(context.Background(), ListFilter{}, Page{})
	require.NoError(t, err)
	assert.Equal(t, 3, list.Total)
}

func TestMemoryStore_ListPaginatesNewestFirst(t *testing.T) {
	s := NewMemoryStore()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	s.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}

	for i := 0; i < 5; i++ {
		seedQuote(t, s, types.TierBasic, StatusDraft, fmt.Sprintf("ref-%d", i))
	}

	page1, err := s.List(context.Background(), ListFilter{}, Page{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 5, page1.Total)
	require.Len(t, page1.Quotes, 2)
	assert.Equal(t, "ref-4", page1.Quotes[0].Reference)

	page3, err := s.List(context.Background(), ListFilter{}, Page{Page: 3, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page3.Quotes, 1)
	assert.Equal(t, "ref-0", page3.Quotes[0].Reference)

	beyond, err := s.List(context.Background(), ListFilter{}, Page{Page: 9, Limit: 2})
	require.NoError(t, err)
	assert.Empty(t, beyond.Quotes)
}
