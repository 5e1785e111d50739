package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"immoquote/core/catalog"
	"immoquote/core/types"
	"immoquote/store"
)

func newTestServer(t *testing.T, qs store.QuoteStore) *Server {
	t.Helper()
	return NewServerWithStore("test", catalog.Default(), zap.NewNop(), qs)
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestHandlePreview_BasicScenario(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doJSON(t, s, http.MethodPost, "/v1/quotes/preview", map[string]any{
		"tier": "BASIC",
		"property_specs": map[string]any{
			"type":   "WOHNUNG",
			"region": "DEUTSCHLAND",
		},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var calc types.PricingCalculation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &calc))
	assert.Equal(t, "99900", calc.Subtotal.String())
	assert.Equal(t, "18981", calc.Tax.String())
	assert.Equal(t, "118881", calc.Total.String())
	assert.Equal(t, types.CurrencyEUR, calc.Currency)
	assert.Empty(t, calc.Adjustments)
}

func TestHandlePreview_InvalidJSON(t *testing.T) {
	s := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/quotes/preview", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlePreview_MissingFields(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doJSON(t, s, http.MethodPost, "/v1/quotes/preview", map[string]any{
		"tier": "BASIC",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlePreview_UnknownTier(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doJSON(t, s, http.MethodPost, "/v1/quotes/preview", map[string]any{
		"tier": "PLATINUM",
		"property_specs": map[string]any{
			"type":   "WOHNUNG",
			"region": "DEUTSCHLAND",
		},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNKNOWN_TIER")
}

func TestQuotePersistenceRoundTrip(t *testing.T) {
	s := newTestServer(t, store.NewMemoryStore())

	rec := doJSON(t, s, http.MethodPost, "/v1/quotes", map[string]any{
		"tier":      "PREMIUM",
		"reference": "Leopoldstraße 12",
		"selected_modules": []map[string]any{
			{"module_id": "drone-photography"},
		},
		"property_specs": map[string]any{
			"type":   "HAUS",
			"region": "MUENCHEN",
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created QuoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.QuoteNumber)
	assert.Equal(t, "345915.745", created.Calculation.Total.String())

	// Fetch it back
	rec = doJSON(t, s, http.MethodGet, "/v1/quotes/"+created.QuoteNumber, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched store.Quote
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, types.TierPremium, fetched.Tier)
	assert.Equal(t, store.StatusDraft, fetched.Status)

	// And list it
	rec = doJSON(t, s, http.MethodGet, "/v1/quotes?tier=PREMIUM&search=leopold", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list store.QuoteList
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, 1, list.Total)
}

func TestQuoteEndpointsWithoutStore(t *testing.T) {
	s := newTestServer(t, nil)

	for _, tc := range []struct {
		method string
		path   string
		body   any
	}{
		{http.MethodPost, "/v1/quotes", map[string]any{"tier": "BASIC"}},
		{http.MethodGet, "/v1/quotes", nil},
		{http.MethodGet, "/v1/quotes/Q-12345678", nil},
	} {
		rec := doJSON(t, s, tc.method, tc.path, tc.body)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code, "%s %s", tc.method, tc.path)
	}
}

func TestGetQuote_NotFound(t *testing.T) {
	s := newTestServer(t, store.NewMemoryStore())

	rec := doJSON(t, s, http.MethodGet, "/v1/quotes/Q-DEADBEEF", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleRecommendations(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doJSON(t, s, http.MethodGet,
		"/v1/recommendations?tier=BASIC&property_type=GEWERBE&region=MUENCHEN", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp RecommendationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	ids := make([]string, 0, len(resp.Modules))
	for _, m := range resp.Modules {
		ids = append(ids, m.ID)
	}
	assert.Contains(t, ids, catalog.ModuleLegalReview)

	rec = doJSON(t, s, http.MethodGet, "/v1/recommendations?tier=GOLD", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCatalogEndpoints(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doJSON(t, s, http.MethodGet, "/v1/catalog/packages", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var packages []types.BasePackage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &packages))
	assert.Len(t, packages, 3)

	rec = doJSON(t, s, http.MethodGet, "/v1/catalog/modules", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var modules []types.PricingModule
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &modules))
	assert.NotEmpty(t, modules)
}

func TestHealthAndVersion(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doJSON(t, s, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/version", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "test")
}
