// Package api - Thin HTTP layer over the pricing engine
// The API is only responsible for input ingestion, engine orchestration
// and output serialization. It never performs pricing logic.
package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"immoquote/core/catalog"
	"immoquote/core/pricing"
	"immoquote/core/types"
	"immoquote/internal/errors"
	"immoquote/store"
)

// Server is the API server
type Server struct {
	catalog     *catalog.Catalog
	calculator  *pricing.Calculator
	recommender *pricing.Recommender
	store       store.QuoteStore
	log         *zap.Logger
	version     string
	router      chi.Router
}

// NewServer creates an API server without a quote store; quote
// persistence endpoints respond 503.
func NewServer(version string, cat *catalog.Catalog, log *zap.Logger) *Server {
	return NewServerWithStore(version, cat, log, nil)
}

// NewServerWithStore creates an API server backed by a quote store.
// The store may be nil.
func NewServerWithStore(version string, cat *catalog.Catalog, log *zap.Logger, qs store.QuoteStore) *Server {
	s := &Server{
		catalog:     cat,
		calculator:  pricing.NewCalculator(cat, pricing.WithLogger(log)),
		recommender: pricing.NewRecommender(cat),
		store:       qs,
		log:         log,
		version:     version,
	}
	s.router = s.routes()
	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/health", s.handleHealth)
	r.Get("/version", s.handleVersion)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/quotes/preview", s.handlePreview)
		r.Post("/quotes", s.handleCreateQuote)
		r.Get("/quotes", s.handleListQuotes)
		r.Get("/quotes/{number}", s.handleGetQuote)
		r.Get("/recommendations", s.handleRecommendations)
		r.Get("/catalog/packages", s.handlePackages)
		r.Get("/catalog/modules", s.handleModules)
	})
	return r
}

// handlePreview handles POST /v1/quotes/preview
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeQuoteRequest(w, r)
	if !ok {
		return
	}

	calc, err := s.calculator.Calculate(req.Tier, req.SelectedModules, req.PropertySpecs)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, calc, http.StatusOK)
}

// handleCreateQuote handles POST /v1/quotes: preview plus hand-off to
// the quote store
func (s *Server) handleCreateQuote(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, "STORE_UNAVAILABLE", "quote store not configured", http.StatusServiceUnavailable)
		return
	}

	req, ok := s.decodeQuoteRequest(w, r)
	if !ok {
		return
	}

	calc, err := s.calculator.Calculate(req.Tier, req.SelectedModules, req.PropertySpecs)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	number, err := s.store.Create(r.Context(), store.Quote{
		Tier:        req.Tier,
		Reference:   req.Reference,
		Calculation: *calc,
	})
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	s.writeJSON(w, QuoteResponse{QuoteNumber: number, Calculation: calc}, http.StatusCreated)
}

// handleListQuotes handles GET /v1/quotes
func (s *Server) handleListQuotes(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, "STORE_UNAVAILABLE", "quote store not configured", http.StatusServiceUnavailable)
		return
	}

	q := r.URL.Query()
	filter := store.ListFilter{
		Status: store.QuoteStatus(q.Get("status")),
		Tier:   types.Tier(q.Get("tier")),
		Search: q.Get("search"),
	}
	page := store.Page{
		Page:  intQuery(q.Get("page"), 1),
		Limit: intQuery(q.Get("limit"), 20),
	}

	list, err := s.store.List(r.Context(), filter, page)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, list, http.StatusOK)
}

// handleGetQuote handles GET /v1/quotes/{number}
func (s *Server) handleGetQuote(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, "STORE_UNAVAILABLE", "quote store not configured", http.StatusServiceUnavailable)
		return
	}

	quote, err := s.store.Get(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, quote, http.StatusOK)
}

// handleRecommendations handles GET /v1/recommendations
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	tier := types.Tier(q.Get("tier"))
	specs := types.PropertySpecs{
		Type:        types.PropertyType(q.Get("property_type")),
		Region:      types.Region(q.Get("region")),
		LuxuryClass: types.LuxuryClass(q.Get("luxury_class")),
	}

	modules, err := s.recommender.Recommend(tier, specs)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, RecommendationResponse{Tier: tier, Modules: modules}, http.StatusOK)
}

// handlePackages handles GET /v1/catalog/packages
func (s *Server) handlePackages(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.catalog.Packages(), http.StatusOK)
}

// handleModules handles GET /v1/catalog/modules
func (s *Server) handleModules(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.catalog.Modules(), http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"version": s.version}, http.StatusOK)
}

func (s *Server) decodeQuoteRequest(w http.ResponseWriter, r *http.Request) (*QuoteRequest, bool) {
	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return nil, false
	}
	if err := validateQuoteRequest(&req); err != nil {
		s.writeDomainError(w, err)
		return nil, false
	}
	return &req, true
}

// writeDomainError maps a domain error type to an HTTP status
func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	t := errors.TypeOf(err)
	status := http.StatusInternalServerError
	switch t {
	case errors.TypeValidation, errors.TypeUnknownTier:
		status = http.StatusBadRequest
	case errors.TypeNotFound:
		status = http.StatusNotFound
	}
	s.writeError(w, string(t), err.Error(), status)
}

func (s *Server) writeJSON(w http.ResponseWriter, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, status int) {
	s.writeJSON(w, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	}, status)
}

// requestLogger logs one line per request
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Info("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.String("request_id", middleware.GetReqID(r.Context())))
	})
}

func intQuery(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
