// Package store - In-memory quote store
package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"immoquote/internal/errors"
)

// MemoryStore is a process-local QuoteStore for tests and demos
type MemoryStore struct {
	mu     sync.RWMutex
	quotes map[string]Quote
	now    func() time.Time
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		quotes: make(map[string]Quote),
		now:    time.Now,
	}
}

// Create implements QuoteStore
func (s *MemoryStore) Create(_ context.Context, quote Quote) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quote.QuoteNumber == "" {
		quote.QuoteNumber = newQuoteNumber()
	}
	if quote.Status == "" {
		quote.Status = StatusDraft
	}
	if quote.CreatedAt.IsZero() {
		quote.CreatedAt = s.now()
	}
	if _, exists := s.quotes[quote.QuoteNumber]; exists {
		return "", errors.Newf(errors.TypeInternal, "quote %s already exists", quote.QuoteNumber)
	}
	s.quotes[quote.QuoteNumber] = quote
	return quote.QuoteNumber, nil
}

// List implements QuoteStore
func (s *MemoryStore) List(_ context.Context, filter ListFilter, page Page) (QuoteList, error) {
	s.mu.RLock()
	matched := make([]Quote, 0, len(s.quotes))
	for _, q := range s.quotes {
		if matches(q, filter) {
			matched = append(matched, q)
		}
	}
	s.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if page.Limit <= 0 {
		page.Limit = 20
	}
	if page.Page <= 0 {
		page.Page = 1
	}

	total := len(matched)
	start := (page.Page - 1) * page.Limit
	if start > total {
		start = total
	}
	end := start + page.Limit
	if end > total {
		end = total
	}

	return QuoteList{
		Quotes: matched[start:end],
		Total:  total,
		Page:   page.Page,
		Limit:  page.Limit,
	}, nil
}

// Get implements QuoteStore
func (s *MemoryStore) Get(_ context.Context, quoteNumber string) (Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q, ok := s.quotes[quoteNumber]
	if !ok {
		return Quote{}, errors.Newf(errors.TypeNotFound, "quote %s not found", quoteNumber).
			WithContext("quote_number", quoteNumber)
	}
	return q, nil
}

func matches(q Quote, f ListFilter) bool {
	if f.Status != "" && q.Status != f.Status {
		return false
	}
	if f.Tier != "" && q.Tier != f.Tier {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(q.QuoteNumber), needle) &&
			!strings.Contains(strings.ToLower(q.Reference), needle) {
			return false
		}
	}
	return true
}

// newQuoteNumber derives a short human-friendly quote number
func newQuoteNumber() string {
	id := uuid.NewString()
	return "Q-" + strings.ToUpper(id[:8])
}
