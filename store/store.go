// Package store defines the quote store contract the engine hands its
// results to. The pricing engine never persists anything itself; a
// durable implementation lives with the surrounding backoffice. The
// in-memory implementation here backs tests and single-process demos.
package store

import (
	"context"
	"time"

	"immoquote/core/types"
)

// QuoteStatus tracks a stored quote through its sales lifecycle
type QuoteStatus string

const (
	StatusDraft    QuoteStatus = "DRAFT"
	StatusSent     QuoteStatus = "SENT"
	StatusAccepted QuoteStatus = "ACCEPTED"
	StatusRejected QuoteStatus = "REJECTED"
	StatusExpired  QuoteStatus = "EXPIRED"
)

// Quote is one persisted pricing calculation
type Quote struct {
	// QuoteNumber uniquely identifies the quote
	QuoteNumber string `json:"quote_number"`

	// Status is the sales lifecycle state
	Status QuoteStatus `json:"status"`

	// Tier is the quoted service tier
	Tier types.Tier `json:"tier"`

	// Reference is free text identifying the deal, e.g. the property
	// address; searched by List
	Reference string `json:"reference,omitempty"`

	// Calculation is the engine output the quote snapshots
	Calculation types.PricingCalculation `json:"calculation"`

	// CreatedAt is the persistence timestamp
	CreatedAt time.Time `json:"created_at"`
}

// ListFilter narrows a quote listing; zero values match everything
type ListFilter struct {
	Status QuoteStatus
	Tier   types.Tier
	Search string
}

// Page is a pagination request; Page starts at 1
type Page struct {
	Page  int
	Limit int
}

// QuoteList is one page of quotes
type QuoteList struct {
	Quotes []Quote `json:"quotes"`
	Total  int     `json:"total"`
	Page   int     `json:"page"`
	Limit  int     `json:"limit"`
}

// QuoteStore persists and lists quotes
type QuoteStore interface {
	// Create persists a quote and returns its quote number
	Create(ctx context.Context, quote Quote) (string, error)

	// List returns quotes matching the filter, newest first
	List(ctx context.Context, filter ListFilter, page Page) (QuoteList, error)

	// Get returns the quote with the given number
	Get(ctx context.Context, quoteNumber string) (Quote, error)
}
