package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=store.go -destination=mock_store.go -package=domain

// RideStore is the read-only query surface over published rides.
// Implementations must honor the eligibility invariants (free seats, not
// cancelled) and compare cities on their normalized form. Origin and destiny
// arguments are always already normalized by the caller.
type RideStore interface {
	// SearchExact returns the page of rides departing on the given day,
	// with the optional filters and ordering applied. Total reflects the
	// filtered match count before pagination truncation.
	SearchExact(ctx context.Context, origin, destiny string, day time.Time, page Page, filters *Filters, order OrderOption) (SearchResult, error)

	// SearchFuture returns up to limit rides departing on or after from,
	// in canonical departure order. No filters apply.
	SearchFuture(ctx context.Context, origin, destiny string, from time.Time, limit int) ([]Ride, error)

	// FiltersMeta aggregates the observed filter ranges over the candidate
	// set for the given day, re-applying filters when non-nil. An empty
	// candidate set yields zero ranges, not an error.
	FiltersMeta(ctx context.Context, origin, destiny string, day time.Time, filters *Filters) (FiltersMeta, error)
}
