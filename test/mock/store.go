// Package mock provides test doubles for the ride search system.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific responses).
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/ridepool/ride-search-service/internal/domain"
)

// Store is a configurable mock implementation of domain.RideStore.
// It supports configurable delays, errors, and responses for testing
// various scenarios including cancellation and store outages.
type Store struct {
	exact   domain.SearchResult
	future  []domain.Ride
	meta    domain.FiltersMeta
	err     error
	delay   time.Duration
	calls   map[string]int
	mu      sync.Mutex
}

// NewStore creates a new mock store.
// The store is configured using the builder pattern methods.
func NewStore() *Store {
	return &Store{
		calls: make(map[string]int),
	}
}

// WithExact configures the result returned by SearchExact.
func (s *Store) WithExact(result domain.SearchResult) *Store {
	s.exact = result
	return s
}

// WithFuture configures the rides returned by SearchFuture.
func (s *Store) WithFuture(rides []domain.Ride) *Store {
	s.future = rides
	return s
}

// WithMeta configures the metadata returned by FiltersMeta.
func (s *Store) WithMeta(meta domain.FiltersMeta) *Store {
	s.meta = meta
	return s
}

// WithError configures every method to return the given error.
func (s *Store) WithError(err error) *Store {
	s.err = err
	return s
}

// WithDelay configures each method to wait before responding.
// This is useful for testing context cancellation.
func (s *Store) WithDelay(d time.Duration) *Store {
	s.delay = d
	return s
}

// SearchExact implements domain.RideStore.SearchExact.
func (s *Store) SearchExact(ctx context.Context, origin, destiny string, day time.Time, page domain.Page, filters *domain.Filters, order domain.OrderOption) (domain.SearchResult, error) {
	s.record("SearchExact")

	if err := s.wait(ctx); err != nil {
		return domain.SearchResult{}, err
	}
	if s.err != nil {
		return domain.SearchResult{}, s.err
	}
	return s.exact, nil
}

// SearchFuture implements domain.RideStore.SearchFuture.
func (s *Store) SearchFuture(ctx context.Context, origin, destiny string, from time.Time, limit int) ([]domain.Ride, error) {
	s.record("SearchFuture")

	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	if s.err != nil {
		return nil, s.err
	}

	rides := s.future
	if limit > 0 && len(rides) > limit {
		rides = rides[:limit]
	}
	return rides, nil
}

// FiltersMeta implements domain.RideStore.FiltersMeta.
func (s *Store) FiltersMeta(ctx context.Context, origin, destiny string, day time.Time, filters *domain.Filters) (domain.FiltersMeta, error) {
	s.record("FiltersMeta")

	if err := s.wait(ctx); err != nil {
		return domain.FiltersMeta{}, err
	}
	if s.err != nil {
		return domain.FiltersMeta{}, s.err
	}
	return s.meta, nil
}

// CallCount returns the number of times the named method was called.
// This is useful for verifying store interactions.
func (s *Store) CallCount(method string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[method]
}

// Reset resets all call counts to zero.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = make(map[string]int)
}

// record tracks a method invocation.
func (s *Store) record(method string) {
	s.mu.Lock()
	s.calls[method]++
	s.mu.Unlock()
}

// wait applies the configured delay while respecting cancellation.
func (s *Store) wait(ctx context.Context) error {
	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.delay):
		}
	}
	return ctx.Err()
}

// Ensure Store implements domain.RideStore at compile time.
var _ domain.RideStore = (*Store)(nil)
