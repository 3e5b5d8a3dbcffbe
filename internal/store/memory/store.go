// Package memory provides an in-memory implementation of the ride store.
// It backs tests, integration runs and the seed-file development mode with
// the same query semantics as the Postgres store.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ridepool/ride-search-service/internal/domain"
	"github.com/ridepool/ride-search-service/internal/infrastructure/textutil"
	"github.com/ridepool/ride-search-service/internal/infrastructure/timeutil"
)

// Store is an in-memory domain.RideStore.
// Rides and passenger counts are held separately so available seats are
// always derived, never stored.
type Store struct {
	mu         sync.RWMutex
	rides      []domain.Ride
	passengers map[int64]int
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		passengers: make(map[int64]int),
	}
}

// Add registers a ride. SeatsAvailable on the input is ignored; it is
// derived from SeatsOffered and the booked passenger count on every read.
func (s *Store) Add(ride domain.Ride) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rides = append(s.rides, ride)
}

// Book records booked passengers on a ride, reducing its derived seats.
func (s *Store) Book(rideID int64, passengers int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.passengers[rideID] += passengers
}

// SearchExact implements domain.RideStore.
func (s *Store) SearchExact(ctx context.Context, origin, destiny string, day time.Time, page domain.Page, filters *domain.Filters, order domain.OrderOption) (domain.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.SearchResult{}, domain.NewStoreError("searchExact", err)
	}

	start := timeutil.StartOfDay(day)
	end := timeutil.EndOfDay(day)

	matches := s.candidates(origin, destiny, func(r domain.Ride) bool {
		return !r.DepartureDate.Before(start) && !r.DepartureDate.After(end)
	})

	if filters != nil {
		kept := matches[:0]
		for _, r := range matches {
			if filters.MatchesRide(r) {
				kept = append(kept, r)
			}
		}
		matches = kept
	}

	sortRides(matches, order)
	total := len(matches)

	if page.Offset >= len(matches) {
		return domain.SearchResult{Rides: []domain.Ride{}, Total: total}, nil
	}
	matches = matches[page.Offset:]
	if page.Limit > 0 && len(matches) > page.Limit {
		matches = matches[:page.Limit]
	}

	return domain.SearchResult{Rides: matches, Total: total}, nil
}

// SearchFuture implements domain.RideStore.
func (s *Store) SearchFuture(ctx context.Context, origin, destiny string, from time.Time, limit int) ([]domain.Ride, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewStoreError("searchFuture", err)
	}

	matches := s.candidates(origin, destiny, func(r domain.Ride) bool {
		return !r.DepartureDate.Before(from)
	})

	sortRides(matches, domain.OrderDefault)
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

// FiltersMeta implements domain.RideStore.
func (s *Store) FiltersMeta(ctx context.Context, origin, destiny string, day time.Time, filters *domain.Filters) (domain.FiltersMeta, error) {
	if err := ctx.Err(); err != nil {
		return domain.FiltersMeta{}, domain.NewStoreError("filtersMeta", err)
	}

	start := timeutil.StartOfDay(day)
	end := timeutil.EndOfDay(day)

	candidates := s.candidates(origin, destiny, func(r domain.Ride) bool {
		return !r.DepartureDate.Before(start) && !r.DepartureDate.After(end)
	})

	var meta domain.FiltersMeta
	first := true
	for _, r := range candidates {
		if filters != nil && !filters.MatchesRide(r) {
			continue
		}

		price := r.PricePerSeat
		duration := r.DurationMinutes()
		if first {
			meta.Price = domain.FloatRange{Min: price, Max: price}
			meta.Duration = domain.IntRange{Min: duration, Max: duration}
			first = false
		} else {
			if price < meta.Price.Min {
				meta.Price.Min = price
			}
			if price > meta.Price.Max {
				meta.Price.Max = price
			}
			if duration < meta.Duration.Min {
				meta.Duration.Min = duration
			}
			if duration > meta.Duration.Max {
				meta.Duration.Max = duration
			}
		}

		if r.Vehicle.Electric {
			meta.Electric = true
		}
		if r.Driver.AvgRating == 0 {
			meta.HasZeroRatedDriver = true
		}
	}

	return meta, nil
}

// candidates returns eligible rides for the normalized city pair, with
// derived seat counts, filtered by the given date predicate.
func (s *Store) candidates(origin, destiny string, dateOK func(domain.Ride) bool) []domain.Ride {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Ride, 0, len(s.rides))
	for _, r := range s.rides {
		r.SeatsAvailable = r.SeatsOffered - s.passengers[r.ID]
		if !r.Bookable() {
			continue
		}
		if textutil.Normalize(r.OriginCity) != origin || textutil.Normalize(r.DestinyCity) != destiny {
			continue
		}
		if !dateOK(r) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// sortRides orders rides in place. Every ordering is applied on top of the
// canonical departure order so result pages stay deterministic.
func sortRides(rides []domain.Ride, order domain.OrderOption) {
	sort.Slice(rides, func(i, j int) bool {
		return rides[i].DepartureAt().Before(rides[j].DepartureAt())
	})

	switch order {
	case domain.OrderPriceAsc:
		sort.SliceStable(rides, func(i, j int) bool {
			return rides[i].PricePerSeat < rides[j].PricePerSeat
		})
	case domain.OrderPriceDesc:
		sort.SliceStable(rides, func(i, j int) bool {
			return rides[i].PricePerSeat > rides[j].PricePerSeat
		})
	case domain.OrderDurationAsc:
		sort.SliceStable(rides, func(i, j int) bool {
			return rides[i].DurationMinutes() < rides[j].DurationMinutes()
		})
	case domain.OrderDurationDesc:
		sort.SliceStable(rides, func(i, j int) bool {
			return rides[i].DurationMinutes() > rides[j].DurationMinutes()
		})
	}
}

// Ensure Store implements domain.RideStore at compile time.
var _ domain.RideStore = (*Store)(nil)
