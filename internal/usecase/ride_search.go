// Package usecase contains the business logic for ride search operations.
// It orchestrates validation, normalization, store queries and fallback logic
// into one of the terminal outcome classes.
package usecase

import (
	"context"
	"strings"

	"github.com/ridepool/ride-search-service/internal/domain"
	"github.com/ridepool/ride-search-service/internal/infrastructure/textutil"
	"github.com/ridepool/ride-search-service/internal/infrastructure/timeutil"
)

// RideSearchUseCase defines the interface for ride search operations.
type RideSearchUseCase interface {
	// Search turns a raw search query into a terminal outcome. Validation
	// failures and empty results come back as statuses; only store faults
	// surface as errors.
	Search(ctx context.Context, query domain.SearchQuery) (*SearchResponse, error)
}

// SearchResponse is the aggregated outcome of a ride search, ready for
// serialization at the transport boundary.
type SearchResponse struct {
	// Status is the terminal outcome class
	Status domain.Status

	// Rides is the presented result list, empty but non-nil on no-result outcomes
	Rides []PresentedRide

	// Pagination is set on exact matches only
	Pagination *domain.Pagination

	// TotalResults is the unfiltered match count for the requested day
	TotalResults *int

	// FiltersMeta is the observed range over the filtered candidate set
	FiltersMeta *domain.FiltersMeta

	// RequestedFilters echoes the client's bounds when a filtered search found nothing
	RequestedFilters *domain.FilterEcho

	// FiltersMetaGlobal is the observed range over the unfiltered candidate set
	FiltersMetaGlobal *domain.FiltersMeta
}

// Config contains configuration options for the use case.
type Config struct {
	PageSize    int
	FutureLimit int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		PageSize:    domain.DefaultPageSize,
		FutureLimit: domain.DefaultFutureLimit,
	}
}

// rideSearchUseCase implements RideSearchUseCase.
type rideSearchUseCase struct {
	store       domain.RideStore
	clock       timeutil.Clock
	presenter   *RidePresenter
	pageSize    int
	futureLimit int
}

// NewRideSearchUseCase creates a new RideSearchUseCase backed by the given
// store, clock and presenter. If config is nil, defaults are used.
func NewRideSearchUseCase(store domain.RideStore, clock timeutil.Clock, presenter *RidePresenter, config *Config) RideSearchUseCase {
	cfg := DefaultConfig()
	if config != nil {
		if config.PageSize > 0 {
			cfg.PageSize = config.PageSize
		}
		if config.FutureLimit > 0 {
			cfg.FutureLimit = config.FutureLimit
		}
	}

	return &rideSearchUseCase{
		store:       store,
		clock:       clock,
		presenter:   presenter,
		pageSize:    cfg.PageSize,
		futureLimit: cfg.FutureLimit,
	}
}

// Search implements RideSearchUseCase.Search.
//
// Each validation step is a hard gate: failure short-circuits with a terminal
// status and an empty ride list, never partial results.
func (uc *rideSearchUseCase) Search(ctx context.Context, query domain.SearchQuery) (*SearchResponse, error) {
	// Presence check
	if strings.TrimSpace(query.OriginCity) == "" ||
		strings.TrimSpace(query.DestinyCity) == "" ||
		query.Date == nil {
		return statusOnly(domain.StatusInvalidRequest), nil
	}

	// City validity
	if !textutil.IsValidCity(query.OriginCity) || !textutil.IsValidCity(query.DestinyCity) {
		return statusOnly(domain.StatusInvalidCity), nil
	}

	// Date validity, against the current year in the reference timezone
	currentYear := timeutil.CurrentYear(uc.clock.Now())
	if !query.Date.Validate(currentYear) {
		return statusOnly(domain.StatusInvalidDate), nil
	}

	// Normalize
	origin := textutil.Normalize(query.OriginCity)
	destiny := textutil.Normalize(query.DestinyCity)

	day, ok := query.Date.Date(currentYear, timeutil.ReferenceLocation())
	if !ok {
		// Unreachable after the date gate above; fail closed regardless.
		return statusOnly(domain.StatusInvalidRequest), nil
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	window := domain.NewPage(page, uc.pageSize)

	// Filter detection: neutral entries are dropped before anything else
	// looks at them, and ordering alone counts as an active filter.
	filters := query.Filters.Sanitize()
	order := domain.ParseOrderOption(query.OrderBy)
	hasActiveFilters := filters != nil || query.OrderBy != ""

	// The unfiltered search and its metadata always run: the response
	// reports the globally available ranges even when filters narrow the
	// result set.
	global, err := uc.store.SearchExact(ctx, origin, destiny, day, window, nil, domain.OrderDefault)
	if err != nil {
		return nil, err
	}
	metaGlobal, err := uc.store.FiltersMeta(ctx, origin, destiny, day, nil)
	if err != nil {
		return nil, err
	}

	// ---- No active filters ----
	if !hasActiveFilters {
		if len(global.Rides) > 0 {
			return &SearchResponse{
				Status: domain.StatusExactMatch,
				Rides:  uc.presenter.PresentRides(global.Rides),
				Pagination: &domain.Pagination{
					Page:         page,
					Limit:        uc.pageSize,
					TotalResults: global.Total,
				},
				TotalResults:      &global.Total,
				FiltersMetaGlobal: &metaGlobal,
			}, nil
		}

		// Future fallback starts the day after the requested date.
		future, err := uc.store.SearchFuture(ctx, origin, destiny, timeutil.NextDay(day), uc.futureLimit)
		if err != nil {
			return nil, err
		}
		if len(future) > 0 {
			return &SearchResponse{
				Status: domain.StatusFutureMatch,
				Rides:  uc.presenter.PresentRides(future),
			}, nil
		}

		return statusOnly(domain.StatusNoMatch), nil
	}

	// ---- Active filters ----
	filtered, err := uc.store.SearchExact(ctx, origin, destiny, day, window, filters, order)
	if err != nil {
		return nil, err
	}

	if len(filtered.Rides) > 0 {
		meta, err := uc.store.FiltersMeta(ctx, origin, destiny, day, filters)
		if err != nil {
			return nil, err
		}
		return &SearchResponse{
			Status: domain.StatusExactMatch,
			Rides:  uc.presenter.PresentRides(filtered.Rides),
			Pagination: &domain.Pagination{
				Page:         page,
				Limit:        uc.pageSize,
				TotalResults: filtered.Total,
			},
			TotalResults:      &global.Total,
			FiltersMeta:       &meta,
			FiltersMetaGlobal: &metaGlobal,
		}, nil
	}

	// A filtered empty day is the answer; future suggestions would not honor
	// the requested bounds, so no fallback runs here. The echo of the bounds
	// lets the client show which constraints found nothing.
	return &SearchResponse{
		Status:            domain.StatusNoMatch,
		Rides:             []PresentedRide{},
		TotalResults:      &global.Total,
		RequestedFilters:  domain.EchoFilters(filters),
		FiltersMetaGlobal: &metaGlobal,
	}, nil
}

// statusOnly builds a response carrying nothing but a terminal status.
func statusOnly(status domain.Status) *SearchResponse {
	return &SearchResponse{
		Status: status,
		Rides:  []PresentedRide{},
	}
}

// Ensure rideSearchUseCase implements RideSearchUseCase at compile time.
var _ RideSearchUseCase = (*rideSearchUseCase)(nil)
