package http

import (
	"github.com/ridepool/ride-search-service/internal/domain"
	"github.com/ridepool/ride-search-service/internal/usecase"
)

// SearchResponseDTO is the wire shape of a search outcome.
type SearchResponseDTO struct {
	// Status is the terminal outcome class
	Status domain.Status `json:"status"`

	// Rides is the presented result list, always present (possibly empty)
	Rides []usecase.PresentedRide `json:"rides"`

	// Pagination is present on exact matches only
	Pagination *domain.Pagination `json:"pagination,omitempty"`

	// TotalResults is the unfiltered match count for the requested day
	TotalResults *int `json:"totalResults,omitempty"`

	// FiltersMeta carries the observed ranges on a filtered match, or the
	// echo of the requested bounds when the filtered search found nothing
	FiltersMeta any `json:"filtersMeta,omitempty"`

	// FiltersMetaGlobal is the observed range over the unfiltered candidate set
	FiltersMetaGlobal *domain.FiltersMeta `json:"filtersMetaGlobal,omitempty"`
}

// ToSearchResponseDTO converts a use case search response to its wire shape.
func ToSearchResponseDTO(resp *usecase.SearchResponse) *SearchResponseDTO {
	if resp == nil {
		return nil
	}

	rides := resp.Rides
	if rides == nil {
		rides = []usecase.PresentedRide{}
	}

	dto := &SearchResponseDTO{
		Status:            resp.Status,
		Rides:             rides,
		Pagination:        resp.Pagination,
		TotalResults:      resp.TotalResults,
		FiltersMetaGlobal: resp.FiltersMetaGlobal,
	}

	switch {
	case resp.FiltersMeta != nil:
		dto.FiltersMeta = resp.FiltersMeta
	case resp.RequestedFilters != nil:
		dto.FiltersMeta = resp.RequestedFilters
	}

	return dto
}
