// Package http provides the HTTP handler layer for the ride search API.
// It handles query parsing, validation, response formatting, and error mapping.
package http

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ridepool/ride-search-service/internal/domain"
)

// SearchRidesRequest carries the parsed query parameters of a search call.
// The frontend date picker sends the date split across date[year],
// date[month] and date[day]; filters arrive the same bracketed way.
type SearchRidesRequest struct {
	// OriginCity is the requested departure city
	OriginCity string `query:"originCity"`

	// DestinyCity is the requested arrival city
	DestinyCity string `query:"destinyCity"`

	// Date is nil when no date component was sent at all
	Date *domain.DateStruct

	// Page is the 1-based result page (default 1)
	Page int `validate:"gte=0"`

	// Filters holds the optional filter bounds, nil pointers meaning unset
	Filters *domain.Filters

	// OrderBy is the raw ordering key
	OrderBy string `query:"orderBy"`
}

// ParseSearchRequest reads a SearchRidesRequest from the query string.
// Query params are strings; numeric params that do not parse are treated as
// unset rather than coerced to a zero sentinel.
func ParseSearchRequest(c echo.Context) *SearchRidesRequest {
	req := &SearchRidesRequest{
		OriginCity:  c.QueryParam("originCity"),
		DestinyCity: c.QueryParam("destinyCity"),
		OrderBy:     c.QueryParam("orderBy"),
		Page:        1,
	}

	if page, ok := intParam(c, "page"); ok {
		req.Page = page
	}

	req.Date = parseDateStruct(c)
	req.Filters = parseFilters(c)

	return req
}

// ToDomainQuery converts the request to a domain search query.
func (r *SearchRidesRequest) ToDomainQuery() domain.SearchQuery {
	return domain.SearchQuery{
		OriginCity:  r.OriginCity,
		DestinyCity: r.DestinyCity,
		Date:        r.Date,
		Page:        r.Page,
		Filters:     r.Filters,
		OrderBy:     r.OrderBy,
	}
}

// parseDateStruct assembles the bracketed date components.
// When none of the components is present the date is absent (nil); when only
// some are present the struct is returned with zeroed fields and fails date
// validation downstream.
func parseDateStruct(c echo.Context) *domain.DateStruct {
	year, yearOK := intParam(c, "date[year]")
	month, monthOK := intParam(c, "date[month]")
	day, dayOK := intParam(c, "date[day]")

	if !yearOK && !monthOK && !dayOK {
		return nil
	}
	return &domain.DateStruct{Year: year, Month: month, Day: day}
}

// parseFilters assembles the bracketed filter params into a filter set,
// or nil when no filter param was sent.
func parseFilters(c echo.Context) *domain.Filters {
	var f domain.Filters
	found := false

	if raw := c.QueryParam("filters[electricOnly]"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			f.ElectricOnly = &v
			found = true
		}
	}
	if v, ok := floatParam(c, "filters[priceMin]"); ok {
		f.PriceMin = &v
		found = true
	}
	if v, ok := floatParam(c, "filters[priceMax]"); ok {
		f.PriceMax = &v
		found = true
	}
	if v, ok := intParam(c, "filters[durationMin]"); ok {
		f.DurationMin = &v
		found = true
	}
	if v, ok := intParam(c, "filters[durationMax]"); ok {
		f.DurationMax = &v
		found = true
	}
	if v, ok := floatParam(c, "filters[ratingMin]"); ok {
		f.RatingMin = &v
		found = true
	}

	if !found {
		return nil
	}
	return &f
}

// intParam reads an integer query param; ok is false when absent or unparsable.
func intParam(c echo.Context, name string) (int, bool) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

// floatParam reads a float query param; ok is false when absent or unparsable.
func floatParam(c echo.Context, name string) (float64, bool) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
