package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridepool/ride-search-service/internal/domain"
)

// newQueryContext builds an echo context for a GET with the given query params.
func newQueryContext(t *testing.T, params url.Values) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/rides/search?"+params.Encode(), nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestParseSearchRequest(t *testing.T) {
	t.Run("full query parses", func(t *testing.T) {
		params := url.Values{}
		params.Set("originCity", "Paris")
		params.Set("destinyCity", "Lyon")
		params.Set("date[year]", "2026")
		params.Set("date[month]", "6")
		params.Set("date[day]", "15")
		params.Set("page", "2")
		params.Set("orderBy", "PRICE_ASC")

		req := ParseSearchRequest(newQueryContext(t, params))

		assert.Equal(t, "Paris", req.OriginCity)
		assert.Equal(t, "Lyon", req.DestinyCity)
		require.NotNil(t, req.Date)
		assert.Equal(t, domain.DateStruct{Year: 2026, Month: 6, Day: 15}, *req.Date)
		assert.Equal(t, 2, req.Page)
		assert.Equal(t, "PRICE_ASC", req.OrderBy)
		assert.Nil(t, req.Filters)
	})

	t.Run("absent date stays nil", func(t *testing.T) {
		params := url.Values{}
		params.Set("originCity", "Paris")
		params.Set("destinyCity", "Lyon")

		req := ParseSearchRequest(newQueryContext(t, params))

		assert.Nil(t, req.Date)
	})

	t.Run("partial date keeps zeroed components", func(t *testing.T) {
		params := url.Values{}
		params.Set("date[year]", "2026")

		req := ParseSearchRequest(newQueryContext(t, params))

		require.NotNil(t, req.Date)
		assert.Equal(t, 2026, req.Date.Year)
		assert.Equal(t, 0, req.Date.Month)
		assert.Equal(t, 0, req.Date.Day)
	})

	t.Run("unparsable date component treated as absent", func(t *testing.T) {
		params := url.Values{}
		params.Set("date[year]", "twenty-six")

		req := ParseSearchRequest(newQueryContext(t, params))

		assert.Nil(t, req.Date)
	})

	t.Run("page defaults to one", func(t *testing.T) {
		req := ParseSearchRequest(newQueryContext(t, url.Values{}))

		assert.Equal(t, 1, req.Page)
	})

	t.Run("unparsable page keeps default", func(t *testing.T) {
		params := url.Values{}
		params.Set("page", "first")

		req := ParseSearchRequest(newQueryContext(t, params))

		assert.Equal(t, 1, req.Page)
	})

	t.Run("filters parse from bracketed params", func(t *testing.T) {
		params := url.Values{}
		params.Set("filters[electricOnly]", "true")
		params.Set("filters[priceMin]", "10.5")
		params.Set("filters[priceMax]", "40")
		params.Set("filters[durationMin]", "90")
		params.Set("filters[durationMax]", "300")
		params.Set("filters[ratingMin]", "4")

		req := ParseSearchRequest(newQueryContext(t, params))

		require.NotNil(t, req.Filters)
		require.NotNil(t, req.Filters.ElectricOnly)
		assert.True(t, *req.Filters.ElectricOnly)
		assert.Equal(t, 10.5, *req.Filters.PriceMin)
		assert.Equal(t, 40.0, *req.Filters.PriceMax)
		assert.Equal(t, 90, *req.Filters.DurationMin)
		assert.Equal(t, 300, *req.Filters.DurationMax)
		assert.Equal(t, 4.0, *req.Filters.RatingMin)
	})

	t.Run("no filter params yields nil filters", func(t *testing.T) {
		req := ParseSearchRequest(newQueryContext(t, url.Values{}))

		assert.Nil(t, req.Filters)
	})

	t.Run("unparsable filter param treated as unset", func(t *testing.T) {
		params := url.Values{}
		params.Set("filters[priceMax]", "cheap")

		req := ParseSearchRequest(newQueryContext(t, params))

		assert.Nil(t, req.Filters)
	})

	t.Run("zero filter bound is kept as a bound", func(t *testing.T) {
		params := url.Values{}
		params.Set("filters[priceMin]", "0")

		req := ParseSearchRequest(newQueryContext(t, params))

		require.NotNil(t, req.Filters)
		require.NotNil(t, req.Filters.PriceMin)
		assert.Equal(t, 0.0, *req.Filters.PriceMin)
	})
}

func TestSearchRidesRequest_ToDomainQuery(t *testing.T) {
	priceMax := 30.0
	req := &SearchRidesRequest{
		OriginCity:  "Paris",
		DestinyCity: "Lyon",
		Date:        &domain.DateStruct{Year: 2026, Month: 6, Day: 15},
		Page:        3,
		Filters:     &domain.Filters{PriceMax: &priceMax},
		OrderBy:     "DURATION_ASC",
	}

	query := req.ToDomainQuery()

	assert.Equal(t, "Paris", query.OriginCity)
	assert.Equal(t, "Lyon", query.DestinyCity)
	assert.Equal(t, req.Date, query.Date)
	assert.Equal(t, 3, query.Page)
	assert.Equal(t, req.Filters, query.Filters)
	assert.Equal(t, "DURATION_ASC", query.OrderBy)
}
