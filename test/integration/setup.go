// Package integration provides helpers and integration tests for the ride
// search system. Integration tests verify that components work together
// correctly: HTTP handlers, the search use case and the in-memory store.
package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/ridepool/ride-search-service/internal/adapter/http"
	"github.com/ridepool/ride-search-service/internal/domain"
	"github.com/ridepool/ride-search-service/internal/infrastructure/timeutil"
	"github.com/ridepool/ride-search-service/internal/store/memory"
	"github.com/ridepool/ride-search-service/internal/usecase"
)

// TestNow is the frozen instant integration tests run at.
const TestNow = "2026-06-01T10:00:00Z"

// TestServer wraps an Echo instance and provides helper methods for
// integration testing.
type TestServer struct {
	Echo  *echo.Echo
	Store *memory.Store
}

// NewTestServer wires a complete stack over an empty in-memory store with a
// clock frozen at TestNow.
func NewTestServer() *TestServer {
	store := memory.New()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = httpAdapter.NewRequestValidator()

	presenter := usecase.NewRidePresenter(usecase.NewJPEGThumbnailer(0, 0))
	clock := timeutil.NewMockClockFromString(TestNow)
	uc := usecase.NewRideSearchUseCase(store, clock, presenter, nil)

	handler := httpAdapter.NewRideHandler(uc)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:  e,
		Store: store,
	}
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Get executes a GET request against the server.
func (ts *TestServer) Get(path string) Response {
	httpReq := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchRequest performs a ride search with the given query parameters.
func (ts *TestServer) SearchRequest(params url.Values) Response {
	return ts.Get("/api/v1/rides/search?" + params.Encode())
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Get("/health")
}

// SearchParams builds the query parameters for a plain origin/destiny/date
// search.
func SearchParams(origin, destiny string, year, month, day int) url.Values {
	params := url.Values{}
	params.Set("originCity", origin)
	params.Set("destinyCity", destiny)
	params.Set("date[year]", strconv.Itoa(year))
	params.Set("date[month]", strconv.Itoa(month))
	params.Set("date[day]", strconv.Itoa(day))
	return params
}

// ParseSearchResponse parses the response body into the wire DTO.
func (r *Response) ParseSearchResponse() (*httpAdapter.SearchResponseDTO, error) {
	var resp httpAdapter.SearchResponseDTO
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseBody parses the response body into a generic map.
func (r *Response) ParseBody() (map[string]interface{}, error) {
	var body map[string]interface{}
	if err := json.Unmarshal(r.Body, &body); err != nil {
		return nil, err
	}
	return body, nil
}

var _ domain.RideStore = (*memory.Store)(nil)
