package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/ridepool/ride-search-service/internal/adapter/http/response"
	"github.com/ridepool/ride-search-service/internal/domain"
	"github.com/ridepool/ride-search-service/internal/usecase"
)

// RideHandler handles HTTP requests for ride-related endpoints.
type RideHandler struct {
	useCase usecase.RideSearchUseCase
}

// NewRideHandler creates a new RideHandler with the given use case.
func NewRideHandler(uc usecase.RideSearchUseCase) *RideHandler {
	return &RideHandler{
		useCase: uc,
	}
}

// SearchRides handles GET /api/v1/rides/search
//
// @Summary Search for rides
// @Description Search published carpool rides by origin, destination and date, with optional filters and ordering
// @Tags rides
// @Produce json
// @Param originCity query string true "Origin city"
// @Param destinyCity query string true "Destination city"
// @Param date[year] query int true "Departure year"
// @Param date[month] query int true "Departure month (1-12)"
// @Param date[day] query int true "Departure day"
// @Param page query int false "1-based result page"
// @Param orderBy query string false "PRICE_ASC | PRICE_DESC | DURATION_ASC | DURATION_DESC"
// @Success 200 {object} SearchResponseDTO
// @Failure 400 {object} response.ErrorDetail "Malformed query"
// @Failure 503 {object} response.ErrorDetail "Ride store unavailable"
// @Router /api/v1/rides/search [get]
func (h *RideHandler) SearchRides(c echo.Context) error {
	req := ParseSearchRequest(c)

	// Transport-shape validation; semantic validation belongs to the use
	// case, which answers with a status rather than an HTTP error.
	if err := c.Validate(req); err != nil {
		return response.InvalidRequestBody(c)
	}

	result, err := h.useCase.Search(c.Request().Context(), req.ToDomainQuery())
	if err != nil {
		return h.handleError(c, err)
	}

	return response.SearchResults(c, ToSearchResponseDTO(result))
}

// handleError maps infrastructure errors to appropriate HTTP responses.
func (h *RideHandler) handleError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrStoreUnavailable) {
		return response.ServiceUnavailable(c)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	return response.InternalServerError(c)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *RideHandler) Health(c echo.Context) error {
	return response.Health(c)
}
