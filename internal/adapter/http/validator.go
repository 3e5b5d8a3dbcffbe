package http

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RequestValidator adapts go-playground/validator to echo's Validator
// interface. Register it on the echo instance so handlers can call
// c.Validate on parsed requests.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates a RequestValidator with the default rules.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{
		validate: validator.New(),
	}
}

// Validate implements echo.Validator.
func (v *RequestValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// Ensure RequestValidator implements echo.Validator at compile time.
var _ echo.Validator = (*RequestValidator)(nil)
