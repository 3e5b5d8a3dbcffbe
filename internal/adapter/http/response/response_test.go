package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccess_Envelope(t *testing.T) {
	resp := Success(map[string]string{"name": "value"})

	body, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"data":{"name":"value"}}`, string(body))
}

func TestFailure_Envelope(t *testing.T) {
	resp := Failure(CodeValidationError, MsgValidationFailed, map[string]string{
		"originCity": "required",
	})

	body, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"success": false,
		"error": {
			"code": "validation_error",
			"message": "Request validation failed",
			"details": {"originCity": "required"}
		}
	}`, string(body))
}

func TestFailure_OmitsEmptyDetails(t *testing.T) {
	resp := Failure(CodeInternalError, MsgInternalError, nil)

	body, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "details")
}

func TestOK_WritesStatusAndBody(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, OK(c, Success("done")))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":"done"}`, rec.Body.String())
}

func TestCreated_WritesStatus(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Created(c, Success(nil)))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestNoContent_WritesEmptyBody(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, NoContent(c))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestJSON_PassthroughStatus(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, JSON(c, http.StatusServiceUnavailable,
		Failure(CodeServiceUnavailable, MsgServiceUnavailable, nil)))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "service_unavailable")
}
