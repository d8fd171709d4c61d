package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "urjabandhu/internal/delivery/context"
	domainerrors "urjabandhu/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-42")

	return c, rec
}

func TestSuccess(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Success(c, http.StatusCreated, map[string]int{"n": 1}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"n":1},"meta":{"request_id":"req-42"}}`, rec.Body.String())
}

func TestError_DetailsVisibility(t *testing.T) {
	tests := []struct {
		status      int
		details     any
		wantDetails bool
	}{
		{status: http.StatusBadRequest, details: "name is required", wantDetails: true},
		{status: http.StatusBadRequest, details: ""},
		{status: http.StatusUnauthorized, details: "expired"},
		{status: http.StatusForbidden, details: "not yours"},
		{status: http.StatusInternalServerError, details: "stack"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			c, rec := newContext()

			require.NoError(t, Error(c, tt.status, "CODE", "msg", tt.details))

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "req-42", body.Meta.RequestID)
			if tt.wantDetails {
				assert.Equal(t, tt.details, body.Error.Details)
			} else {
				assert.Nil(t, body.Error.Details)
			}
		})
	}
}

func TestHandleAppError(t *testing.T) {
	t.Run("client error rendered", func(t *testing.T) {
		c, rec := newContext()

		require.NoError(t, HandleAppError(c, errors.Wrap(domainerrors.ErrDeviceNotFound, "get")))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "DEVICE_NOT_FOUND")
	})

	t.Run("other errors returned", func(t *testing.T) {
		c, rec := newContext()
		cause := errors.New("db down")

		err := HandleAppError(c, cause)

		assert.ErrorIs(t, err, cause)
		assert.False(t, c.Response().Committed)
		assert.Zero(t, rec.Body.Len())
	})
}
