package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"urjabandhu/internal/delivery/api/validator"
	deliverycontext "urjabandhu/internal/delivery/context"
	"urjabandhu/internal/domain/entity"
	domainerrors "urjabandhu/internal/domain/errors"
	mockUsecase "urjabandhu/internal/mocks/usecase"
	"urjabandhu/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deviceHandlerFixtures struct {
	echo     *echo.Echo
	handler  *DeviceHandler
	deviceUC *mockUsecase.MockDeviceUsecase
	userID   uuid.UUID
}

func createTestDeviceHandler(t *testing.T) deviceHandlerFixtures {
	deviceUC := mockUsecase.NewMockDeviceUsecase(t)

	e := echo.New()
	e.Validator = validator.New()

	return deviceHandlerFixtures{
		echo: e,
		handler: NewDeviceHandler(DeviceHandlerParams{
			DeviceUC:     deviceUC,
			AutomationUC: mockUsecase.NewMockAutomationUsecase(t),
			DetectionUC:  mockUsecase.NewMockDetectionUsecase(t),
			Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		}),
		deviceUC: deviceUC,
		userID:   uuid.New(),
	}
}

func (fx deviceHandlerFixtures) newContext(method, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/api/v1/devices", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	c := fx.echo.NewContext(req, rec)
	c.Set(deliverycontext.KeyUserID, fx.userID)

	return c, rec
}

func TestDeviceHandler_CreateDevice_PowerRatingForms(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "quoted", body: `{"name":"AC","power_rating":"1500"}`, want: "1500"},
		{name: "number", body: `{"name":"AC","power_rating":1500}`, want: "1500"},
		{name: "fraction", body: `{"name":"Bulb","power_rating":7.5}`, want: "7.5"},
		{name: "null", body: `{"name":"AC","power_rating":null}`, want: ""},
		{name: "absent", body: `{"name":"AC"}`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeviceHandler(t)

			deviceID := uuid.New()
			fx.deviceUC.EXPECT().
				CreateDevice(mock.Anything, fx.userID, mock.MatchedBy(func(in *usecase.CreateDeviceInput) bool {
					return in.PowerRating == tt.want
				})).
				Return(&entity.Device{ID: deviceID, UserID: fx.userID, Name: "AC", PowerRating: 1500}, nil)

			c, rec := fx.newContext(http.MethodPost, tt.body)

			require.NoError(t, fx.handler.CreateDevice(c))
			assert.Equal(t, http.StatusCreated, rec.Code)

			var body struct {
				Data DeviceView `json:"data"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, deviceID, body.Data.ID)
			assert.Equal(t, 1500.0, body.Data.PowerRating)
		})
	}
}

func TestDeviceHandler_CreateDevice_PowerRatingWrongType(t *testing.T) {
	fx := createTestDeviceHandler(t)

	c, rec := fx.newContext(http.MethodPost, `{"name":"AC","power_rating":true}`)

	require.NoError(t, fx.handler.CreateDevice(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), decodeError(t, rec))
}

func TestDeviceHandler_UpdateDevice_NumericPowerRating(t *testing.T) {
	fx := createTestDeviceHandler(t)

	deviceID := uuid.New()
	fx.deviceUC.EXPECT().
		UpdateDevice(mock.Anything, fx.userID, deviceID, mock.MatchedBy(func(in *usecase.UpdateDeviceInput) bool {
			return in.PowerRating != nil && *in.PowerRating == "60" && in.Name == nil
		})).
		Return(&entity.Device{ID: deviceID, UserID: fx.userID, PowerRating: 60}, nil)

	c, rec := fx.newContext(http.MethodPut, `{"power_rating":60}`)
	c.SetParamNames("id")
	c.SetParamValues(deviceID.String())

	require.NoError(t, fx.handler.UpdateDevice(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPowerRating_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		raw     string
		want    PowerRating
		wantErr bool
	}{
		{raw: `"1500"`, want: "1500"},
		{raw: `" 60 "`, want: " 60 "},
		{raw: `1500`, want: "1500"},
		{raw: `1e3`, want: "1e3"},
		{raw: `null`, want: ""},
		{raw: `true`, wantErr: true},
		{raw: `[1]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var got PowerRating
			err := json.Unmarshal([]byte(tt.raw), &got)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
