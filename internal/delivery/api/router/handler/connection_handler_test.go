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
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type connectionHandlerFixtures struct {
	echo         *echo.Echo
	handler      *ConnectionHandler
	connectionUC *mockUsecase.MockConnectionUsecase
	userID       uuid.UUID
}

func createTestConnectionHandler(t *testing.T) connectionHandlerFixtures {
	connectionUC := mockUsecase.NewMockConnectionUsecase(t)

	e := echo.New()
	e.Validator = validator.New()

	return connectionHandlerFixtures{
		echo: e,
		handler: NewConnectionHandler(ConnectionHandlerParams{
			ConnectionUC: connectionUC,
			Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		}),
		connectionUC: connectionUC,
		userID:       uuid.New(),
	}
}

// newContext builds an authenticated echo context for the request.
func (fx connectionHandlerFixtures) newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	c := fx.echo.NewContext(req, rec)
	c.Set(deliverycontext.KeyUserID, fx.userID)

	return c, rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Error.Code
}

func TestConnectionHandler_CreateConnection(t *testing.T) {
	fx := createTestConnectionHandler(t)

	connID := uuid.New()
	fx.connectionUC.EXPECT().
		CreateConnection(mock.Anything, fx.userID, &usecase.CreateConnectionInput{
			ConsumerNumber:   "170012345678",
			ElectricityBoard: "MSEDCL",
			ConnectionType:   entity.ConnectionTypeDomestic,
			PhaseType:        entity.PhaseTypeSingle,
			SanctionedLoadKW: 3,
		}).
		Return(&entity.ConsumerConnection{
			ID:               connID,
			UserID:           fx.userID,
			ConsumerNumber:   "170012345678",
			ElectricityBoard: "MSEDCL",
			IsPrimary:        true,
		}, nil)

	c, rec := fx.newContext(http.MethodPost, "/api/v1/connections",
		`{"consumer_number":"170012345678","electricity_board":"MSEDCL","connection_type":"domestic","phase_type":"single","sanctioned_load_kw":3}`)

	require.NoError(t, fx.handler.CreateConnection(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Data ConnectionView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, connID, body.Data.ID)
	assert.True(t, body.Data.IsPrimary)
}

func TestConnectionHandler_CreateConnection_ValidationError(t *testing.T) {
	fx := createTestConnectionHandler(t)

	c, rec := fx.newContext(http.MethodPost, "/api/v1/connections", `{"consumer_number":"1","connection_type":"residential"}`)

	require.NoError(t, fx.handler.CreateConnection(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), decodeError(t, rec))
	assert.Contains(t, rec.Body.String(), "electricity_board is required")
}

func TestConnectionHandler_CreateConnection_Duplicate(t *testing.T) {
	fx := createTestConnectionHandler(t)

	fx.connectionUC.EXPECT().
		CreateConnection(mock.Anything, fx.userID, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrConnectionAlreadyExists, "failed to create connection"))

	c, rec := fx.newContext(http.MethodPost, "/api/v1/connections", `{"consumer_number":"1","electricity_board":"MSEDCL"}`)

	require.NoError(t, fx.handler.CreateConnection(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, domainerrors.ErrConnectionAlreadyExists.ErrorCode(), decodeError(t, rec))
}

func TestConnectionHandler_ListConnections_InternalErrorPropagates(t *testing.T) {
	fx := createTestConnectionHandler(t)

	fx.connectionUC.EXPECT().
		ListConnections(mock.Anything, fx.userID).
		Return([]*entity.ConsumerConnection{}, errors.New("db down"))

	c, _ := fx.newContext(http.MethodGet, "/api/v1/connections", "")

	assert.Error(t, fx.handler.ListConnections(c))
}

func TestConnectionHandler_SetPrimaryConnection(t *testing.T) {
	fx := createTestConnectionHandler(t)

	connID := uuid.New()
	fx.connectionUC.EXPECT().SetPrimaryConnection(mock.Anything, fx.userID, connID).Return(nil)

	c, rec := fx.newContext(http.MethodPut, "/", "")
	c.SetParamNames("id")
	c.SetParamValues(connID.String())

	require.NoError(t, fx.handler.SetPrimaryConnection(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Primary connection updated")
}

func TestConnectionHandler_DeleteConnection_BadID(t *testing.T) {
	fx := createTestConnectionHandler(t)

	c, rec := fx.newContext(http.MethodDelete, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, fx.handler.DeleteConnection(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConnectionHandler_ConnectionQRCode(t *testing.T) {
	fx := createTestConnectionHandler(t)

	connID := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}
	fx.connectionUC.EXPECT().ConnectionQRCode(mock.Anything, fx.userID, connID).Return(png, nil)

	c, rec := fx.newContext(http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues(connID.String())

	require.NoError(t, fx.handler.ConnectionQRCode(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestConnectionHandler_RequiresUser(t *testing.T) {
	fx := createTestConnectionHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/connections", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	require.NoError(t, fx.handler.ListConnections(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
