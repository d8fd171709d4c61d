package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"urjabandhu/config"
	"urjabandhu/internal/domain/constants"
	"urjabandhu/internal/domain/entity"
	domainerrors "urjabandhu/internal/domain/errors"
	"urjabandhu/internal/domain/service"
	mockUsecase "urjabandhu/internal/mocks/usecase"
	"urjabandhu/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T) (*PushHandler, *mockUsecase.MockAutomationUsecase) {
	automationUC := mockUsecase.NewMockAutomationUsecase(t)

	cfg := &config.Config{}
	cfg.Env.Env = constants.EnvDevelop

	h := NewPushHandler(PushHandlerParams{
		Config:       cfg,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		AutomationUC: automationUC,
	})

	return h, automationUC
}

func pushBody(t *testing.T, event any, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg pushEnvelope
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "1"
	msg.Subscription = "projects/p/subscriptions/automation"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func toggleEvent(userID, deviceID, ruleID uuid.UUID) *service.AutomationEvent {
	return &service.AutomationEvent{
		RequestID: "req-from-event",
		EventID:   "evt-1",
		UserID:    userID.String(),
		RuleID:    ruleID.String(),
		DeviceID:  deviceID.String(),
		Action: entity.RuleAction{
			Type:       entity.ActionTypeDeviceControl,
			Parameters: map[string]any{"state": "toggle"},
		},
	}
}

func TestPushHandler_HandlePush_Executes(t *testing.T) {
	h, automationUC := newTestPushHandler(t)

	userID, deviceID, ruleID := uuid.New(), uuid.New(), uuid.New()

	automationUC.EXPECT().
		ExecuteDeviceAction(mock.Anything, userID, mock.MatchedBy(func(in *usecase.ExecuteActionInput) bool {
			return in.DeviceID == deviceID && in.RuleID != nil && *in.RuleID == ruleID &&
				in.Action.Type == entity.ActionTypeDeviceControl
		})).
		Return(&entity.AutomationLog{Status: entity.LogStatusSuccess}, nil)

	rec := servePush(h, pushBody(t, toggleEvent(userID, deviceID, ruleID), map[string]string{"request_id": "req-attr"}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_RetryableFailure(t *testing.T) {
	h, automationUC := newTestPushHandler(t)

	userID, deviceID, ruleID := uuid.New(), uuid.New(), uuid.New()
	automationUC.EXPECT().
		ExecuteDeviceAction(mock.Anything, userID, mock.Anything).
		Return(&entity.AutomationLog{Status: entity.LogStatusFailed}, errors.New("connection refused"))

	rec := servePush(h, pushBody(t, toggleEvent(userID, deviceID, ruleID), nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_HandlePush_PermanentFailure(t *testing.T) {
	h, automationUC := newTestPushHandler(t)

	userID, deviceID, ruleID := uuid.New(), uuid.New(), uuid.New()
	automationUC.EXPECT().
		ExecuteDeviceAction(mock.Anything, userID, mock.Anything).
		Return(&entity.AutomationLog{Status: entity.LogStatusFailed}, errors.Wrap(domainerrors.ErrDeviceNotFound, deviceID.String()))

	rec := servePush(h, pushBody(t, toggleEvent(userID, deviceID, ruleID), nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_Malformed(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "not json", body: "{", want: http.StatusBadRequest},
		{name: "data not base64", body: `{"message":{"data":"%%%"}}`, want: http.StatusBadRequest},
		{
			name: "payload not an event",
			body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("[1,2]")) + `"}}`,
			want: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestPushHandler(t)

			rec := servePush(h, tt.body)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestPushHandler_HandlePush_BadUserIDIsDropped(t *testing.T) {
	h, _ := newTestPushHandler(t)

	event := toggleEvent(uuid.New(), uuid.New(), uuid.New())
	event.UserID = "not-a-uuid"

	rec := servePush(h, pushBody(t, event, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_RequiresTokenOutsideDevelop(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = "production"

	h := NewPushHandler(PushHandlerParams{
		Config:       cfg,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		AutomationUC: mockUsecase.NewMockAutomationUsecase(t),
	})

	rec := servePush(h, pushBody(t, toggleEvent(uuid.New(), uuid.New(), uuid.New()), nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPushEnvelope_RequestID(t *testing.T) {
	var env pushEnvelope
	event := &service.AutomationEvent{RequestID: "from-event"}

	assert.Equal(t, "from-event", env.requestID(t.Context(), event))

	env.Message.Attributes = map[string]string{"request_id": "from-attr"}
	assert.Equal(t, "from-attr", env.requestID(t.Context(), event))

	generated := (&pushEnvelope{}).requestID(t.Context(), &service.AutomationEvent{})
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)
}

func TestPushVerifier_Verify(t *testing.T) {
	tests := []struct {
		name         string
		header       string
		payload      *idtoken.Payload
		validateErr  error
		wantErr      string
		wantAudience string
	}{
		{name: "missing header", wantErr: "missing bearer token"},
		{name: "basic auth", header: "Basic abc", wantErr: "missing bearer token"},
		{name: "validation fails", header: "Bearer t", validateErr: errors.New("expired"), wantErr: "invalid push token"},
		{
			name:    "foreign issuer",
			header:  "Bearer t",
			payload: &idtoken.Payload{Issuer: "https://evil.example"},
			wantErr: "unexpected issuer",
		},
		{
			name:    "unverified email",
			header:  "Bearer t",
			payload: &idtoken.Payload{Issuer: "accounts.google.com", Claims: map[string]any{"email_verified": false}},
			wantErr: "not verified",
		},
		{
			name:         "valid",
			header:       "Bearer t",
			payload:      &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}},
			wantAudience: "http://worker.internal/push",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotAudience string
			v := &pushVerifier{validate: func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
				assert.Equal(t, "t", token)
				gotAudience = audience

				return tt.payload, tt.validateErr
			}}

			req := httptest.NewRequest(http.MethodPost, "http://worker.internal/push", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			err := v.verify(req)

			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAudience, gotAudience)
		})
	}
}

func TestPushVerifier_ConfiguredAudience(t *testing.T) {
	v := &pushVerifier{audience: "https://worker.example/push"}
	req := httptest.NewRequest(http.MethodPost, "http://10.0.0.1/push", nil)

	assert.Equal(t, "https://worker.example/push", v.audienceFor(req))
}
