// Package handler serves the automation worker's push endpoint.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"urjabandhu/config"
	deliverycontext "urjabandhu/internal/delivery/context"
	"urjabandhu/internal/domain/constants"
	domainerrors "urjabandhu/internal/domain/errors"
	"urjabandhu/internal/domain/service"
	"urjabandhu/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// errRetry marks failures the subscription should redeliver.
var errRetry = errors.New("retryable")

type PushHandler struct {
	verifier     *pushVerifier
	logger       *slog.Logger
	automationUC usecase.AutomationUsecase
}

type PushHandlerParams struct {
	fx.In

	Config       *config.Config
	Logger       *slog.Logger
	AutomationUC usecase.AutomationUsecase
}

// NewPushHandler enables token verification for the google provider outside
// the develop environment. Local and RabbitMQ deliveries carry no token.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		logger:       params.Logger,
		automationUC: params.AutomationUC,
	}

	ps := params.Config.PubSub
	if ps != nil && ps.Provider == constants.PubSubProviderGoogle && params.Config.Env.Env != constants.EnvDevelop {
		h.verifier = &pushVerifier{audience: ps.PushAudience, validate: idtoken.Validate}
	}

	return h
}

// HandlePush acks with 200 unless the failure is retryable, which answers 503.
// Undecodable bodies answer 400 and permanent failures are acked and logged.
func (h *PushHandler) HandlePush(c echo.Context) error {
	if h.verifier != nil {
		if err := h.verifier.verify(c.Request()); err != nil {
			h.logger.Warn("Rejected push request", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var env pushEnvelope
	if err := c.Bind(&env); err != nil {
		h.logger.Error("Undecodable push body", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}
	event, err := env.event()
	if err != nil {
		h.logger.Error("Undecodable push message", slog.String("message_id", env.Message.MessageID), slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := env.requestID(c.Request().Context(), event)
	logger := h.logger.With(slog.String("request_id", requestID), slog.String("event_id", event.EventID))
	ctx := deliverycontext.WithLogger(deliverycontext.WithRequestID(c.Request().Context(), requestID), logger)

	logger.Info("Automation event received",
		slog.String("action", string(event.Action.Type)),
		slog.String("rule_id", event.RuleID),
		slog.String("device_id", event.DeviceID),
	)

	err = h.execute(ctx, event)
	switch {
	case err == nil:
		logger.Info("Automation event done")

		return c.NoContent(http.StatusOK)
	case errors.Is(err, errRetry):
		logger.Error("Automation event failed, requesting redelivery", slog.Any("error", err))

		return c.NoContent(http.StatusServiceUnavailable)
	default:
		logger.Error("Automation event dropped", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}
}

func (h *PushHandler) execute(ctx context.Context, event *service.AutomationEvent) error {
	userID, input, err := actionInput(event)
	if err != nil {
		return err
	}

	entry, err := h.automationUC.ExecuteDeviceAction(ctx, userID, input)
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
			return err
		}

		return errors.Wrap(errRetry, err.Error())
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Debug("Automation log written",
		slog.String("status", string(entry.Status)),
		slog.Int64("ms", entry.ExecutionTimeMs),
	)

	return nil
}

// actionInput converts the wire IDs. A malformed ID never succeeds on retry.
func actionInput(event *service.AutomationEvent) (uuid.UUID, *usecase.ExecuteActionInput, error) {
	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return uuid.Nil, nil, errors.Wrap(err, "user_id")
	}

	input := &usecase.ExecuteActionInput{Action: event.Action}
	if event.DeviceID != "" {
		if input.DeviceID, err = uuid.Parse(event.DeviceID); err != nil {
			return uuid.Nil, nil, errors.Wrap(err, "device_id")
		}
	}
	if event.RuleID != "" {
		ruleID, err := uuid.Parse(event.RuleID)
		if err != nil {
			return uuid.Nil, nil, errors.Wrap(err, "rule_id")
		}
		input.RuleID = &ruleID
	}

	return userID, input, nil
}
