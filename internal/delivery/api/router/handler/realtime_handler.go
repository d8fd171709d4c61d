package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"urjabandhu/config"
	"urjabandhu/internal/delivery/api/response"
	deliverycontext "urjabandhu/internal/delivery/context"
	"urjabandhu/internal/usecase"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	wsWriteWait      = 10 * time.Second
	wsPongWait       = 60 * time.Second
	wsPingPeriod     = wsPongWait * 9 / 10
	wsMaxMessageSize = 512
)

// RealtimeHandlerParams holds dependencies for RealtimeHandler, injected by Fx.
type RealtimeHandlerParams struct {
	fx.In

	AnalyticsUC usecase.AnalyticsUsecase
	Config      *config.Config
	Logger      *slog.Logger
}

// RealtimeHandler serves the live consumption feed.
type RealtimeHandler struct {
	analyticsUC usecase.AnalyticsUsecase
	interval    time.Duration
	upgrader    websocket.Upgrader
	logger      *slog.Logger
}

// NewRealtimeHandler is the constructor for RealtimeHandler.
func NewRealtimeHandler(params RealtimeHandlerParams) *RealtimeHandler {
	return &RealtimeHandler{
		analyticsUC: params.AnalyticsUC,
		interval:    params.Config.Realtime.Interval,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Clients authenticate with a bearer token, not cookies.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger: params.Logger,
	}
}

// Snapshot handles GET /api/v1/realtime/snapshot for polling clients.
func (h *RealtimeHandler) Snapshot(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	snapshot, err := h.analyticsUC.Snapshot(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, snapshot)
}

// Stream handles GET /api/v1/realtime/ws. It sends a snapshot immediately and
// then every interval until the client goes away.
func (h *RealtimeHandler) Stream(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// The upgrader has already written the HTTP error.
		logger.Warn("Websocket upgrade failed", slog.Any("error", err))

		return nil
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	go h.readPump(conn, cancel)

	logger.Info("Realtime feed connected")
	h.writePump(ctx, conn, userID, logger)
	logger.Info("Realtime feed disconnected")

	return nil
}

// readPump drains client frames so pongs and close frames are processed.
// Any read error ends the stream.
func (h *RealtimeHandler) readPump(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()

	conn.SetReadLimit(wsMaxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *RealtimeHandler) writePump(ctx context.Context, conn *websocket.Conn, userID uuid.UUID, logger *slog.Logger) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()
	pinger := time.NewTicker(wsPingPeriod)
	defer pinger.Stop()

	if !h.pushSnapshot(ctx, conn, userID, logger) {
		return
	}

	for {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(wsWriteWait))

			return
		case <-ticker.C:
			if !h.pushSnapshot(ctx, conn, userID, logger) {
				return
			}
		case <-pinger.C:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// pushSnapshot reports false when the connection is no longer writable.
// Snapshot errors are logged and the tick is skipped.
func (h *RealtimeHandler) pushSnapshot(ctx context.Context, conn *websocket.Conn, userID uuid.UUID, logger *slog.Logger) bool {
	snapshot, err := h.analyticsUC.Snapshot(ctx, userID)
	if err != nil {
		if ctx.Err() != nil {
			return false
		}
		logger.Warn("Realtime snapshot failed", slog.Any("error", err))

		return true
	}

	_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
	if err := conn.WriteJSON(snapshot); err != nil {
		if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
			logger.Debug("Realtime write failed", slog.Any("error", err))
		}

		return false
	}

	return true
}
