package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"tracenfind/config"
	deliverycontext "tracenfind/internal/delivery/context"
	"tracenfind/internal/infra/realtime"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultHeartbeatInterval = 25 * time.Second

// StreamHandlerParams holds dependencies for StreamHandler, injected by Fx.
type StreamHandlerParams struct {
	fx.In

	Hub    *realtime.Hub
	Config *config.Config
	Logger *slog.Logger
}

// StreamHandler serves the per-user server-sent event stream.
type StreamHandler struct {
	hub       *realtime.Hub
	heartbeat time.Duration
	logger    *slog.Logger
}

// NewStreamHandler is the constructor for StreamHandler
func NewStreamHandler(params StreamHandlerParams) *StreamHandler {
	heartbeat := defaultHeartbeatInterval
	if params.Config != nil && params.Config.Realtime != nil && params.Config.Realtime.HeartbeatInterval > 0 {
		heartbeat = params.Config.Realtime.HeartbeatInterval
	}

	return &StreamHandler{
		hub:       params.Hub,
		heartbeat: heartbeat,
		logger:    params.Logger,
	}
}

// Stream holds the connection open and relays badge, sound and notice
// frames until the client disconnects.
func (h *StreamHandler) Stream(c echo.Context) error {
	uid, ok := userID(c)
	if !ok {
		return missingUser(c)
	}

	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	res := c.Response()
	// The server write timeout would otherwise cut long-lived streams.
	_ = http.NewResponseController(res.Writer).SetWriteDeadline(time.Time{})

	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.Header().Set("X-Accel-Buffering", "no")
	res.WriteHeader(http.StatusOK)

	frames, cancel := h.hub.Subscribe(ctx, uid)
	defer cancel()

	connected, _ := json.Marshal(map[string]string{"user_id": uid})
	if err := writeFrame(res, realtime.Frame{Type: realtime.FrameConnected, ID: "0", Data: connected}); err != nil {
		return nil
	}

	logger.Info("[Realtime] Stream opened")
	defer logger.Info("[Realtime] Stream closed")

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case frame, open := <-frames:
			if !open {
				return nil
			}
			if err := writeFrame(res, frame); err != nil {
				logger.Debug("[Realtime] Stream write failed", slog.Any("error", err))

				return nil
			}
		case now := <-ticker.C:
			data, _ := json.Marshal(map[string]int64{"at": now.UnixMilli()})
			if err := writeFrame(res, realtime.Frame{Type: realtime.FrameHeartbeat, Data: data}); err != nil {
				return nil
			}
		}
	}
}

// writeFrame writes one SSE event and flushes it.
func writeFrame(res *echo.Response, frame realtime.Frame) error {
	if err := encodeFrame(res, frame); err != nil {
		return err
	}
	res.Flush()

	return nil
}

func encodeFrame(w io.Writer, frame realtime.Frame) error {
	if _, err := fmt.Fprintf(w, "event: %s\n", frame.Type); err != nil {
		return errors.WithStack(err)
	}
	if frame.ID != "" {
		if _, err := fmt.Fprintf(w, "id: %s\n", frame.ID); err != nil {
			return errors.WithStack(err)
		}
	}
	if _, err := fmt.Fprintf(w, "data: %s\n\n", frame.Data); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
