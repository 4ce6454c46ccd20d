// Package middleware contains echo middleware shared by the HTTP deliveries.
package middleware

import (
	"log/slog"

	deliverycontext "tracenfind/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// UserIDParam is the path parameter naming the user a route acts for.
const UserIDParam = "userId"

// RequestIDMiddleware tags each request with an ID and a scoped logger.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process reuses the client's X-Request-Id or mints one, then stores the ID,
// the addressed user and a child logger on the request context.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" {
			requestID = deliverycontext.NewRequestID()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		reqLogger := m.logger.With(slog.String("request_id", requestID))

		ctx := c.Request().Context()
		ctx = deliverycontext.WithRequestID(ctx, requestID)
		if userID := c.Param(UserIDParam); userID != "" {
			reqLogger = reqLogger.With(slog.String("user_id", userID))
			ctx = deliverycontext.WithUserID(ctx, userID)
		}
		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
