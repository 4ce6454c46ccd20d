package handler

import (
	"log/slog"
	"net/http"

	"tracenfind/internal/delivery/api/response"
	"tracenfind/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler serves a user's notification inbox.
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// BulkResult reports how many notifications a bulk operation touched.
type BulkResult struct {
	Affected int `json:"affected"`
}

// ListNotifications returns recent notifications with duplicates collapsed
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	uid, ok := userID(c)
	if !ok {
		return missingUser(c)
	}

	limit, ok := limitParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_LIMIT", "limit must be a non-negative integer")
	}

	items, err := h.notificationUC.ListRecent(c.Request().Context(), uid, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, items)
}

// UnreadCount returns the deduplicated unread count and badge
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	uid, ok := userID(c)
	if !ok {
		return missingUser(c)
	}

	summary, err := h.notificationUC.UnreadCount(c.Request().Context(), uid)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}

// MarkRead marks one notification read
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	uid, ok := userID(c)
	if !ok {
		return missingUser(c)
	}

	notificationID := c.Param("id")
	if notificationID == "" {
		return response.BadRequest(c, "INVALID_ID", "Notification ID is required")
	}

	if err := h.notificationUC.MarkRead(c.Request().Context(), uid, notificationID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// MarkAllRead marks every notification read
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	uid, ok := userID(c)
	if !ok {
		return missingUser(c)
	}

	changed, err := h.notificationUC.MarkAllRead(c.Request().Context(), uid)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, BulkResult{Affected: changed})
}

// ClearAll deletes every notification
func (h *NotificationHandler) ClearAll(c echo.Context) error {
	uid, ok := userID(c)
	if !ok {
		return missingUser(c)
	}

	removed, err := h.notificationUC.ClearAll(c.Request().Context(), uid)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, BulkResult{Affected: removed})
}
