package handler

import (
	"log/slog"
	"net/http"

	"tracenfind/internal/delivery/api/response"
	"tracenfind/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PushTokenHandlerParams holds dependencies for PushTokenHandler, injected by Fx.
type PushTokenHandlerParams struct {
	fx.In

	PushTokenUC usecase.PushTokenUsecase
	Logger      *slog.Logger
}

// PushTokenHandler registers installations for FCM pushes
type PushTokenHandler struct {
	pushTokenUC usecase.PushTokenUsecase
	logger      *slog.Logger
}

// NewPushTokenHandler is the constructor for PushTokenHandler
func NewPushTokenHandler(params PushTokenHandlerParams) *PushTokenHandler {
	return &PushTokenHandler{
		pushTokenUC: params.PushTokenUC,
		logger:      params.Logger,
	}
}

// RegisterTokenRequest represents the request body for registering an installation
type RegisterTokenRequest struct {
	FCMToken       string `json:"fcm_token" validate:"required"`
	InstallationID string `json:"installation_id" validate:"required"`
	Platform       string `json:"platform" validate:"required,oneof=web ios android"`
}

// RegisterToken registers or refreshes an installation
func (h *PushTokenHandler) RegisterToken(c echo.Context) error {
	uid, ok := userID(c)
	if !ok {
		return missingUser(c)
	}

	var req RegisterTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid push token input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	token, err := h.pushTokenUC.RegisterToken(c.Request().Context(), uid, &usecase.PushTokenInfo{
		FCMToken:       req.FCMToken,
		InstallationID: req.InstallationID,
		Platform:       req.Platform,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, token)
}

// RemoveToken deletes a registration
func (h *PushTokenHandler) RemoveToken(c echo.Context) error {
	uid, ok := userID(c)
	if !ok {
		return missingUser(c)
	}

	if err := h.pushTokenUC.RemoveToken(c.Request().Context(), uid, c.Param("tokenId")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
