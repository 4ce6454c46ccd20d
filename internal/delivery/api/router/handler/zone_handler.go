package handler

import (
	"log/slog"
	"net/http"

	"tracenfind/internal/delivery/api/response"
	"tracenfind/internal/domain/entity"
	"tracenfind/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ZoneHandlerParams holds dependencies for ZoneHandler, injected by Fx.
type ZoneHandlerParams struct {
	fx.In

	TrackingUC usecase.TrackingUsecase
	Logger     *slog.Logger
}

// ZoneHandler manages a user's geofences
type ZoneHandler struct {
	trackingUC usecase.TrackingUsecase
	logger     *slog.Logger
}

// NewZoneHandler is the constructor for ZoneHandler
func NewZoneHandler(params ZoneHandlerParams) *ZoneHandler {
	return &ZoneHandler{
		trackingUC: params.TrackingUC,
		logger:     params.Logger,
	}
}

// ZoneRequest is a circular geofence.
type ZoneRequest struct {
	Name         string          `json:"name" validate:"max=120"`
	Center       LocationRequest `json:"center"`
	RadiusMeters float64         `json:"radius_meters" validate:"gt=0"`
	AlertOnEntry bool            `json:"alert_on_entry"`
	AlertOnExit  bool            `json:"alert_on_exit"`
}

// ListZones returns the stored geofences
func (h *ZoneHandler) ListZones(c echo.Context) error {
	uid, ok := userID(c)
	if !ok {
		return missingUser(c)
	}

	zones, err := h.trackingUC.ListZones(c.Request().Context(), uid)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, zones)
}

// PutZone creates or replaces a geofence
func (h *ZoneHandler) PutZone(c echo.Context) error {
	uid, ok := userID(c)
	if !ok {
		return missingUser(c)
	}

	var req ZoneRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid geofence")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	zone := &entity.Zone{
		ID:           c.Param("zoneId"),
		Name:         req.Name,
		Center:       entity.Coordinate{Lat: req.Center.Lat, Lng: req.Center.Lng},
		RadiusMeters: req.RadiusMeters,
		AlertOnEntry: req.AlertOnEntry,
		AlertOnExit:  req.AlertOnExit,
	}
	if err := h.trackingUC.SaveZone(c.Request().Context(), uid, zone); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, zone)
}

// DeleteZone removes a geofence
func (h *ZoneHandler) DeleteZone(c echo.Context) error {
	uid, ok := userID(c)
	if !ok {
		return missingUser(c)
	}

	if err := h.trackingUC.DeleteZone(c.Request().Context(), uid, c.Param("zoneId")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
