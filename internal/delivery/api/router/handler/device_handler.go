package handler

import (
	"log/slog"
	"net/http"
	"time"

	"tracenfind/internal/delivery/api/response"
	"tracenfind/internal/domain/entity"
	"tracenfind/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	TrackingUC     usecase.TrackingUsecase
	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	trackingUC     usecase.TrackingUsecase
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		trackingUC:     params.TrackingUC,
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// LocationRequest is a reported position.
type LocationRequest struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lng float64 `json:"lng" validate:"longitude"`
}

// DeviceSnapshotRequest is the full state reported by a device. LastUpdated
// accepts RFC 3339 strings, epoch millis or {seconds,nanoseconds} objects.
type DeviceSnapshotRequest struct {
	Name           string           `json:"name" validate:"max=120"`
	Status         string           `json:"status" validate:"required,oneof=online offline lost warning"`
	Battery        float64          `json:"battery" validate:"gte=0,lte=100"`
	Location       *LocationRequest `json:"location"`
	SimStatus      string           `json:"sim_status"`
	FinderMessage  string           `json:"finder_message" validate:"max=1000"`
	FinderPhotoURL string           `json:"finder_photo_url" validate:"omitempty,url"`
	LastUpdated    any              `json:"last_updated"`
}

// SecurityActionRequest names a remote command.
type SecurityActionRequest struct {
	Action string `json:"action" validate:"required,oneof=lock ring lost-mode wipe"`
}

// PutSnapshot stores the full state of a device
func (h *DeviceHandler) PutSnapshot(c echo.Context) error {
	uid, ok := userID(c)
	if !ok {
		return missingUser(c)
	}

	var req DeviceSnapshotRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device snapshot")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	snapshot := req.toDomain(c.Param("deviceId"))
	if err := h.trackingUC.IngestSnapshot(c.Request().Context(), uid, snapshot); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, snapshot)
}

// ListActivity returns a device's timeline
func (h *DeviceHandler) ListActivity(c echo.Context) error {
	uid, ok := userID(c)
	if !ok {
		return missingUser(c)
	}

	limit, ok := limitParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_LIMIT", "limit must be a non-negative integer")
	}

	entries, err := h.notificationUC.ListActivity(c.Request().Context(), uid, c.Param("deviceId"), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, entries)
}

// RecordSecurityAction records a remote command issued against a device
func (h *DeviceHandler) RecordSecurityAction(c echo.Context) error {
	uid, ok := userID(c)
	if !ok {
		return missingUser(c)
	}

	var req SecurityActionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid security action")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	result, err := h.notificationUC.RecordSecurityAction(
		c.Request().Context(), uid, c.Param("deviceId"), entity.SecurityAction(req.Action),
	)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := http.StatusCreated
	if result.Outcome == usecase.OutcomeSkipped {
		status = http.StatusOK
	}

	return response.Success(c, status, result)
}

func (req *DeviceSnapshotRequest) toDomain(deviceID string) *entity.DeviceSnapshot {
	snapshot := &entity.DeviceSnapshot{
		ID:             deviceID,
		Name:           req.Name,
		Status:         entity.DeviceStatus(req.Status),
		Battery:        req.Battery,
		Security:       entity.SecurityFields{SimStatus: req.SimStatus},
		FinderMessage:  req.FinderMessage,
		FinderPhotoURL: req.FinderPhotoURL,
	}
	if req.Location != nil {
		snapshot.Location = &entity.Coordinate{Lat: req.Location.Lat, Lng: req.Location.Lng}
	}
	if ms, ok := entity.EpochMillis(req.LastUpdated); ok {
		snapshot.LastUpdated = time.UnixMilli(ms).UTC()
	}

	return snapshot
}
