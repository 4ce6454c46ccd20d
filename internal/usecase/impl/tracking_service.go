package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"tracenfind/config"
	"tracenfind/internal/domain/dedup"
	"tracenfind/internal/domain/entity"
	domainerrors "tracenfind/internal/domain/errors"
	"tracenfind/internal/domain/repository"
	"tracenfind/internal/domain/tracking"
	"tracenfind/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type trackingService struct {
	notifications usecase.NotificationUsecase
	deviceRepo    repository.DeviceRepository
	zoneRepo      repository.ZoneRepository
	policy        dedup.Policy
	detectorOpts  tracking.DetectorOptions
	logger        *slog.Logger
	now           func() time.Time

	mu    sync.Mutex
	users map[string]*userPipeline
}

// userPipeline is the process-local detection state of one user.
type userPipeline struct {
	mu          sync.Mutex
	detector    *tracking.ChangeDetector
	containment *tracking.ContainmentTracker
	zones       []*entity.Zone
}

// TrackingServiceParams holds dependencies for TrackingService, injected by Fx.
type TrackingServiceParams struct {
	fx.In

	Notifications usecase.NotificationUsecase
	DeviceRepo    repository.DeviceRepository
	ZoneRepo      repository.ZoneRepository
	Config        *config.Config
	Logger        *slog.Logger
}

// NewTrackingService creates a new tracking service instance
func NewTrackingService(params TrackingServiceParams) usecase.TrackingUsecase {
	opts := tracking.DetectorOptions{}
	if params.Config != nil && params.Config.Pipeline != nil {
		opts.CriticalSimMarker = params.Config.Pipeline.CriticalSimMarker
	}

	return &trackingService{
		notifications: params.Notifications,
		deviceRepo:    params.DeviceRepo,
		zoneRepo:      params.ZoneRepo,
		policy:        dedupPolicy(params.Config),
		detectorOpts:  opts,
		logger:        params.Logger,
		now:           time.Now,
		users:         make(map[string]*userPipeline),
	}
}

func (s *trackingService) pipelineFor(userID string) *userPipeline {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.users[userID]
	if !ok {
		p = &userPipeline{
			detector:    tracking.NewChangeDetector(s.detectorOpts),
			containment: tracking.NewContainmentTracker(),
		}
		s.users[userID] = p
	}

	return p
}

// SyncZones replaces the geofences evaluated for a user
func (s *trackingService) SyncZones(_ context.Context, userID string, zones []*entity.Zone) {
	p := s.pipelineFor(userID)
	p.mu.Lock()
	defer p.mu.Unlock()

	valid := make([]*entity.Zone, 0, len(zones))
	keep := make(map[string]struct{}, len(zones))
	for _, zone := range zones {
		if !zone.IsWellFormed() {
			s.logger.Debug("[Pipeline] Ignoring malformed geofence",
				slog.String("user_id", userID),
				slog.Any("zone", zone),
			)

			continue
		}
		valid = append(valid, zone)
		keep[zone.ID] = struct{}{}
	}

	p.zones = valid
	p.containment.RetainZones(keep)
}

// HandleDevices processes one full devices snapshot of a user
func (s *trackingService) HandleDevices(ctx context.Context, userID string, devices []*entity.DeviceSnapshot) []*usecase.PublishResult {
	p := s.pipelineFor(userID)
	p.mu.Lock()
	defer p.mu.Unlock()

	candidates := s.detect(userID, p, devices)
	if len(candidates) == 0 {
		return nil
	}

	candidates = dedup.Events(candidates, s.policy)
	results := make([]*usecase.PublishResult, 0, len(candidates))
	for _, event := range candidates {
		result, err := s.notifications.Publish(ctx, userID, event)
		if err != nil {
			s.logger.Warn("[Pipeline] Failed to publish event",
				slog.String("user_id", userID),
				slog.String("device_id", event.DeviceID),
				slog.String("kind", string(event.Kind)),
				slog.Any("error", err),
			)

			continue
		}
		results = append(results, result)
	}

	return results
}

// detect runs change detection and containment for every device and drops
// state of devices that left the snapshot.
func (s *trackingService) detect(userID string, p *userPipeline, devices []*entity.DeviceSnapshot) []entity.LogicalEvent {
	var events []entity.LogicalEvent
	keep := make(map[string]struct{}, len(devices))
	nowMs := s.now().UnixMilli()

	for _, device := range devices {
		if device == nil || device.ID == "" {
			continue
		}
		keep[device.ID] = struct{}{}

		at := nowMs
		if !device.LastUpdated.IsZero() {
			at = device.LastUpdated.UnixMilli()
		}

		events = append(events, p.detector.Observe(device, at)...)

		if device.Location == nil || !device.Location.IsValid() {
			if len(p.zones) > 0 {
				s.logger.Debug("[Pipeline] Skipping containment for device without a valid location",
					slog.String("user_id", userID),
					slog.String("device_id", device.ID),
				)
			}

			continue
		}

		for _, zone := range p.zones {
			tr, fired := p.containment.Evaluate(device.ID, device.Location, zone)
			if !fired {
				continue
			}
			if (tr.Entered && zone.AlertOnEntry) || (!tr.Entered && zone.AlertOnExit) {
				events = append(events, tracking.GeofenceEvent(device, zone, tr, at))
			}
		}
	}

	p.detector.Retain(keep)
	p.containment.RetainDevices(keep)

	return events
}

// IngestSnapshot validates and stores a device snapshot
func (s *trackingService) IngestSnapshot(ctx context.Context, userID string, snapshot *entity.DeviceSnapshot) error {
	if snapshot == nil || snapshot.ID == "" || !snapshot.Status.IsValid() {
		return domainerrors.ErrInvalidSnapshot
	}
	if snapshot.Location != nil && !snapshot.Location.IsValid() {
		return domainerrors.ErrInvalidSnapshot.WithDetails("location out of range")
	}
	if snapshot.LastUpdated.IsZero() {
		snapshot.LastUpdated = s.now().UTC()
	}

	if err := s.deviceRepo.SaveSnapshot(ctx, userID, snapshot); err != nil {
		return domainerrors.NewStoreUnavailableError(err, "failed to save device snapshot")
	}

	return nil
}

// ListZones returns the stored geofences of a user
func (s *trackingService) ListZones(ctx context.Context, userID string) ([]*entity.Zone, error) {
	zones, err := s.zoneRepo.FindZones(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find zones")
	}

	return zones, nil
}

// SaveZone validates and stores a geofence
func (s *trackingService) SaveZone(ctx context.Context, userID string, zone *entity.Zone) error {
	if !zone.IsWellFormed() {
		return domainerrors.ErrInvalidZone
	}
	zone.UpdatedAt = s.now().UTC()

	if err := s.zoneRepo.SaveZone(ctx, userID, zone); err != nil {
		return errors.Wrap(err, "failed to save zone")
	}

	return nil
}

// DeleteZone removes a geofence
func (s *trackingService) DeleteZone(ctx context.Context, userID, zoneID string) error {
	if err := s.zoneRepo.DeleteZone(ctx, userID, zoneID); err != nil {
		if errors.Is(err, repository.ErrZoneNotFound) {
			return domainerrors.ErrZoneNotFound
		}

		return errors.Wrap(err, "failed to delete zone")
	}

	return nil
}

// Forget drops all in-memory state held for a user
func (s *trackingService) Forget(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.users, userID)
}
