// Package persistence selects the document store backing the repositories.
package persistence

import (
	"context"
	"log/slog"

	"tracenfind/config"
	"tracenfind/internal/domain/constants"
	"tracenfind/internal/domain/repository"
	"tracenfind/internal/errors"
	firebaseinfra "tracenfind/internal/infra/firebase"
	"tracenfind/internal/infra/persistence/firestore"
	"tracenfind/internal/infra/persistence/gormstore"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	App    *firebaseinfra.App
}

// Repositories is every repository of the selected store.
type Repositories struct {
	fx.Out

	Notifications repository.NotificationRepository
	Activity      repository.ActivityRepository
	Devices       repository.DeviceRepository
	Zones         repository.ZoneRepository
	PushTokens    repository.PushTokenRepository
}

// NewRepositories builds the repositories of cfg.Store.Provider.
func NewRepositories(params Params) (Repositories, error) {
	provider := params.Config.Store.Provider

	switch provider {
	case constants.StoreProviderFirestore:
		client, err := params.App.Firestore(params.Ctx)
		if err != nil {
			return Repositories{}, errors.Wrap(err, "failed to open firestore")
		}
		params.Logger.Info("[Store] using firestore")

		return Repositories{
			Notifications: firestore.NewNotificationRepository(client),
			Activity:      firestore.NewActivityRepository(client),
			Devices:       firestore.NewDeviceRepository(client),
			Zones:         firestore.NewZoneRepository(client),
			PushTokens:    firestore.NewPushTokenRepository(client),
		}, nil

	case constants.StoreProviderSQLite, constants.StoreProviderPostgres:
		db, err := gormstore.New(gormstore.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}
		pollInterval := params.Config.Store.PollInterval

		return Repositories{
			Notifications: gormstore.NewNotificationRepository(db, pollInterval),
			Activity:      gormstore.NewActivityRepository(db),
			Devices:       gormstore.NewDeviceRepository(db, pollInterval),
			Zones:         gormstore.NewZoneRepository(db, pollInterval),
			PushTokens:    gormstore.NewPushTokenRepository(db),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown store provider %q", provider)
	}
}
