// Package firebase owns the Firebase app and hands out its Firestore and
// Messaging clients. Clients are created on first use, so processes that
// never touch Firebase need no credentials.
package firebase

import (
	"context"
	"log/slog"
	"sync"

	"tracenfind/config"
	"tracenfind/internal/errors"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// App lazily initialises the Firebase app.
type App struct {
	cfg    *config.FirebaseConfig
	logger *slog.Logger

	mu        sync.Mutex
	app       *firebase.App
	firestore *firestore.Client
	messaging *messaging.Client
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New registers an App whose Firestore client is closed on shutdown.
func New(params Params) *App {
	app := &App{
		cfg:    params.Config.Firebase,
		logger: params.Logger,
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return app.Close()
		},
	})

	return app
}

func (a *App) appLocked(ctx context.Context) (*firebase.App, error) {
	if a.app != nil {
		return a.app, nil
	}
	if a.cfg == nil {
		return nil, errors.New("firebase is not configured")
	}

	var opts []option.ClientOption
	if a.cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(a.cfg.CredentialsPath))
	}

	var fbConfig *firebase.Config
	if a.cfg.ProjectID != "" {
		fbConfig = &firebase.Config{ProjectID: a.cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}
	a.app = app

	a.logger.Info("[Firebase] app initialized", slog.String("projectID", a.cfg.ProjectID))

	return app, nil
}

// Firestore returns the shared Firestore client.
func (a *App) Firestore(ctx context.Context) (*firestore.Client, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.firestore != nil {
		return a.firestore, nil
	}

	app, err := a.appLocked(ctx)
	if err != nil {
		return nil, err
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firestore client")
	}
	a.firestore = client

	return client, nil
}

// Messaging returns the shared FCM client.
func (a *App) Messaging(ctx context.Context) (*messaging.Client, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.messaging != nil {
		return a.messaging, nil
	}

	app, err := a.appLocked(ctx)
	if err != nil {
		return nil, err
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}
	a.messaging = client

	return client, nil
}

// Close releases the Firestore client if one was opened.
func (a *App) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.firestore == nil {
		return nil
	}

	err := a.firestore.Close()
	a.firestore = nil

	return errors.WithStack(err)
}
