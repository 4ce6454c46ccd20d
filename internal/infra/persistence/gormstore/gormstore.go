// Package gormstore implements the repositories on a relational store through
// GORM. PostgreSQL serves production deployments and SQLite serves local runs
// and tests.
package gormstore

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"tracenfind/config"
	"tracenfind/internal/domain/constants"
	"tracenfind/internal/domain/lifecycle"
	"tracenfind/internal/errors"
	"tracenfind/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured relational store and ties it to the fx lifecycle.
func New(params Params) (*gorm.DB, error) {
	db, err := Open(params.Config, params.Logger)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping database")
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// Open connects to the store selected by cfg.Store.Provider and migrates the
// schema. Callers own the returned handle.
func Open(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	switch cfg.Store.Provider {
	case constants.StoreProviderPostgres:
		if cfg.Postgres == nil {
			return nil, errors.New("postgres store selected without a postgres section")
		}
		db, err = pgLib.New(cfg.Postgres)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create PostgreSQL client")
		}
	case constants.StoreProviderSQLite:
		db, err = OpenSQLite(cfg.Store.SQLitePath)
		if err != nil {
			return nil, err
		}
	default:
		return nil, errors.Errorf("store provider %q is not relational", cfg.Store.Provider)
	}

	db = db.Session(&gorm.Session{
		// Every repository call is a single statement.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(logger, cfg),
	})

	if err := db.AutoMigrate(model.All()...); err != nil {
		return nil, errors.Wrap(err, "failed to migrate schema")
	}

	if logger != nil {
		logger.Info("[Store] relational store ready", slog.String("provider", cfg.Store.Provider))
	}

	return db, nil
}

// OpenSQLite opens a SQLite database file. SQLite allows a single writer, so
// the pool is limited to one connection.
func OpenSQLite(path string) (*gorm.DB, error) {
	if path == "" {
		return nil, errors.New("sqlite path is required")
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sqlite sql.DB")
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.Int64("waitCountDelta", waitDelta),
					slog.Duration("waitDurationDelta", waitDurationDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("maxOpenConns", cur.MaxOpenConnections),
					slog.Int("openConns", cur.OpenConnections),
					slog.Int("inUseConns", cur.InUse),
				}
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					logger.LogAttrs(ctx, slog.LevelWarn, "[Store] pool wait detected", attrs...)
				} else {
					logger.LogAttrs(ctx, slog.LevelDebug, "[Store] pool wait observed", attrs...)
				}
			}

			prev = cur
		}
	}
}
