// Package postgres stores drop points, capacity slots and assignments in
// PostgreSQL through gorm.
package postgres

import (
	"context"
	"log/slog"

	"dropzone/config"
	"dropzone/internal/domain/lifecycle"
	"dropzone/internal/errors"
	"dropzone/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the primary connection (and any replicas) and ties the pool to
// the application lifecycle.
func New(params Params) (*gorm.DB, error) {
	conn, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open postgres")
	}

	// Every repository write is a single statement.
	db := conn.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newQueryLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to access postgres pool")
	}

	watcher := newPoolWatcher(sqlDB, params.Logger)
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to reach postgres")
			}

			if dbCfg := params.Config.Database; dbCfg != nil && dbCfg.AutoMigrate {
				if err := Migrate(ctx, db); err != nil {
					return err
				}
				params.Logger.Info("Drop point schema migrated")
			}

			watcher.start()

			return nil
		},
		OnStop: func(_ context.Context) error {
			watcher.stop()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// Migrate creates or updates the tables backing drop points, slots and assignments.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.AllModels()...); err != nil {
		return errors.Wrap(err, "failed to migrate database schema")
	}

	return nil
}
