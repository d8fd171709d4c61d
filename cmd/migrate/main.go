// Command migrate creates or updates the database schema from the persistence models.
package main

import (
	"context"
	"log/slog"

	"urjabandhu/config"
	logs "urjabandhu/internal/infra/log"
	"urjabandhu/internal/infra/persistence/model"
	"urjabandhu/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type migrateParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	DB     *gorm.DB
	Logger *slog.Logger
}

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Invoke(registerMigration),
	).Run()
}

// registerMigration runs after the connection hook has pinged the database,
// then stops the app.
func registerMigration(params migrateParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			models := model.All()
			if err := params.DB.WithContext(ctx).AutoMigrate(models...); err != nil {
				return errors.Wrap(err, "failed to migrate schema")
			}
			params.Logger.Info("Schema migrated", slog.Int("models", len(models)))

			return params.Shutdown()
		},
	})
}
