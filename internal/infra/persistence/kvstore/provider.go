package kvstore

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the key-value store, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewKeyValueStore opens the configured storage backend and closes it on shutdown
func NewKeyValueStore(params Params) (repository.KeyValueStore, error) {
	cfg := params.Config.Storage
	logger := params.Logger

	var store repository.KeyValueStore
	var err error

	switch cfg.Backend {
	case constants.StorageBackendBlob:
		logger.Info("Using blob key-value store", slog.String("bucket_url", cfg.BucketURL))

		store, err = OpenBlobStore(params.Ctx, cfg.BucketURL, cfg.KeyPrefix, logger)
		if err != nil {
			return nil, err
		}

	case constants.StorageBackendPostgres:
		if params.Config.Postgres == nil {
			return nil, errors.New("postgres section is required for the postgres storage backend")
		}
		logger.Info("Using postgres key-value store")

		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    logger,
		})
		if err != nil {
			return nil, err
		}

		store, err = postgres.NewKVStore(params.Ctx, db, cfg.KeyPrefix)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown storage backend: %s", cfg.Backend)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			logger.Info("Closing key-value store")

			return store.Close()
		},
	})

	return store, nil
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewKeyValueStore),
	fx.Provide(NewLocationCache),
)
