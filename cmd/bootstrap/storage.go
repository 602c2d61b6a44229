package bootstrap

import (
	"context"
	"fmt"

	"invoice-service/internal/infra/state"
	"invoice-service/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		NewStateStore,
	),
)

// NewStateStore selects the snapshot persistence driver. The file
// driver is the default; postgres keeps the same records as JSONB rows.
func NewStateStore(lc fx.Lifecycle, cfg config.Config) (state.Store, error) {
	switch cfg.Storage.Driver {
	case "file":
		return state.NewFileStore(cfg.Storage.DataDir)

	case "postgres":
		pool, err := pgxpool.New(context.Background(), cfg.DB.BuildDSN())
		if err != nil {
			return nil, fmt.Errorf("failed to create connection pool: %w", err)
		}
		if err := pool.Ping(context.Background()); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}

		store, err := state.NewPostgresStore(context.Background(), pool)
		if err != nil {
			pool.Close()
			return nil, err
		}

		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				pool.Close()
				return nil
			},
		})
		return store, nil

	case "memory":
		return state.NewMemoryStore(), nil

	default:
		return nil, fmt.Errorf("unknown storage driver: %q", cfg.Storage.Driver)
	}
}
