package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	corecfg "github.com/insightchat/analytics/internal/core/config"
	"github.com/insightchat/analytics/internal/core/storage"
	"github.com/insightchat/analytics/internal/core/storage/memory"
	"github.com/insightchat/analytics/internal/core/storage/postgres"
	"github.com/insightchat/analytics/internal/migrations"
)

// OpenStore opens the Record Store selected by database.type. For Postgres it
// runs migrations (when enabled) and checks the schema before returning.
func OpenStore(ctx context.Context, cfg corecfg.DatabaseConfig) (storage.Store, error) {
	switch cfg.Type {
	case corecfg.DatabaseMemory:
		slog.Warn("[Bootstrap] Using in-memory record store; data is lost on exit")
		return memory.NewStore(), nil

	case corecfg.DatabasePostgres:
		adapter, err := postgres.NewAdapter(cfg.DSN, cfg.MaxOpenConns, cfg.MaxIdleConns)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}

		if err := migrations.RunMigrations(adapter.DB(), cfg.AutoMigrate); err != nil {
			adapter.Close()
			return nil, fmt.Errorf("failed to run database migrations: %w", err)
		}

		schemaCtx, cancel := context.WithTimeout(ctx, cfg.QueryTimeout)
		defer cancel()
		if err := adapter.ValidateSchema(schemaCtx); err != nil {
			adapter.Close()
			return nil, fmt.Errorf("schema validation failed (run migrations first): %w", err)
		}
		return adapter, nil

	default:
		return nil, fmt.Errorf("unsupported database.type %q", cfg.Type)
	}
}
