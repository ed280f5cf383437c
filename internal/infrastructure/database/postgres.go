package database

import (
	"context"
	"fmt"

	"controle_financeiro/internal/config"

	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ConnectPostgres builds the connection pool. Connections are opened lazily,
// so an unreachable server surfaces on the first statement, which is what the
// schema initializer retries on.
func ConnectPostgres(ctx context.Context, cfg config.PostgresConfig, tracing bool) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL())
	if err != nil {
		return nil, fmt.Errorf("parse postgres config: %w", err)
	}
	poolCfg.MaxConns = cfg.MaxConns
	if tracing {
		poolCfg.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create postgres pool: %w", err)
	}
	return pool, nil
}
