package postgres

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/recruitment-backend/internal/config"
)

// NewPool opens a connection pool and pings it, so a bad DSN fails at
// startup. Every connection carries the configured application_name and
// statement_timeout.
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse database DSN: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime
	applyRuntimeParams(poolCfg.ConnConfig.RuntimeParams, cfg)

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

// applyRuntimeParams sets session parameters sent on connect. Values already
// present in the DSN win.
func applyRuntimeParams(params map[string]string, cfg config.DatabaseConfig) {
	if cfg.ApplicationName != "" && params["application_name"] == "" {
		params["application_name"] = cfg.ApplicationName
	}
	if cfg.StatementTimeout > 0 && params["statement_timeout"] == "" {
		params["statement_timeout"] = strconv.FormatInt(cfg.StatementTimeout.Milliseconds(), 10)
	}
}
