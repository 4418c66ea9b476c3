package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/remindly/remindly/pkg/logger"
)

const (
	defaultConnectTimeout = 5 * time.Second
	defaultPingTimeout    = 3 * time.Second
)

// Store is the concrete PostgreSQL driver backed by pgxpool.Pool. It does
// not leak pgx types through higher layers; repositories receive the pool
// through a narrow interface.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore initializes the pgx pool from the connection string and
// verifies connectivity with a ping.
func NewStore(ctx context.Context, connString string) (*Store, error) {
	if connString == "" {
		return nil, fmt.Errorf("postgres: connection string is required")
	}
	poolCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("postgres: parse config: %w", err)
	}
	poolCfg.ConnConfig.ConnectTimeout = defaultConnectTimeout
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("postgres: new pool: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, defaultPingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}
	logger.FromContext(ctx).Info("Postgres store initialized", "max_conns", poolCfg.MaxConns)
	return &Store{pool: pool}, nil
}

// Pool exposes the internal pool for driver-local usage.
func (s *Store) Pool() *pgxpool.Pool { return s.pool }

// HealthCheck verifies the connection is alive.
func (s *Store) HealthCheck(ctx context.Context) error {
	hctx, cancel := context.WithTimeout(ctx, defaultPingTimeout)
	defer cancel()
	if err := s.pool.Ping(hctx); err != nil {
		return fmt.Errorf("postgres: health check failed: %w", err)
	}
	return nil
}

// Close shuts down the connection pool.
func (s *Store) Close(ctx context.Context) {
	s.pool.Close()
	logger.FromContext(ctx).Info("Postgres store closed")
}
