package db

import (
	"context"
	"fmt"
	"time"

	"enrollment-waitlist/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PoolConfig builds the pool settings for one leader. No connection is made.
func PoolConfig(leader config.Leader, cluster config.ClusterConfig) (*pgxpool.Config, error) {
	pc, err := pgxpool.ParseConfig(leader.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DSN for leader %s: %w", leader.ID, err)
	}
	if cluster.ConnectTimeout > 0 {
		pc.ConnConfig.ConnectTimeout = cluster.ConnectTimeout
	}
	if cluster.MaxConns > 0 {
		pc.MaxConns = cluster.MaxConns
	}
	pc.MaxConnLifetime = time.Hour
	pc.MaxConnIdleTime = 10 * time.Minute
	pc.ConnConfig.RuntimeParams["timezone"] = "UTC"
	return pc, nil
}

// Connect opens a pool lazily: pgxpool dials on first use, so an unreachable
// leader does not prevent startup.
func Connect(ctx context.Context, leader config.Leader, cluster config.ClusterConfig) (*pgxpool.Pool, func(), error) {
	pc, err := PoolConfig(leader, cluster)
	if err != nil {
		return nil, nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create pool for leader %s: %w", leader.ID, err)
	}
	return pool, pool.Close, nil
}
