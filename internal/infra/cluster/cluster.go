// Package cluster owns one connection pool per configured leader.
package cluster

import (
	"context"
	"log/slog"
	"time"

	"enrollment-waitlist/internal/infra"
	"enrollment-waitlist/internal/infra/db"
	"enrollment-waitlist/internal/infra/query"
	"enrollment-waitlist/internal/infra/uow"
	"enrollment-waitlist/internal/pkg/config"
	"enrollment-waitlist/internal/pkg/errs"
	"enrollment-waitlist/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
)

type node struct {
	pool   *pgxpool.Pool
	leader *uow.PostgresLeader
}

type Cluster struct {
	localID        string
	ids            []string
	nodes          map[string]node
	connectTimeout time.Duration
	q              *query.Queries
	logger         *slog.Logger
}

// New creates every pool without dialing; reachability is checked per call.
func New(ctx context.Context, cfg config.ClusterConfig, logger *slog.Logger) (*Cluster, error) {
	leaders, err := cfg.ParsedLeaders()
	if err != nil {
		return nil, errs.Wrap(err, "invalid cluster topology")
	}

	c := &Cluster{
		localID:        cfg.LocalLeader,
		nodes:          make(map[string]node, len(leaders)),
		connectTimeout: cfg.ConnectTimeout,
		q:              query.New(),
		logger:         logger,
	}
	for _, l := range leaders {
		pool, _, err := db.Connect(ctx, l, cfg)
		if err != nil {
			c.Close()
			return nil, err
		}
		c.ids = append(c.ids, l.ID)
		c.nodes[l.ID] = node{pool: pool, leader: uow.NewPostgresLeader(l.ID, pool, c.q)}
	}
	c.logger.Info("cluster configured", "leaders", c.ids, "local", c.localID)
	return c, nil
}

func (c *Cluster) LocalID() string {
	return c.localID
}

func (c *Cluster) IDs() []string {
	return append([]string(nil), c.ids...)
}

func (c *Cluster) Peers(of string) []string {
	peers := make([]string, 0, len(c.ids))
	for _, id := range c.ids {
		if id != of {
			peers = append(peers, id)
		}
	}
	return peers
}

// Leader pings the leader and fails with kind UNREACHABLE if that does not
// complete within the connect timeout.
func (c *Cluster) Leader(ctx context.Context, id string) (shared.Leader, error) {
	n, ok := c.nodes[id]
	if !ok {
		return nil, errs.Wrapf(errs.ErrUnknownLeader, "leader %q", id)
	}

	pingCtx := ctx
	if c.connectTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, c.connectTimeout)
		defer cancel()
	}
	if err := c.q.Ping(pingCtx, n.pool); err != nil {
		return nil, infra.WrapRepoErr("leader "+id+" unreachable", err, infra.KindUnreachable)
	}
	return n.leader, nil
}

func (c *Cluster) Close() {
	for id, n := range c.nodes {
		n.pool.Close()
		c.logger.Debug("leader pool closed", "leader", id)
	}
}
