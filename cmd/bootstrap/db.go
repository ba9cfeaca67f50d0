package bootstrap

import (
	"context"
	"log/slog"

	"enrollment-waitlist/internal/infra/cluster"
	"enrollment-waitlist/internal/pkg/config"
	"enrollment-waitlist/internal/usecase/shared"

	"go.uber.org/fx"
)

// DBModule opens one pool per leader listed in LEADERS.
var DBModule = fx.Module("db",
	fx.Provide(
		fx.Annotate(
			NewCluster,
			fx.As(new(shared.Cluster)),
		),
	),
)

func NewCluster(lc fx.Lifecycle, cfg config.ClusterConfig, logger *slog.Logger) (*cluster.Cluster, error) {
	c, err := cluster.New(context.Background(), cfg, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			c.Close()
			return nil
		},
	})

	return c, nil
}
