package bootstrap

import (
	"enrollment-waitlist/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	ConfigSections,
)

// ConfigSections exposes the parts of config.Config that constructors take directly.
var ConfigSections = fx.Provide(
	func(cfg config.Config) config.ClusterConfig { return cfg.Cluster },
	func(cfg config.Config) config.ReplicationConfig { return cfg.Replication },
	func(cfg config.Config) config.LogConfig { return cfg.Log },
)
