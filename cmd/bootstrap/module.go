package bootstrap

import (
	"enrollment-waitlist/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	components.UseCaseModule,
	components.HandlerModule,
)
