package components

import (
	"enrollment-waitlist/internal/usecase/commands"
	"enrollment-waitlist/internal/usecase/queries"
	"enrollment-waitlist/internal/usecase/replication"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	fx.Annotate(
		replication.NewReplicator,
		fx.As(new(commands.Replicator)),
	),
	fx.Annotate(
		queries.NewReconciler,
		fx.As(new(queries.StateReconciler)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewEnrollmentCommands,
		commands.NewRemovalCommands,
		commands.NewCourseCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCatalogQueries,
	),
)
