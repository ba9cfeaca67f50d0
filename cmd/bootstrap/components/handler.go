package components

import (
	"enrollment-waitlist/internal/handler"
	"enrollment-waitlist/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCourseHandler,
		api.NewEnrollmentHandler,
		api.NewReportHandler,
	),
	fx.Invoke(handler.NewRouter),
)
