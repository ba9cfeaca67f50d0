package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"enrollment-waitlist/internal/handler/api"
	"enrollment-waitlist/internal/handler/middleware"
	"enrollment-waitlist/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Courses     *api.CourseHandler
	Enrollments *api.EnrollmentHandler
	Reports     *api.ReportHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, courseHandler *api.CourseHandler, enrollmentHandler *api.EnrollmentHandler, reportHandler *api.ReportHandler) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, Handlers{
		Courses:     courseHandler,
		Enrollments: enrollmentHandler,
		Reports:     reportHandler,
	})
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.EntryLeader())
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	RegisterAPIRoutes(engine.Group("/api"), h)
}

// RegisterAPIRoutes mounts the enrollment API on g; handler tests use it with a bare engine.
func RegisterAPIRoutes(g *gin.RouterGroup, h Handlers) {
	courses := g.Group("/courses")
	{
		addRoutes(courses, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Courses.List},
			{Method: http.MethodPost, Path: "", Handler: h.Courses.Create},
			{Method: http.MethodDelete, Path: "/:name", Handler: h.Courses.Delete},
			{Method: http.MethodGet, Path: "/:name/queue", Handler: h.Courses.Queue},
			{Method: http.MethodPost, Path: "/:name/enrollments", Handler: h.Enrollments.Enroll},
			{Method: http.MethodDelete, Path: "/:name/enrollments/:student", Handler: h.Enrollments.Remove},
		})
	}

	addRoutes(g, []route{
		{Method: http.MethodGet, Path: "/reports/enrollments", Handler: h.Reports.Enrollments},
		{Method: http.MethodGet, Path: "/leaders/:id/state", Handler: h.Reports.LeaderState},
	})
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}
