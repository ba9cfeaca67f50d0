//go:build unit

package api_test

import (
	"testing"

	"enrollment-waitlist/internal/handler"
	"enrollment-waitlist/internal/handler/api"
	"enrollment-waitlist/internal/handler/middleware"
	commandsmock "enrollment-waitlist/tests/mock/commands"
	queriesmock "enrollment-waitlist/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockCourses *commandsmock.MockCourseCommands
	mockEnroll  *commandsmock.MockEnrollmentCommands
	mockRemoval *commandsmock.MockRemovalCommands
	mockQueries *queriesmock.MockCatalogQueries
}

func (s *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCourses = commandsmock.NewMockCourseCommands(s.mockCtrl)
	s.mockEnroll = commandsmock.NewMockEnrollmentCommands(s.mockCtrl)
	s.mockRemoval = commandsmock.NewMockRemovalCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)

	s.router.Use(middleware.EntryLeader(), middleware.ErrorHandler())
	handler.RegisterAPIRoutes(s.router.Group("/api"), handler.Handlers{
		Courses:     api.NewCourseHandler(s.mockCourses, s.mockQueries),
		Enrollments: api.NewEnrollmentHandler(s.mockEnroll, s.mockRemoval),
		Reports:     api.NewReportHandler(s.mockQueries),
	})
}

func (s *HandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

type errorCase struct {
	name           string
	err            error
	expectedStatus int
	expectedMsg    string
}
