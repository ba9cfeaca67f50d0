package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "enrollment-waitlist/internal/handler/dto/request"
	resdto "enrollment-waitlist/internal/handler/dto/response"
	"enrollment-waitlist/internal/handler/httperr"
	"enrollment-waitlist/internal/handler/middleware"
	"enrollment-waitlist/internal/usecase/commands"
	"enrollment-waitlist/internal/usecase/queries"
)

type CourseHandler struct {
	cmds commands.CourseCommands
	q    queries.CatalogQueries
}

func NewCourseHandler(cmds commands.CourseCommands, q queries.CatalogQueries) *CourseHandler {
	return &CourseHandler{cmds: cmds, q: q}
}

// @Summary List courses
// @Description List the active courses of the entry leader
// @Tags courses
// @Produce json
// @Param X-Leader-ID header string false "Entry leader id"
// @Success 200 {array} resdto.CourseResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /courses [get]
func (h *CourseHandler) List(c *gin.Context) {
	views, err := h.q.ListCatalog(c.Request.Context(), middleware.GetLeaderID(c))
	if err != nil {
		abortWithUsecaseError(c, err, nil)
		return
	}
	res, err := resdto.FromCourseViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Create course
// @Description Create a course on the entry leader and replicate it to the peers
// @Tags courses
// @Accept json
// @Produce json
// @Param X-Leader-ID header string false "Entry leader id"
// @Param request body reqdto.CreateCourseRequest true "Create course request"
// @Success 201 {object} resdto.CreateCourseResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /courses [post]
func (h *CourseHandler) Create(c *gin.Context) {
	var req reqdto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.CreateCourse(c.Request.Context(), req.ToCommand(middleware.GetLeaderID(c)))
	if err != nil {
		abortWithUsecaseError(c, err, nil)
		return
	}
	res, err := resdto.FromCreateCourseResult(result)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Summary Delete course
// @Description Soft delete (tombstone) or hard delete a course on every leader
// @Tags courses
// @Produce json
// @Param X-Leader-ID header string false "Entry leader id"
// @Param name path string true "Course name"
// @Param mode query string false "soft or hard"
// @Success 200 {object} resdto.DeleteCourseResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /courses/{name} [delete]
func (h *CourseHandler) Delete(c *gin.Context) {
	result, err := h.cmds.DeleteCourse(c.Request.Context(), commands.DeleteCourseRequest{
		Leader: middleware.GetLeaderID(c),
		Course: c.Param("name"),
		Mode:   c.Query("mode"),
	})
	if err != nil {
		abortWithUsecaseError(c, err, nil)
		return
	}
	res, err := resdto.FromDeleteCourseResult(result)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Course queue
// @Description Reconciled queue of a course across every reachable leader
// @Tags courses
// @Produce json
// @Param X-Leader-ID header string false "Leader used to resolve the course name"
// @Param name path string true "Course name"
// @Success 200 {object} resdto.QueueResponse
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /courses/{name}/queue [get]
func (h *CourseHandler) Queue(c *gin.Context) {
	view, err := h.q.CourseQueue(c.Request.Context(), middleware.GetLeaderID(c), c.Param("name"))
	if err != nil {
		abortWithUsecaseError(c, err, nil)
		return
	}
	res, err := resdto.FromQueueView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
