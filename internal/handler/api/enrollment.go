package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "enrollment-waitlist/internal/handler/dto/request"
	resdto "enrollment-waitlist/internal/handler/dto/response"
	"enrollment-waitlist/internal/handler/httperr"
	"enrollment-waitlist/internal/handler/middleware"
	"enrollment-waitlist/internal/usecase/commands"
)

type EnrollmentHandler struct {
	enroll  commands.EnrollmentCommands
	removal commands.RemovalCommands
}

func NewEnrollmentHandler(enroll commands.EnrollmentCommands, removal commands.RemovalCommands) *EnrollmentHandler {
	return &EnrollmentHandler{enroll: enroll, removal: removal}
}

// @Summary Enroll student
// @Description Register a student on a course through the entry leader
// @Tags enrollments
// @Accept json
// @Produce json
// @Param X-Leader-ID header string false "Entry leader id"
// @Param name path string true "Course name"
// @Param request body reqdto.EnrollRequest true "Enroll request"
// @Success 201 {object} resdto.EnrollResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /courses/{name}/enrollments [post]
func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	var req reqdto.EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.enroll.Enroll(c.Request.Context(), req.ToCommand(middleware.GetLeaderID(c), c.Param("name")))
	if err != nil {
		abortWithUsecaseError(c, err, nil)
		return
	}
	res, err := resdto.FromEnrollResult(result)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Summary Remove student
// @Description Remove every active registration of a student and promote from the waitlist
// @Tags enrollments
// @Produce json
// @Param X-Leader-ID header string false "Entry leader id"
// @Param name path string true "Course name"
// @Param student path string true "Student name"
// @Success 200 {object} resdto.RemoveResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /courses/{name}/enrollments/{student} [delete]
func (h *EnrollmentHandler) Remove(c *gin.Context) {
	result, err := h.removal.Remove(c.Request.Context(), commands.RemoveRequest{
		Leader:  middleware.GetLeaderID(c),
		Student: c.Param("student"),
		Course:  c.Param("name"),
	})
	if err != nil {
		// a failed re-rank still returns the committed removal
		var detail any
		if result != nil {
			detail, _ = resdto.FromRemoveResult(result)
		}
		abortWithUsecaseError(c, err, detail)
		return
	}
	res, err := resdto.FromRemoveResult(result)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
