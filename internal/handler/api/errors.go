package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"enrollment-waitlist/internal/handler/httperr"
	"enrollment-waitlist/internal/pkg/errs"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// checked in order; the first sentinel the error carries wins
var errorMappings = []errorMapping{
	{errs.ErrCourseNotFound, http.StatusNotFound, "Course not found"},
	{errs.ErrRecordNotFound, http.StatusNotFound, "Enrollment not found"},
	{errs.ErrDuplicateRegistration, http.StatusConflict, "Student already registered for this course"},
	{errs.ErrCourseExists, http.StatusConflict, "Course already exists"},
	{errs.ErrUnknownLeader, http.StatusBadRequest, "Unknown leader"},
	{errs.ErrDomainValidation, http.StatusBadRequest, "Invalid request"},
	{errs.ErrLeaderUnreachable, http.StatusServiceUnavailable, "Leader unreachable"},
	{errs.ErrPersistenceFailure, http.StatusInternalServerError, "Persistence failure"},
}

func statusFor(err error) (int, string) {
	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

func abortWithUsecaseError(c *gin.Context, err error, detail any) {
	status, msg := statusFor(err)
	httperr.AbortWithError(c, status, err, msg, detail)
}
