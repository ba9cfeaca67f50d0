package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resdto "enrollment-waitlist/internal/handler/dto/response"
	"enrollment-waitlist/internal/handler/httperr"
	"enrollment-waitlist/internal/handler/middleware"
	"enrollment-waitlist/internal/usecase/queries"
)

type ReportHandler struct {
	q queries.CatalogQueries
}

func NewReportHandler(q queries.CatalogQueries) *ReportHandler {
	return &ReportHandler{q: q}
}

// @Summary Enrollment report
// @Description Accepted count, remaining seats and per-student status for every course of one leader
// @Tags reports
// @Produce json
// @Param X-Leader-ID header string false "Leader id"
// @Success 200 {object} resdto.ReportResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /reports/enrollments [get]
func (h *ReportHandler) Enrollments(c *gin.Context) {
	view, err := h.q.Report(c.Request.Context(), middleware.GetLeaderID(c))
	if err != nil {
		abortWithUsecaseError(c, err, nil)
		return
	}
	res, err := resdto.FromReportView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Leader state
// @Description Raw courses, records and tombstones stored on one leader
// @Tags leaders
// @Produce json
// @Param id path string true "Leader id"
// @Success 200 {object} resdto.LeaderStateResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /leaders/{id}/state [get]
func (h *ReportHandler) LeaderState(c *gin.Context) {
	view, err := h.q.LeaderState(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithUsecaseError(c, err, nil)
		return
	}
	res, err := resdto.FromLeaderStateView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
