//go:build unit

package api_test

import (
	"net/http"

	resdto "enrollment-waitlist/internal/handler/dto/response"
	"enrollment-waitlist/internal/pkg/errs"
	"enrollment-waitlist/internal/usecase/readmodel"
	"enrollment-waitlist/tests/common/builder"
	"enrollment-waitlist/tests/common/httptest"

	"go.uber.org/mock/gomock"
)

// ================================================================================
// TestEnrollmentReport
// ================================================================================

func (s *HandlerTestSuite) TestEnrollmentReport() {
	url := "/api/reports/enrollments"

	s.Run("success: per-course counts for the requested leader", func() {
		view := &readmodel.ReportView{
			Leader: "B",
			Courses: []readmodel.CourseReport{{
				Course:    readmodel.CourseView{ID: builder.SeqID(7), Name: "Algorithms", Capacity: 2},
				Accepted:  1,
				Remaining: 1,
				Students: []readmodel.StudentStatus{
					{Student: "alice", Status: "ACCEPTED", SubmittedAt: builder.At(1).Time()},
				},
			}},
		}
		s.mockQueries.EXPECT().Report(gomock.Any(), "B").Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "B")

		var body resdto.ReportResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("B", body.Leader)
		s.Require().Len(body.Courses, 1)
		s.Equal(1, body.Courses[0].Remaining)
		s.Equal("alice", body.Courses[0].Students[0].Student)
	})

	s.Run("error: 503 when the leader is unreachable", func() {
		s.mockQueries.EXPECT().Report(gomock.Any(), "").
			Return(nil, errs.Wrap(errs.ErrLeaderUnreachable, "A")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Leader unreachable")
	})
}

// ================================================================================
// TestLeaderState
// ================================================================================

func (s *HandlerTestSuite) TestLeaderState() {
	s.Run("success: raw state of the leader in the path", func() {
		view := &readmodel.LeaderStateView{
			Leader: "A",
			Courses: []readmodel.CourseState{{
				CourseID:   builder.SeqID(7),
				CourseName: "Algorithms",
				Deleted:    true,
				Records: []readmodel.RecordView{
					{ID: builder.SeqID(1), Student: "alice", Status: "REMOVED", SubmittedAt: builder.At(1).Time(), ModifiedAt: builder.At(5).Time()},
				},
			}},
			Tombstones: []readmodel.TombstoneView{{CourseID: builder.SeqID(7), DeletedAt: builder.At(5).Time()}},
		}
		s.mockQueries.EXPECT().LeaderState(gomock.Any(), "A").Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/leaders/A/state", nil, "B")

		var body resdto.LeaderStateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Courses, 1)
		s.True(body.Courses[0].Deleted)
		s.Equal("REMOVED", body.Courses[0].Records[0].Status)
		s.Equal("2025-01-06T09:00:05.000000Z", body.Tombstones[0].DeletedAt)
	})

	s.Run("error: 400 for an unknown leader", func() {
		s.mockQueries.EXPECT().LeaderState(gomock.Any(), "Z").
			Return(nil, errs.Wrap(errs.ErrUnknownLeader, "Z")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/leaders/Z/state", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown leader")
	})
}
