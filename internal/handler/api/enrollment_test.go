//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"enrollment-waitlist/internal/domain/enrollment"
	reqdto "enrollment-waitlist/internal/handler/dto/request"
	resdto "enrollment-waitlist/internal/handler/dto/response"
	"enrollment-waitlist/internal/pkg/errs"
	"enrollment-waitlist/internal/usecase/commands"
	"enrollment-waitlist/internal/usecase/replication"
	"enrollment-waitlist/tests/common/builder"
	"enrollment-waitlist/tests/common/httptest"
	"enrollment-waitlist/tests/common/testutil"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

// ================================================================================
// TestEnroll
// ================================================================================

func (s *HandlerTestSuite) TestEnroll() {
	url := "/api/courses/Algorithms/enrollments"
	reqBody := reqdto.EnrollRequest{Student: "alice"}

	result := &commands.EnrollResult{
		RecordID: builder.SeqID(1),
		CourseID: builder.SeqID(7),
		Leader:   "B",
		Status:   enrollment.StatusAccepted,
		Position: 1,
		Capacity: 2,
		Changes: []enrollment.StatusChange{
			{RecordID: builder.SeqID(1), Student: "alice", From: enrollment.StatusPending, To: enrollment.StatusAccepted},
		},
		Replication: replication.Report{Applied: []string{"A"}},
	}

	s.Run("success: returns 201 with status and position", func() {
		s.mockEnroll.EXPECT().Enroll(gomock.Any(), commands.EnrollRequest{
			Leader:  "B",
			Student: "alice",
			Course:  "Algorithms",
		}).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "B")

		var body resdto.EnrollResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(builder.SeqID(1).String(), body.RecordID)
		s.Equal("ACCEPTED", body.Status)
		s.Equal(1, body.Position)
		s.Require().Len(body.Changes, 1)
		s.Equal("PENDING", body.Changes[0].From)
		s.Equal("ACCEPTED", body.Changes[0].To)
		s.Equal([]string{"A"}, body.Replication.Applied)
	})

	s.Run("validation", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: student (required)", mutate: testutil.Field("student", nil)},
			{name: "empty student", mutate: testutil.Field("student", "")},
			{name: "student too long", mutate: testutil.Field("student", strings.Repeat("x", 201))},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []errorCase{
			{"duplicate registration", errs.Wrap(errs.ErrDuplicateRegistration, "alice"), http.StatusConflict, "already registered"},
			{"unknown course", errs.Wrap(errs.ErrCourseNotFound, "Algorithms"), http.StatusNotFound, "Course not found"},
			{"invalid student name", enrollment.ErrInvalidStudentName, http.StatusBadRequest, "Invalid request"},
			{"entry leader unreachable", errs.Wrap(errs.ErrLeaderUnreachable, "B"), http.StatusServiceUnavailable, "Leader unreachable"},
			{"local write failed", errs.Mark(errors.New("insert failed"), errs.ErrPersistenceFailure), http.StatusInternalServerError, "Persistence failure"},
			{"unclassified", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockEnroll.EXPECT().Enroll(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestRemove
// ================================================================================

func (s *HandlerTestSuite) TestRemove() {
	url := "/api/courses/Algorithms/enrollments/alice"

	result := &commands.RemoveResult{
		CourseID: builder.SeqID(7),
		Leader:   "A",
		Removed:  []uuid.UUID{builder.SeqID(1)},
		Changes: []enrollment.StatusChange{
			{RecordID: builder.SeqID(3), Student: "carol", From: enrollment.StatusRejected, To: enrollment.StatusAccepted},
		},
		Replication: replication.Report{Applied: []string{"B"}},
	}

	s.Run("success: returns removed ids and promotions", func() {
		s.mockRemoval.EXPECT().Remove(gomock.Any(), commands.RemoveRequest{
			Student: "alice",
			Course:  "Algorithms",
		}).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")

		var body resdto.RemoveResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal([]string{builder.SeqID(1).String()}, body.Removed)
		s.Require().Len(body.Changes, 1)
		s.Equal("carol", body.Changes[0].Student)
		s.Equal("ACCEPTED", body.Changes[0].To)
	})

	s.Run("error: 404 when the student holds no active record", func() {
		s.mockRemoval.EXPECT().Remove(gomock.Any(), gomock.Any()).
			Return(nil, errs.Wrap(errs.ErrRecordNotFound, "alice")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Enrollment not found")
	})

	s.Run("error: 503 keeps the committed removal in detail", func() {
		partial := *result
		partial.Changes = nil
		s.mockRemoval.EXPECT().Remove(gomock.Any(), gomock.Any()).
			Return(&partial, errs.Wrap(errs.ErrLeaderUnreachable, "re-rank")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		errBody := httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Leader unreachable")

		var detail resdto.RemoveResponse
		s.Require().NoError(json.Unmarshal(errBody.Detail, &detail))
		s.Equal([]string{builder.SeqID(1).String()}, detail.Removed)
		s.Empty(detail.Changes)
	})
}
