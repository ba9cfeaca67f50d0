//go:build unit

package api_test

import (
	"errors"
	"net/http"

	"enrollment-waitlist/internal/domain/course"
	resdto "enrollment-waitlist/internal/handler/dto/response"
	"enrollment-waitlist/internal/pkg/errs"
	"enrollment-waitlist/internal/usecase/commands"
	"enrollment-waitlist/internal/usecase/readmodel"
	"enrollment-waitlist/internal/usecase/replication"
	"enrollment-waitlist/tests/common/builder"
	"enrollment-waitlist/tests/common/httptest"
	"enrollment-waitlist/tests/common/testutil"

	"go.uber.org/mock/gomock"
)

// ================================================================================
// TestListCourses
// ================================================================================

func (s *HandlerTestSuite) TestListCourses() {
	url := "/api/courses"

	s.Run("success: lists the catalog of the leader named in X-Leader-ID", func() {
		views := []readmodel.CourseView{
			{ID: builder.SeqID(1), Name: "Algorithms", Capacity: 2, ModifiedAt: builder.At(0).Time()},
		}
		s.mockQueries.EXPECT().ListCatalog(gomock.Any(), "B").Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "B")

		var body []resdto.CourseResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(builder.SeqID(1).String(), body[0].ID)
		s.Equal("Algorithms", body[0].Name)
		s.Equal("2025-01-06T09:00:00.000000Z", body[0].ModifiedAt)
	})

	s.Run("success: empty catalog is an empty array", func() {
		s.mockQueries.EXPECT().ListCatalog(gomock.Any(), "").Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("error: 503 when the leader is unreachable", func() {
		s.mockQueries.EXPECT().ListCatalog(gomock.Any(), "B").
			Return(nil, errs.Wrap(errs.ErrLeaderUnreachable, "leader B")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "B")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Leader unreachable")
	})
}

// ================================================================================
// TestCreateCourse
// ================================================================================

func (s *HandlerTestSuite) TestCreateCourse() {
	url := "/api/courses"

	reqBody := builder.NewCourseBuilder().WithName("Algorithms").WithCapacity(2).BuildCreateRequestDTO()
	result := &commands.CreateCourseResult{
		CourseID:    builder.SeqID(7),
		Name:        "Algorithms",
		Capacity:    2,
		Leader:      "A",
		Replication: replication.Report{Applied: []string{"B"}},
	}

	s.Run("success: returns 201 with the replication report", func() {
		s.mockCourses.EXPECT().CreateCourse(gomock.Any(), commands.CreateCourseRequest{
			Name:     "Algorithms",
			Capacity: 2,
		}).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.CreateCourseResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(builder.SeqID(7).String(), body.CourseID)
		s.Equal("A", body.Leader)
		s.Equal([]string{"B"}, body.Replication.Applied)
		s.Empty(body.Replication.Failed)
	})

	s.Run("success: reports peers that missed the course", func() {
		partial := *result
		partial.Replication = replication.Report{
			Failed: []replication.Failure{{Leader: "B", Err: errs.ErrLeaderUnreachable}},
		}
		s.mockCourses.EXPECT().CreateCourse(gomock.Any(), gomock.Any()).Return(&partial, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.CreateCourseResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Require().Len(body.Replication.Failed, 1)
		s.Equal("B", body.Replication.Failed[0].Leader)
		s.Equal("leader unreachable", body.Replication.Failed[0].Error)
	})

	s.Run("validation", func() {
		cases := []struct {
			name       string
			mutate     func(m map[string]any)
			expectCode int
		}{
			{name: "capacity 0 is allowed", mutate: testutil.Field("capacity", 0), expectCode: http.StatusCreated},
			{name: "negative capacity", mutate: testutil.Field("capacity", -1), expectCode: http.StatusBadRequest},
			{name: "missing field: capacity (required)", mutate: testutil.Field("capacity", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: name (required)", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
			{name: "empty name", mutate: testutil.Field("name", ""), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				if tc.expectCode == http.StatusCreated {
					s.mockCourses.EXPECT().CreateCourse(gomock.Any(), gomock.Any()).Return(result, nil).Times(1)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
				if tc.expectCode == http.StatusCreated {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
				}
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []errorCase{
			{"course exists", errs.Wrap(errs.ErrCourseExists, "Algorithms"), http.StatusConflict, "Course already exists"},
			{"domain validation", course.ErrInvalidCapacity, http.StatusBadRequest, "Invalid request"},
			{"unknown leader", errs.Wrap(errs.ErrUnknownLeader, "Z"), http.StatusBadRequest, "Unknown leader"},
			{"persistence failure", errs.Mark(errors.New("disk full"), errs.ErrPersistenceFailure), http.StatusInternalServerError, "Persistence failure"},
			{"unclassified", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCourses.EXPECT().CreateCourse(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestDeleteCourse
// ================================================================================

func (s *HandlerTestSuite) TestDeleteCourse() {
	s.Run("success: passes mode and entry leader through", func() {
		s.mockCourses.EXPECT().DeleteCourse(gomock.Any(), commands.DeleteCourseRequest{
			Leader: "B",
			Course: "Algorithms",
			Mode:   "hard",
		}).Return(&commands.DeleteCourseResult{
			CourseID:    builder.SeqID(7),
			Leader:      "B",
			Mode:        course.DeleteHard,
			Replication: replication.Report{Applied: []string{"A"}},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/courses/Algorithms?mode=hard", nil, "B")

		var body resdto.DeleteCourseResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("hard", body.Mode)
		s.Equal([]string{"A"}, body.Replication.Applied)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []errorCase{
			{"unknown course", errs.Wrap(errs.ErrCourseNotFound, "Algorithms"), http.StatusNotFound, "Course not found"},
			{"bad mode", course.ErrInvalidDeleteMode, http.StatusBadRequest, "Invalid request"},
			{"entry leader down", errs.Wrap(errs.ErrLeaderUnreachable, "A"), http.StatusServiceUnavailable, "Leader unreachable"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCourses.EXPECT().DeleteCourse(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/courses/Algorithms", nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestCourseQueue
// ================================================================================

func (s *HandlerTestSuite) TestCourseQueue() {
	s.Run("success: returns reconciled entries", func() {
		view := &readmodel.QueueView{
			Course: readmodel.CourseView{ID: builder.SeqID(7), Name: "Algorithms", Capacity: 1},
			Entries: []readmodel.QueueEntry{
				{RecordID: builder.SeqID(1), Student: "alice", SubmittedAt: builder.At(1).Time(), Stored: "ACCEPTED", Computed: "ACCEPTED", Rank: 1},
				{RecordID: builder.SeqID(2), Student: "bob", SubmittedAt: builder.At(2).Time(), Stored: "ACCEPTED", Computed: "REJECTED", Rank: 2, Divergent: true},
			},
			Accepted:  1,
			Remaining: 0,
			Reached:   []string{"A", "B"},
			Skipped:   []string{},
		}
		s.mockQueries.EXPECT().CourseQueue(gomock.Any(), "", "Algorithms").Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/courses/Algorithms/queue", nil, "")

		var body resdto.QueueResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(builder.SeqID(7).String(), body.Course.ID)
		s.Require().Len(body.Entries, 2)
		s.Equal(builder.SeqID(2).String(), body.Entries[1].RecordID)
		s.Equal("2025-01-06T09:00:02.000000Z", body.Entries[1].SubmittedAt)
		s.True(body.Entries[1].Divergent)
		s.Equal([]string{"A", "B"}, body.Reached)
	})

	s.Run("error: 404 for an unknown course", func() {
		s.mockQueries.EXPECT().CourseQueue(gomock.Any(), "", "Nope").
			Return(nil, errs.Wrap(errs.ErrCourseNotFound, "Nope")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/courses/Nope/queue", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Course not found")
	})
}
