package response

import (
	"enrollment-waitlist/internal/usecase/commands"
	"enrollment-waitlist/internal/usecase/readmodel"
)

type CourseResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Capacity   int    `json:"capacity"`
	ModifiedAt string `json:"modified_at"`
}

func FromCourseViews(views []readmodel.CourseView) ([]CourseResponse, error) {
	if len(views) == 0 {
		return []CourseResponse{}, nil
	}
	res, err := copyInto[[]CourseResponse](views)
	if err != nil {
		return nil, err
	}
	return *res, nil
}

type CreateCourseResponse struct {
	CourseID    string              `json:"course_id"`
	Name        string              `json:"name"`
	Capacity    int                 `json:"capacity"`
	Leader      string              `json:"leader"`
	Replication ReplicationResponse `json:"replication" copier:"-"`
}

func FromCreateCourseResult(r *commands.CreateCourseResult) (*CreateCourseResponse, error) {
	res, err := copyInto[CreateCourseResponse](r)
	if err != nil {
		return nil, err
	}
	res.Replication = FromReport(r.Replication)
	return res, nil
}

type DeleteCourseResponse struct {
	CourseID    string              `json:"course_id"`
	Leader      string              `json:"leader"`
	Mode        string              `json:"mode"`
	Replication ReplicationResponse `json:"replication" copier:"-"`
}

func FromDeleteCourseResult(r *commands.DeleteCourseResult) (*DeleteCourseResponse, error) {
	res, err := copyInto[DeleteCourseResponse](r)
	if err != nil {
		return nil, err
	}
	res.Replication = FromReport(r.Replication)
	return res, nil
}
