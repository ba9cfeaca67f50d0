package response

import (
	"enrollment-waitlist/internal/usecase/readmodel"
)

type QueueEntryResponse struct {
	RecordID    string `json:"record_id"`
	Student     string `json:"student"`
	SubmittedAt string `json:"submitted_at"`
	Stored      string `json:"stored"`
	Computed    string `json:"computed"`
	Rank        int    `json:"rank"`
	Divergent   bool   `json:"divergent"`
}

type QueueResponse struct {
	Course    CourseResponse       `json:"course"`
	Entries   []QueueEntryResponse `json:"entries"`
	Accepted  int                  `json:"accepted"`
	Remaining int                  `json:"remaining"`
	Reached   []string             `json:"reached"`
	Skipped   []string             `json:"skipped"`
}

func FromQueueView(v *readmodel.QueueView) (*QueueResponse, error) {
	return copyInto[QueueResponse](v)
}

type StudentStatusResponse struct {
	Student     string `json:"student"`
	Status      string `json:"status"`
	SubmittedAt string `json:"submitted_at"`
}

type CourseReportResponse struct {
	Course    CourseResponse          `json:"course"`
	Accepted  int                     `json:"accepted"`
	Remaining int                     `json:"remaining"`
	Students  []StudentStatusResponse `json:"students"`
}

type ReportResponse struct {
	Leader  string                 `json:"leader"`
	Courses []CourseReportResponse `json:"courses"`
}

func FromReportView(v *readmodel.ReportView) (*ReportResponse, error) {
	return copyInto[ReportResponse](v)
}

type RecordResponse struct {
	ID          string `json:"id"`
	Student     string `json:"student"`
	SubmittedAt string `json:"submitted_at"`
	Status      string `json:"status"`
	ModifiedAt  string `json:"modified_at"`
}

type CourseStateResponse struct {
	CourseID   string           `json:"course_id"`
	CourseName string           `json:"course_name"`
	Deleted    bool             `json:"deleted"`
	Records    []RecordResponse `json:"records"`
}

type TombstoneResponse struct {
	CourseID  string `json:"course_id"`
	DeletedAt string `json:"deleted_at"`
}

type LeaderStateResponse struct {
	Leader     string                `json:"leader"`
	Courses    []CourseStateResponse `json:"courses"`
	Tombstones []TombstoneResponse   `json:"tombstones"`
}

func FromLeaderStateView(v *readmodel.LeaderStateView) (*LeaderStateResponse, error) {
	return copyInto[LeaderStateResponse](v)
}
