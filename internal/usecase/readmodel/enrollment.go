package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type CourseView struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Capacity   int       `json:"capacity"`
	ModifiedAt time.Time `json:"modified_at"`
}

// QueueEntry is one record of a reconciled queue. Rank is 0 for REMOVED records.
type QueueEntry struct {
	RecordID    uuid.UUID `json:"record_id"`
	Student     string    `json:"student"`
	SubmittedAt time.Time `json:"submitted_at"`
	Stored      string    `json:"stored"`
	Computed    string    `json:"computed"`
	Rank        int       `json:"rank"`
	Divergent   bool      `json:"divergent"`
}

type QueueView struct {
	Course    CourseView   `json:"course"`
	Entries   []QueueEntry `json:"entries"`
	Accepted  int          `json:"accepted"`
	Remaining int          `json:"remaining"`
	Reached   []string     `json:"reached"`
	Skipped   []string     `json:"skipped"`
}

type StudentStatus struct {
	Student     string    `json:"student"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type CourseReport struct {
	Course    CourseView      `json:"course"`
	Accepted  int             `json:"accepted"`
	Remaining int             `json:"remaining"`
	Students  []StudentStatus `json:"students"`
}

type ReportView struct {
	Leader  string         `json:"leader"`
	Courses []CourseReport `json:"courses"`
}

type RecordView struct {
	ID          uuid.UUID `json:"id"`
	Student     string    `json:"student"`
	SubmittedAt time.Time `json:"submitted_at"`
	Status      string    `json:"status"`
	ModifiedAt  time.Time `json:"modified_at"`
}

type CourseState struct {
	CourseID   uuid.UUID    `json:"course_id"`
	CourseName string       `json:"course_name"`
	Deleted    bool         `json:"deleted"`
	Records    []RecordView `json:"records"`
}

type TombstoneView struct {
	CourseID  uuid.UUID `json:"course_id"`
	DeletedAt time.Time `json:"deleted_at"`
}

// LeaderStateView is the raw content of one leader, without reconciliation.
type LeaderStateView struct {
	Leader     string          `json:"leader"`
	Courses    []CourseState   `json:"courses"`
	Tombstones []TombstoneView `json:"tombstones"`
}
