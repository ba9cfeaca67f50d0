package query

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Course struct {
	ID         uuid.UUID          `json:"id"`
	Name       string             `json:"name"`
	Capacity   int32              `json:"capacity"`
	IsDeleted  bool               `json:"is_deleted"`
	ModifiedAt pgtype.Timestamptz `json:"modified_at"`
}

type EnrollmentRecord struct {
	ID          uuid.UUID          `json:"id"`
	CourseID    uuid.UUID          `json:"course_id"`
	StudentName string             `json:"student_name"`
	SubmittedAt pgtype.Timestamptz `json:"submitted_at"`
	Status      string             `json:"status"`
	ModifiedAt  pgtype.Timestamptz `json:"modified_at"`
}

type CourseTombstone struct {
	CourseID  uuid.UUID          `json:"course_id"`
	DeletedAt pgtype.Timestamptz `json:"deleted_at"`
}
