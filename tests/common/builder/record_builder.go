//go:build unit || e2e

package builder

import (
	"time"

	"enrollment-waitlist/internal/domain/enrollment"
	"enrollment-waitlist/internal/pkg/clock"

	"github.com/google/uuid"
)

// BaseTime anchors every builder timestamp so tests stay deterministic.
var BaseTime = time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)

// At returns BaseTime shifted by seconds as an Instant.
func At(seconds int) clock.Instant {
	return clock.InstantOf(BaseTime.Add(time.Duration(seconds) * time.Second))
}

type RecordBuilder struct {
	ID          uuid.UUID
	CourseID    uuid.UUID
	Student     string
	SubmittedAt clock.Instant
	Status      enrollment.Status
	ModifiedAt  clock.Instant
}

func NewRecordBuilder() *RecordBuilder {
	return &RecordBuilder{
		ID:          uuid.New(),
		CourseID:    uuid.New(),
		Student:     "alice",
		SubmittedAt: At(0),
		Status:      enrollment.StatusPending,
		ModifiedAt:  At(0),
	}
}

func (r *RecordBuilder) With(mutate func(*RecordBuilder)) *RecordBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *RecordBuilder) Build() enrollment.Record {
	return enrollment.Record{
		ID:          r.ID,
		CourseID:    r.CourseID,
		Student:     r.Student,
		SubmittedAt: r.SubmittedAt,
		Status:      r.Status,
		ModifiedAt:  r.ModifiedAt,
	}
}

func (r *RecordBuilder) BuildCandidate() (enrollment.Record, error) {
	return enrollment.NewCandidate(r.ID, r.CourseID, r.Student, r.SubmittedAt)
}

// Fluent builder methods
func (r *RecordBuilder) WithID(id uuid.UUID) *RecordBuilder {
	r.ID = id
	return r
}

func (r *RecordBuilder) WithCourseID(courseID uuid.UUID) *RecordBuilder {
	r.CourseID = courseID
	return r
}

func (r *RecordBuilder) WithStudent(student string) *RecordBuilder {
	r.Student = student
	return r
}

// SubmittedAfter sets both instants to BaseTime plus seconds.
func (r *RecordBuilder) SubmittedAfter(seconds int) *RecordBuilder {
	r.SubmittedAt = At(seconds)
	r.ModifiedAt = At(seconds)
	return r
}

func (r *RecordBuilder) ModifiedAfter(seconds int) *RecordBuilder {
	r.ModifiedAt = At(seconds)
	return r
}

func (r *RecordBuilder) WithStatus(status enrollment.Status) *RecordBuilder {
	r.Status = status
	return r
}

func (r *RecordBuilder) AsAccepted() *RecordBuilder {
	r.Status = enrollment.StatusAccepted
	return r
}

func (r *RecordBuilder) AsRejected() *RecordBuilder {
	r.Status = enrollment.StatusRejected
	return r
}

func (r *RecordBuilder) AsRemoved() *RecordBuilder {
	r.Status = enrollment.StatusRemoved
	return r
}

// SeqID returns a UUID whose bytes sort by n, for tie-break tests.
func SeqID(n byte) uuid.UUID {
	var id uuid.UUID
	id[15] = n
	return id
}
