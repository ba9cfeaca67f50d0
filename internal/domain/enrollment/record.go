package enrollment

import (
	"bytes"
	"slices"
	"strings"
	"unicode/utf8"

	"enrollment-waitlist/internal/pkg/clock"
	"enrollment-waitlist/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxStudentNameLength = 100

var ErrInvalidStudentName = errs.Mark(errs.New("student name must be between 1 and 100 characters"), errs.ErrDomainValidation)

// Record is one registration attempt as stored by a leader.
// Divergent is never persisted; Merge sets it when leaders disagree about the record.
type Record struct {
	ID          uuid.UUID
	CourseID    uuid.UUID
	Student     string
	SubmittedAt clock.Instant
	Status      Status
	ModifiedAt  clock.Instant
	Divergent   bool
}

func NormalizeStudentName(s string) (string, error) {
	t := strings.TrimSpace(s)
	if t == "" || utf8.RuneCountInString(t) > MaxStudentNameLength {
		return "", ErrInvalidStudentName
	}
	return t, nil
}

// NewCandidate builds the PENDING record for a new attempt. A nil id mints a fresh one.
func NewCandidate(id, courseID uuid.UUID, student string, at clock.Instant) (Record, error) {
	name, err := NormalizeStudentName(student)
	if err != nil {
		return Record{}, err
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return Record{
		ID:          id,
		CourseID:    courseID,
		Student:     name,
		SubmittedAt: at,
		Status:      StatusPending,
		ModifiedAt:  at,
	}, nil
}

func (r Record) IsActive() bool {
	return r.Status.IsActive()
}

// Compare orders records by submission instant, then by id bytes.
func Compare(a, b Record) int {
	if c := a.SubmittedAt.Compare(b.SubmittedAt); c != 0 {
		return c
	}
	return bytes.Compare(a.ID[:], b.ID[:])
}

func SortCanonical(records []Record) {
	slices.SortFunc(records, Compare)
}

// FindActive returns the first non-REMOVED record of student.
func FindActive(records []Record, student string) (Record, bool) {
	for _, r := range records {
		if r.IsActive() && r.Student == student {
			return r, true
		}
	}
	return Record{}, false
}
