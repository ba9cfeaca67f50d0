package shared

import (
	"context"

	"enrollment-waitlist/internal/domain/course"
	"enrollment-waitlist/internal/domain/enrollment"
	"enrollment-waitlist/internal/pkg/clock"

	"github.com/google/uuid"
)

//go:generate mockgen -source=leader.go -destination=../../../tests/mock/shared/mock_leader.go -package=sharedmock

// Leader is one independently writable storage node.
type Leader interface {
	ID() string
	// Within runs fn in one ReadCommitted transaction; a returned error rolls it back.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Reads runs single statements outside any explicit transaction.
	Reads() Reads
}

// Cluster resolves leader ids to leaders. Ids keep configuration order.
type Cluster interface {
	LocalID() string
	IDs() []string
	// Peers returns every id except of.
	Peers(of string) []string
	// Leader returns a reachable leader, or an error of kind UNREACHABLE once the
	// connect timeout elapses. Unknown ids fail with errs.ErrUnknownLeader.
	Leader(ctx context.Context, id string) (Leader, error)
}

type Tx interface {
	Reads() Reads
	Records() RecordRepository
	Courses() CourseRepository
	Tombstones() TombstoneRepository
}

type Reads interface {
	// CourseByName only sees courses whose deleted flag is false.
	CourseByName(ctx context.Context, name string) (*course.Course, error)
	CourseByID(ctx context.Context, id uuid.UUID) (*course.Course, error)
	// ListCourses returns active, non-tombstoned courses ordered by name.
	ListCourses(ctx context.Context) ([]*course.Course, error)
	ListRecords(ctx context.Context, courseID uuid.UUID) ([]enrollment.Record, error)
	ListAllRecords(ctx context.Context) ([]enrollment.Record, error)
	ListTombstones(ctx context.Context) ([]course.Tombstone, error)
	// Now reads the leader's own clock.
	Now(ctx context.Context) (clock.Instant, error)
}

type RecordRepository interface {
	// Insert is a no-op when the id already exists.
	Insert(ctx context.Context, r enrollment.Record) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status enrollment.Status, at clock.Instant) error
	// ActiveIDs lists the ids of a student's non-REMOVED records for a course.
	ActiveIDs(ctx context.Context, courseID uuid.UUID, student string) ([]uuid.UUID, error)
	MarkRemoved(ctx context.Context, ids []uuid.UUID, at clock.Instant) error
	CascadeRemoved(ctx context.Context, courseID uuid.UUID, at clock.Instant) error
}

type CourseRepository interface {
	// Create reports false when an active course with the same name or id already exists.
	Create(ctx context.Context, c *course.Course) (bool, error)
	MarkDeleted(ctx context.Context, id uuid.UUID, at clock.Instant) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type TombstoneRepository interface {
	// Upsert keeps the latest deletion instant.
	Upsert(ctx context.Context, t course.Tombstone) error
}
