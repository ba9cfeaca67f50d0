package readstore

import (
	"context"

	"enrollment-waitlist/internal/domain/course"
	"enrollment-waitlist/internal/domain/enrollment"
	"enrollment-waitlist/internal/infra"
	"enrollment-waitlist/internal/infra/query"
	"enrollment-waitlist/internal/infra/repository/converter"
	"enrollment-waitlist/internal/pkg/clock"
	"enrollment-waitlist/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=leader.go -destination=../../../tests/mock/readstore/mock_leader_queries.go -package=readstoremock

type LeaderQueries interface {
	GetActiveCourseByName(ctx context.Context, db query.DBTX, name string) (query.Course, error)
	GetCourseByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Course, error)
	ListActiveCourses(ctx context.Context, db query.DBTX) ([]query.Course, error)
	ListRecordsByCourse(ctx context.Context, db query.DBTX, courseID uuid.UUID) ([]query.EnrollmentRecord, error)
	ListAllRecords(ctx context.Context, db query.DBTX) ([]query.EnrollmentRecord, error)
	ListTombstones(ctx context.Context, db query.DBTX) ([]query.CourseTombstone, error)
	Now(ctx context.Context, db query.DBTX) (pgtype.Timestamptz, error)
}

// LeaderReadStore serves the reads of one leader over a pool or a transaction.
type LeaderReadStore struct {
	queries LeaderQueries
	db      query.DBTX
}

func NewLeaderReadStore(queries LeaderQueries, db query.DBTX) *LeaderReadStore {
	return &LeaderReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *LeaderReadStore) CourseByName(ctx context.Context, name string) (*course.Course, error) {
	row, err := r.queries.GetActiveCourseByName(ctx, r.db, name)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("course not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get course by name", err)
	}
	return converter.CourseFromRow(row), nil
}

func (r *LeaderReadStore) CourseByID(ctx context.Context, id uuid.UUID) (*course.Course, error) {
	row, err := r.queries.GetCourseByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("course not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get course by id", err)
	}
	return converter.CourseFromRow(row), nil
}

func (r *LeaderReadStore) ListCourses(ctx context.Context) ([]*course.Course, error) {
	rows, err := r.queries.ListActiveCourses(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list courses", err)
	}
	return converter.CoursesFromRows(rows), nil
}

func (r *LeaderReadStore) ListRecords(ctx context.Context, courseID uuid.UUID) ([]enrollment.Record, error) {
	rows, err := r.queries.ListRecordsByCourse(ctx, r.db, courseID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list enrollment records", err)
	}
	return converter.RecordsFromRows(rows), nil
}

func (r *LeaderReadStore) ListAllRecords(ctx context.Context) ([]enrollment.Record, error) {
	rows, err := r.queries.ListAllRecords(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list all enrollment records", err)
	}
	return converter.RecordsFromRows(rows), nil
}

func (r *LeaderReadStore) ListTombstones(ctx context.Context) ([]course.Tombstone, error) {
	rows, err := r.queries.ListTombstones(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tombstones", err)
	}
	out := make([]course.Tombstone, 0, len(rows))
	for _, row := range rows {
		out = append(out, converter.TombstoneFromRow(row))
	}
	return out, nil
}

func (r *LeaderReadStore) Now(ctx context.Context) (clock.Instant, error) {
	ts, err := r.queries.Now(ctx, r.db)
	if err != nil {
		return clock.Instant{}, infra.WrapRepoErr("failed to read leader clock", err)
	}
	return pgconv.InstantFromPgtype(ts), nil
}
