package repository

import (
	"context"

	"enrollment-waitlist/internal/domain/course"
	"enrollment-waitlist/internal/infra"
	"enrollment-waitlist/internal/infra/query"
	"enrollment-waitlist/internal/infra/repository/converter"
	"enrollment-waitlist/internal/pkg/clock"
	"enrollment-waitlist/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=course.go -destination=../../../tests/mock/repository/mock_course_queries.go -package=repositorymock

type CourseWriteQueries interface {
	InsertCourse(ctx context.Context, db query.DBTX, arg query.InsertCourseParams) (int64, error)
	MarkCourseDeleted(ctx context.Context, db query.DBTX, id uuid.UUID, modifiedAt pgtype.Timestamptz) error
	DeleteCourse(ctx context.Context, db query.DBTX, id uuid.UUID) error
	UpsertTombstone(ctx context.Context, db query.DBTX, courseID uuid.UUID, deletedAt pgtype.Timestamptz) error
}

type CourseRepository struct {
	queries CourseWriteQueries
	db      query.DBTX
}

func NewCourseRepository(queries CourseWriteQueries, db query.DBTX) *CourseRepository {
	return &CourseRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CourseRepository) Create(ctx context.Context, c *course.Course) (bool, error) {
	n, err := r.queries.InsertCourse(ctx, r.db, converter.CourseToInsertParams(c))
	if err != nil {
		return false, infra.WrapRepoErr("failed to create course", err)
	}
	return n > 0, nil
}

func (r *CourseRepository) MarkDeleted(ctx context.Context, id uuid.UUID, at clock.Instant) error {
	if err := r.queries.MarkCourseDeleted(ctx, r.db, id, pgconv.InstantToPgtype(at)); err != nil {
		return infra.WrapRepoErr("failed to mark course deleted", err)
	}
	return nil
}

func (r *CourseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.queries.DeleteCourse(ctx, r.db, id); err != nil {
		return infra.WrapRepoErr("failed to delete course", err)
	}
	return nil
}

type TombstoneRepository struct {
	queries CourseWriteQueries
	db      query.DBTX
}

func NewTombstoneRepository(queries CourseWriteQueries, db query.DBTX) *TombstoneRepository {
	return &TombstoneRepository{
		queries: queries,
		db:      db,
	}
}

func (r *TombstoneRepository) Upsert(ctx context.Context, t course.Tombstone) error {
	if err := r.queries.UpsertTombstone(ctx, r.db, t.CourseID, pgconv.InstantToPgtype(t.DeletedAt)); err != nil {
		return infra.WrapRepoErr("failed to upsert course tombstone", err)
	}
	return nil
}
