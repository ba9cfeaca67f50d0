package repository

import (
	"context"

	"enrollment-waitlist/internal/domain/enrollment"
	"enrollment-waitlist/internal/infra"
	"enrollment-waitlist/internal/infra/query"
	"enrollment-waitlist/internal/infra/repository/converter"
	"enrollment-waitlist/internal/pkg/clock"
	"enrollment-waitlist/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=record.go -destination=../../../tests/mock/repository/mock_record_queries.go -package=repositorymock

type RecordWriteQueries interface {
	InsertRecord(ctx context.Context, db query.DBTX, arg query.InsertRecordParams) error
	UpdateRecordStatus(ctx context.Context, db query.DBTX, id uuid.UUID, status string, modifiedAt pgtype.Timestamptz) error
	ListActiveRecordIDs(ctx context.Context, db query.DBTX, courseID uuid.UUID, studentName string) ([]uuid.UUID, error)
	MarkRecordsRemoved(ctx context.Context, db query.DBTX, ids []pgtype.UUID, modifiedAt pgtype.Timestamptz) (int64, error)
	CascadeRemoveCourseRecords(ctx context.Context, db query.DBTX, courseID uuid.UUID, modifiedAt pgtype.Timestamptz) error
}

type RecordRepository struct {
	queries RecordWriteQueries
	db      query.DBTX
}

func NewRecordRepository(queries RecordWriteQueries, db query.DBTX) *RecordRepository {
	return &RecordRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RecordRepository) Insert(ctx context.Context, rec enrollment.Record) error {
	if err := r.queries.InsertRecord(ctx, r.db, converter.RecordToInsertParams(rec)); err != nil {
		return infra.WrapRepoErr("failed to insert enrollment record", err)
	}
	return nil
}

func (r *RecordRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enrollment.Status, at clock.Instant) error {
	if !status.IsValid() {
		return infra.WrapRepoErr("refusing to store invalid status "+status.String(), enrollment.ErrInvalidStatus, infra.KindDBFailure)
	}
	if err := r.queries.UpdateRecordStatus(ctx, r.db, id, status.String(), pgconv.InstantToPgtype(at)); err != nil {
		return infra.WrapRepoErr("failed to update enrollment status", err)
	}
	return nil
}

func (r *RecordRepository) ActiveIDs(ctx context.Context, courseID uuid.UUID, student string) ([]uuid.UUID, error) {
	ids, err := r.queries.ListActiveRecordIDs(ctx, r.db, courseID, student)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active enrollment ids", err)
	}
	return ids, nil
}

func (r *RecordRepository) MarkRemoved(ctx context.Context, ids []uuid.UUID, at clock.Instant) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := r.queries.MarkRecordsRemoved(ctx, r.db, pgconv.UUIDsToPgtype(ids), pgconv.InstantToPgtype(at)); err != nil {
		return infra.WrapRepoErr("failed to mark enrollment records removed", err)
	}
	return nil
}

func (r *RecordRepository) CascadeRemoved(ctx context.Context, courseID uuid.UUID, at clock.Instant) error {
	if err := r.queries.CascadeRemoveCourseRecords(ctx, r.db, courseID, pgconv.InstantToPgtype(at)); err != nil {
		return infra.WrapRepoErr("failed to cascade removal to enrollment records", err)
	}
	return nil
}
