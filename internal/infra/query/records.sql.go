package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const recordColumns = `id, course_id, student_name, submitted_at, status, modified_at`

func scanRecord(row interface{ Scan(...any) error }) (EnrollmentRecord, error) {
	var r EnrollmentRecord
	err := row.Scan(&r.ID, &r.CourseID, &r.StudentName, &r.SubmittedAt, &r.Status, &r.ModifiedAt)
	return r, err
}

func (q *Queries) listRecords(ctx context.Context, db DBTX, sql string, args ...any) ([]EnrollmentRecord, error) {
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []EnrollmentRecord
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listRecordsByCourse = `SELECT ` + recordColumns + `
FROM enrollment_records
WHERE course_id = $1
ORDER BY submitted_at, id`

func (q *Queries) ListRecordsByCourse(ctx context.Context, db DBTX, courseID uuid.UUID) ([]EnrollmentRecord, error) {
	return q.listRecords(ctx, db, listRecordsByCourse, courseID)
}

const listAllRecords = `SELECT ` + recordColumns + `
FROM enrollment_records
ORDER BY course_id, submitted_at, id`

func (q *Queries) ListAllRecords(ctx context.Context, db DBTX) ([]EnrollmentRecord, error) {
	return q.listRecords(ctx, db, listAllRecords)
}

const listActiveRecordIDs = `SELECT id
FROM enrollment_records
WHERE course_id = $1 AND student_name = $2 AND status <> 'REMOVED'
ORDER BY submitted_at, id`

func (q *Queries) ListActiveRecordIDs(ctx context.Context, db DBTX, courseID uuid.UUID, studentName string) ([]uuid.UUID, error) {
	rows, err := db.Query(ctx, listActiveRecordIDs, courseID, studentName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

const insertRecord = `INSERT INTO enrollment_records (` + recordColumns + `)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (id) DO NOTHING`

type InsertRecordParams struct {
	ID          uuid.UUID
	CourseID    uuid.UUID
	StudentName string
	SubmittedAt pgtype.Timestamptz
	Status      string
	ModifiedAt  pgtype.Timestamptz
}

func (q *Queries) InsertRecord(ctx context.Context, db DBTX, arg InsertRecordParams) error {
	_, err := db.Exec(ctx, insertRecord,
		arg.ID,
		arg.CourseID,
		arg.StudentName,
		arg.SubmittedAt,
		arg.Status,
		arg.ModifiedAt,
	)
	return err
}

// updateRecordStatus never resurrects a REMOVED record.
const updateRecordStatus = `UPDATE enrollment_records
SET status = $2, modified_at = $3
WHERE id = $1 AND status <> 'REMOVED'`

func (q *Queries) UpdateRecordStatus(ctx context.Context, db DBTX, id uuid.UUID, status string, modifiedAt pgtype.Timestamptz) error {
	_, err := db.Exec(ctx, updateRecordStatus, id, status, modifiedAt)
	return err
}

const markRecordsRemoved = `UPDATE enrollment_records
SET status = 'REMOVED', modified_at = $2
WHERE id = ANY($1::uuid[]) AND status <> 'REMOVED'`

func (q *Queries) MarkRecordsRemoved(ctx context.Context, db DBTX, ids []pgtype.UUID, modifiedAt pgtype.Timestamptz) (int64, error) {
	tag, err := db.Exec(ctx, markRecordsRemoved, ids, modifiedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const cascadeRemoveCourseRecords = `UPDATE enrollment_records
SET status = 'REMOVED', modified_at = $2
WHERE course_id = $1 AND status <> 'REMOVED'`

func (q *Queries) CascadeRemoveCourseRecords(ctx context.Context, db DBTX, courseID uuid.UUID, modifiedAt pgtype.Timestamptz) error {
	_, err := db.Exec(ctx, cascadeRemoveCourseRecords, courseID, modifiedAt)
	return err
}
