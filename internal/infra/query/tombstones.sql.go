package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const upsertTombstone = `INSERT INTO course_tombstones (course_id, deleted_at)
VALUES ($1, $2)
ON CONFLICT (course_id) DO UPDATE
SET deleted_at = GREATEST(course_tombstones.deleted_at, EXCLUDED.deleted_at)`

func (q *Queries) UpsertTombstone(ctx context.Context, db DBTX, courseID uuid.UUID, deletedAt pgtype.Timestamptz) error {
	_, err := db.Exec(ctx, upsertTombstone, courseID, deletedAt)
	return err
}

const listTombstones = `SELECT course_id, deleted_at
FROM course_tombstones
ORDER BY deleted_at, course_id`

func (q *Queries) ListTombstones(ctx context.Context, db DBTX) ([]CourseTombstone, error) {
	rows, err := db.Query(ctx, listTombstones)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CourseTombstone
	for rows.Next() {
		var t CourseTombstone
		if err := rows.Scan(&t.CourseID, &t.DeletedAt); err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
