package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const courseColumns = `id, name, capacity, is_deleted, modified_at`

func scanCourse(row interface{ Scan(...any) error }) (Course, error) {
	var c Course
	err := row.Scan(&c.ID, &c.Name, &c.Capacity, &c.IsDeleted, &c.ModifiedAt)
	return c, err
}

const getActiveCourseByName = `SELECT ` + courseColumns + `
FROM courses
WHERE name = $1 AND NOT is_deleted`

func (q *Queries) GetActiveCourseByName(ctx context.Context, db DBTX, name string) (Course, error) {
	return scanCourse(db.QueryRow(ctx, getActiveCourseByName, name))
}

const getCourseByID = `SELECT ` + courseColumns + `
FROM courses
WHERE id = $1`

func (q *Queries) GetCourseByID(ctx context.Context, db DBTX, id uuid.UUID) (Course, error) {
	return scanCourse(db.QueryRow(ctx, getCourseByID, id))
}

const listActiveCourses = `SELECT ` + courseColumns + `
FROM courses c
WHERE NOT c.is_deleted
  AND NOT EXISTS (SELECT 1 FROM course_tombstones t WHERE t.course_id = c.id)
ORDER BY c.name`

func (q *Queries) ListActiveCourses(ctx context.Context, db DBTX) ([]Course, error) {
	rows, err := db.Query(ctx, listActiveCourses)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// insertCourse ignores both an existing id and an active course with the same name.
const insertCourse = `INSERT INTO courses (` + courseColumns + `)
VALUES ($1, $2, $3, FALSE, $4)
ON CONFLICT DO NOTHING`

type InsertCourseParams struct {
	ID         uuid.UUID
	Name       string
	Capacity   int32
	ModifiedAt pgtype.Timestamptz
}

func (q *Queries) InsertCourse(ctx context.Context, db DBTX, arg InsertCourseParams) (int64, error) {
	tag, err := db.Exec(ctx, insertCourse, arg.ID, arg.Name, arg.Capacity, arg.ModifiedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const markCourseDeleted = `UPDATE courses
SET is_deleted = TRUE, modified_at = $2
WHERE id = $1 AND NOT is_deleted`

func (q *Queries) MarkCourseDeleted(ctx context.Context, db DBTX, id uuid.UUID, modifiedAt pgtype.Timestamptz) error {
	_, err := db.Exec(ctx, markCourseDeleted, id, modifiedAt)
	return err
}

// deleteCourse relies on ON DELETE CASCADE for enrollment_records.
const deleteCourse = `DELETE FROM courses WHERE id = $1`

func (q *Queries) DeleteCourse(ctx context.Context, db DBTX, id uuid.UUID) error {
	_, err := db.Exec(ctx, deleteCourse, id)
	return err
}
