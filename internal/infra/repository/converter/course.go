package converter

import (
	"enrollment-waitlist/internal/domain/course"
	"enrollment-waitlist/internal/infra/query"
	"enrollment-waitlist/internal/pkg/pgconv"
)

func CourseToInsertParams(c *course.Course) query.InsertCourseParams {
	return query.InsertCourseParams{
		ID:         c.ID(),
		Name:       c.Name().String(),
		Capacity:   int32(c.Capacity().Value()), // #nosec G115 -- bounded by course.NewCapacity
		ModifiedAt: pgconv.InstantToPgtype(c.ModifiedAt()),
	}
}

func CourseFromRow(row query.Course) *course.Course {
	return course.Reconstruct(row.ID, row.Name, int(row.Capacity), row.IsDeleted, pgconv.InstantFromPgtype(row.ModifiedAt))
}

func CoursesFromRows(rows []query.Course) []*course.Course {
	out := make([]*course.Course, 0, len(rows))
	for _, row := range rows {
		out = append(out, CourseFromRow(row))
	}
	return out
}

func TombstoneFromRow(row query.CourseTombstone) course.Tombstone {
	return course.Tombstone{CourseID: row.CourseID, DeletedAt: pgconv.InstantFromPgtype(row.DeletedAt)}
}
