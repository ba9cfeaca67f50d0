package converter

import (
	"enrollment-waitlist/internal/domain/enrollment"
	"enrollment-waitlist/internal/infra/query"
	"enrollment-waitlist/internal/pkg/pgconv"
)

func RecordToInsertParams(r enrollment.Record) query.InsertRecordParams {
	modified := r.ModifiedAt
	if modified.IsZero() {
		modified = r.SubmittedAt
	}
	return query.InsertRecordParams{
		ID:          r.ID,
		CourseID:    r.CourseID,
		StudentName: r.Student,
		SubmittedAt: pgconv.InstantToPgtype(r.SubmittedAt),
		Status:      r.Status.String(),
		ModifiedAt:  pgconv.InstantToPgtype(modified),
	}
}

// RecordFromRow converts a stored row. Unknown status strings are kept as-is
// so that a bad row surfaces in output rather than vanishing.
func RecordFromRow(row query.EnrollmentRecord) enrollment.Record {
	return enrollment.Record{
		ID:          row.ID,
		CourseID:    row.CourseID,
		Student:     row.StudentName,
		SubmittedAt: pgconv.InstantFromPgtype(row.SubmittedAt),
		Status:      enrollment.Status(row.Status),
		ModifiedAt:  pgconv.InstantFromPgtype(row.ModifiedAt),
	}
}

func RecordsFromRows(rows []query.EnrollmentRecord) []enrollment.Record {
	out := make([]enrollment.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, RecordFromRow(row))
	}
	return out
}
