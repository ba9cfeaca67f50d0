package course

import (
	"enrollment-waitlist/internal/pkg/clock"

	"github.com/google/uuid"
)

// Tombstone records that a course was soft-deleted at DeletedAt.
type Tombstone struct {
	CourseID  uuid.UUID
	DeletedAt clock.Instant
}

// Supersedes reports whether t should replace existing on upsert.
func (t Tombstone) Supersedes(existing Tombstone) bool {
	return t.CourseID == existing.CourseID && t.DeletedAt.After(existing.DeletedAt)
}
