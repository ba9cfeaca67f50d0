// Package mutation defines the replicated write vocabulary. Every leader
// applies the same Batch; the operations are written so that applying a batch
// twice leaves the leader in the same state as applying it once.
package mutation

import (
	"enrollment-waitlist/internal/domain/course"
	"enrollment-waitlist/internal/domain/enrollment"
	"enrollment-waitlist/internal/pkg/clock"

	"github.com/google/uuid"
)

type Kind string

const (
	KindInsert           Kind = "INSERT"
	KindUpdateStatus     Kind = "UPDATE_STATUS"
	KindRemoveRecords    Kind = "REMOVE_RECORDS"
	KindTombstone        Kind = "TOMBSTONE"
	KindSoftDeleteCourse Kind = "SOFT_DELETE_COURSE"
	KindCreateCourse     Kind = "CREATE_COURSE"
	KindHardDeleteCourse Kind = "HARD_DELETE_COURSE"
)

// Op is one replicated write. The set of implementations is closed.
type Op interface {
	Kind() Kind
	isOp()
}

// InsertRecord stores a record unless its id already exists.
type InsertRecord struct {
	Record enrollment.Record
}

// UpdateStatus overwrites one record's status and last-modified instant.
type UpdateStatus struct {
	RecordID uuid.UUID
	Status   enrollment.Status
	At       clock.Instant
}

// RemoveRecords marks records REMOVED.
type RemoveRecords struct {
	RecordIDs []uuid.UUID
	At        clock.Instant
}

// Tombstone upserts a course tombstone, keeping the latest instant.
type Tombstone struct {
	CourseID uuid.UUID
	At       clock.Instant
}

// SoftDeleteCourse flags a course deleted and cascades REMOVED to its records.
type SoftDeleteCourse struct {
	CourseID uuid.UUID
	At       clock.Instant
}

type CreateCourse struct {
	Course *course.Course
}

// HardDeleteCourse physically removes a course; storage cascades its records.
type HardDeleteCourse struct {
	CourseID uuid.UUID
}

func (InsertRecord) Kind() Kind     { return KindInsert }
func (UpdateStatus) Kind() Kind     { return KindUpdateStatus }
func (RemoveRecords) Kind() Kind    { return KindRemoveRecords }
func (Tombstone) Kind() Kind        { return KindTombstone }
func (SoftDeleteCourse) Kind() Kind { return KindSoftDeleteCourse }
func (CreateCourse) Kind() Kind     { return KindCreateCourse }
func (HardDeleteCourse) Kind() Kind { return KindHardDeleteCourse }

func (InsertRecord) isOp()     {}
func (UpdateStatus) isOp()     {}
func (RemoveRecords) isOp()    {}
func (Tombstone) isOp()        {}
func (SoftDeleteCourse) isOp() {}
func (CreateCourse) isOp()     {}
func (HardDeleteCourse) isOp() {}
