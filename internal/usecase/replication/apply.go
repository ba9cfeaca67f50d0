package replication

import (
	"context"

	"enrollment-waitlist/internal/domain/course"
	"enrollment-waitlist/internal/domain/mutation"
	"enrollment-waitlist/internal/pkg/errs"
	"enrollment-waitlist/internal/usecase/shared"
)

var errUnknownOp = errs.New("unknown mutation op")

// ApplyTo runs every op of batch against one leader in a single transaction.
func ApplyTo(ctx context.Context, leader shared.Leader, batch mutation.Batch) error {
	if batch.Empty() {
		return nil
	}
	return leader.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, op := range batch.Ops() {
			if err := applyOp(ctx, tx, op); err != nil {
				return errs.Wrapf(err, "apply %s on leader %s", op.Kind(), leader.ID())
			}
		}
		return nil
	})
}

func applyOp(ctx context.Context, tx shared.Tx, op mutation.Op) error {
	switch o := op.(type) {
	case mutation.InsertRecord:
		return tx.Records().Insert(ctx, o.Record)
	case mutation.UpdateStatus:
		return tx.Records().UpdateStatus(ctx, o.RecordID, o.Status, o.At)
	case mutation.RemoveRecords:
		return tx.Records().MarkRemoved(ctx, o.RecordIDs, o.At)
	case mutation.Tombstone:
		return tx.Tombstones().Upsert(ctx, course.Tombstone{CourseID: o.CourseID, DeletedAt: o.At})
	case mutation.SoftDeleteCourse:
		if err := tx.Courses().MarkDeleted(ctx, o.CourseID, o.At); err != nil {
			return err
		}
		return tx.Records().CascadeRemoved(ctx, o.CourseID, o.At)
	case mutation.CreateCourse:
		_, err := tx.Courses().Create(ctx, o.Course)
		return err
	case mutation.HardDeleteCourse:
		return tx.Courses().Delete(ctx, o.CourseID)
	default:
		return errs.Wrapf(errUnknownOp, "%T", op)
	}
}
