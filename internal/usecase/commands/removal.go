package commands

import (
	"context"
	"log/slog"

	"enrollment-waitlist/internal/domain/enrollment"
	"enrollment-waitlist/internal/domain/mutation"
	"enrollment-waitlist/internal/pkg/clock"
	"enrollment-waitlist/internal/pkg/errs"
	"enrollment-waitlist/internal/usecase/queries"
	"enrollment-waitlist/internal/usecase/replication"
	"enrollment-waitlist/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=removal.go -destination=../../../tests/mock/commands/mock_removal.go -package=commandsmock

type RemoveRequest struct {
	Leader  string
	Student string
	Course  string
}

type RemoveResult struct {
	CourseID    uuid.UUID
	Leader      string
	Removed     []uuid.UUID
	Changes     []enrollment.StatusChange
	Replication replication.Report
}

type RemovalCommands interface {
	Remove(ctx context.Context, req RemoveRequest) (*RemoveResult, error)
}

type removalCommandsImpl struct {
	cluster    shared.Cluster
	reconciler queries.StateReconciler
	replicator Replicator
	logger     *slog.Logger
}

func NewRemovalCommands(cluster shared.Cluster, reconciler queries.StateReconciler, replicator Replicator, logger *slog.Logger) RemovalCommands {
	return &removalCommandsImpl{
		cluster:    cluster,
		reconciler: reconciler,
		replicator: replicator,
		logger:     logger,
	}
}

// Remove withdraws a student and re-ranks the remaining queue.
//
// The removal commits on its own first. Whatever happens afterwards, the
// removal is broadcast; a failure to store the re-ranking locally is returned
// together with the result, in which case the re-ranking is not replicated.
func (uc *removalCommandsImpl) Remove(ctx context.Context, req RemoveRequest) (*RemoveResult, error) {
	student, err := enrollment.NormalizeStudentName(req.Student)
	if err != nil {
		return nil, err
	}
	leader, err := queries.ResolveLeader(ctx, uc.cluster, req.Leader)
	if err != nil {
		return nil, err
	}
	c, err := queries.FindCourse(ctx, leader.Reads(), req.Course)
	if err != nil {
		return nil, err
	}

	var (
		removed []uuid.UUID
		at      clock.Instant
	)
	err = leader.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ids, err := tx.Records().ActiveIDs(ctx, c.ID(), student)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return errs.Wrapf(errs.ErrRecordNotFound, "%s in %s", student, c.Name())
		}
		if at, err = tx.Reads().Now(ctx); err != nil {
			return err
		}
		removed = ids
		return tx.Records().MarkRemoved(ctx, ids, at)
	})
	if err != nil {
		if errs.Is(err, errs.ErrRecordNotFound) {
			return nil, err
		}
		return nil, markStorageErr(err)
	}

	result := &RemoveResult{CourseID: c.ID(), Leader: leader.ID(), Removed: removed}
	batch := mutation.NewBatch(mutation.RemoveRecords{RecordIDs: removed, At: at})

	changes, ops, rerankErr := uc.rerank(ctx, leader, c.ID(), c.Capacity().Value(), removed, at)
	if rerankErr == nil {
		result.Changes = changes
		batch.Add(ops...)
	}

	result.Replication = uc.replicator.Broadcast(ctx, leader.ID(), batch)

	uc.logger.Info("enrollment removed",
		"leader", leader.ID(),
		"course_id", c.ID(),
		"student", student,
		"removed", len(removed),
		"changes", len(result.Changes),
		"replicated", len(result.Replication.Applied),
		"replication_failed", len(result.Replication.Failed))

	if rerankErr != nil {
		uc.logger.Error("re-ranking after removal failed",
			"leader", leader.ID(),
			"course_id", c.ID(),
			"error", rerankErr.Error())
		return result, rerankErr
	}
	return result, nil
}

// rerank recomputes the queue without the removed ids and commits the
// resulting ops locally. Besides status changes, the ops remove again any
// record that another leader already removed but this pass still saw active.
func (uc *removalCommandsImpl) rerank(ctx context.Context, leader shared.Leader, courseID uuid.UUID, capacity int, removed []uuid.UUID, at clock.Instant) ([]enrollment.StatusChange, []mutation.Op, error) {
	state, err := uc.reconciler.Reconcile(ctx, courseID, queries.ReconcileOptions{Exclude: removed})
	if err != nil {
		return nil, nil, err
	}

	var changes []enrollment.StatusChange
	if capacity > 0 {
		changes = enrollment.Resolve(enrollment.CollapseEarliestPerStudent(state.Records), capacity, nil).Changes
	}
	ops := mutation.StatusUpdates(changes, at)
	ops = append(ops, mutation.RepairRemovals(state.Records)...)
	if len(ops) == 0 {
		return nil, nil, nil
	}
	if err := uc.replicator.Apply(ctx, leader.ID(), mutation.NewBatch(ops...)); err != nil {
		return nil, nil, markStorageErr(err)
	}
	return changes, ops, nil
}
