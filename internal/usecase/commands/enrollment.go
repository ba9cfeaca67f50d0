package commands

import (
	"context"
	"log/slog"

	"enrollment-waitlist/internal/domain/enrollment"
	"enrollment-waitlist/internal/domain/mutation"
	"enrollment-waitlist/internal/pkg/errs"
	"enrollment-waitlist/internal/usecase/queries"
	"enrollment-waitlist/internal/usecase/replication"
	"enrollment-waitlist/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=enrollment.go -destination=../../../tests/mock/commands/mock_enrollment.go -package=commandsmock

type EnrollRequest struct {
	// Leader is the entry leader id; empty means the local leader.
	Leader  string
	Student string
	Course  string
}

type EnrollResult struct {
	RecordID    uuid.UUID
	CourseID    uuid.UUID
	Leader      string
	Status      enrollment.Status
	Position    int
	Capacity    int
	Changes     []enrollment.StatusChange
	Replication replication.Report
}

type EnrollmentCommands interface {
	Enroll(ctx context.Context, req EnrollRequest) (*EnrollResult, error)
}

type enrollmentCommandsImpl struct {
	cluster    shared.Cluster
	reconciler queries.StateReconciler
	replicator Replicator
	logger     *slog.Logger
}

func NewEnrollmentCommands(cluster shared.Cluster, reconciler queries.StateReconciler, replicator Replicator, logger *slog.Logger) EnrollmentCommands {
	return &enrollmentCommandsImpl{
		cluster:    cluster,
		reconciler: reconciler,
		replicator: replicator,
		logger:     logger,
	}
}

// Enroll admits a new registration attempt in first come first served order.
// Nothing is written when the student already holds an active record anywhere.
// The batch also carries repairs for divergent copies found while reconciling.
func (uc *enrollmentCommandsImpl) Enroll(ctx context.Context, req EnrollRequest) (*EnrollResult, error) {
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

	state, err := uc.reconciler.Reconcile(ctx, c.ID(), queries.ReconcileOptions{})
	if err != nil {
		return nil, err
	}
	if existing, ok := enrollment.FindActive(state.Records, student); ok {
		return nil, errs.Wrapf(errs.ErrDuplicateRegistration, "%s holds %s record %s", student, existing.Status, existing.ID)
	}

	now, err := leader.Reads().Now(ctx)
	if err != nil {
		return nil, markStorageErr(err)
	}
	candidate, err := enrollment.NewCandidate(uuid.Nil, c.ID(), student, now)
	if err != nil {
		return nil, err
	}

	res := enrollment.Resolve(state.Records, c.Capacity().Value(), &candidate)
	candidate.Status = res.Candidate.Status

	batch := mutation.NewBatch(mutation.InsertRecord{Record: candidate})
	batch.Add(mutation.StatusUpdates(res.Changes, now)...)
	batch.Add(mutation.RepairRemovals(state.Records)...)
	if err := uc.replicator.Apply(ctx, leader.ID(), batch); err != nil {
		return nil, markStorageErr(err)
	}

	report := uc.replicator.Broadcast(ctx, leader.ID(), batch)

	uc.logger.Info("enrollment recorded",
		"leader", leader.ID(),
		"course_id", c.ID(),
		"student", student,
		"status", candidate.Status,
		"position", res.Candidate.Rank,
		"changes", len(res.Changes),
		"replicated", len(report.Applied),
		"replication_failed", len(report.Failed))

	return &EnrollResult{
		RecordID:    candidate.ID,
		CourseID:    c.ID(),
		Leader:      leader.ID(),
		Status:      candidate.Status,
		Position:    res.Candidate.Rank,
		Capacity:    c.Capacity().Value(),
		Changes:     res.Changes,
		Replication: report,
	}, nil
}
