package queries

import (
	"context"
	"log/slog"
	"time"

	"enrollment-waitlist/internal/domain/enrollment"
	"enrollment-waitlist/internal/pkg/config"
	"enrollment-waitlist/internal/pkg/errs"
	"enrollment-waitlist/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReconcileOptions struct {
	// Exclude drops these record ids from every leader's view.
	Exclude []uuid.UUID
}

type ReconcileResult struct {
	Records []enrollment.Record
	Reached []string
	Skipped []string
}

// Reconciler merges every reachable leader's view of one course.
type Reconciler struct {
	cluster shared.Cluster
	timeout time.Duration
	logger  *slog.Logger
}

func NewReconciler(cluster shared.Cluster, cfg config.ClusterConfig, logger *slog.Logger) *Reconciler {
	return &Reconciler{
		cluster: cluster,
		timeout: cfg.ConnectTimeout,
		logger:  logger,
	}
}

// Reconcile never writes. A leader that fails or exceeds the connect timeout
// is skipped; the call fails only if no leader answered.
func (r *Reconciler) Reconcile(ctx context.Context, courseID uuid.UUID, opts ReconcileOptions) (ReconcileResult, error) {
	var (
		res   ReconcileResult
		views []enrollment.LeaderView
	)
	for _, id := range r.cluster.IDs() {
		records, err := r.readLeader(ctx, id, courseID)
		if err != nil {
			r.logger.Warn("leader skipped during reconciliation",
				"leader", id,
				"course_id", courseID,
				"error", err.Error())
			res.Skipped = append(res.Skipped, id)
			continue
		}
		res.Reached = append(res.Reached, id)
		views = append(views, enrollment.LeaderView{Leader: id, Records: records})
	}

	if len(res.Reached) == 0 {
		return res, errs.Wrapf(errs.ErrLeaderUnreachable, "no leader answered for course %s", courseID)
	}

	var exclude map[uuid.UUID]struct{}
	if len(opts.Exclude) > 0 {
		exclude = make(map[uuid.UUID]struct{}, len(opts.Exclude))
		for _, id := range opts.Exclude {
			exclude[id] = struct{}{}
		}
	}
	res.Records = enrollment.Merge(views, exclude)
	return res, nil
}

func (r *Reconciler) readLeader(ctx context.Context, id string, courseID uuid.UUID) ([]enrollment.Record, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	leader, err := r.cluster.Leader(ctx, id)
	if err != nil {
		return nil, err
	}
	return leader.Reads().ListRecords(ctx, courseID)
}
