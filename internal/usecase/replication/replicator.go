// Package replication pushes mutation batches to leaders.
//
// Delivery is best effort: a leader that cannot be reached or fails to apply a
// batch is reported and skipped. Nothing is queued for later delivery.
package replication

import (
	"context"
	"log/slog"

	"enrollment-waitlist/internal/domain/mutation"
	"enrollment-waitlist/internal/infra"
	"enrollment-waitlist/internal/pkg/config"
	"enrollment-waitlist/internal/pkg/errs"
	"enrollment-waitlist/internal/usecase/shared"

	"golang.org/x/sync/errgroup"
)

const defaultMaxParallel = 4

// Failure is one leader that did not take a batch.
type Failure struct {
	Leader string
	Err    error
}

type Report struct {
	Applied []string
	Failed  []Failure
}

func (r Report) OK() bool {
	return len(r.Failed) == 0
}

type Replicator struct {
	cluster     shared.Cluster
	maxParallel int
	logger      *slog.Logger
}

func NewReplicator(cluster shared.Cluster, cfg config.ReplicationConfig, logger *slog.Logger) *Replicator {
	maxParallel := cfg.MaxParallel
	if maxParallel <= 0 {
		maxParallel = defaultMaxParallel
	}
	return &Replicator{
		cluster:     cluster,
		maxParallel: maxParallel,
		logger:      logger,
	}
}

// Apply delivers batch to one leader. Unreachable leaders are marked
// errs.ErrLeaderUnreachable, apply failures errs.ErrPersistenceFailure.
func (r *Replicator) Apply(ctx context.Context, leaderID string, batch mutation.Batch) error {
	leader, err := r.cluster.Leader(ctx, leaderID)
	if err != nil {
		if infra.IsKind(err, infra.KindUnreachable) {
			return errs.Mark(err, errs.ErrLeaderUnreachable)
		}
		return err
	}
	if err := ApplyTo(ctx, leader, batch); err != nil {
		if infra.IsKind(err, infra.KindUnreachable) {
			return errs.Mark(err, errs.ErrLeaderUnreachable)
		}
		return errs.Mark(err, errs.ErrPersistenceFailure)
	}
	return nil
}

// Broadcast delivers batch to every leader except source, concurrently.
// It never fails as a whole; per-leader outcomes are in the report, in
// cluster order.
func (r *Replicator) Broadcast(ctx context.Context, source string, batch mutation.Batch) Report {
	peers := r.cluster.Peers(source)
	if batch.Empty() || len(peers) == 0 {
		return Report{}
	}

	results := make([]error, len(peers))
	var g errgroup.Group
	g.SetLimit(r.maxParallel)
	for i, id := range peers {
		g.Go(func() error {
			results[i] = r.Apply(ctx, id, batch)
			return nil
		})
	}
	_ = g.Wait()

	var report Report
	for i, id := range peers {
		if err := results[i]; err != nil {
			r.logger.Warn("replication failed",
				"source", source,
				"target", id,
				"ops", batch.Summary(),
				"error", err.Error())
			report.Failed = append(report.Failed, Failure{Leader: id, Err: err})
			continue
		}
		report.Applied = append(report.Applied, id)
	}
	r.logger.Debug("replication finished",
		"source", source,
		"ops", batch.Summary(),
		"applied", len(report.Applied),
		"failed", len(report.Failed))
	return report
}
