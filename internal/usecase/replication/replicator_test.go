//go:build unit

package replication_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"enrollment-waitlist/internal/domain/course"
	"enrollment-waitlist/internal/domain/enrollment"
	"enrollment-waitlist/internal/domain/mutation"
	"enrollment-waitlist/internal/pkg/clock"
	"enrollment-waitlist/internal/pkg/config"
	"enrollment-waitlist/internal/pkg/errs"
	"enrollment-waitlist/internal/usecase/replication"
	"enrollment-waitlist/tests/common/builder"
	"enrollment-waitlist/tests/common/memleader"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNodes(t *testing.T, ids ...string) (*memleader.Cluster, *course.Course) {
	t.Helper()
	clk := clock.NewTickingClock(builder.BaseTime, time.Second)
	crs := builder.NewCourseBuilder().Build()
	leaders := make([]*memleader.Leader, 0, len(ids))
	for _, id := range ids {
		l := memleader.NewLeader(id, clk)
		l.Seed([]*course.Course{crs})
		leaders = append(leaders, l)
	}
	return memleader.NewCluster(ids[0], leaders...), crs
}

func newReplicator(nodes *memleader.Cluster) *replication.Replicator {
	return replication.NewReplicator(nodes, config.ReplicationConfig{MaxParallel: 2}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestBroadcast(t *testing.T) {
	ctx := context.Background()

	t.Run("delivers to every peer in cluster order", func(t *testing.T) {
		nodes, crs := newNodes(t, "A", "B", "C", "D")
		rec := builder.NewRecordBuilder().WithCourseID(crs.ID()).Build()

		report := newReplicator(nodes).Broadcast(ctx, "A", mutation.NewBatch(mutation.InsertRecord{Record: rec}))
		assert.True(t, report.OK())
		assert.Equal(t, []string{"B", "C", "D"}, report.Applied)
		for _, id := range []string{"B", "C", "D"} {
			_, ok := nodes.Get(id).Record(rec.ID)
			assert.True(t, ok, "leader %s", id)
		}
		_, ok := nodes.Get("A").Record(rec.ID)
		assert.False(t, ok, "source is never written by broadcast")
	})

	t.Run("reports failures per leader", func(t *testing.T) {
		nodes, crs := newNodes(t, "A", "B", "C")
		nodes.Get("B").SetDown(true)
		nodes.Get("C").FailOn(memleader.OpInsert, errors.New("disk full"))
		rec := builder.NewRecordBuilder().WithCourseID(crs.ID()).Build()

		report := newReplicator(nodes).Broadcast(ctx, "A", mutation.NewBatch(mutation.InsertRecord{Record: rec}))
		assert.False(t, report.OK())
		assert.Empty(t, report.Applied)
		require.Len(t, report.Failed, 2)
		assert.Equal(t, "B", report.Failed[0].Leader)
		assert.True(t, errs.Is(report.Failed[0].Err, errs.ErrLeaderUnreachable))
		assert.Equal(t, "C", report.Failed[1].Leader)
		assert.True(t, errs.Is(report.Failed[1].Err, errs.ErrPersistenceFailure))
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		nodes, _ := newNodes(t, "A", "B")

		report := newReplicator(nodes).Broadcast(ctx, "A", mutation.NewBatch())
		assert.Empty(t, report.Applied)
		assert.Zero(t, nodes.Get("B").Commits())
	})
}

func TestApply(t *testing.T) {
	ctx := context.Background()

	t.Run("a batch is all or nothing", func(t *testing.T) {
		nodes, crs := newNodes(t, "A")
		alice := builder.NewRecordBuilder().WithCourseID(crs.ID()).Build()
		nodes.Get("A").FailOn(memleader.OpUpdateStatus, errors.New("lock timeout"))

		batch := mutation.NewBatch(
			mutation.InsertRecord{Record: alice},
			mutation.UpdateStatus{RecordID: alice.ID, Status: enrollment.StatusAccepted, At: builder.At(1)},
		)
		err := newReplicator(nodes).Apply(ctx, "A", batch)
		assert.True(t, errs.Is(err, errs.ErrPersistenceFailure), "got %v", err)
		_, ok := nodes.Get("A").Record(alice.ID)
		assert.False(t, ok)
	})

	t.Run("replaying a batch changes nothing", func(t *testing.T) {
		nodes, crs := newNodes(t, "A")
		alice := builder.NewRecordBuilder().WithCourseID(crs.ID()).Build()
		batch := mutation.NewBatch(
			mutation.InsertRecord{Record: alice},
			mutation.UpdateStatus{RecordID: alice.ID, Status: enrollment.StatusAccepted, At: builder.At(1)},
		)
		r := newReplicator(nodes)
		require.NoError(t, r.Apply(ctx, "A", batch))
		require.NoError(t, r.Apply(ctx, "A", batch))

		records := nodes.Get("A").Records(crs.ID())
		require.Len(t, records, 1)
		assert.Equal(t, enrollment.StatusAccepted, records[0].Status)
	})

	t.Run("a status update never revives a removed record", func(t *testing.T) {
		nodes, crs := newNodes(t, "A")
		alice := builder.NewRecordBuilder().WithCourseID(crs.ID()).AsRemoved().Build()
		nodes.Get("A").Seed(nil, alice)

		batch := mutation.NewBatch(mutation.UpdateStatus{RecordID: alice.ID, Status: enrollment.StatusAccepted, At: builder.At(60)})
		require.NoError(t, newReplicator(nodes).Apply(ctx, "A", batch))

		stored, _ := nodes.Get("A").Record(alice.ID)
		assert.Equal(t, enrollment.StatusRemoved, stored.Status)
	})

	t.Run("an older tombstone does not replace a newer one", func(t *testing.T) {
		nodes, crs := newNodes(t, "A")
		r := newReplicator(nodes)
		require.NoError(t, r.Apply(ctx, "A", mutation.NewBatch(mutation.Tombstone{CourseID: crs.ID(), At: builder.At(20)})))
		require.NoError(t, r.Apply(ctx, "A", mutation.NewBatch(mutation.Tombstone{CourseID: crs.ID(), At: builder.At(10)})))

		ts, ok := nodes.Get("A").Tombstone(crs.ID())
		require.True(t, ok)
		assert.True(t, ts.DeletedAt.Equal(builder.At(20)))
	})

	t.Run("soft delete cascades to active records only", func(t *testing.T) {
		nodes, crs := newNodes(t, "A")
		active := builder.NewRecordBuilder().WithCourseID(crs.ID()).AsAccepted().Build()
		removed := builder.NewRecordBuilder().WithCourseID(crs.ID()).WithStudent("bob").AsRemoved().ModifiedAfter(5).Build()
		nodes.Get("A").Seed(nil, active, removed)

		err := newReplicator(nodes).Apply(ctx, "A", mutation.NewBatch(mutation.SoftDeleteCourse{CourseID: crs.ID(), At: builder.At(30)}))
		require.NoError(t, err)

		stored, _ := nodes.Get("A").Course(crs.ID())
		assert.True(t, stored.IsDeleted())
		got, _ := nodes.Get("A").Record(active.ID)
		assert.Equal(t, enrollment.StatusRemoved, got.Status)
		assert.True(t, got.ModifiedAt.Equal(builder.At(30)))
		got, _ = nodes.Get("A").Record(removed.ID)
		assert.True(t, got.ModifiedAt.Equal(builder.At(5)))
	})

	t.Run("unknown leader", func(t *testing.T) {
		nodes, _ := newNodes(t, "A")
		err := newReplicator(nodes).Apply(ctx, "Z", mutation.NewBatch(mutation.Tombstone{At: builder.At(0)}))
		assert.True(t, errs.Is(err, errs.ErrUnknownLeader), "got %v", err)
	})
}
