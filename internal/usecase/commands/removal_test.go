//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"enrollment-waitlist/internal/domain/enrollment"
	"enrollment-waitlist/internal/domain/mutation"
	"enrollment-waitlist/internal/pkg/errs"
	"enrollment-waitlist/internal/usecase/commands"
	"enrollment-waitlist/internal/usecase/queries"
	"enrollment-waitlist/internal/usecase/replication"
	"enrollment-waitlist/tests/common/builder"
	"enrollment-waitlist/tests/common/memleader"
	commandsmock "enrollment-waitlist/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func enrollAll(t *testing.T, c *cluster, courseName string, students ...string) map[string]uuid.UUID {
	t.Helper()
	ids := make(map[string]uuid.UUID, len(students))
	for _, s := range students {
		res, err := c.enroll.Enroll(context.Background(), commands.EnrollRequest{Student: s, Course: courseName})
		require.NoError(t, err)
		ids[s] = res.RecordID
	}
	return ids
}

func countAccepted(records []enrollment.Record) int {
	n := 0
	for _, r := range records {
		if r.Status == enrollment.StatusAccepted {
			n++
		}
	}
	return n
}

func TestRemove(t *testing.T) {
	ctx := context.Background()

	t.Run("promotes the first waitlisted student on every leader", func(t *testing.T) {
		c := newCluster(t)
		crs := c.seedCourse(t, 2)
		ids := enrollAll(t, c, crs.Name().String(), "alice", "bob", "carol")

		res, err := c.removal.Remove(ctx, commands.RemoveRequest{Leader: "B", Student: "alice", Course: crs.Name().String()})
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{ids["alice"]}, res.Removed)
		assert.Equal(t, []enrollment.StatusChange{{
			RecordID: ids["carol"],
			Student:  "carol",
			From:     enrollment.StatusRejected,
			To:       enrollment.StatusAccepted,
		}}, res.Changes)
		assert.Equal(t, []string{"A"}, res.Replication.Applied)

		for _, l := range []*memleader.Leader{c.a, c.b} {
			alice, _ := l.Record(ids["alice"])
			carol, _ := l.Record(ids["carol"])
			assert.Equal(t, enrollment.StatusRemoved, alice.Status, "leader %s", l.ID())
			assert.Equal(t, enrollment.StatusAccepted, carol.Status, "leader %s", l.ID())
		}
	})

	t.Run("removes every active record of the student at the entry leader", func(t *testing.T) {
		c := newCluster(t)
		crs := c.seedCourse(t, 2)
		first := builder.NewRecordBuilder().WithCourseID(crs.ID()).WithStudent("alice").AsAccepted().Build()
		second := builder.NewRecordBuilder().WithCourseID(crs.ID()).WithStudent("alice").SubmittedAfter(10).AsAccepted().Build()
		c.a.Seed(nil, first, second)

		res, err := c.removal.Remove(ctx, commands.RemoveRequest{Student: "alice", Course: crs.Name().String()})
		require.NoError(t, err)
		assert.ElementsMatch(t, []uuid.UUID{first.ID, second.ID}, res.Removed)
		assert.Empty(t, res.Changes)
		for _, r := range c.a.Records(crs.ID()) {
			assert.Equal(t, enrollment.StatusRemoved, r.Status)
		}
	})

	t.Run("keeps going when a peer is down", func(t *testing.T) {
		c := newCluster(t)
		crs := c.seedCourse(t, 1)
		ids := enrollAll(t, c, crs.Name().String(), "alice", "bob")

		c.b.SetDown(true)
		res, err := c.removal.Remove(ctx, commands.RemoveRequest{Student: "alice", Course: crs.Name().String()})
		require.NoError(t, err)
		require.Len(t, res.Replication.Failed, 1)
		assert.Equal(t, "B", res.Replication.Failed[0].Leader)

		bob, _ := c.a.Record(ids["bob"])
		assert.Equal(t, enrollment.StatusAccepted, bob.Status)

		c.b.SetDown(false)
		stale, _ := c.b.Record(ids["alice"])
		assert.Equal(t, enrollment.StatusAccepted, stale.Status)
	})

	t.Run("a peer that missed the removal converges on the next pass", func(t *testing.T) {
		c := newCluster(t)
		crs := c.seedCourse(t, 1)
		ids := enrollAll(t, c, crs.Name().String(), "alice", "bob")

		c.b.SetDown(true)
		_, err := c.removal.Remove(ctx, commands.RemoveRequest{Student: "alice", Course: crs.Name().String()})
		require.NoError(t, err)
		c.b.SetDown(false)

		res, err := c.enroll.Enroll(ctx, commands.EnrollRequest{Leader: "B", Student: "carol", Course: crs.Name().String()})
		require.NoError(t, err)
		assert.Equal(t, enrollment.StatusRejected, res.Status)
		assert.Equal(t, []string{"A"}, res.Replication.Applied)

		removedAt, _ := c.a.Record(ids["alice"])
		for _, l := range []*memleader.Leader{c.a, c.b} {
			alice, _ := l.Record(ids["alice"])
			bob, _ := l.Record(ids["bob"])
			assert.Equal(t, enrollment.StatusRemoved, alice.Status, "leader %s", l.ID())
			assert.Equal(t, removedAt.ModifiedAt, alice.ModifiedAt, "leader %s", l.ID())
			assert.Equal(t, enrollment.StatusAccepted, bob.Status, "leader %s", l.ID())
			assert.Equal(t, 1, countAccepted(l.Records(crs.ID())), "leader %s", l.ID())
		}

		state, err := c.reconciler.Reconcile(ctx, crs.ID(), queries.ReconcileOptions{})
		require.NoError(t, err)
		for _, r := range state.Records {
			assert.False(t, r.Divergent, "%s still divergent", r.Student)
		}
	})

	t.Run("removal at the stale peer repairs the missed removal", func(t *testing.T) {
		c := newCluster(t)
		crs := c.seedCourse(t, 1)
		ids := enrollAll(t, c, crs.Name().String(), "alice", "bob")

		c.b.SetDown(true)
		_, err := c.removal.Remove(ctx, commands.RemoveRequest{Student: "alice", Course: crs.Name().String()})
		require.NoError(t, err)
		c.b.SetDown(false)

		res, err := c.removal.Remove(ctx, commands.RemoveRequest{Leader: "B", Student: "bob", Course: crs.Name().String()})
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{ids["bob"]}, res.Removed)
		assert.Empty(t, res.Changes)

		for _, l := range []*memleader.Leader{c.a, c.b} {
			assert.Zero(t, countAccepted(l.Records(crs.ID())), "leader %s", l.ID())
			alice, _ := l.Record(ids["alice"])
			assert.Equal(t, enrollment.StatusRemoved, alice.Status, "leader %s", l.ID())
		}
	})

	t.Run("skips re-ranking when capacity is zero", func(t *testing.T) {
		c := newCluster(t)
		crs := c.seedCourse(t, 0)
		enrollAll(t, c, crs.Name().String(), "alice", "bob")

		res, err := c.removal.Remove(ctx, commands.RemoveRequest{Student: "alice", Course: crs.Name().String()})
		require.NoError(t, err)
		assert.Empty(t, res.Changes)
	})

	t.Run("errors", func(t *testing.T) {
		testCases := []struct {
			name    string
			req     commands.RemoveRequest
			prepare func(c *cluster)
			wantErr error
		}{
			{
				name:    "student without a registration",
				req:     commands.RemoveRequest{Student: "zed"},
				wantErr: errs.ErrRecordNotFound,
			},
			{
				name:    "invalid student name",
				req:     commands.RemoveRequest{Student: ""},
				wantErr: errs.ErrDomainValidation,
			},
			{
				name:    "entry leader down",
				req:     commands.RemoveRequest{Student: "alice"},
				prepare: func(c *cluster) { c.a.SetDown(true) },
				wantErr: errs.ErrLeaderUnreachable,
			},
			{
				name:    "removal write fails",
				req:     commands.RemoveRequest{Student: "alice"},
				prepare: func(c *cluster) { c.a.FailOn(memleader.OpMarkRemoved, errors.New("disk full")) },
				wantErr: errs.ErrPersistenceFailure,
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				c := newCluster(t)
				crs := c.seedCourse(t, 2)
				enrollAll(t, c, crs.Name().String(), "alice")
				if tc.prepare != nil {
					tc.prepare(c)
				}
				tc.req.Course = crs.Name().String()

				res, err := c.removal.Remove(ctx, tc.req)
				assert.Nil(t, res)
				assert.True(t, errs.Is(err, tc.wantErr), "got %v", err)

				c.a.SetDown(false)
				for _, r := range c.b.Records(crs.ID()) {
					assert.NotEqual(t, enrollment.StatusRemoved, r.Status)
				}
			})
		}
	})
}

func TestRemove_RerankFailureStillBroadcastsRemoval(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := newCluster(t)
	crs := c.seedCourse(t, 2)
	alice := builder.NewRecordBuilder().WithCourseID(crs.ID()).WithStudent("alice").AsAccepted().Build()
	bob := builder.NewRecordBuilder().WithCourseID(crs.ID()).WithStudent("bob").SubmittedAfter(1).AsAccepted().Build()
	carol := builder.NewRecordBuilder().WithCourseID(crs.ID()).WithStudent("carol").SubmittedAfter(2).AsRejected().Build()
	c.a.Seed(nil, alice, bob, carol)

	replicator := commandsmock.NewMockReplicator(ctrl)
	replicator.EXPECT().Apply(gomock.Any(), "A", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, batch mutation.Batch) error {
			assert.Equal(t, "UPDATE_STATUS=1", batch.Summary())
			return errs.Mark(errs.New("connection reset"), errs.ErrLeaderUnreachable)
		}).Times(1)
	replicator.EXPECT().Broadcast(gomock.Any(), "A", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, batch mutation.Batch) replication.Report {
			assert.Equal(t, "REMOVE_RECORDS=1", batch.Summary())
			return replication.Report{Applied: []string{"B"}}
		}).Times(1)

	uc := commands.NewRemovalCommands(c.nodes, c.reconciler, replicator, discardLogger())
	res, err := uc.Remove(context.Background(), commands.RemoveRequest{Student: "alice", Course: crs.Name().String()})
	require.NotNil(t, res)
	assert.True(t, errs.Is(err, errs.ErrLeaderUnreachable))
	assert.Equal(t, []uuid.UUID{alice.ID}, res.Removed)
	assert.Empty(t, res.Changes)

	stored, _ := c.a.Record(alice.ID)
	assert.Equal(t, enrollment.StatusRemoved, stored.Status)
	stored, _ = c.a.Record(carol.ID)
	assert.Equal(t, enrollment.StatusRejected, stored.Status)
}
