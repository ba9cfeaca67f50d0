//go:build unit

package queries_test

import (
	"context"
	"testing"

	"enrollment-waitlist/internal/domain/course"
	"enrollment-waitlist/internal/domain/enrollment"
	"enrollment-waitlist/internal/pkg/errs"
	"enrollment-waitlist/internal/usecase/queries"
	"enrollment-waitlist/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("ListCatalog hides deleted and tombstoned courses", func(t *testing.T) {
		f := newFixture(t, 2)
		deleted := builder.NewCourseBuilder().WithName("Compilers").AsDeleted().Build()
		tombstoned := builder.NewCourseBuilder().WithName("Algorithms").Build()
		f.a.Seed([]*course.Course{deleted, tombstoned})
		f.a.SeedTombstones(course.Tombstone{CourseID: tombstoned.ID(), DeletedAt: builder.At(30)})

		q := queries.NewCatalogQueries(f.nodes, f.reconciler)
		views, err := q.ListCatalog(ctx, "")
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, f.course.ID(), views[0].ID)
		assert.Equal(t, 2, views[0].Capacity)
	})

	t.Run("CourseQueue ranks the merged queue and flags divergence", func(t *testing.T) {
		f := newFixture(t, 1)
		alice := f.record("alice", 0).AsAccepted().ModifiedAfter(5).Build()
		staleAlice := alice
		staleAlice.Status = enrollment.StatusRejected
		staleAlice.ModifiedAt = builder.At(1)
		bob := f.record("bob", 2).AsAccepted().Build()
		gone := f.record("carol", 3).AsRemoved().Build()
		f.a.Seed(nil, alice, gone)
		f.b.Seed(nil, staleAlice, bob)

		q := queries.NewCatalogQueries(f.nodes, f.reconciler)
		view, err := q.CourseQueue(ctx, "B", " "+f.course.Name().String())
		require.NoError(t, err)
		assert.Equal(t, 1, view.Accepted)
		assert.Equal(t, 0, view.Remaining)
		assert.Equal(t, []string{"A", "B"}, view.Reached)

		require.Len(t, view.Entries, 3)
		assert.Equal(t, "alice", view.Entries[0].Student)
		assert.Equal(t, "ACCEPTED", view.Entries[0].Computed)
		assert.True(t, view.Entries[0].Divergent)
		assert.Equal(t, 1, view.Entries[0].Rank)

		assert.Equal(t, "bob", view.Entries[1].Student)
		assert.Equal(t, "ACCEPTED", view.Entries[1].Stored)
		assert.Equal(t, "REJECTED", view.Entries[1].Computed)
		assert.Equal(t, 2, view.Entries[1].Rank)

		assert.Equal(t, "REMOVED", view.Entries[2].Computed)
		assert.Zero(t, view.Entries[2].Rank)
	})

	t.Run("CourseQueue reports unknown courses", func(t *testing.T) {
		f := newFixture(t, 1)
		q := queries.NewCatalogQueries(f.nodes, f.reconciler)

		_, err := q.CourseQueue(ctx, "", "Compilers")
		assert.True(t, errs.Is(err, errs.ErrCourseNotFound), "got %v", err)
	})

	t.Run("Report reads the requested leader only", func(t *testing.T) {
		f := newFixture(t, 3)
		f.a.Seed(nil,
			f.record("carol", 0).AsAccepted().Build(),
			f.record("alice", 1).AsRejected().Build(),
			f.record("dave", 2).AsRemoved().Build(),
		)
		f.b.Seed(nil, f.record("bob", 0).AsAccepted().Build())

		q := queries.NewCatalogQueries(f.nodes, f.reconciler)
		view, err := q.Report(ctx, "A")
		require.NoError(t, err)
		assert.Equal(t, "A", view.Leader)
		require.Len(t, view.Courses, 1)

		rep := view.Courses[0]
		assert.Equal(t, 1, rep.Accepted)
		assert.Equal(t, 2, rep.Remaining)
		require.Len(t, rep.Students, 2)
		assert.Equal(t, "alice", rep.Students[0].Student)
		assert.Equal(t, "carol", rep.Students[1].Student)
	})

	t.Run("LeaderState returns raw rows and tombstones", func(t *testing.T) {
		f := newFixture(t, 1)
		alice := f.record("alice", 0).AsRemoved().Build()
		f.b.Seed(nil, alice)
		f.b.SeedTombstones(course.Tombstone{CourseID: f.course.ID(), DeletedAt: builder.At(30)})

		q := queries.NewCatalogQueries(f.nodes, f.reconciler)
		view, err := q.LeaderState(ctx, "B")
		require.NoError(t, err)
		require.Len(t, view.Courses, 1)
		assert.Equal(t, f.course.Name().String(), view.Courses[0].CourseName)
		require.Len(t, view.Courses[0].Records, 1)
		assert.Equal(t, "REMOVED", view.Courses[0].Records[0].Status)
		require.Len(t, view.Tombstones, 1)
		assert.Equal(t, f.course.ID(), view.Tombstones[0].CourseID)
	})

	t.Run("unreachable leader", func(t *testing.T) {
		f := newFixture(t, 1)
		f.b.SetDown(true)
		q := queries.NewCatalogQueries(f.nodes, f.reconciler)

		_, err := q.Report(ctx, "B")
		assert.True(t, errs.Is(err, errs.ErrLeaderUnreachable), "got %v", err)
		_, err = q.LeaderState(ctx, "Z")
		assert.True(t, errs.Is(err, errs.ErrUnknownLeader), "got %v", err)
	})
}
