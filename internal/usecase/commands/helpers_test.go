//go:build unit

package commands_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"enrollment-waitlist/internal/domain/course"
	"enrollment-waitlist/internal/pkg/clock"
	"enrollment-waitlist/internal/pkg/config"
	"enrollment-waitlist/internal/usecase/commands"
	"enrollment-waitlist/internal/usecase/queries"
	"enrollment-waitlist/internal/usecase/replication"
	"enrollment-waitlist/tests/common/builder"
	"enrollment-waitlist/tests/common/memleader"

	"github.com/stretchr/testify/require"
)

// cluster wires two in-memory leaders sharing one ticking clock.
type cluster struct {
	clock      *clock.MockClock
	a, b       *memleader.Leader
	nodes      *memleader.Cluster
	reconciler *queries.Reconciler
	replicator *replication.Replicator
	enroll     commands.EnrollmentCommands
	removal    commands.RemovalCommands
	courses    commands.CourseCommands
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newCluster(t *testing.T) *cluster {
	t.Helper()
	cfg := config.NewTestConfig()
	clk := clock.NewTickingClock(builder.BaseTime.Add(time.Hour), time.Second)
	a := memleader.NewLeader("A", clk)
	b := memleader.NewLeader("B", clk)
	nodes := memleader.NewCluster("A", a, b)
	logger := discardLogger()

	reconciler := queries.NewReconciler(nodes, cfg.Cluster, logger)
	replicator := replication.NewReplicator(nodes, cfg.Replication, logger)
	return &cluster{
		clock:      clk,
		a:          a,
		b:          b,
		nodes:      nodes,
		reconciler: reconciler,
		replicator: replicator,
		enroll:     commands.NewEnrollmentCommands(nodes, reconciler, replicator, logger),
		removal:    commands.NewRemovalCommands(nodes, reconciler, replicator, logger),
		courses:    commands.NewCourseCommands(nodes, replicator, cfg.Replication, logger),
	}
}

// seedCourse stores the same course on both leaders.
func (c *cluster) seedCourse(t *testing.T, capacity int) *course.Course {
	t.Helper()
	crs, err := builder.NewCourseBuilder().WithCapacity(capacity).BuildDomain()
	require.NoError(t, err)
	c.a.Seed([]*course.Course{crs})
	c.b.Seed([]*course.Course{crs})
	return crs
}
