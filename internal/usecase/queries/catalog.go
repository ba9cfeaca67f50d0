package queries

import (
	"context"
	"slices"
	"strings"

	"enrollment-waitlist/internal/domain/course"
	"enrollment-waitlist/internal/domain/enrollment"
	"enrollment-waitlist/internal/infra"
	"enrollment-waitlist/internal/pkg/errs"
	"enrollment-waitlist/internal/usecase/readmodel"
	"enrollment-waitlist/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/queries/mock_catalog.go -package=queriesmock

type CatalogQueries interface {
	ListCatalog(ctx context.Context, leaderID string) ([]readmodel.CourseView, error)
	CourseQueue(ctx context.Context, leaderID, courseName string) (*readmodel.QueueView, error)
	Report(ctx context.Context, leaderID string) (*readmodel.ReportView, error)
	LeaderState(ctx context.Context, leaderID string) (*readmodel.LeaderStateView, error)
}

type StateReconciler interface {
	Reconcile(ctx context.Context, courseID uuid.UUID, opts ReconcileOptions) (ReconcileResult, error)
}

type catalogQueriesImpl struct {
	cluster    shared.Cluster
	reconciler StateReconciler
}

func NewCatalogQueries(cluster shared.Cluster, reconciler StateReconciler) CatalogQueries {
	return &catalogQueriesImpl{
		cluster:    cluster,
		reconciler: reconciler,
	}
}

func (q *catalogQueriesImpl) ListCatalog(ctx context.Context, leaderID string) ([]readmodel.CourseView, error) {
	leader, err := ResolveLeader(ctx, q.cluster, leaderID)
	if err != nil {
		return nil, err
	}
	courses, err := leader.Reads().ListCourses(ctx)
	if err != nil {
		return nil, markReadErr(err)
	}
	out := make([]readmodel.CourseView, 0, len(courses))
	for _, c := range courses {
		out = append(out, toCourseView(c))
	}
	return out, nil
}

func (q *catalogQueriesImpl) CourseQueue(ctx context.Context, leaderID, courseName string) (*readmodel.QueueView, error) {
	leader, err := ResolveLeader(ctx, q.cluster, leaderID)
	if err != nil {
		return nil, err
	}
	c, err := FindCourse(ctx, leader.Reads(), courseName)
	if err != nil {
		return nil, err
	}
	state, err := q.reconciler.Reconcile(ctx, c.ID(), ReconcileOptions{})
	if err != nil {
		return nil, err
	}

	res := enrollment.Resolve(state.Records, c.Capacity().Value(), nil)
	view := &readmodel.QueueView{
		Course:    toCourseView(c),
		Entries:   make([]readmodel.QueueEntry, 0, len(res.Ranked)),
		Accepted:  res.Accepted(),
		Remaining: max(c.Capacity().Value()-res.Accepted(), 0),
		Reached:   state.Reached,
		Skipped:   state.Skipped,
	}
	for _, e := range res.Ranked {
		view.Entries = append(view.Entries, readmodel.QueueEntry{
			RecordID:    e.Record.ID,
			Student:     e.Record.Student,
			SubmittedAt: e.Record.SubmittedAt.Time(),
			Stored:      e.Record.Status.String(),
			Computed:    e.Computed.String(),
			Rank:        e.Rank,
			Divergent:   e.Record.Divergent,
		})
	}
	return view, nil
}

// Report summarizes what one leader has stored, without consulting peers.
func (q *catalogQueriesImpl) Report(ctx context.Context, leaderID string) (*readmodel.ReportView, error) {
	leader, err := ResolveLeader(ctx, q.cluster, leaderID)
	if err != nil {
		return nil, err
	}
	reads := leader.Reads()
	courses, err := reads.ListCourses(ctx)
	if err != nil {
		return nil, markReadErr(err)
	}

	view := &readmodel.ReportView{Leader: leader.ID(), Courses: make([]readmodel.CourseReport, 0, len(courses))}
	for _, c := range courses {
		records, err := reads.ListRecords(ctx, c.ID())
		if err != nil {
			return nil, markReadErr(err)
		}
		rep := readmodel.CourseReport{Course: toCourseView(c), Students: []readmodel.StudentStatus{}}
		for _, r := range records {
			if !r.IsActive() {
				continue
			}
			if r.Status == enrollment.StatusAccepted {
				rep.Accepted++
			}
			rep.Students = append(rep.Students, readmodel.StudentStatus{
				Student:     r.Student,
				Status:      r.Status.String(),
				SubmittedAt: r.SubmittedAt.Time(),
			})
		}
		slices.SortStableFunc(rep.Students, func(a, b readmodel.StudentStatus) int {
			return strings.Compare(a.Student, b.Student)
		})
		rep.Remaining = max(c.Capacity().Value()-rep.Accepted, 0)
		view.Courses = append(view.Courses, rep)
	}
	return view, nil
}

func (q *catalogQueriesImpl) LeaderState(ctx context.Context, leaderID string) (*readmodel.LeaderStateView, error) {
	leader, err := ResolveLeader(ctx, q.cluster, leaderID)
	if err != nil {
		return nil, err
	}
	reads := leader.Reads()
	records, err := reads.ListAllRecords(ctx)
	if err != nil {
		return nil, markReadErr(err)
	}
	tombstones, err := reads.ListTombstones(ctx)
	if err != nil {
		return nil, markReadErr(err)
	}

	view := &readmodel.LeaderStateView{
		Leader:     leader.ID(),
		Courses:    []readmodel.CourseState{},
		Tombstones: make([]readmodel.TombstoneView, 0, len(tombstones)),
	}
	index := make(map[uuid.UUID]int)
	for _, r := range records {
		i, ok := index[r.CourseID]
		if !ok {
			state := readmodel.CourseState{CourseID: r.CourseID}
			if c, err := reads.CourseByID(ctx, r.CourseID); err == nil {
				state.CourseName = c.Name().String()
				state.Deleted = c.IsDeleted()
			}
			i = len(view.Courses)
			index[r.CourseID] = i
			view.Courses = append(view.Courses, state)
		}
		view.Courses[i].Records = append(view.Courses[i].Records, readmodel.RecordView{
			ID:          r.ID,
			Student:     r.Student,
			SubmittedAt: r.SubmittedAt.Time(),
			Status:      r.Status.String(),
			ModifiedAt:  r.ModifiedAt.Time(),
		})
	}
	for _, t := range tombstones {
		view.Tombstones = append(view.Tombstones, readmodel.TombstoneView{CourseID: t.CourseID, DeletedAt: t.DeletedAt.Time()})
	}
	return view, nil
}

func toCourseView(c *course.Course) readmodel.CourseView {
	return readmodel.CourseView{
		ID:         c.ID(),
		Name:       c.Name().String(),
		Capacity:   c.Capacity().Value(),
		ModifiedAt: c.ModifiedAt().Time(),
	}
}

// ResolveLeader returns the leader with the given id, or the local leader for "".
// Unreachable leaders are marked errs.ErrLeaderUnreachable.
func ResolveLeader(ctx context.Context, cluster shared.Cluster, id string) (shared.Leader, error) {
	if id == "" {
		id = cluster.LocalID()
	}
	leader, err := cluster.Leader(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindUnreachable) {
			return nil, errs.Mark(err, errs.ErrLeaderUnreachable)
		}
		return nil, err
	}
	return leader, nil
}

// FindCourse looks up an active course by its trimmed name.
func FindCourse(ctx context.Context, reads shared.Reads, name string) (*course.Course, error) {
	n, err := course.NewName(name)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrCourseNotFound)
	}
	c, err := reads.CourseByName(ctx, n.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrCourseNotFound)
		}
		return nil, markReadErr(err)
	}
	return c, nil
}

func markReadErr(err error) error {
	if infra.IsKind(err, infra.KindUnreachable) {
		return errs.Mark(err, errs.ErrLeaderUnreachable)
	}
	return err
}
