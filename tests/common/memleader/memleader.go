//go:build unit

// Package memleader is an in-memory cluster of leaders for coordinator tests.
// Each leader keeps its own copy of the data; transactions work on a clone
// that replaces the leader's state only on commit.
package memleader

import (
	"context"
	"slices"
	"strings"
	"sync"

	"enrollment-waitlist/internal/domain/course"
	"enrollment-waitlist/internal/domain/enrollment"
	"enrollment-waitlist/internal/infra"
	"enrollment-waitlist/internal/pkg/clock"
	"enrollment-waitlist/internal/pkg/errs"
	"enrollment-waitlist/internal/usecase/shared"

	"github.com/google/uuid"
)

// Operation names accepted by FailOn.
const (
	OpInsert          = "Insert"
	OpUpdateStatus    = "UpdateStatus"
	OpMarkRemoved     = "MarkRemoved"
	OpCascadeRemoved  = "CascadeRemoved"
	OpCreateCourse    = "CreateCourse"
	OpMarkDeleted     = "MarkDeleted"
	OpDeleteCourse    = "DeleteCourse"
	OpUpsertTombstone = "UpsertTombstone"
	OpListRecords     = "ListRecords"
	OpCommit          = "Commit"
)

type store struct {
	courses    map[uuid.UUID]*course.Course
	records    map[uuid.UUID]enrollment.Record
	tombstones map[uuid.UUID]course.Tombstone
}

func newStore() *store {
	return &store{
		courses:    make(map[uuid.UUID]*course.Course),
		records:    make(map[uuid.UUID]enrollment.Record),
		tombstones: make(map[uuid.UUID]course.Tombstone),
	}
}

func (s *store) clone() *store {
	c := newStore()
	for k, v := range s.courses {
		cp := *v
		c.courses[k] = &cp
	}
	for k, v := range s.records {
		c.records[k] = v
	}
	for k, v := range s.tombstones {
		c.tombstones[k] = v
	}
	return c
}

type Leader struct {
	mu      sync.Mutex
	id      string
	clock   clock.Clock
	data    *store
	down    bool
	failOn  map[string]error
	commits int
}

func NewLeader(id string, clk clock.Clock) *Leader {
	return &Leader{
		id:     id,
		clock:  clk,
		data:   newStore(),
		failOn: make(map[string]error),
	}
}

func (l *Leader) ID() string {
	return l.id
}

// SetDown makes every access fail as unreachable until reset.
func (l *Leader) SetDown(down bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.down = down
}

// FailOn makes op fail with err until cleared with a nil err.
func (l *Leader) FailOn(op string, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err == nil {
		delete(l.failOn, op)
		return
	}
	l.failOn[op] = err
}

// Commits counts successful transactions.
func (l *Leader) Commits() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.commits
}

func (l *Leader) Seed(courses []*course.Course, records ...enrollment.Record) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, c := range courses {
		cp := *c
		l.data.courses[c.ID()] = &cp
	}
	for _, r := range records {
		l.data.records[r.ID] = r
	}
}

func (l *Leader) SeedTombstones(tombstones ...course.Tombstone) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, t := range tombstones {
		l.data.tombstones[t.CourseID] = t
	}
}

// Records returns the stored records of a course in canonical order.
func (l *Leader) Records(courseID uuid.UUID) []enrollment.Record {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.data.recordsOf(courseID)
}

func (l *Leader) Record(id uuid.UUID) (enrollment.Record, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	r, ok := l.data.records[id]
	return r, ok
}

func (l *Leader) Course(id uuid.UUID) (*course.Course, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	c, ok := l.data.courses[id]
	return c, ok
}

func (l *Leader) Tombstone(courseID uuid.UUID) (course.Tombstone, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	t, ok := l.data.tombstones[courseID]
	return t, ok
}

func (l *Leader) unreachable() error {
	return infra.WrapRepoErr("leader "+l.id+" unreachable", nil, infra.KindUnreachable)
}

// Within holds the leader lock for the whole transaction, so transactions on
// one leader are serialized. fn must only use tx, never l.Reads().
func (l *Leader) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.down {
		return l.unreachable()
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	working := l.data.clone()
	t := &tx{leader: l, data: working}
	if err := fn(ctx, t); err != nil {
		return err
	}
	if err := l.failOn[OpCommit]; err != nil {
		return infra.WrapRepoErr("commit failed", err)
	}
	l.data = working
	l.commits++
	return nil
}

func (l *Leader) Reads() shared.Reads {
	return &reads{leader: l}
}

type tx struct {
	leader *Leader
	data   *store
}

func (t *tx) Reads() shared.Reads                    { return &reads{leader: t.leader, data: t.data} }
func (t *tx) Records() shared.RecordRepository       { return &records{tx: t} }
func (t *tx) Courses() shared.CourseRepository       { return &courses{tx: t} }
func (t *tx) Tombstones() shared.TombstoneRepository { return &tombstones{tx: t} }

// fail must be called with the leader lock held.
func (t *tx) fail(op string) error {
	if err := t.leader.failOn[op]; err != nil {
		return infra.WrapRepoErr(op+" failed", err)
	}
	return nil
}

type records struct{ tx *tx }

func (r *records) Insert(_ context.Context, rec enrollment.Record) error {
	if err := r.tx.fail(OpInsert); err != nil {
		return err
	}
	if _, ok := r.tx.data.courses[rec.CourseID]; !ok {
		return infra.WrapRepoErr("course missing for record", nil, infra.KindForeignKeyViolated)
	}
	if _, exists := r.tx.data.records[rec.ID]; exists {
		return nil
	}
	if rec.ModifiedAt.IsZero() {
		rec.ModifiedAt = rec.SubmittedAt
	}
	rec.Divergent = false
	r.tx.data.records[rec.ID] = rec
	return nil
}

func (r *records) UpdateStatus(_ context.Context, id uuid.UUID, status enrollment.Status, at clock.Instant) error {
	if err := r.tx.fail(OpUpdateStatus); err != nil {
		return err
	}
	rec, ok := r.tx.data.records[id]
	if !ok || rec.Status == enrollment.StatusRemoved {
		return nil
	}
	rec.Status = status
	rec.ModifiedAt = at
	r.tx.data.records[id] = rec
	return nil
}

func (r *records) ActiveIDs(_ context.Context, courseID uuid.UUID, student string) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for _, rec := range r.tx.data.recordsOf(courseID) {
		if rec.IsActive() && rec.Student == student {
			ids = append(ids, rec.ID)
		}
	}
	return ids, nil
}

func (r *records) MarkRemoved(_ context.Context, ids []uuid.UUID, at clock.Instant) error {
	if err := r.tx.fail(OpMarkRemoved); err != nil {
		return err
	}
	for _, id := range ids {
		rec, ok := r.tx.data.records[id]
		if !ok || !rec.IsActive() {
			continue
		}
		rec.Status = enrollment.StatusRemoved
		rec.ModifiedAt = at
		r.tx.data.records[id] = rec
	}
	return nil
}

func (r *records) CascadeRemoved(_ context.Context, courseID uuid.UUID, at clock.Instant) error {
	if err := r.tx.fail(OpCascadeRemoved); err != nil {
		return err
	}
	for id, rec := range r.tx.data.records {
		if rec.CourseID == courseID && rec.IsActive() {
			rec.Status = enrollment.StatusRemoved
			rec.ModifiedAt = at
			r.tx.data.records[id] = rec
		}
	}
	return nil
}

type courses struct{ tx *tx }

func (c *courses) Create(_ context.Context, crs *course.Course) (bool, error) {
	if err := c.tx.fail(OpCreateCourse); err != nil {
		return false, err
	}
	if _, exists := c.tx.data.courses[crs.ID()]; exists {
		return false, nil
	}
	for _, existing := range c.tx.data.courses {
		if !existing.IsDeleted() && existing.Name() == crs.Name() {
			return false, nil
		}
	}
	cp := *crs
	c.tx.data.courses[crs.ID()] = &cp
	return true, nil
}

func (c *courses) MarkDeleted(_ context.Context, id uuid.UUID, at clock.Instant) error {
	if err := c.tx.fail(OpMarkDeleted); err != nil {
		return err
	}
	existing, ok := c.tx.data.courses[id]
	if !ok || existing.IsDeleted() {
		return nil
	}
	c.tx.data.courses[id] = course.Reconstruct(id, existing.Name().String(), existing.Capacity().Value(), true, at)
	return nil
}

func (c *courses) Delete(_ context.Context, id uuid.UUID) error {
	if err := c.tx.fail(OpDeleteCourse); err != nil {
		return err
	}
	delete(c.tx.data.courses, id)
	for rid, rec := range c.tx.data.records {
		if rec.CourseID == id {
			delete(c.tx.data.records, rid)
		}
	}
	return nil
}

type tombstones struct{ tx *tx }

func (t *tombstones) Upsert(_ context.Context, ts course.Tombstone) error {
	if err := t.tx.fail(OpUpsertTombstone); err != nil {
		return err
	}
	existing, ok := t.tx.data.tombstones[ts.CourseID]
	if !ok || ts.Supersedes(existing) {
		t.tx.data.tombstones[ts.CourseID] = ts
	}
	return nil
}

// reads serves a transaction when data is set, the committed state otherwise.
type reads struct {
	leader *Leader
	data   *store
}

func (r *reads) view(fn func(s *store) error) error {
	if r.data != nil {
		return fn(r.data)
	}
	r.leader.mu.Lock()
	defer r.leader.mu.Unlock()
	if r.leader.down {
		return r.leader.unreachable()
	}
	return fn(r.leader.data)
}

func (r *reads) CourseByName(_ context.Context, name string) (*course.Course, error) {
	var found *course.Course
	err := r.view(func(s *store) error {
		for _, c := range s.courses {
			if !c.IsDeleted() && c.Name().String() == name {
				cp := *c
				found = &cp
				return nil
			}
		}
		return infra.WrapRepoErr("course not found", nil, infra.KindNotFound)
	})
	return found, err
}

func (r *reads) CourseByID(_ context.Context, id uuid.UUID) (*course.Course, error) {
	var found *course.Course
	err := r.view(func(s *store) error {
		c, ok := s.courses[id]
		if !ok {
			return infra.WrapRepoErr("course not found", nil, infra.KindNotFound)
		}
		cp := *c
		found = &cp
		return nil
	})
	return found, err
}

func (r *reads) ListCourses(_ context.Context) ([]*course.Course, error) {
	var out []*course.Course
	err := r.view(func(s *store) error {
		for id, c := range s.courses {
			if _, tomb := s.tombstones[id]; tomb || c.IsDeleted() {
				continue
			}
			cp := *c
			out = append(out, &cp)
		}
		return nil
	})
	slices.SortFunc(out, func(a, b *course.Course) int { return strings.Compare(a.Name().String(), b.Name().String()) })
	return out, err
}

func (r *reads) ListRecords(_ context.Context, courseID uuid.UUID) ([]enrollment.Record, error) {
	var out []enrollment.Record
	err := r.view(func(s *store) error {
		if err := r.leader.failOn[OpListRecords]; err != nil {
			return infra.WrapRepoErr("list records failed", err)
		}
		out = s.recordsOf(courseID)
		return nil
	})
	return out, err
}

func (r *reads) ListAllRecords(_ context.Context) ([]enrollment.Record, error) {
	var out []enrollment.Record
	err := r.view(func(s *store) error {
		for _, rec := range s.records {
			out = append(out, rec)
		}
		return nil
	})
	slices.SortFunc(out, func(a, b enrollment.Record) int {
		if c := strings.Compare(a.CourseID.String(), b.CourseID.String()); c != 0 {
			return c
		}
		return enrollment.Compare(a, b)
	})
	return out, err
}

func (r *reads) ListTombstones(_ context.Context) ([]course.Tombstone, error) {
	var out []course.Tombstone
	err := r.view(func(s *store) error {
		for _, t := range s.tombstones {
			out = append(out, t)
		}
		return nil
	})
	slices.SortFunc(out, func(a, b course.Tombstone) int { return a.DeletedAt.Compare(b.DeletedAt) })
	return out, err
}

func (r *reads) Now(_ context.Context) (clock.Instant, error) {
	var now clock.Instant
	err := r.view(func(*store) error {
		now = clock.NowInstant(r.leader.clock)
		return nil
	})
	return now, err
}

func (s *store) recordsOf(courseID uuid.UUID) []enrollment.Record {
	var out []enrollment.Record
	for _, rec := range s.records {
		if rec.CourseID == courseID {
			out = append(out, rec)
		}
	}
	enrollment.SortCanonical(out)
	return out
}

// Cluster is a fixed set of in-memory leaders.
type Cluster struct {
	local   string
	order   []string
	leaders map[string]*Leader
}

func NewCluster(local string, leaders ...*Leader) *Cluster {
	c := &Cluster{local: local, leaders: make(map[string]*Leader, len(leaders))}
	for _, l := range leaders {
		c.order = append(c.order, l.id)
		c.leaders[l.id] = l
	}
	return c
}

func (c *Cluster) LocalID() string { return c.local }

func (c *Cluster) IDs() []string { return append([]string(nil), c.order...) }

func (c *Cluster) Peers(of string) []string {
	var peers []string
	for _, id := range c.order {
		if id != of {
			peers = append(peers, id)
		}
	}
	return peers
}

func (c *Cluster) Leader(ctx context.Context, id string) (shared.Leader, error) {
	l, ok := c.leaders[id]
	if !ok {
		return nil, errs.Wrapf(errs.ErrUnknownLeader, "leader %q", id)
	}
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr("leader "+id+" unreachable", err, infra.KindUnreachable)
	}
	l.mu.Lock()
	down := l.down
	l.mu.Unlock()
	if down {
		return nil, l.unreachable()
	}
	return l, nil
}

// Get returns the concrete leader for assertions.
func (c *Cluster) Get(id string) *Leader {
	return c.leaders[id]
}
