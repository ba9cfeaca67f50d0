//go:build unit

package enrollment_test

import (
	"fmt"
	"strings"
	"testing"

	"enrollment-waitlist/internal/domain/enrollment"
	"enrollment-waitlist/tests/common/builder"

	"github.com/sebdah/goldie/v2"
)

type resolveScenario struct {
	name      string
	capacity  int
	records   []enrollment.Record
	candidate *enrollment.Record
}

func rec(n byte, student string, seconds int, status enrollment.Status) enrollment.Record {
	return builder.NewRecordBuilder().
		WithID(builder.SeqID(n)).
		WithStudent(student).
		SubmittedAfter(seconds).
		WithStatus(status).
		Build()
}

func TestResolveGolden(t *testing.T) {
	lateInsert := rec(1, "alice", 10, enrollment.StatusPending)
	tieCandidate := rec(1, "alice", 0, enrollment.StatusPending)

	scenarios := []resolveScenario{
		{
			name:     "promotion_after_removal",
			capacity: 2,
			records: []enrollment.Record{
				rec(1, "alice", 0, enrollment.StatusRemoved),
				rec(2, "bob", 10, enrollment.StatusAccepted),
				rec(3, "carol", 20, enrollment.StatusRejected),
				rec(4, "dave", 30, enrollment.StatusRejected),
			},
		},
		{
			name:      "late_replicated_insert_demotes",
			capacity:  1,
			records:   []enrollment.Record{rec(2, "bob", 20, enrollment.StatusAccepted)},
			candidate: &lateInsert,
		},
		{
			name:      "timestamp_tie_broken_by_id",
			capacity:  1,
			records:   []enrollment.Record{rec(2, "bob", 0, enrollment.StatusAccepted)},
			candidate: &tieCandidate,
		},
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	for _, s := range scenarios {
		t.Run(s.name, func(t *testing.T) {
			res := enrollment.Resolve(s.records, s.capacity, s.candidate)
			g.Assert(t, s.name, renderResolution(s.name, s.capacity, res))
		})
	}
}

func renderResolution(name string, capacity int, res enrollment.Resolution) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "scenario: %s\ncapacity: %d\nqueue:\n", name, capacity)
	for _, e := range res.Ranked {
		rank := "--"
		if e.Rank > 0 {
			rank = fmt.Sprintf("#%d", e.Rank)
		}
		mark := ""
		if e.Candidate {
			mark = " (candidate)"
		}
		fmt.Fprintf(&b, "  %s %s %s -> %s at %s%s\n", rank, e.Record.Student, e.Record.Status, e.Computed, e.Record.SubmittedAt, mark)
	}
	b.WriteString("changes:\n")
	if len(res.Changes) == 0 {
		b.WriteString("  none\n")
	}
	for _, c := range res.Changes {
		fmt.Fprintf(&b, "  %s %s -> %s\n", c.Student, c.From, c.To)
	}
	if res.Candidate != nil {
		fmt.Fprintf(&b, "candidate: %s rank %d\n", res.Candidate.Status, res.Candidate.Rank)
	} else {
		b.WriteString("candidate: none\n")
	}
	return []byte(b.String())
}
