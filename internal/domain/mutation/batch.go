package mutation

import (
	"fmt"
	"slices"
	"strings"

	"enrollment-waitlist/internal/domain/enrollment"
	"enrollment-waitlist/internal/pkg/clock"
)

// Batch is an ordered list of operations applied in one transaction per leader.
type Batch struct {
	ops []Op
}

func NewBatch(ops ...Op) Batch {
	b := Batch{}
	b.Add(ops...)
	return b
}

func (b *Batch) Add(ops ...Op) {
	for _, op := range ops {
		if op != nil {
			b.ops = append(b.ops, op)
		}
	}
}

func (b Batch) Ops() []Op {
	return b.ops
}

func (b Batch) Len() int {
	return len(b.ops)
}

func (b Batch) Empty() bool {
	return len(b.ops) == 0
}

// Summary renders op kinds with counts in first-seen order, e.g. "INSERT=1 UPDATE_STATUS=2".
func (b Batch) Summary() string {
	if b.Empty() {
		return "empty"
	}
	counts := make(map[Kind]int)
	var order []Kind
	for _, op := range b.ops {
		k := op.Kind()
		if counts[k] == 0 {
			order = append(order, k)
		}
		counts[k]++
	}
	parts := make([]string, 0, len(order))
	for _, k := range order {
		parts = append(parts, fmt.Sprintf("%s=%d", k, counts[k]))
	}
	return strings.Join(parts, " ")
}

// StatusUpdates turns resolver changes into UPDATE_STATUS operations stamped with at.
func StatusUpdates(changes []enrollment.StatusChange, at clock.Instant) []Op {
	ops := make([]Op, 0, len(changes))
	for _, c := range changes {
		ops = append(ops, UpdateStatus{RecordID: c.RecordID, Status: c.To, At: at})
	}
	return ops
}

// RepairRemovals re-issues REMOVE_RECORDS for merged records that are REMOVED
// but still active on some leader. Each op keeps the winning copy's instant;
// records sharing an instant share one op, in input order.
func RepairRemovals(merged []enrollment.Record) []Op {
	var ops []RemoveRecords
	for _, r := range merged {
		if r.IsActive() || !r.Divergent {
			continue
		}
		i := slices.IndexFunc(ops, func(op RemoveRecords) bool { return op.At.Equal(r.ModifiedAt) })
		if i < 0 {
			ops = append(ops, RemoveRecords{At: r.ModifiedAt})
			i = len(ops) - 1
		}
		ops[i].RecordIDs = append(ops[i].RecordIDs, r.ID)
	}
	out := make([]Op, 0, len(ops))
	for _, op := range ops {
		out = append(out, op)
	}
	return out
}
