package enrollment

import (
	"slices"

	"github.com/google/uuid"
)

// Placement is where a candidate lands in the queue.
type Placement struct {
	Status Status
	Rank   int
}

type StatusChange struct {
	RecordID uuid.UUID
	Student  string
	From     Status
	To       Status
}

// Ranked is one entry of the resolved queue. Rank is 0 for REMOVED records.
type Ranked struct {
	Record    Record
	Computed  Status
	Rank      int
	Candidate bool
}

type Resolution struct {
	Candidate *Placement
	Changes   []StatusChange
	Ranked    []Ranked
}

// Resolve ranks ordered (sorted by Compare) against capacity.
//
// A non-nil candidate is inserted at its canonical position first. Every
// active record gets its 1-based position among active records; the first
// capacity of them are ACCEPTED and the rest REJECTED. Changes lists each
// pre-existing active record whose computed status differs from the stored one
// or that is Divergent. Divergent REMOVED records are left to the caller.
// The function is pure; the input slice is not modified.
func Resolve(ordered []Record, capacity int, candidate *Record) Resolution {
	if capacity < 0 {
		capacity = 0
	}

	queue := slices.Clone(ordered)
	candidateAt := -1
	if candidate != nil {
		pos, _ := slices.BinarySearchFunc(queue, *candidate, Compare)
		queue = slices.Insert(queue, pos, *candidate)
		candidateAt = pos
	}

	res := Resolution{Ranked: make([]Ranked, 0, len(queue))}
	rank := 0
	for i, r := range queue {
		entry := Ranked{Record: r, Computed: r.Status, Candidate: i == candidateAt}
		if r.IsActive() {
			rank++
			entry.Rank = rank
			entry.Computed = StatusRejected
			if rank <= capacity {
				entry.Computed = StatusAccepted
			}
		}
		res.Ranked = append(res.Ranked, entry)

		if entry.Candidate {
			res.Candidate = &Placement{Status: entry.Computed, Rank: entry.Rank}
			continue
		}
		if !r.IsActive() {
			continue
		}
		if entry.Computed != r.Status || r.Divergent {
			res.Changes = append(res.Changes, StatusChange{
				RecordID: r.ID,
				Student:  r.Student,
				From:     r.Status,
				To:       entry.Computed,
			})
		}
	}
	return res
}

// Accepted counts ACCEPTED entries of the resolved queue.
func (r Resolution) Accepted() int {
	n := 0
	for _, e := range r.Ranked {
		if e.Computed == StatusAccepted {
			n++
		}
	}
	return n
}
