package enrollment

import (
	"github.com/google/uuid"
)

// LeaderView is what one leader returned for a course.
type LeaderView struct {
	Leader  string
	Records []Record
}

// Merge folds per-leader views into one canonical sequence.
//
// Copies sharing an id collapse into one record. REMOVED is terminal and wins
// over any other copy; otherwise the copy modified last wins, with ties going
// to the higher status precedence. A record whose copies disagreed on status
// is flagged Divergent, REMOVED winners included, so that stale active copies
// get removed again. Records in exclude are dropped.
// The result is ordered by Compare.
func Merge(views []LeaderView, exclude map[uuid.UUID]struct{}) []Record {
	merged := make(map[uuid.UUID]Record)
	conflicting := make(map[uuid.UUID]bool)

	for _, v := range views {
		for _, r := range v.Records {
			if _, skip := exclude[r.ID]; skip {
				continue
			}
			r.Divergent = false
			cur, seen := merged[r.ID]
			if !seen {
				merged[r.ID] = r
				continue
			}
			if cur.Status != r.Status {
				conflicting[r.ID] = true
			}
			if prefer(r, cur) {
				merged[r.ID] = r
			}
		}
	}

	out := make([]Record, 0, len(merged))
	for id, r := range merged {
		r.Divergent = conflicting[id]
		out = append(out, r)
	}
	SortCanonical(out)
	return out
}

// prefer reports whether candidate should replace current as the merged copy.
func prefer(candidate, current Record) bool {
	cr, rr := candidate.Status == StatusRemoved, current.Status == StatusRemoved
	if cr != rr {
		return cr
	}
	if c := candidate.ModifiedAt.Compare(current.ModifiedAt); c != 0 {
		return c > 0
	}
	return candidate.Status.precedence() > current.Status.precedence()
}
