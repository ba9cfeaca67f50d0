package enrollment

// CollapseEarliestPerStudent keeps the earliest active record of each student.
// REMOVED records pass through untouched. Input order (canonical) is preserved.
func CollapseEarliestPerStudent(records []Record) []Record {
	seen := make(map[string]struct{}, len(records))
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if !r.IsActive() {
			out = append(out, r)
			continue
		}
		if _, dup := seen[r.Student]; dup {
			continue
		}
		seen[r.Student] = struct{}{}
		out = append(out, r)
	}
	return out
}
