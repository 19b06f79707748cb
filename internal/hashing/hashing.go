// Package hashing counts repeated positions for draw detection.
package hashing

// PositionTable is a multiset of canonical position strings.
type PositionTable struct {
	counts map[string]int
	// total counts every Add, repeats included
	total int
}

// NewPositionTable creates an empty table.
func NewPositionTable() *PositionTable {
	return &PositionTable{counts: make(map[string]int)}
}

// Add records one occurrence of the position and returns how many times
// it has now been seen.
func (t *PositionTable) Add(position string) int {
	t.counts[position]++
	t.total++
	return t.counts[position]
}

// Count returns how many times the position has been recorded.
func (t *PositionTable) Count(position string) int {
	return t.counts[position]
}

// UniqueCount returns the number of distinct positions.
func (t *PositionTable) UniqueCount() int {
	return len(t.counts)
}

// Total returns the number of recorded occurrences.
func (t *PositionTable) Total() int {
	return t.total
}

