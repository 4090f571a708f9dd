package models

import (
	"fmt"
	"strings"
)

// Priority represents the priority of a task: no priority, the "done"
// marker, or a single letter between A and Z.
type Priority string

const (
	// PriorityNone means the task has no priority assigned.
	PriorityNone Priority = ""
	// PriorityDone is the marker for completed tasks.
	PriorityDone Priority = "x"
)

// PriorityCount is the number of distinct priority values: none, the done
// marker, and the letters A through Z.
const PriorityCount = 28

// priorityTable maps selection indices to priority values. Index 0 is
// "no priority", index 1 is the done marker, indices 2..27 are A..Z.
var priorityTable = buildPriorityTable()

func buildPriorityTable() []Priority {
	table := make([]Priority, 0, PriorityCount)
	table = append(table, PriorityNone, PriorityDone)
	for l := 'A'; l <= 'Z'; l++ {
		table = append(table, Priority(l))
	}
	return table
}

// PriorityFromIndex returns the priority for a selection index.
// It reports false if the index is outside [0, PriorityCount).
func PriorityFromIndex(index int) (Priority, bool) {
	if index < 0 || index >= len(priorityTable) {
		return PriorityNone, false
	}
	return priorityTable[index], true
}

// Index returns the selection index of the priority. Unknown values
// resolve to 0, the same slot as "no priority".
func (p Priority) Index() int {
	for i, candidate := range priorityTable {
		if p == candidate {
			return i
		}
	}
	return 0
}

// ParsePriority converts user input to a priority: empty for none, "x"
// (either case) for the done marker, or a single letter A-Z accepted
// case-insensitively.
func ParsePriority(s string) (Priority, error) {
	if s == "" {
		return PriorityNone, nil
	}
	upper := strings.ToUpper(s)
	if upper == "X" {
		return PriorityDone, nil
	}
	p := Priority(upper)
	if !p.IsLetter() {
		return PriorityNone, fmt.Errorf("invalid priority %q: use a letter A-Z or x", s)
	}
	return p, nil
}

// IsLetter reports whether the priority is a letter between A and Z.
func (p Priority) IsLetter() bool {
	return len(p) == 1 && p[0] >= 'A' && p[0] <= 'Z'
}

// Valid reports whether the priority is one of the defined values.
func (p Priority) Valid() bool {
	for _, candidate := range priorityTable {
		if p == candidate {
			return true
		}
	}
	return false
}

// String returns a display form of the priority. The empty priority is
// rendered as "-" so table output stays aligned.
func (p Priority) String() string {
	if p == PriorityNone {
		return "-"
	}
	return string(p)
}
