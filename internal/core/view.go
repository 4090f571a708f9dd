package core

import (
	"sort"

	"github.com/valter-silva-au/tasklist/pkg/models"
)

// LessFunc compares two tasks for ordering. The comparator is supplied by
// the caller; the view itself defines no comparison semantics.
type LessFunc func(a, b models.Task) bool

// SortedView orders an already-filtered task sequence with a
// caller-supplied comparator. It re-sorts whenever the comparator or the
// input rows change. A nil comparator passes rows through unchanged.
type SortedView struct {
	less  LessFunc
	rows  []models.Task
	order []int
}

// NewSortedView returns an empty view with no comparator.
func NewSortedView() *SortedView {
	return &SortedView{}
}

// SetComparator replaces the comparator and re-sorts the current rows.
func (v *SortedView) SetComparator(less LessFunc) {
	v.less = less
	v.resort()
}

// SetRows replaces the input rows and re-sorts. The view keeps its own
// copy, so later changes to the argument do not leak into the view.
func (v *SortedView) SetRows(rows []models.Task) {
	v.rows = make([]models.Task, len(rows))
	copy(v.rows, rows)
	v.resort()
}

// Rows returns the rows in sorted order. Callers must not mutate the
// result.
func (v *SortedView) Rows() []models.Task {
	out := make([]models.Task, len(v.order))
	for i, idx := range v.order {
		out[i] = v.rows[idx]
	}
	return out
}

// Indices returns, for each output position, the position of that row in
// the input sequence. Presentation layers use this to map sorted rows back
// to their place in the backing collection.
func (v *SortedView) Indices() []int {
	return append([]int(nil), v.order...)
}

func (v *SortedView) resort() {
	v.order = make([]int, len(v.rows))
	for i := range v.order {
		v.order[i] = i
	}
	if v.less == nil {
		return
	}
	sort.SliceStable(v.order, func(i, j int) bool {
		return v.less(v.rows[v.order[i]], v.rows[v.order[j]])
	})
}
