package core

import (
	"testing"

	"github.com/valter-silva-au/tasklist/pkg/models"
)

func viewTasks(descriptions ...string) []models.Task {
	tasks := make([]models.Task, len(descriptions))
	for i, d := range descriptions {
		tasks[i] = models.Task{Description: d}
	}
	return tasks
}

func byDescription(a, b models.Task) bool {
	return a.Description < b.Description
}

func TestSortedViewPassThroughWithoutComparator(t *testing.T) {
	v := NewSortedView()
	v.SetRows(viewTasks("c", "a", "b"))

	rows := v.Rows()
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	for i, want := range []string{"c", "a", "b"} {
		if rows[i].Description != want {
			t.Errorf("row %d = %q, want %q", i, rows[i].Description, want)
		}
	}
}

func TestSortedViewOrdersRows(t *testing.T) {
	v := NewSortedView()
	v.SetComparator(byDescription)
	v.SetRows(viewTasks("c", "a", "b"))

	rows := v.Rows()
	for i, want := range []string{"a", "b", "c"} {
		if rows[i].Description != want {
			t.Errorf("row %d = %q, want %q", i, rows[i].Description, want)
		}
	}
}

func TestSortedViewResortsOnComparatorChange(t *testing.T) {
	v := NewSortedView()
	v.SetRows(viewTasks("b", "a"))

	if v.Rows()[0].Description != "b" {
		t.Fatal("rows should keep input order before a comparator is set")
	}

	v.SetComparator(byDescription)
	if v.Rows()[0].Description != "a" {
		t.Fatal("setting a comparator must re-sort the current rows")
	}
}

func TestSortedViewIndicesMapToInput(t *testing.T) {
	v := NewSortedView()
	v.SetComparator(byDescription)
	input := viewTasks("c", "a", "b")
	v.SetRows(input)

	indices := v.Indices()
	rows := v.Rows()
	for i, idx := range indices {
		if input[idx].Description != rows[i].Description {
			t.Errorf("index %d points at %q, row is %q", idx, input[idx].Description, rows[i].Description)
		}
	}
}

func TestSortedViewStableForEqualKeys(t *testing.T) {
	v := NewSortedView()
	v.SetComparator(func(a, b models.Task) bool { return false }) // all equal
	v.SetRows(viewTasks("first", "second", "third"))

	rows := v.Rows()
	for i, want := range []string{"first", "second", "third"} {
		if rows[i].Description != want {
			t.Errorf("stable sort broke input order at %d", i)
		}
	}
}

func TestSortedViewCopiesInput(t *testing.T) {
	v := NewSortedView()
	input := viewTasks("a", "b")
	v.SetRows(input)

	input[0].Description = "mutated"
	if v.Rows()[0].Description != "a" {
		t.Error("view must keep its own copy of the rows")
	}
}
