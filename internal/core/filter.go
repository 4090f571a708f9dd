// Package core contains the business logic of the task list: the filter
// engine, the sorted view, tag catalog handling, and configuration.
package core

import "github.com/valter-silva-au/tasklist/pkg/models"

// SelectionKind distinguishes the three ways a tag filter can match.
type SelectionKind int

const (
	// SelectAll matches every task.
	SelectAll SelectionKind = iota
	// SelectNone matches tasks without any tag.
	SelectNone
	// SelectTag matches tasks carrying a specific tag.
	SelectTag
)

// Selection is one of the three filter choices for a tag dimension:
// "all", "without", or a concrete tag value.
type Selection struct {
	Kind SelectionKind
	Tag  string
}

// All returns the selection matching every task.
func All() Selection {
	return Selection{Kind: SelectAll}
}

// None returns the selection matching tasks without tags.
func None() Selection {
	return Selection{Kind: SelectNone}
}

// Tag returns the selection matching tasks carrying the given tag.
func Tag(name string) Selection {
	return Selection{Kind: SelectTag, Tag: name}
}

// SelectionAt maps a catalog index to a selection: index 0 is the "all"
// sentinel, index 1 the "without" sentinel, and any later index the tag at
// that position. Out-of-range indices fall back to "all".
func SelectionAt(catalog []string, index int) Selection {
	switch {
	case index == 1:
		return None()
	case index >= SentinelCount && index < len(catalog):
		return Tag(catalog[index])
	default:
		return All()
	}
}

// Filter combines the three independent visibility rules: done tasks,
// context selection, and project selection. All three must match.
type Filter struct {
	ShowDone bool
	Context  Selection
	Project  Selection
}

// NewFilter returns the default filter: done tasks hidden, all contexts
// and all projects visible.
func NewFilter() Filter {
	return Filter{ShowDone: false, Context: All(), Project: All()}
}

// Visible reports whether a task passes all three filter rules.
func (f Filter) Visible(task models.Task) bool {
	if !f.ShowDone && task.Done {
		return false
	}
	return matchesSelection(f.Context, task.Context) && matchesSelection(f.Project, task.Project)
}

// Apply recomputes the visible subset over the entire collection. The
// result is a fresh slice; the input is left untouched.
func (f Filter) Apply(tasks []models.Task) []models.Task {
	var visible []models.Task
	for _, task := range tasks {
		if f.Visible(task) {
			visible = append(visible, task)
		}
	}
	return visible
}

func matchesSelection(sel Selection, tags []string) bool {
	switch sel.Kind {
	case SelectAll:
		return true
	case SelectNone:
		return len(tags) == 0
	default:
		for _, tag := range tags {
			if tag == sel.Tag {
				return true
			}
		}
		return false
	}
}
