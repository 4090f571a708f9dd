package core

import (
	"testing"

	"github.com/valter-silva-au/tasklist/pkg/models"
)

func TestFilterDoneRule(t *testing.T) {
	done := models.Task{Description: "done", Done: true}
	open := models.Task{Description: "open"}

	hideDone := Filter{ShowDone: false, Context: All(), Project: All()}
	showDone := Filter{ShowDone: true, Context: All(), Project: All()}

	if hideDone.Visible(done) {
		t.Error("done task must be hidden when ShowDone is false")
	}
	if !hideDone.Visible(open) {
		t.Error("open task must be visible when ShowDone is false")
	}
	if !showDone.Visible(done) {
		t.Error("done task must be visible when ShowDone is true")
	}
}

func TestFilterContextRule(t *testing.T) {
	tagged := models.Task{Context: []string{"home", "errands"}}
	untagged := models.Task{}

	tests := []struct {
		name         string
		selection    Selection
		wantTagged   bool
		wantUntagged bool
	}{
		{"all", All(), true, true},
		{"without", None(), false, true},
		{"matching tag", Tag("home"), true, false},
		{"non-matching tag", Tag("work"), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Filter{ShowDone: true, Context: tt.selection, Project: All()}
			if got := f.Visible(tagged); got != tt.wantTagged {
				t.Errorf("tagged: got %v, want %v", got, tt.wantTagged)
			}
			if got := f.Visible(untagged); got != tt.wantUntagged {
				t.Errorf("untagged: got %v, want %v", got, tt.wantUntagged)
			}
		})
	}
}

func TestFilterProjectRule(t *testing.T) {
	task := models.Task{Project: []string{"garden"}}

	f := Filter{ShowDone: true, Context: All(), Project: Tag("garden")}
	if !f.Visible(task) {
		t.Error("task carrying the selected project must be visible")
	}

	f.Project = Tag("house")
	if f.Visible(task) {
		t.Error("task without the selected project must be hidden")
	}
}

func TestFilterRulesCombineWithAnd(t *testing.T) {
	task := models.Task{Done: true, Context: []string{"home"}, Project: []string{"garden"}}

	// Both tag rules match, but the done rule hides the task.
	f := Filter{ShowDone: false, Context: Tag("home"), Project: Tag("garden")}
	if f.Visible(task) {
		t.Error("a single failing rule must hide the task")
	}

	f.ShowDone = true
	if !f.Visible(task) {
		t.Error("all rules passing must show the task")
	}
}

// Catalog [ALL, NONE, "home"], tasks with and without the context; only the
// tagged task passes the "home" selection.
func TestFilterSelectedContextScenario(t *testing.T) {
	catalog := []string{"All contexts", "Without context", "home"}
	tasks := []models.Task{
		{Description: "first", Context: []string{"home"}},
		{Description: "second"},
	}

	f := Filter{ShowDone: true, Context: SelectionAt(catalog, 2), Project: All()}
	visible := f.Apply(tasks)

	if len(visible) != 1 {
		t.Fatalf("expected 1 visible task, got %d", len(visible))
	}
	if visible[0].Description != "first" {
		t.Fatalf("expected the tagged task, got %q", visible[0].Description)
	}
}

func TestSelectionAt(t *testing.T) {
	catalog := []string{"All", "Without", "home", "work"}

	tests := []struct {
		index int
		want  Selection
	}{
		{0, All()},
		{1, None()},
		{2, Tag("home")},
		{3, Tag("work")},
		{4, All()},  // out of range falls back to all
		{-1, All()},
	}

	for _, tt := range tests {
		if got := SelectionAt(catalog, tt.index); got != tt.want {
			t.Errorf("SelectionAt(%d) = %+v, want %+v", tt.index, got, tt.want)
		}
	}
}

func TestFilterApplyLeavesInputUntouched(t *testing.T) {
	tasks := []models.Task{
		{Description: "a", Done: true},
		{Description: "b"},
	}

	f := NewFilter()
	visible := f.Apply(tasks)

	if len(visible) != 1 {
		t.Fatalf("expected 1 visible task, got %d", len(visible))
	}
	if len(tasks) != 2 {
		t.Fatal("input slice must not shrink")
	}
}
