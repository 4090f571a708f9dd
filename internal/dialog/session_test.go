package dialog

import (
	"testing"

	"github.com/valter-silva-au/tasklist/pkg/models"
)

// fakePrompter replays scripted responses to Choose and Input calls.
type fakePrompter struct {
	choices []promptReply
	inputs  []promptReply
}

type promptReply struct {
	value string
	ok    bool
}

func (p *fakePrompter) Choose(_ string, _ []string) (string, bool) {
	if len(p.choices) == 0 {
		return "", false
	}
	reply := p.choices[0]
	p.choices = p.choices[1:]
	return reply.value, reply.ok
}

func (p *fakePrompter) Input(_ string) (string, bool) {
	if len(p.inputs) == 0 {
		return "", false
	}
	reply := p.inputs[0]
	p.inputs = p.inputs[1:]
	return reply.value, reply.ok
}

var (
	testContexts = []string{"All contexts", "Without context", "home", "work"}
	testProjects = []string{"All projects", "Without project", "garden"}
)

func TestBeginCreateDefaults(t *testing.T) {
	sess := BeginCreate(&fakePrompter{}, testContexts, testProjects)

	if sess.PriorityIndex() != 0 {
		t.Errorf("priority index = %d, want 0", sess.PriorityIndex())
	}
	if !sess.Creation().Equal(models.Today()) {
		t.Errorf("creation date = %s, want today", sess.Creation())
	}
	if sess.Due().IsSet() {
		t.Error("due date must start unset")
	}
	if sess.Description() != "" {
		t.Error("description must start empty")
	}
	if len(sess.Contexts()) != 0 || len(sess.Projects()) != 0 {
		t.Error("tag lists must start empty")
	}
}

func TestSessionStripsCatalogSentinels(t *testing.T) {
	sess := BeginCreate(&fakePrompter{}, testContexts, testProjects)

	contexts := sess.SelectableContexts()
	if len(contexts) != 2 || contexts[0] != "home" || contexts[1] != "work" {
		t.Fatalf("selectable contexts = %v, want [home work]", contexts)
	}
	projects := sess.SelectableProjects()
	if len(projects) != 1 || projects[0] != "garden" {
		t.Fatalf("selectable projects = %v, want [garden]", projects)
	}
}

func TestAddContextBySelection(t *testing.T) {
	p := &fakePrompter{choices: []promptReply{{"home", true}}}
	sess := BeginCreate(p, testContexts, testProjects)

	sess.AddContextBySelection()

	if got := sess.Contexts(); len(got) != 1 || got[0] != "home" {
		t.Fatalf("contexts = %v, want [home]", got)
	}
}

func TestAddContextBySelection_Dismissed(t *testing.T) {
	p := &fakePrompter{choices: []promptReply{{"", false}}}
	sess := BeginCreate(p, testContexts, testProjects)

	sess.AddContextBySelection()

	if len(sess.Contexts()) != 0 {
		t.Fatal("dismissed prompt must not add a tag")
	}
}

func TestAddContextByInput(t *testing.T) {
	p := &fakePrompter{inputs: []promptReply{{"phone", true}}}
	sess := BeginCreate(p, testContexts, testProjects)

	sess.AddContextByInput()

	if got := sess.Contexts(); len(got) != 1 || got[0] != "phone" {
		t.Fatalf("contexts = %v, want [phone]", got)
	}
}

func TestAddContextByInput_BlankIgnored(t *testing.T) {
	p := &fakePrompter{inputs: []promptReply{{"   ", true}}}
	sess := BeginCreate(p, testContexts, testProjects)

	sess.AddContextByInput()

	if len(sess.Contexts()) != 0 {
		t.Fatal("blank input must not add a tag")
	}
}

func TestRemoveContext(t *testing.T) {
	p := &fakePrompter{inputs: []promptReply{{"a", true}, {"b", true}}}
	sess := BeginCreate(p, testContexts, testProjects)
	sess.AddContextByInput()
	sess.AddContextByInput()

	sess.RemoveContext(0)

	if got := sess.Contexts(); len(got) != 1 || got[0] != "b" {
		t.Fatalf("contexts = %v, want [b]", got)
	}
}

func TestRemoveContext_NoSelectionIsNoOp(t *testing.T) {
	p := &fakePrompter{inputs: []promptReply{{"a", true}}}
	sess := BeginCreate(p, testContexts, testProjects)
	sess.AddContextByInput()

	sess.RemoveContext(-1)
	sess.RemoveContext(5)

	if len(sess.Contexts()) != 1 {
		t.Fatal("out-of-range removal must be a no-op")
	}
}

func TestSetPriorityIndex(t *testing.T) {
	sess := BeginCreate(&fakePrompter{}, testContexts, testProjects)

	if !sess.SetPriorityIndex(3) {
		t.Fatal("index 3 is valid")
	}
	if sess.PriorityIndex() != 3 {
		t.Fatalf("priority index = %d, want 3", sess.PriorityIndex())
	}

	if sess.SetPriorityIndex(models.PriorityCount) {
		t.Fatal("out-of-range index must be rejected")
	}
	if sess.PriorityIndex() != 3 {
		t.Fatal("rejected index must not change the staged value")
	}
}

func TestConversionPriorityRules(t *testing.T) {
	tests := []struct {
		name         string
		index        int
		wantPriority models.Priority
		wantDone     bool
	}{
		{"no priority", 0, models.PriorityNone, false},
		{"done marker", 1, models.PriorityDone, true},
		{"letter A", 2, models.Priority("A"), false},
		{"letter Z", 27, models.Priority("Z"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := BeginCreate(&fakePrompter{}, testContexts, testProjects)
			sess.SetPriorityIndex(tt.index)
			sess.Done()

			tasks := sess.ResultTasks()
			if len(tasks) != 1 {
				t.Fatalf("expected 1 task, got %d", len(tasks))
			}
			if tasks[0].Priority != tt.wantPriority {
				t.Errorf("priority = %q, want %q", tasks[0].Priority, tt.wantPriority)
			}
			if tasks[0].Done != tt.wantDone {
				t.Errorf("done = %v, want %v", tasks[0].Done, tt.wantDone)
			}
		})
	}
}

// Creating session: Continue stages a task and resets the fields; Done
// commits the session with the final task appended.
func TestCreateSessionContinueThenDone(t *testing.T) {
	sess := BeginCreate(&fakePrompter{}, testContexts, testProjects)

	sess.SetDescription("first")
	sess.Continue()

	if sess.Description() != "" {
		t.Fatal("Continue must reset the staged fields")
	}
	if sess.IsCommitted() {
		t.Fatal("Continue must keep the session open")
	}

	sess.SetDescription("second")
	sess.Done()

	if !sess.IsCommitted() {
		t.Fatal("Done must commit the session")
	}

	tasks := sess.ResultTasks()
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].Description != "first" || tasks[1].Description != "second" {
		t.Fatalf("unexpected descriptions: %q, %q", tasks[0].Description, tasks[1].Description)
	}
}

// Mutating an already-returned task must not leak into later ones.
func TestCreateSessionTasksAreIndependent(t *testing.T) {
	p := &fakePrompter{inputs: []promptReply{{"home", true}}}
	sess := BeginCreate(p, testContexts, testProjects)

	sess.AddContextByInput()
	sess.Continue()

	tasks := sess.ResultTasks()
	tasks[0].Context = append(tasks[0].Context, "mutated")
	tasks[0].Description = "mutated"

	sess.SetDescription("second")
	sess.Done()

	final := sess.ResultTasks()
	if final[1].Description != "second" {
		t.Fatal("second task affected by mutating the first")
	}
	if len(final[1].Context) != 0 {
		t.Fatal("second task inherited mutated tags")
	}
}

// Editing a done task round-trips the done marker through the dialog.
func TestEditSessionDoneMarkerRoundTrip(t *testing.T) {
	task := models.Task{
		Priority:    models.PriorityDone,
		Done:        true,
		Description: "water the plants",
	}

	sess := BeginEdit(&fakePrompter{}, task, testContexts, testProjects)

	if sess.PriorityIndex() != 1 {
		t.Fatalf("priority index = %d, want 1", sess.PriorityIndex())
	}

	sess.Save()

	got := sess.ResultTask()
	if !got.Done {
		t.Error("done flag lost through the dialog")
	}
	if got.Priority != models.PriorityDone {
		t.Errorf("priority = %q, want done marker", got.Priority)
	}
	if got.Description != "water the plants" {
		t.Errorf("description = %q", got.Description)
	}
}

func TestEditSessionStagesTaskFields(t *testing.T) {
	task := models.Task{
		Priority:    models.Priority("C"),
		Creation:    models.NewDate(2026, 1, 15),
		Due:         models.NewDate(2026, 2, 1),
		Description: "prune roses",
		Context:     []string{"garden"},
		Project:     []string{"yard"},
	}

	sess := BeginEdit(&fakePrompter{}, task, testContexts, testProjects)

	if sess.PriorityIndex() != 4 {
		t.Errorf("priority index = %d, want 4 (C)", sess.PriorityIndex())
	}
	if !sess.Creation().Equal(task.Creation) {
		t.Error("creation date not staged verbatim")
	}
	if !sess.Due().Equal(task.Due) {
		t.Error("due date not staged verbatim")
	}
	if sess.Description() != "prune roses" {
		t.Errorf("description = %q", sess.Description())
	}
	if len(sess.Contexts()) != 1 || sess.Contexts()[0] != "garden" {
		t.Errorf("contexts = %v", sess.Contexts())
	}
}

func TestEditSessionUnsetDatesStayUnset(t *testing.T) {
	task := models.Task{Description: "no dates"}

	sess := BeginEdit(&fakePrompter{}, task, testContexts, testProjects)

	if sess.Creation().IsSet() || sess.Due().IsSet() {
		t.Fatal("unset dates must stage as unset")
	}

	sess.Save()
	got := sess.ResultTask()
	if got.Creation.IsSet() || got.Due.IsSet() {
		t.Fatal("unset dates must survive the round trip")
	}
}

func TestCancelDiscardsEverything(t *testing.T) {
	create := BeginCreate(&fakePrompter{}, testContexts, testProjects)
	create.SetDescription("doomed")
	create.Cancel()

	if create.IsCommitted() {
		t.Error("cancelled create session must not be committed")
	}
	if len(create.ResultTasks()) != 0 {
		t.Error("cancelled create session must yield no tasks")
	}

	edit := BeginEdit(&fakePrompter{}, models.Task{Description: "original"}, testContexts, testProjects)
	edit.SetDescription("changed")
	edit.Cancel()

	if edit.IsCommitted() {
		t.Error("cancelled edit session must not be committed")
	}
}
