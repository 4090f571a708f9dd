// Package dialog implements the create/edit session state machine for the
// task dialog. A session stages field values and working tag lists, and
// converts the staged state to a task on commit.
package dialog

import (
	"strings"

	"github.com/valter-silva-au/tasklist/internal/core"
	"github.com/valter-silva-au/tasklist/pkg/models"
)

// Prompter is the boundary to the host UI for the two modal prompts a
// session can open. Both calls block until the user responds; ok=false
// means the prompt was dismissed, which is not an error.
type Prompter interface {
	// Choose presents a single-choice prompt over the given options.
	Choose(prompt string, options []string) (string, bool)
	// Input presents a free-text prompt.
	Input(prompt string) (string, bool)
}

// stage holds the working copies of the dialog fields, not yet committed
// to a task.
type stage struct {
	priorityIndex int
	creation      models.Date
	due           models.Date
	description   string
	contexts      []string
	projects      []string
}

// reset puts the stage back to the creation defaults: no priority,
// creation date today, due date unset, empty description, empty tag lists.
func (s *stage) reset() {
	s.priorityIndex = 0
	s.creation = models.Today()
	s.due = models.Date{}
	s.description = ""
	s.contexts = nil
	s.projects = nil
}

// session carries the state shared by both dialog modes: the staged
// fields, the selectable tag lists, and the commit flag.
type session struct {
	prompter Prompter

	// Selectable tags from the catalogs, sentinels stripped. Distinct
	// from the staged tag lists, which belong to the task being built.
	selectableContexts []string
	selectableProjects []string

	stage     stage
	committed bool
}

func newSession(p Prompter, contexts, projects []string) session {
	s := session{
		prompter:           p,
		selectableContexts: core.StripSentinels(contexts),
		selectableProjects: core.StripSentinels(projects),
	}
	s.stage.reset()
	return s
}

// --- Staged field accessors and edits ---

// PriorityIndex returns the staged priority selection index.
func (s *session) PriorityIndex() int {
	return s.stage.priorityIndex
}

// SetPriorityIndex stages a priority selection. Indices outside the total
// priority mapping are ignored and reported as false.
func (s *session) SetPriorityIndex(index int) bool {
	if _, ok := models.PriorityFromIndex(index); !ok {
		return false
	}
	s.stage.priorityIndex = index
	return true
}

// Creation returns the staged creation date.
func (s *session) Creation() models.Date {
	return s.stage.creation
}

// SetCreation stages the creation date.
func (s *session) SetCreation(d models.Date) {
	s.stage.creation = d
}

// Due returns the staged due date.
func (s *session) Due() models.Date {
	return s.stage.due
}

// SetDue stages the due date.
func (s *session) SetDue(d models.Date) {
	s.stage.due = d
}

// Description returns the staged description text.
func (s *session) Description() string {
	return s.stage.description
}

// SetDescription stages the description text.
func (s *session) SetDescription(text string) {
	s.stage.description = text
}

// Contexts returns the staged context tag list.
func (s *session) Contexts() []string {
	return s.stage.contexts
}

// Projects returns the staged project tag list.
func (s *session) Projects() []string {
	return s.stage.projects
}

// SelectableContexts returns the context tags offered by the selection
// prompt.
func (s *session) SelectableContexts() []string {
	return s.selectableContexts
}

// SelectableProjects returns the project tags offered by the selection
// prompt.
func (s *session) SelectableProjects() []string {
	return s.selectableProjects
}

// --- Tag actions ---

// AddContextBySelection opens a single-choice prompt over the selectable
// contexts and appends the chosen tag. A dismissed prompt is a no-op.
func (s *session) AddContextBySelection() {
	addBySelection(s.prompter, "Select context", s.selectableContexts, &s.stage.contexts)
}

// AddContextByInput opens a free-text prompt and appends the entered tag
// when it is non-empty. A dismissed prompt is a no-op.
func (s *session) AddContextByInput() {
	addByInput(s.prompter, "New context", &s.stage.contexts)
}

// RemoveContext removes the staged context at the given index. An index
// with no selected tag behind it is a no-op.
func (s *session) RemoveContext(index int) {
	s.stage.contexts = removeAt(s.stage.contexts, index)
}

// AddProjectBySelection opens a single-choice prompt over the selectable
// projects and appends the chosen tag. A dismissed prompt is a no-op.
func (s *session) AddProjectBySelection() {
	addBySelection(s.prompter, "Select project", s.selectableProjects, &s.stage.projects)
}

// AddProjectByInput opens a free-text prompt and appends the entered tag
// when it is non-empty. A dismissed prompt is a no-op.
func (s *session) AddProjectByInput() {
	addByInput(s.prompter, "New project", &s.stage.projects)
}

// RemoveProject removes the staged project at the given index. An index
// with no selected tag behind it is a no-op.
func (s *session) RemoveProject(index int) {
	s.stage.projects = removeAt(s.stage.projects, index)
}

func addBySelection(p Prompter, prompt string, options []string, target *[]string) {
	if p == nil || len(options) == 0 {
		return
	}
	tag, ok := p.Choose(prompt, options)
	if ok {
		*target = append(*target, tag)
	}
}

func addByInput(p Prompter, prompt string, target *[]string) {
	if p == nil {
		return
	}
	tag, ok := p.Input(prompt)
	if ok && strings.TrimSpace(tag) != "" {
		*target = append(*target, tag)
	}
}

func removeAt(tags []string, index int) []string {
	if index < 0 || index >= len(tags) {
		return tags
	}
	return append(tags[:index], tags[index+1:]...)
}

// --- Commit state ---

// IsCommitted reports whether the session was closed by a commit action
// rather than cancelled.
func (s *session) IsCommitted() bool {
	return s.committed
}

// Cancel closes the session and abandons all staged and pending data.
func (s *session) Cancel() {
	s.committed = false
}

// buildTask converts the staged fields into a task value. A done-marker
// priority also marks the task done; dates transfer only when set; tag
// lists are copied in order.
func (s *session) buildTask() models.Task {
	var task models.Task

	priority, _ := models.PriorityFromIndex(s.stage.priorityIndex)
	task.Priority = priority
	if priority == models.PriorityDone {
		task.Done = true
	}

	task.Creation = s.stage.creation
	task.Due = s.stage.due
	task.Description = s.stage.description
	task.Context = append([]string(nil), s.stage.contexts...)
	task.Project = append([]string(nil), s.stage.projects...)

	return task
}

// --- Creating mode ---

// CreateSession is a dialog session in "new task" mode. It can accumulate
// several tasks before closing.
type CreateSession struct {
	session
	pending []models.Task
}

// BeginCreate opens a dialog session for creating tasks. The working tag
// lists are built from the catalogs with the two leading sentinels
// stripped, and the staged fields start at the creation defaults.
func BeginCreate(p Prompter, contexts, projects []string) *CreateSession {
	return &CreateSession{session: newSession(p, contexts, projects)}
}

// Continue builds a task from the staged fields, appends it to the pending
// list, and resets the stage so another task can be entered. The session
// stays open.
func (c *CreateSession) Continue() {
	c.pending = append(c.pending, c.buildTask())
	c.stage.reset()
}

// Done builds a final task from the staged fields, appends it to the
// pending list, and closes the session committed.
func (c *CreateSession) Done() {
	c.pending = append(c.pending, c.buildTask())
	c.committed = true
}

// ResultTasks returns the accumulated tasks. Empty when the session was
// cancelled before any Continue or Done.
func (c *CreateSession) ResultTasks() []models.Task {
	return c.pending
}

// --- Editing mode ---

// EditSession is a dialog session in "edit task" mode. It stages exactly
// one task derived from an existing one.
type EditSession struct {
	session
	original models.Task
	result   models.Task
}

// BeginEdit opens a dialog session editing the given task. The staged
// fields are populated from the task: the priority resolves to its
// selection index, stored dates transfer verbatim (including "unset"), and
// the description and tag lists are copied.
func BeginEdit(p Prompter, task models.Task, contexts, projects []string) *EditSession {
	e := &EditSession{
		session:  newSession(p, contexts, projects),
		original: task.Clone(),
	}
	e.stage.priorityIndex = task.Priority.Index()
	e.stage.creation = task.Creation
	e.stage.due = task.Due
	e.stage.description = task.Description
	e.stage.contexts = append([]string(nil), task.Context...)
	e.stage.projects = append([]string(nil), task.Project...)
	return e
}

// Original returns the task the session was opened on.
func (e *EditSession) Original() models.Task {
	return e.original
}

// Save builds the edited task from the staged fields and closes the
// session committed.
func (e *EditSession) Save() {
	e.result = e.buildTask()
	e.committed = true
}

// ResultTask returns the edited task. Only meaningful after Save.
func (e *EditSession) ResultTask() models.Task {
	return e.result
}
