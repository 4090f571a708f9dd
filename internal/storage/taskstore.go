// Package storage owns the authoritative task collection and the two tag
// catalogs, backed by a YAML file on disk.
package storage

import (
	"fmt"
	"os"

	"github.com/valter-silva-au/tasklist/internal/core"
	"github.com/valter-silva-au/tasklist/pkg/models"
	"gopkg.in/yaml.v3"
)

// Sentinels holds the catalog sentinel labels, supplied by the caller at
// initialization. They occupy indices 0 and 1 of each catalog.
type Sentinels struct {
	AllContexts    string
	WithoutContext string
	AllProjects    string
	WithoutProject string
}

// TaskStore defines the interface for the authoritative task collection
// and the derived tag catalogs.
type TaskStore interface {
	Tasks() []models.Task
	Task(index int) (models.Task, error)
	Len() int

	ContextCatalog() []string
	ProjectCatalog() []string

	Add(task models.Task)
	Replace(index int, task models.Task) error
	Remove(index int) error
	MarkDone(index int) error
	Clear()

	Load(path string) error
	Save(path string) error

	// Subscribe registers a callback invoked after every change to the
	// collection or the catalogs.
	Subscribe(fn func())
}

// taskFile is the on-disk structure of the task list.
type taskFile struct {
	Version string        `yaml:"version"`
	Tasks   []models.Task `yaml:"tasks"`
}

// fileTaskStore implements TaskStore with an in-memory slice persisted as
// a YAML file.
type fileTaskStore struct {
	sentinels Sentinels
	tasks     []models.Task
	contexts  []string
	projects  []string
	subs      []func()
}

// NewTaskStore creates an empty TaskStore with the given sentinel labels.
func NewTaskStore(sentinels Sentinels) TaskStore {
	s := &fileTaskStore{sentinels: sentinels}
	s.rebuildCatalogs()
	return s
}

// Tasks returns the task collection in order. Callers get a copy with
// independent tag slices.
func (s *fileTaskStore) Tasks() []models.Task {
	out := make([]models.Task, len(s.tasks))
	for i, t := range s.tasks {
		out[i] = t.Clone()
	}
	return out
}

// Task returns the task at the given zero-based index.
func (s *fileTaskStore) Task(index int) (models.Task, error) {
	if index < 0 || index >= len(s.tasks) {
		return models.Task{}, fmt.Errorf("task %d not found (list has %d tasks)", index+1, len(s.tasks))
	}
	return s.tasks[index].Clone(), nil
}

func (s *fileTaskStore) Len() int {
	return len(s.tasks)
}

// ContextCatalog returns the context catalog: both sentinels followed by
// the distinct context tags in use.
func (s *fileTaskStore) ContextCatalog() []string {
	return append([]string(nil), s.contexts...)
}

// ProjectCatalog returns the project catalog: both sentinels followed by
// the distinct project tags in use.
func (s *fileTaskStore) ProjectCatalog() []string {
	return append([]string(nil), s.projects...)
}

// Add appends a task to the collection and recomputes the catalogs.
func (s *fileTaskStore) Add(task models.Task) {
	s.tasks = append(s.tasks, task.Clone())
	s.changed()
}

// Replace substitutes the task at the given index and recomputes the
// catalogs.
func (s *fileTaskStore) Replace(index int, task models.Task) error {
	if index < 0 || index >= len(s.tasks) {
		return fmt.Errorf("replacing task: task %d not found", index+1)
	}
	s.tasks[index] = task.Clone()
	s.changed()
	return nil
}

// Remove deletes the task at the given index and recomputes the catalogs.
func (s *fileTaskStore) Remove(index int) error {
	if index < 0 || index >= len(s.tasks) {
		return fmt.Errorf("removing task: task %d not found", index+1)
	}
	s.tasks = append(s.tasks[:index], s.tasks[index+1:]...)
	s.changed()
	return nil
}

// MarkDone marks the task at the given index as completed, setting both
// the done flag and the done-marker priority.
func (s *fileTaskStore) MarkDone(index int) error {
	if index < 0 || index >= len(s.tasks) {
		return fmt.Errorf("completing task: task %d not found", index+1)
	}
	s.tasks[index].Done = true
	s.tasks[index].Priority = models.PriorityDone
	s.changed()
	return nil
}

// Clear empties the collection and recomputes the catalogs.
func (s *fileTaskStore) Clear() {
	s.tasks = nil
	s.changed()
}

// Load reads a task file and replaces the collection and both catalogs.
// On any failure the prior state is left untouched.
func (s *fileTaskStore) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("loading task list: %w", err)
	}

	var tf taskFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return fmt.Errorf("loading task list: parsing YAML: %w", err)
	}

	s.tasks = tf.Tasks
	s.changed()
	return nil
}

// Save writes the collection to the given path.
func (s *fileTaskStore) Save(path string) error {
	tf := taskFile{Version: "1.0", Tasks: s.tasks}
	data, err := yaml.Marshal(&tf)
	if err != nil {
		return fmt.Errorf("saving task list: marshaling YAML: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("saving task list: writing file: %w", err)
	}
	return nil
}

// Subscribe registers a change callback.
func (s *fileTaskStore) Subscribe(fn func()) {
	s.subs = append(s.subs, fn)
}

// changed recomputes both catalogs from the aggregate of all tasks and
// notifies subscribers.
func (s *fileTaskStore) changed() {
	s.rebuildCatalogs()
	for _, fn := range s.subs {
		fn()
	}
}

func (s *fileTaskStore) rebuildCatalogs() {
	contextTags := core.CollectTags(s.tasks, func(t models.Task) []string { return t.Context })
	projectTags := core.CollectTags(s.tasks, func(t models.Task) []string { return t.Project })
	s.contexts = core.WithSentinels(s.sentinels.AllContexts, s.sentinels.WithoutContext, contextTags)
	s.projects = core.WithSentinels(s.sentinels.AllProjects, s.sentinels.WithoutProject, projectTags)
}
