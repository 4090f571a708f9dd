// Package models defines the task value type and its supporting priority
// and date types.
package models

// Task represents a single entry in the task list. Context and project
// tags keep their insertion order; duplicates are not collapsed here.
type Task struct {
	Priority    Priority `yaml:"priority,omitempty"`
	Done        bool     `yaml:"done,omitempty"`
	Creation    Date     `yaml:"created,omitempty"`
	Due         Date     `yaml:"due,omitempty"`
	Description string   `yaml:"description"`
	Context     []string `yaml:"context,omitempty"`
	Project     []string `yaml:"project,omitempty"`
}

// Clone returns a deep copy of the task. The tag slices of the copy are
// independent of the original.
func (t Task) Clone() Task {
	clone := t
	clone.Context = copyTags(t.Context)
	clone.Project = copyTags(t.Project)
	return clone
}

func copyTags(tags []string) []string {
	if tags == nil {
		return nil
	}
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}
