package cli

import (
	"github.com/valter-silva-au/tasklist/internal/core"
	"github.com/valter-silva-au/tasklist/internal/observability"
	"github.com/valter-silva-au/tasklist/internal/storage"
)

// Service instances, set during app initialization in app.go.
var (
	Store    storage.TaskStore
	Cfg      *core.Config
	EventLog observability.EventLog

	// TaskFile is the path the store is loaded from and saved to.
	TaskFile string
)

// logEvent writes an event if the event log is available. Event logging is
// best-effort and never fails a command.
func logEvent(eventType, message string, data map[string]any) {
	if EventLog == nil {
		return
	}
	_ = EventLog.Write(observability.Event{
		Type:    eventType,
		Message: message,
		Data:    data,
	})
}

// saveStore persists the task collection to the active task file.
func saveStore() error {
	if Store == nil || TaskFile == "" {
		return nil
	}
	return Store.Save(TaskFile)
}
