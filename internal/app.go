// Package internal provides the App struct that wires all components of
// the task list together and initializes the CLI layer.
package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/valter-silva-au/tasklist/internal/cli"
	"github.com/valter-silva-au/tasklist/internal/core"
	"github.com/valter-silva-au/tasklist/internal/observability"
	"github.com/valter-silva-au/tasklist/internal/storage"
)

// App holds all service dependencies for the task list.
type App struct {
	BasePath string

	ConfigMgr core.ConfigManager
	Config    *core.Config

	Store storage.TaskStore

	EventLog observability.EventLog
}

// NewApp creates and wires all components. basePath is the directory where
// the configuration and, by default, the task file live. An unusable
// configuration (missing sentinel labels) is a fatal fault.
func NewApp(basePath string) (*App, error) {
	app := &App{BasePath: basePath}

	// --- Configuration ---
	app.ConfigMgr = core.NewConfigManager(basePath)
	cfg, err := app.ConfigMgr.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	if err := app.ConfigMgr.Validate(cfg); err != nil {
		return nil, err
	}
	app.Config = cfg

	// --- Storage ---
	app.Store = storage.NewTaskStore(storage.Sentinels{
		AllContexts:    cfg.Labels.AllContexts,
		WithoutContext: cfg.Labels.WithoutContext,
		AllProjects:    cfg.Labels.AllProjects,
		WithoutProject: cfg.Labels.WithoutProject,
	})

	// --- Observability ---
	eventLogPath := filepath.Join(basePath, ".tl_events.jsonl")
	app.EventLog, err = observability.NewJSONLEventLog(eventLogPath)
	if err != nil {
		// Non-fatal: disable event logging if the log can't be created.
		app.EventLog = nil
	}

	// --- CLI wiring ---
	cli.Store = app.Store
	cli.Cfg = app.Config
	cli.EventLog = app.EventLog

	taskFile := cfg.File
	if taskFile == "" {
		taskFile = filepath.Join(basePath, "tasks.yaml")
	}
	cli.TaskFile = taskFile

	// A missing task file is skipped silently and starts an empty list;
	// a file that exists but cannot be loaded is reported.
	if _, statErr := os.Stat(taskFile); statErr == nil {
		if loadErr := app.Store.Load(taskFile); loadErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", loadErr)
		} else if app.EventLog != nil {
			_ = app.EventLog.Write(observability.Event{
				Type:    observability.EventListLoaded,
				Message: "task list loaded",
				Data:    map[string]any{"file": taskFile, "count": app.Store.Len()},
			})
		}
	}

	return app, nil
}

// ResolveBasePath determines the base directory: $TL_HOME when set,
// otherwise the nearest directory up the tree containing .tasklistrc,
// falling back to the current directory.
func ResolveBasePath() string {
	if home := os.Getenv("TL_HOME"); home != "" {
		return home
	}
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, ".tasklistrc")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	cwd, _ := os.Getwd()
	return cwd
}
