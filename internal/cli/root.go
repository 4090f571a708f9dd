// Package cli implements the tl command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/tasklist/internal/observability"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

// fileFlag overrides the task file for a single invocation.
var fileFlag string

var rootCmd = &cobra.Command{
	Use:   "tl",
	Short: "tl - simple todo.txt-style task list manager",
	Long: `tl is a single-user task list manager in the todo.txt tradition.

Tasks carry an optional priority, optional creation and due dates, a
description, and sets of context and project tags. Tasks can be listed
under independent done/context/project filters, browsed in an interactive
table, and created or edited through a guided dialog.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if fileFlag == "" || Store == nil {
			return nil
		}
		TaskFile = fileFlag
		if _, err := os.Stat(fileFlag); os.IsNotExist(err) {
			// A not-yet-existing file starts as an empty list; drop the
			// collection loaded from the configured file so a later save
			// does not copy it there.
			Store.Clear()
			return nil
		}
		if err := Store.Load(fileFlag); err != nil {
			return fmt.Errorf("opening %s: %w", fileFlag, err)
		}
		logEvent(observability.EventListLoaded, "task list loaded", map[string]any{"file": fileFlag, "count": Store.Len()})
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tl %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&fileFlag, "file", "", "task list file to use instead of the configured one")
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
