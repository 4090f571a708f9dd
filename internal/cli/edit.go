package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/tasklist/internal/dialog"
	"github.com/valter-silva-au/tasklist/internal/observability"
)

var editCmd = &cobra.Command{
	Use:   "edit <number>",
	Short: "Edit a task in an interactive dialog",
	Long: `Edit the task with the given number (the # column of 'tl list').

The dialog starts from the task's current values; dismissing a prompt
keeps the staged value. The task is only changed when the session is
saved.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Store == nil {
			return fmt.Errorf("task store not initialized")
		}

		index, err := taskNumber(args[0])
		if err != nil {
			return err
		}
		task, err := Store.Task(index)
		if err != nil {
			return err
		}

		prompter := newStdinPrompter()
		sess := dialog.BeginEdit(prompter, task, Store.ContextCatalog(), Store.ProjectCatalog())

		fmt.Printf("\nEditing task %d: %s\n", index+1, task.Description)
		promptFields(prompter, sess)
		promptTags(prompter, sess)

		action, _ := prompter.Input("(s)ave, (c)ancel")
		if action == "s" {
			sess.Save()
		} else {
			sess.Cancel()
		}

		if !sess.IsCommitted() {
			fmt.Println("Cancelled, task unchanged.")
			return nil
		}

		if err := Store.Replace(index, sess.ResultTask()); err != nil {
			return err
		}
		if err := saveStore(); err != nil {
			return err
		}

		logEvent(observability.EventTaskEdited, "task edited", map[string]any{"number": index + 1})
		fmt.Printf("Saved task %d.\n", index+1)
		return nil
	},
}

// taskNumber parses a 1-based task number argument into a zero-based
// store index.
func taskNumber(arg string) (int, error) {
	num, err := strconv.Atoi(arg)
	if err != nil || num < 1 {
		return 0, fmt.Errorf("invalid task number %q", arg)
	}
	return num - 1, nil
}

func init() {
	rootCmd.AddCommand(editCmd)
}
