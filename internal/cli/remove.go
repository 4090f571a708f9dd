package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/tasklist/internal/observability"
)

var removeCmd = &cobra.Command{
	Use:     "rm <number>",
	Aliases: []string{"remove"},
	Short:   "Delete a task from the list",
	Args:    cobra.ExactArgs(1),
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
		if err := Store.Remove(index); err != nil {
			return err
		}
		if err := saveStore(); err != nil {
			return err
		}

		logEvent(observability.EventTaskRemoved, "task removed", map[string]any{"number": index + 1})
		fmt.Printf("Removed task %d: %s\n", index+1, task.Description)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
