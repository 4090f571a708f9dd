package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/tasklist/internal/observability"
)

var doneCmd = &cobra.Command{
	Use:   "done <number>",
	Short: "Mark a task as done",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Store == nil {
			return fmt.Errorf("task store not initialized")
		}

		index, err := taskNumber(args[0])
		if err != nil {
			return err
		}
		if err := Store.MarkDone(index); err != nil {
			return err
		}
		if err := saveStore(); err != nil {
			return err
		}

		logEvent(observability.EventTaskCompleted, "task completed", map[string]any{"number": index + 1})
		fmt.Printf("Marked task %d as done.\n", index+1)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doneCmd)
}
