package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/tasklist/internal/dialog"
	"github.com/valter-silva-au/tasklist/internal/observability"
	"github.com/valter-silva-au/tasklist/pkg/models"
)

var (
	addDescriptionFlag string
	addPriorityFlag    string
	addDueFlag         string
	addCreatedFlag     string
	addContextsFlag    []string
	addProjectsFlag    []string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add one or more tasks",
	Long: `Add tasks to the list.

Without flags an interactive dialog walks through the fields and lets you
add several tasks in one session. With --description the task is created
directly from the flags.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Store == nil {
			return fmt.Errorf("task store not initialized")
		}

		if addDescriptionFlag != "" {
			return addFromFlags()
		}
		return addInteractive()
	},
}

// addFromFlags creates a single task from the command line flags.
func addFromFlags() error {
	priority, err := models.ParsePriority(addPriorityFlag)
	if err != nil {
		return err
	}
	due, err := models.ParseDate(addDueFlag)
	if err != nil {
		return err
	}

	created := models.Today()
	if addCreatedFlag != "" {
		created, err = models.ParseDate(addCreatedFlag)
		if err != nil {
			return err
		}
	}

	task := models.Task{
		Priority:    priority,
		Done:        priority == models.PriorityDone,
		Creation:    created,
		Due:         due,
		Description: addDescriptionFlag,
		Context:     addContextsFlag,
		Project:     addProjectsFlag,
	}

	Store.Add(task)
	if err := saveStore(); err != nil {
		return err
	}

	logEvent(observability.EventTaskCreated, "task added", map[string]any{"description": task.Description})
	fmt.Printf("Added task %d: %s\n", Store.Len(), task.Description)
	return nil
}

// addInteractive runs a create session: enter fields and tags, then choose
// to add another task, finish, or cancel the whole session.
func addInteractive() error {
	prompter := newStdinPrompter()
	sess := dialog.BeginCreate(prompter, Store.ContextCatalog(), Store.ProjectCatalog())

	for {
		fmt.Println("\nNew task")
		promptFields(prompter, sess)
		promptTags(prompter, sess)

		switch promptCloseAction(prompter) {
		case "a":
			sess.Continue()
			continue
		case "d":
			sess.Done()
		default:
			sess.Cancel()
		}
		break
	}

	if !sess.IsCommitted() {
		fmt.Println("Cancelled, nothing added.")
		return nil
	}

	tasks := sess.ResultTasks()
	for _, task := range tasks {
		Store.Add(task)
		logEvent(observability.EventTaskCreated, "task added", map[string]any{"description": task.Description})
	}
	if err := saveStore(); err != nil {
		return err
	}

	fmt.Printf("Added %d task(s).\n", len(tasks))
	return nil
}

// promptCloseAction asks how to close the current entry, re-prompting on
// unknown input so staged tasks are not lost to a typo. A dismissed prompt
// cancels.
func promptCloseAction(p *stdinPrompter) string {
	for {
		action, ok := p.Input("(a)dd another, (d)one, (c)ancel")
		if !ok {
			return "c"
		}
		switch action {
		case "a", "d", "c":
			return action
		}
		fmt.Printf("  Unknown action %q.\n", action)
	}
}

func init() {
	addCmd.Flags().StringVarP(&addDescriptionFlag, "description", "d", "", "task description (skips the interactive dialog)")
	addCmd.Flags().StringVarP(&addPriorityFlag, "priority", "p", "", "priority letter A-Z, or x for done")
	addCmd.Flags().StringVar(&addDueFlag, "due", "", "due date (YYYY-MM-DD)")
	addCmd.Flags().StringVar(&addCreatedFlag, "created", "", "creation date (YYYY-MM-DD, defaults to today)")
	addCmd.Flags().StringSliceVar(&addContextsFlag, "context", nil, "context tag (repeatable)")
	addCmd.Flags().StringSliceVar(&addProjectsFlag, "project", nil, "project tag (repeatable)")
	rootCmd.AddCommand(addCmd)
}
