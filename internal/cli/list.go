package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/tasklist/internal/core"
	"github.com/valter-silva-au/tasklist/pkg/models"
)

var (
	listDoneFlag      bool
	listContextFlag   string
	listNoContextFlag bool
	listProjectFlag   string
	listNoProjectFlag bool
	listSortFlag      string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks with optional done/context/project filters",
	Long: `List the tasks passing all active filters.

By default, done tasks are hidden and all contexts and projects are shown.
The printed # column is the task's position in the list file; it is what
'tl edit', 'tl done' and 'tl rm' expect.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Store == nil {
			return fmt.Errorf("task store not initialized")
		}

		filter := listFilter()
		tasks := Store.Tasks()

		// Positions in the backing collection, before filtering.
		var positions []int
		var visible []models.Task
		for i, task := range tasks {
			if filter.Visible(task) {
				positions = append(positions, i)
				visible = append(visible, task)
			}
		}

		view := core.NewSortedView()
		view.SetComparator(lessForColumn(listSortFlag))
		view.SetRows(visible)

		rows := view.Rows()
		if len(rows) == 0 {
			fmt.Println("No tasks to show.")
			return nil
		}

		fmt.Printf("%-5s %-2s %-4s %-12s %-40s %-20s %s\n", "#", "", "PRI", "DUE", "DESCRIPTION", "CONTEXTS", "PROJECTS")
		for i, idx := range view.Indices() {
			task := rows[i]
			doneMark := " "
			if task.Done {
				doneMark = "x"
			}
			fmt.Printf("%-5d %-2s %-4s %-12s %-40s %-20s %s\n",
				positions[idx]+1,
				doneMark,
				task.Priority,
				task.Due,
				truncate(task.Description, 40),
				strings.Join(task.Context, ","),
				strings.Join(task.Project, ","),
			)
		}
		return nil
	},
}

// listFilter builds the filter from the list flags, falling back to the
// configured done-visibility default.
func listFilter() core.Filter {
	filter := core.NewFilter()
	if Cfg != nil {
		filter.ShowDone = Cfg.ShowDone
	}
	if listDoneFlag {
		filter.ShowDone = true
	}

	switch {
	case listNoContextFlag:
		filter.Context = core.None()
	case listContextFlag != "":
		filter.Context = core.Tag(listContextFlag)
	}

	switch {
	case listNoProjectFlag:
		filter.Project = core.None()
	case listProjectFlag != "":
		filter.Project = core.Tag(listProjectFlag)
	}

	return filter
}

// sortColumns is the set of columns the list and UI can order by. The
// empty column keeps the collection order.
var sortColumns = []string{"", "priority", "due", "created", "description"}

// lessForColumn returns the comparator for a sort column, or nil for the
// collection order.
func lessForColumn(column string) core.LessFunc {
	switch column {
	case "priority":
		return func(a, b models.Task) bool {
			return priorityRank(a.Priority) < priorityRank(b.Priority)
		}
	case "due":
		return func(a, b models.Task) bool {
			return dateLess(a.Due, b.Due)
		}
	case "created":
		return func(a, b models.Task) bool {
			return dateLess(a.Creation, b.Creation)
		}
	case "description":
		return func(a, b models.Task) bool {
			return strings.ToLower(a.Description) < strings.ToLower(b.Description)
		}
	default:
		return nil
	}
}

// priorityRank orders letters A..Z first, then unprioritized tasks, then
// completed ones.
func priorityRank(p models.Priority) int {
	switch {
	case p.IsLetter():
		return int(p[0] - 'A')
	case p == models.PriorityNone:
		return 26
	default:
		return 27
	}
}

// dateLess orders set dates ascending and puts unset dates last.
func dateLess(a, b models.Date) bool {
	if !a.IsSet() {
		return false
	}
	if !b.IsSet() {
		return true
	}
	return a.Before(b)
}

// truncate shortens a string to max display characters, cutting on rune
// boundaries.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

func init() {
	listCmd.Flags().BoolVar(&listDoneFlag, "done", false, "also show done tasks")
	listCmd.Flags().StringVar(&listContextFlag, "context", "", "only show tasks with this context")
	listCmd.Flags().BoolVar(&listNoContextFlag, "no-context", false, "only show tasks without any context")
	listCmd.Flags().StringVar(&listProjectFlag, "project", "", "only show tasks with this project")
	listCmd.Flags().BoolVar(&listNoProjectFlag, "no-project", false, "only show tasks without any project")
	listCmd.Flags().StringVar(&listSortFlag, "sort", "", "sort column: priority, due, created or description")
	rootCmd.AddCommand(listCmd)
}
