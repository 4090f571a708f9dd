package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/valter-silva-au/tasklist/internal/core"
	"github.com/valter-silva-au/tasklist/internal/observability"
	"github.com/valter-silva-au/tasklist/internal/storage"
	"github.com/valter-silva-au/tasklist/pkg/models"
)

// Style definitions.
var (
	uiTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	uiHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62"))

	uiFilterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	uiCursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("240"))

	uiDoneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Strikethrough(true)

	uiOverdueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	uiStatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("226"))

	uiHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// uiModel drives the interactive task table. Rows always come from the
// store through the filter and sorted view; every state change triggers a
// full recomputation.
type uiModel struct {
	store storage.TaskStore

	showDone   bool
	contextIdx int
	projectIdx int
	sortIdx    int

	// Visible rows in display order, and their positions in the store.
	rows      []models.Task
	positions []int

	cursor int
	width  int
	height int
	status string
}

func newUIModel(store storage.TaskStore, showDone bool) uiModel {
	m := uiModel{store: store, showDone: showDone}
	m.recompute()
	return m
}

// recompute rebuilds the visible rows from the entire collection: filter
// first, then the sorted view, keeping store positions alongside.
func (m *uiModel) recompute() {
	contexts := m.store.ContextCatalog()
	projects := m.store.ProjectCatalog()
	m.contextIdx = clampIndex(m.contextIdx, len(contexts))
	m.projectIdx = clampIndex(m.projectIdx, len(projects))

	filter := core.Filter{
		ShowDone: m.showDone,
		Context:  core.SelectionAt(contexts, m.contextIdx),
		Project:  core.SelectionAt(projects, m.projectIdx),
	}

	var visible []models.Task
	var positions []int
	for i, task := range m.store.Tasks() {
		if filter.Visible(task) {
			visible = append(visible, task)
			positions = append(positions, i)
		}
	}

	view := core.NewSortedView()
	view.SetComparator(lessForColumn(sortColumns[m.sortIdx]))
	view.SetRows(visible)

	m.rows = view.Rows()
	m.positions = make([]int, len(m.rows))
	for i, idx := range view.Indices() {
		m.positions[i] = positions[idx]
	}

	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func clampIndex(idx, length int) int {
	if length == 0 {
		return 0
	}
	if idx < 0 || idx >= length {
		return 0
	}
	return idx
}

func (m uiModel) Init() tea.Cmd {
	return nil
}

func (m uiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
			return m, nil

		case "d":
			m.showDone = !m.showDone
			m.recompute()
			return m, nil

		case "c":
			m.contextIdx = cycleIndex(m.contextIdx, len(m.store.ContextCatalog()))
			m.recompute()
			return m, nil

		case "p":
			m.projectIdx = cycleIndex(m.projectIdx, len(m.store.ProjectCatalog()))
			m.recompute()
			return m, nil

		case "s":
			m.sortIdx = (m.sortIdx + 1) % len(sortColumns)
			m.recompute()
			return m, nil

		case "x":
			if m.cursor < len(m.positions) {
				position := m.positions[m.cursor]
				if err := m.store.MarkDone(position); err != nil {
					m.status = err.Error()
				} else {
					m.status = fmt.Sprintf("Marked task %d as done.", position+1)
					logEvent(observability.EventTaskCompleted, "task completed", map[string]any{"number": position + 1})
				}
				m.recompute()
			}
			return m, nil

		case "D":
			if m.cursor < len(m.positions) {
				position := m.positions[m.cursor]
				if err := m.store.Remove(position); err != nil {
					m.status = err.Error()
				} else {
					m.status = fmt.Sprintf("Removed task %d.", position+1)
					logEvent(observability.EventTaskRemoved, "task removed", map[string]any{"number": position + 1})
				}
				m.recompute()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

func (m uiModel) View() string {
	var b strings.Builder

	b.WriteString(uiTitleStyle.Render(" tl "))
	b.WriteString("\n\n")
	b.WriteString(uiFilterStyle.Render(m.filterLine()))
	b.WriteString("\n\n")

	header := fmt.Sprintf("%-5s %-2s %-4s %-12s %-40s %-20s %s", "#", "", "PRI", "DUE", "DESCRIPTION", "CONTEXTS", "PROJECTS")
	b.WriteString(uiHeaderStyle.Render(header))
	b.WriteString("\n")

	if len(m.rows) == 0 {
		b.WriteString("  No tasks to show.\n")
	}

	today := models.Today()
	for i, task := range m.rows {
		doneMark := " "
		if task.Done {
			doneMark = "x"
		}
		line := fmt.Sprintf("%-5d %-2s %-4s %-12s %-40s %-20s %s",
			m.positions[i]+1,
			doneMark,
			task.Priority,
			task.Due,
			truncate(task.Description, 40),
			strings.Join(task.Context, ","),
			strings.Join(task.Project, ","),
		)

		switch {
		case i == m.cursor:
			line = uiCursorStyle.Render(line)
		case task.Done:
			line = uiDoneStyle.Render(line)
		case task.Due.IsSet() && task.Due.Before(today):
			line = uiOverdueStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(uiStatusStyle.Render(m.status))
	}

	b.WriteString("\n\n")
	b.WriteString(uiHelpStyle.Render("d: done tasks | c/p: cycle context/project | s: sort | x: mark done | D: delete | q: quit"))

	return b.String()
}

// filterLine summarizes the active filters and sort column.
func (m uiModel) filterLine() string {
	contexts := m.store.ContextCatalog()
	projects := m.store.ProjectCatalog()

	contextLabel := "-"
	if m.contextIdx < len(contexts) {
		contextLabel = contexts[m.contextIdx]
	}
	projectLabel := "-"
	if m.projectIdx < len(projects) {
		projectLabel = projects[m.projectIdx]
	}

	doneLabel := "hidden"
	if m.showDone {
		doneLabel = "shown"
	}
	sortLabel := sortColumns[m.sortIdx]
	if sortLabel == "" {
		sortLabel = "file order"
	}

	return fmt.Sprintf("Done: %s | Context: %s | Project: %s | Sort: %s", doneLabel, contextLabel, projectLabel, sortLabel)
}

func cycleIndex(idx, length int) int {
	if length == 0 {
		return 0
	}
	return (idx + 1) % length
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Interactive task table",
	Long: `Browse the task list in an interactive table.

Cycle the context and project filters through their catalogs (including
the "all" and "without" entries), toggle done-task visibility, change the
sort column, and mark tasks done or delete them.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Store == nil {
			return fmt.Errorf("task store not initialized")
		}

		showDone := false
		if Cfg != nil {
			showDone = Cfg.ShowDone
		}

		p := tea.NewProgram(newUIModel(Store, showDone), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return err
		}
		return saveStore()
	},
}

func init() {
	rootCmd.AddCommand(uiCmd)
}
