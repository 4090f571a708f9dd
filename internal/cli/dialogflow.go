package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/valter-silva-au/tasklist/pkg/models"
)

// fieldEditor is the part of a dialog session both modes share: staged
// field setters and the tag actions.
type fieldEditor interface {
	PriorityIndex() int
	SetPriorityIndex(index int) bool
	Creation() models.Date
	SetCreation(d models.Date)
	Due() models.Date
	SetDue(d models.Date)
	Description() string
	SetDescription(text string)
	Contexts() []string
	Projects() []string
	AddContextBySelection()
	AddContextByInput()
	RemoveContext(index int)
	AddProjectBySelection()
	AddProjectByInput()
	RemoveProject(index int)
}

// priorityOptions are the entries of the priority choice: "no priority",
// the done marker, then the letters A..Z.
func priorityOptions() []string {
	options := make([]string, 0, models.PriorityCount)
	options = append(options, "no priority", "done (x)")
	for l := 'A'; l <= 'Z'; l++ {
		options = append(options, string(l))
	}
	return options
}

// promptFields walks the staged fields once: description, priority and due
// date. A dismissed prompt keeps the staged value.
func promptFields(p *stdinPrompter, sess fieldEditor) {
	if text, ok := p.Input(labeled("Description", sess.Description())); ok {
		sess.SetDescription(text)
	}

	options := priorityOptions()
	if choice, ok := p.Choose("Priority", options); ok {
		for i, option := range options {
			if option == choice {
				sess.SetPriorityIndex(i)
				break
			}
		}
	}

	if text, ok := p.Input(labeled("Due date (YYYY-MM-DD, '-' to clear)", sess.Due().String())); ok {
		if text == "-" {
			sess.SetDue(models.Date{})
		} else if due, err := models.ParseDate(text); err != nil {
			fmt.Printf("  Ignoring invalid date %q.\n", text)
		} else {
			sess.SetDue(due)
		}
	}
}

// promptTags runs the tag management loop: select or enter new context and
// project tags, or remove staged ones, until the user finishes.
func promptTags(p *stdinPrompter, sess fieldEditor) {
	for {
		fmt.Printf("\nContexts: [%s]  Projects: [%s]\n",
			strings.Join(sess.Contexts(), ","), strings.Join(sess.Projects(), ","))

		action, ok := p.Input("Tags: (c)hoose/(n)ew/(r)emove context, (C)hoose/(N)ew/(R)emove project, empty when finished")
		if !ok {
			return
		}

		switch action {
		case "c":
			sess.AddContextBySelection()
		case "n":
			sess.AddContextByInput()
		case "r":
			sess.RemoveContext(promptTagIndex(p, sess.Contexts()))
		case "C":
			sess.AddProjectBySelection()
		case "N":
			sess.AddProjectByInput()
		case "R":
			sess.RemoveProject(promptTagIndex(p, sess.Projects()))
		default:
			fmt.Printf("  Unknown action %q.\n", action)
		}
	}
}

// promptTagIndex asks which staged tag to remove and returns its zero-based
// index, or -1 when nothing was selected (a no-op for the session).
func promptTagIndex(p *stdinPrompter, tags []string) int {
	if len(tags) == 0 {
		return -1
	}
	for i, tag := range tags {
		fmt.Printf("  %-4d %s\n", i+1, tag)
	}
	text, ok := p.Input(fmt.Sprintf("Remove [1-%d]", len(tags)))
	if !ok {
		return -1
	}
	num, err := strconv.Atoi(text)
	if err != nil {
		return -1
	}
	return num - 1
}

// labeled renders a prompt with the current staged value, when present.
func labeled(prompt, current string) string {
	if current == "" {
		return prompt
	}
	return fmt.Sprintf("%s [%s]", prompt, current)
}
