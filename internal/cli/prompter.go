package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// stdinPrompter implements dialog.Prompter over standard input. A choice
// prompt shows a numbered list; entering nothing or 'q' dismisses the
// prompt. An input prompt treats an empty line as dismissal.
type stdinPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newStdinPrompter() *stdinPrompter {
	return &stdinPrompter{in: bufio.NewReader(os.Stdin), out: os.Stdout}
}

// Choose presents a numbered single-choice prompt and returns the chosen
// option. ok is false when the user dismisses the prompt.
func (p *stdinPrompter) Choose(prompt string, options []string) (string, bool) {
	if len(options) == 0 {
		return "", false
	}

	fmt.Fprintf(p.out, "\n%s:\n", prompt)
	for i, option := range options {
		fmt.Fprintf(p.out, "  %-4d %s\n", i+1, option)
	}

	for {
		fmt.Fprintf(p.out, "Select [1-%d] (or 'q' to dismiss): ", len(options))
		line, err := p.in.ReadString('\n')
		if err != nil {
			return "", false
		}

		line = strings.TrimSpace(line)
		if line == "" || line == "q" || line == "Q" {
			return "", false
		}

		num, err := strconv.Atoi(line)
		if err != nil || num < 1 || num > len(options) {
			fmt.Fprintf(p.out, "  Invalid selection. Enter a number between 1 and %d.\n", len(options))
			continue
		}
		return options[num-1], true
	}
}

// Input presents a free-text prompt. An empty line dismisses the prompt.
func (p *stdinPrompter) Input(prompt string) (string, bool) {
	fmt.Fprintf(p.out, "%s: ", prompt)
	line, err := p.in.ReadString('\n')
	if err != nil {
		return "", false
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", false
	}
	return line, true
}
