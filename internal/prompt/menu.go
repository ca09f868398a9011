package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var titleStyle = lipgloss.NewStyle().Bold(true)

// Menu prints a numbered list and reads a single line answer.
type Menu struct {
	in     *bufio.Reader
	out    io.Writer
	styled bool
}

var _ Chooser = (*Menu)(nil)

// NewMenu creates a line-based menu. styled enables lipgloss rendering of
// titles and should only be set when out is a terminal.
func NewMenu(in io.Reader, out io.Writer, styled bool) *Menu {
	return &Menu{in: bufio.NewReader(in), out: out, styled: styled}
}

// Choose lists items 1-indexed and blocks until one line is read.
// End of input counts as an answer; other read errors are returned.
func (m *Menu) Choose(title string, items []string) (Selection, error) {
	fmt.Fprintln(m.out, m.title(title))
	if len(items) == 0 {
		fmt.Fprintln(m.out, "  (none)")
		return Selection{Outcome: Empty}, nil
	}
	for i, item := range items {
		fmt.Fprintf(m.out, "[%d] %s\n", i+1, item)
	}

	line, err := m.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return Selection{}, fmt.Errorf("failed to read selection: %w", err)
	}
	return ParseSelection(line, len(items)), nil
}

// Notify prints msg on its own line.
func (m *Menu) Notify(msg string) {
	fmt.Fprintln(m.out, msg)
}

func (m *Menu) title(s string) string {
	if !m.styled {
		return s
	}
	return titleStyle.Render(s)
}
