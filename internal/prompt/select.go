package prompt

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"
)

// Select is an arrow-key picker backed by huh. It needs a terminal on stdin.
type Select struct {
	out io.Writer
}

var _ Chooser = (*Select)(nil)

func NewSelect(out io.Writer) *Select {
	return &Select{out: out}
}

func (s *Select) Choose(title string, items []string) (Selection, error) {
	if len(items) == 0 {
		fmt.Fprintln(s.out, title)
		fmt.Fprintln(s.out, "  (none)")
		return Selection{Outcome: Empty}, nil
	}

	opts := make([]huh.Option[int], 0, len(items))
	for i, item := range items {
		opts = append(opts, huh.NewOption(fmt.Sprintf("[%d] %s", i+1, item), i))
	}

	picked := -1
	err := huh.NewSelect[int]().
		Title(title).
		Options(opts...).
		Value(&picked).
		Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return Selection{Outcome: InvalidInput}, nil
	}
	if err != nil {
		return Selection{}, fmt.Errorf("picker failed: %w", err)
	}
	if picked < 0 || picked >= len(items) {
		return Selection{Outcome: OutOfRange}, nil
	}
	return Selection{Index: picked, Outcome: Picked}, nil
}

func (s *Select) Notify(msg string) {
	fmt.Fprintln(s.out, msg)
}
