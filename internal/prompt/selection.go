package prompt

import (
	"strconv"
	"strings"
)

// Outcome classifies a user's answer to a numbered menu.
type Outcome int

const (
	// Picked means Index refers to a listed item.
	Picked Outcome = iota
	// InvalidInput means the answer was not a number (or the picker was aborted).
	InvalidInput
	// OutOfRange means the answer was a number outside 1..n.
	OutOfRange
	// Empty means there was nothing to choose from.
	Empty
)

func (o Outcome) String() string {
	switch o {
	case Picked:
		return "picked"
	case InvalidInput:
		return "invalid input"
	case OutOfRange:
		return "out of range"
	case Empty:
		return "empty"
	default:
		return "unknown"
	}
}

// Selection is the zero-based result of a menu prompt.
type Selection struct {
	Index   int
	Outcome Outcome
}

// OK reports whether Index is usable.
func (s Selection) OK() bool {
	return s.Outcome == Picked
}

// ParseSelection interprets a 1-indexed answer for a menu of n items.
func ParseSelection(line string, n int) Selection {
	if n <= 0 {
		return Selection{Outcome: Empty}
	}
	v, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return Selection{Outcome: InvalidInput}
	}
	if v < 1 || v > n {
		return Selection{Outcome: OutOfRange}
	}
	return Selection{Index: v - 1, Outcome: Picked}
}

// Chooser presents items and returns the user's choice.
type Chooser interface {
	Choose(title string, items []string) (Selection, error)
	// Notify prints a one-line message on the interactive surface.
	Notify(msg string)
}
