package window

import (
	"fmt"

	"github.com/1broseidon/reminiscence/internal/prompt"
)

// Resolve enumerates candidates, asks the user to pick one and returns it.
// ok is false when the answer was not a listed entry; err is only set for
// protocol or I/O failures.
func Resolve(tree Tree, chooser prompt.Chooser, opts Options) (Candidate, bool, error) {
	candidates, err := Enumerate(tree, opts)
	if err != nil {
		return Candidate{}, false, err
	}
	return Pick(candidates, chooser, opts)
}

// Pick runs the selection step over an already enumerated list.
func Pick(candidates []Candidate, chooser prompt.Chooser, opts Options) (Candidate, bool, error) {
	sel, err := chooser.Choose("Select Window:", MenuItems(candidates))
	if err != nil {
		return Candidate{}, false, err
	}

	switch sel.Outcome {
	case prompt.Picked:
		return candidates[sel.Index], true, nil
	case prompt.InvalidInput:
		chooser.Notify("Invalid input, no window selected")
	case prompt.OutOfRange:
		chooser.Notify("Invalid index, no window selected")
	case prompt.Empty:
		chooser.Notify("No windows found")
	}
	opts.logger().Info("window selection abandoned", "reason", sel.Outcome.String())
	return Candidate{}, false, nil
}

// MenuItems renders candidates in enumeration order.
func MenuItems(candidates []Candidate) []string {
	items := make([]string, len(candidates))
	for i, c := range candidates {
		items[i] = fmt.Sprintf("%s, %s (0x%x)", c.Name, c.Geometry, uint32(c.ID))
	}
	return items
}
