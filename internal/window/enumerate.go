package window

import (
	"fmt"
	"log/slog"
)

// Options tunes candidate discovery.
type Options struct {
	NamePolicy NamePolicy
	Logger     *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// Enumerate walks the root's top-level windows in tree order and returns one
// candidate per viewable top-level window that has a named window in its
// subtree. The candidate geometry is always the top-level window's.
func Enumerate(tree Tree, opts Options) ([]Candidate, error) {
	log := opts.logger()

	root := tree.Root()
	topLevel, err := tree.Children(root)
	if err != nil {
		return nil, fmt.Errorf("failed to query root window tree: %w", err)
	}

	var candidates []Candidate
	for _, top := range topLevel {
		viewable, err := tree.Viewable(top)
		if err != nil {
			return nil, fmt.Errorf("failed to get attributes of window 0x%x: %w", uint32(top), err)
		}
		if !viewable {
			log.Debug("skipping window that is not viewable", "window", fmt.Sprintf("0x%x", uint32(top)))
			continue
		}

		name, found, err := firstName(tree, top, opts.NamePolicy)
		if err != nil {
			return nil, err
		}
		if !found {
			continue
		}

		geom, err := tree.Geometry(top)
		if err != nil {
			return nil, fmt.Errorf("failed to get geometry of window 0x%x: %w", uint32(top), err)
		}

		log.Debug("found window", "window", fmt.Sprintf("0x%x", uint32(top)), "name", name)
		candidates = append(candidates, Candidate{ID: top, Name: name, Geometry: geom})
	}

	return candidates, nil
}

// firstName searches the subtree of top depth-first in pre-order and returns
// the first non-empty name. An explicit stack keeps deep trees off the
// goroutine stack.
func firstName(tree Tree, top ID, policy NamePolicy) (string, bool, error) {
	var stack []ID
	if policy == NameFromDescendant {
		children, err := tree.Children(top)
		if err != nil {
			return "", false, fmt.Errorf("failed to query tree of window 0x%x: %w", uint32(top), err)
		}
		stack = pushReversed(stack, children)
	} else {
		stack = append(stack, top)
	}

	for len(stack) > 0 {
		w := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		raw, err := tree.Name(w)
		if err != nil {
			return "", false, fmt.Errorf("failed to get name of window 0x%x: %w", uint32(w), err)
		}
		if name := DecodeName(raw); name != "" {
			return name, true, nil
		}

		children, err := tree.Children(w)
		if err != nil {
			return "", false, fmt.Errorf("failed to query tree of window 0x%x: %w", uint32(w), err)
		}
		stack = pushReversed(stack, children)
	}

	return "", false, nil
}

// pushReversed pushes ids so that ids[0] is popped first.
func pushReversed(stack []ID, ids []ID) []ID {
	for i := len(ids) - 1; i >= 0; i-- {
		stack = append(stack, ids[i])
	}
	return stack
}
