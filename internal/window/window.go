package window

import (
	"errors"
	"fmt"
)

// ID is an opaque window handle, unique within one display server session.
type ID uint32

// Geometry is an absolute screen-space pixel rectangle.
type Geometry struct {
	X      int
	Y      int
	Width  int
	Height int
}

func (g Geometry) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", g.X, g.Y, g.Width, g.Height)
}

// Candidate is a capturable top-level window.
type Candidate struct {
	ID       ID
	Name     string
	Geometry Geometry
}

// ErrNoSelection reports that the user did not pick a usable window.
var ErrNoSelection = errors.New("no window selected")

// Tree is the subset of the windowing-system protocol needed to discover
// capture targets. Every method is a blocking round-trip; an error means the
// reply was missing or malformed.
type Tree interface {
	Root() ID
	Children(w ID) ([]ID, error)
	Viewable(w ID) (bool, error)
	// Name returns the raw name property bytes, or nil when the window has none.
	Name(w ID) ([]byte, error)
	Geometry(w ID) (Geometry, error)
}

// NamePolicy selects which windows of a top-level subtree may supply its name.
type NamePolicy string

const (
	// NameFromSelf checks the top-level window first, then its descendants.
	NameFromSelf NamePolicy = "self"
	// NameFromDescendant only accepts names carried by strict descendants.
	NameFromDescendant NamePolicy = "descendant"
)

// ParseNamePolicy maps a config value onto a NamePolicy.
func ParseNamePolicy(s string) (NamePolicy, error) {
	switch NamePolicy(s) {
	case "", NameFromSelf:
		return NameFromSelf, nil
	case NameFromDescendant:
		return NameFromDescendant, nil
	default:
		return "", fmt.Errorf("unknown name policy %q (want %q or %q)", s, NameFromSelf, NameFromDescendant)
	}
}
