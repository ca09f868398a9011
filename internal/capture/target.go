package capture

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/1broseidon/reminiscence/internal/window"
)

// Target is the screen area handed to x11grab.
type Target struct {
	Name     string
	Geometry window.Geometry
}

// TargetFromWindow converts a selected window.
func TargetFromWindow(c window.Candidate) Target {
	return Target{Name: c.Name, Geometry: c.Geometry}
}

// Region is a parsed --region flag. Exactly one of Monitor (1-based) or
// Geometry is set.
type Region struct {
	Monitor  int
	Geometry window.Geometry
}

var rectPattern = regexp.MustCompile(`^(-?\d+),(-?\d+),(\d+)x(\d+)$`)

// ParseRegion accepts "monitor:N" or "X,Y,WxH".
func ParseRegion(s string) (Region, error) {
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(s, "monitor:"); ok {
		n, err := strconv.Atoi(rest)
		if err != nil || n < 1 {
			return Region{}, fmt.Errorf("invalid monitor number %q (want 1 or more)", rest)
		}
		return Region{Monitor: n}, nil
	}

	m := rectPattern.FindStringSubmatch(s)
	if m == nil {
		return Region{}, fmt.Errorf("invalid region %q (want monitor:N or X,Y,WxH)", s)
	}
	vals := make([]int, 4)
	for i := range vals {
		v, err := strconv.Atoi(m[i+1])
		if err != nil {
			return Region{}, fmt.Errorf("invalid region %q: %w", s, err)
		}
		vals[i] = v
	}
	if vals[2] == 0 || vals[3] == 0 {
		return Region{}, fmt.Errorf("invalid region %q: width and height must be positive", s)
	}
	return Region{Geometry: window.Geometry{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]}}, nil
}
