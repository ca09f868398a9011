package prompt

import (
	"os"

	"golang.org/x/term"
)

const (
	PickerMenu   = "menu"
	PickerSelect = "select"
)

// ForTerminal returns the Chooser for the configured picker. The huh picker
// is only used when both stdin and stdout are terminals; otherwise the line
// menu is used so piped input keeps working.
func ForTerminal(picker string, in, out *os.File) Chooser {
	inTTY := term.IsTerminal(int(in.Fd()))
	outTTY := term.IsTerminal(int(out.Fd()))
	if picker == PickerSelect && inTTY && outTTY {
		return NewSelect(out)
	}
	return NewMenu(in, out, outTTY)
}
