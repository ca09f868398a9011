package audio

import (
	"fmt"
	"log/slog"

	"github.com/1broseidon/reminiscence/internal/prompt"
)

// Resolve lists the server's sinks, asks the user to pick one and returns it.
// Any answer that is not a listed entry selects the default sink instead.
// Errors are returned only when listing fails or no default sink exists.
func Resolve(server Server, chooser prompt.Chooser, logger *slog.Logger) (Device, error) {
	if logger == nil {
		logger = slog.Default()
	}

	devices, err := server.Devices()
	if err != nil {
		return Device{}, fmt.Errorf("could not get list of playback devices: %w", err)
	}

	sel, err := chooser.Choose("Select Playback Device:", MenuItems(devices))
	if err != nil {
		return Device{}, err
	}
	if sel.OK() {
		return devices[sel.Index].Clone(), nil
	}

	switch sel.Outcome {
	case prompt.InvalidInput:
		chooser.Notify("Invalid input, choosing default audio device")
	case prompt.OutOfRange:
		chooser.Notify("Invalid index, choosing default audio device")
	case prompt.Empty:
		chooser.Notify("No playback devices listed, choosing default audio device")
	}

	def, err := server.DefaultDevice()
	if err != nil {
		return Device{}, fmt.Errorf("failed to get default device: %w", err)
	}
	logger.Info("using default audio device", "reason", sel.Outcome.String(), "index", def.Index, "name", def.Name)
	return def.Clone(), nil
}

// MenuItems renders devices in listing order.
func MenuItems(devices []Device) []string {
	items := make([]string, len(devices))
	for i, d := range devices {
		items[i] = fmt.Sprintf("%s, Volume: %s", d.Label(), d.Volume)
	}
	return items
}
