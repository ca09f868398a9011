package capture

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/1broseidon/reminiscence/internal/audio"
	"github.com/1broseidon/reminiscence/internal/config"
)

const defaultDisplay = ":0.0"

// DisplayName picks the X display for x11grab: config, then $DISPLAY, then :0.0.
func DisplayName(cfg *config.Config) string {
	if d := strings.TrimSpace(cfg.Display); d != "" {
		return d
	}
	if d := strings.TrimSpace(os.Getenv("DISPLAY")); d != "" {
		return d
	}
	return defaultDisplay
}

// AudioInput is the pulse input name for dev: its monitor source when known,
// otherwise the sink index.
func AudioInput(dev audio.Device) string {
	if dev.MonitorSource != "" {
		return dev.MonitorSource
	}
	return strconv.FormatUint(uint64(dev.Index), 10)
}

// Args assembles the ffmpeg argument list (without the program name).
func Args(cfg *config.Config, display string, target Target, dev audio.Device, output string) []string {
	g := target.Geometry
	args := []string{
		"-video_size", fmt.Sprintf("%dx%d", g.Width, g.Height),
		"-framerate", strconv.Itoa(cfg.Framerate),
		"-f", "x11grab",
		"-i", fmt.Sprintf("%s+%d,%d", display, g.X, g.Y),
	}
	if cfg.Duration > 0 {
		args = append(args, "-t", strconv.Itoa(cfg.Duration))
	}
	args = append(args,
		"-f", "pulse",
		"-ac", strconv.Itoa(cfg.AudioChannels),
		"-i", AudioInput(dev),
	)
	if cfg.Duration > 0 {
		args = append(args, "-t", strconv.Itoa(cfg.Duration))
	}
	if codec := cfg.VideoCodecName(); codec != "" {
		args = append(args, "-c:v", codec)
	}
	return append(args, output)
}

// CommandLine renders program and args for display.
func CommandLine(program string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, program)
	for _, a := range args {
		if a == "" || strings.ContainsAny(a, " \t'\"") {
			a = strconv.Quote(a)
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}
