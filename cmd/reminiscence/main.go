package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/1broseidon/reminiscence/internal/config"
)

const appName = "reminiscence"

func main() {
	if len(os.Args) < 2 {
		os.Exit(runRecord(nil))
	}

	switch os.Args[1] {
	case "record":
		os.Exit(runRecord(os.Args[2:]))
	case "windows":
		os.Exit(runWindows(os.Args[2:]))
	case "devices":
		os.Exit(runDevices(os.Args[2:]))
	case "monitors":
		os.Exit(runMonitors(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: reminiscence [command] [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  record              Pick a window and audio device, then record (default)")
	fmt.Fprintln(w, "  windows             List capturable windows")
	fmt.Fprintln(w, "  devices             List audio playback devices")
	fmt.Fprintln(w, "  monitors            List monitors usable with record --region")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config print        Print effective configuration")
	fmt.Fprintln(w, "  config validate     Validate configuration")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'reminiscence <command> --help' for command-specific options.")
}

// commonFlags are accepted by every subcommand.
type commonFlags struct {
	configPath string
	verbose    bool
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.configPath, "config", "", "Path to config file (default ~/.config/reminiscence/config.yaml)")
	fs.BoolVar(&c.verbose, "v", false, "Enable debug logging")
}

// load reads the config and installs the default logger.
func (c *commonFlags) load() (*config.Config, *slog.Logger, error) {
	path := c.configPath
	if path == "" {
		var err error
		if path, err = config.DefaultConfigPath(); err != nil {
			return nil, nil, err
		}
	}
	res, err := config.LoadFromPath(path)
	if err != nil {
		return nil, nil, err
	}

	level := res.Config.LogLevel
	if c.verbose {
		level = "debug"
	}
	logger := newLogger(os.Stderr, level)
	slog.SetDefault(logger)
	if res.File != "" {
		logger.Debug("loaded config", "file", res.File)
	}
	return res.Config, logger, nil
}

func newLogger(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLevel(level),
	}))
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// parseFlags handles -h and stray arguments the same way for every command.
func parseFlags(fs *flag.FlagSet, args []string) (int, bool) {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0, false
		}
		return 2, false
	}
	if fs.NArg() != 0 {
		fmt.Fprintf(os.Stderr, "%s takes no arguments\n", fs.Name())
		fs.Usage()
		return 2, false
	}
	return 0, true
}

func newFlagSet(name, usage, description string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: "+usage)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, description)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	return fs
}
