package main

import (
	"fmt"
	"io"
	"os"

	"github.com/1broseidon/reminiscence/internal/config"
)

func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  reminiscence config print [--config PATH]")
	fmt.Fprintln(w, "  reminiscence config validate [--config PATH]")
}

func runConfig(args []string) int {
	if len(args) == 0 {
		printConfigUsage(os.Stderr)
		return 2
	}
	if args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		printConfigUsage(os.Stdout)
		return 0
	}

	switch args[0] {
	case "print":
		fs := newFlagSet("print", "reminiscence config print [--config PATH]", "Print the effective configuration as YAML.")
		var common commonFlags
		common.register(fs)
		if code, ok := parseFlags(fs, args[1:]); !ok {
			return code
		}
		cfg, _, err := common.load()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		os.Stdout.Write(data)
		return 0

	case "validate":
		fs := newFlagSet("validate", "reminiscence config validate [--config PATH]", "Load and validate the configuration.")
		var common commonFlags
		common.register(fs)
		if code, ok := parseFlags(fs, args[1:]); !ok {
			return code
		}
		if _, _, err := common.load(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Println("config OK")
		return 0

	default:
		fmt.Fprintf(os.Stderr, "Unknown config command: %s\n\n", args[0])
		printConfigUsage(os.Stderr)
		return 2
	}
}
