package main

import (
	"fmt"
	"os"

	"github.com/1broseidon/reminiscence/internal/audio"
	"github.com/1broseidon/reminiscence/internal/window"
	"github.com/1broseidon/reminiscence/internal/x11"
)

func runWindows(args []string) int {
	fs := newFlagSet("windows", "reminiscence windows [--config PATH] [-v]",
		"List viewable top-level windows in the order the record menu shows them.")
	var common commonFlags
	common.register(fs)
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}

	cfg, logger, err := common.load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	candidates, err := listWindows(cfg, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	printNumbered(window.MenuItems(candidates))
	return 0
}

func runDevices(args []string) int {
	fs := newFlagSet("devices", "reminiscence devices [--config PATH] [-v]",
		"List audio playback devices and mark the server default.")
	var common commonFlags
	common.register(fs)
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}

	if _, _, err := common.load(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	err := withAudio(func(server audio.Server) error {
		devices, err := server.Devices()
		if err != nil {
			return fmt.Errorf("could not get list of playback devices: %w", err)
		}
		items := audio.MenuItems(devices)
		if def, err := server.DefaultDevice(); err == nil {
			for i, d := range devices {
				if d.Index == def.Index {
					items[i] += " (default)"
				}
			}
		}
		printNumbered(items)
		return nil
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runMonitors(args []string) int {
	fs := newFlagSet("monitors", "reminiscence monitors [--config PATH] [-v]",
		"List active monitors; use 'record --region monitor:N' to record one.")
	var common commonFlags
	common.register(fs)
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}

	cfg, _, err := common.load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	err = withTree(cfg, func(conn *x11.Connection, _ *x11.Tree) error {
		monitors, err := conn.GetMonitors()
		if err != nil {
			return err
		}
		items := make([]string, len(monitors))
		for i, m := range monitors {
			items[i] = fmt.Sprintf("%s, %s", m.Name, m.Geometry)
		}
		printNumbered(items)
		return nil
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func printNumbered(items []string) {
	if len(items) == 0 {
		fmt.Println("(none)")
		return
	}
	for i, item := range items {
		fmt.Printf("[%d] %s\n", i+1, item)
	}
}
