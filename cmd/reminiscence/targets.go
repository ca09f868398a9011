package main

import (
	"fmt"
	"log/slog"

	"github.com/1broseidon/reminiscence/internal/audio"
	"github.com/1broseidon/reminiscence/internal/capture"
	"github.com/1broseidon/reminiscence/internal/config"
	"github.com/1broseidon/reminiscence/internal/prompt"
	"github.com/1broseidon/reminiscence/internal/pulseaudio"
	"github.com/1broseidon/reminiscence/internal/window"
	"github.com/1broseidon/reminiscence/internal/x11"
)

func windowOptions(cfg *config.Config, logger *slog.Logger) (window.Options, error) {
	policy, err := window.ParseNamePolicy(cfg.NamePolicy)
	if err != nil {
		return window.Options{}, err
	}
	return window.Options{NamePolicy: policy, Logger: logger}, nil
}

// withTree opens an X connection for the duration of fn.
func withTree(cfg *config.Config, fn func(*x11.Connection, *x11.Tree) error) error {
	conn, err := x11.NewConnection(cfg.Display, cfg.XAuthority)
	if err != nil {
		return err
	}
	defer conn.Close()

	tree, err := x11.NewTree(conn, cfg.NetWMNameFallback)
	if err != nil {
		return err
	}
	return fn(conn, tree)
}

func listWindows(cfg *config.Config, logger *slog.Logger) ([]window.Candidate, error) {
	opts, err := windowOptions(cfg, logger)
	if err != nil {
		return nil, err
	}
	var candidates []window.Candidate
	err = withTree(cfg, func(_ *x11.Connection, tree *x11.Tree) error {
		candidates, err = window.Enumerate(tree, opts)
		return err
	})
	return candidates, err
}

// resolveWindowTarget runs the interactive window picker.
func resolveWindowTarget(cfg *config.Config, chooser prompt.Chooser, logger *slog.Logger) (capture.Target, error) {
	opts, err := windowOptions(cfg, logger)
	if err != nil {
		return capture.Target{}, err
	}

	var (
		picked window.Candidate
		ok     bool
	)
	err = withTree(cfg, func(_ *x11.Connection, tree *x11.Tree) error {
		picked, ok, err = window.Resolve(tree, chooser, opts)
		return err
	})
	if err != nil {
		return capture.Target{}, err
	}
	if !ok {
		return capture.Target{}, window.ErrNoSelection
	}
	return capture.TargetFromWindow(picked), nil
}

// resolveRegionTarget turns a --region value into a target.
func resolveRegionTarget(cfg *config.Config, value string) (capture.Target, error) {
	region, err := capture.ParseRegion(value)
	if err != nil {
		return capture.Target{}, err
	}
	if region.Monitor == 0 {
		return capture.Target{Name: "region " + value, Geometry: region.Geometry}, nil
	}

	var target capture.Target
	err = withTree(cfg, func(conn *x11.Connection, _ *x11.Tree) error {
		monitors, err := conn.GetMonitors()
		if err != nil {
			return err
		}
		if region.Monitor > len(monitors) {
			return fmt.Errorf("monitor %d not found (%d active)", region.Monitor, len(monitors))
		}
		m := monitors[region.Monitor-1]
		target = capture.Target{Name: m.Name, Geometry: m.Geometry}
		return nil
	})
	return target, err
}

// withAudio opens an audio server handle for the duration of fn.
func withAudio(fn func(audio.Server) error) error {
	client, err := pulseaudio.Dial(appName)
	if err != nil {
		return err
	}
	defer client.Close()
	return fn(client)
}

func resolveAudioDevice(chooser prompt.Chooser, logger *slog.Logger) (audio.Device, error) {
	var dev audio.Device
	err := withAudio(func(server audio.Server) error {
		var err error
		dev, err = audio.Resolve(server, chooser, logger)
		return err
	})
	return dev, err
}
