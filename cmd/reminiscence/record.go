package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/1broseidon/reminiscence/internal/capture"
	"github.com/1broseidon/reminiscence/internal/prompt"
)

func runRecord(args []string) int {
	fs := newFlagSet("record", "reminiscence record [--region R] [--dry-run] [--config PATH] [-v]",
		"Select a window (or region) and an audio device, then start ffmpeg.")
	var common commonFlags
	common.register(fs)
	region := fs.String("region", "", "Record a fixed region instead of a window: monitor:N or X,Y,WxH")
	dryRun := fs.Bool("dry-run", false, "Print the ffmpeg command instead of running it")
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}

	cfg, logger, err := common.load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	chooser := prompt.ForTerminal(cfg.Picker, os.Stdin, os.Stdout)

	var target capture.Target
	if *region != "" {
		target, err = resolveRegionTarget(cfg, *region)
	} else {
		target, err = resolveWindowTarget(cfg, chooser, logger)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	g := target.Geometry
	fmt.Printf("Selected window: %s,%d,%d,%d,%d\n", target.Name, g.X, g.Y, g.Width, g.Height)

	dev, err := resolveAudioDevice(chooser, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Printf("Using audio device: %s\n", dev.Label())

	output := capture.OutputPath(cfg, time.Now())
	ffArgs := capture.Args(cfg, capture.DisplayName(cfg), target, dev, output)
	fmt.Println(capture.CommandLine(cfg.FFmpegPath, ffArgs))
	if *dryRun {
		return 0
	}

	if err := capture.EnsureDir(cfg.OutputDir); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stdio := capture.Stdio{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
	if err := capture.Run(ctx, cfg.FFmpegPath, ffArgs, stdio, logger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	logger.Info("recording saved", "path", output)
	return 0
}
