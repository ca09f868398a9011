package capture

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"time"
)

// interruptGrace is how long ffmpeg gets to finalise the container after an
// interrupt before it is killed.
const interruptGrace = 10 * time.Second

// Stdio is the process's standard streams.
type Stdio struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Run starts program with args and waits for it. Cancelling ctx sends
// os.Interrupt so ffmpeg can write the trailer.
func Run(ctx context.Context, program string, args []string, stdio Stdio, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	cmd := exec.CommandContext(ctx, program, args...)
	cmd.Stdin = stdio.In
	cmd.Stdout = stdio.Out
	cmd.Stderr = stdio.Err
	cmd.Cancel = func() error {
		logger.Info("stopping capture", "pid", cmd.Process.Pid)
		return cmd.Process.Signal(os.Interrupt)
	}
	cmd.WaitDelay = interruptGrace

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to execute %s: %w", program, err)
	}
	logger.Debug("capture started", "pid", cmd.Process.Pid)

	err := cmd.Wait()
	if err != nil && ctx.Err() != nil {
		// Interrupted on request; ffmpeg exits non-zero after a signal.
		logger.Info("capture interrupted", "err", err)
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s failed: %w", program, err)
	}
	return nil
}
