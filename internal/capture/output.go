package capture

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/1broseidon/reminiscence/internal/config"
)

// OutputPath names the recording after now.
func OutputPath(cfg *config.Config, now time.Time) string {
	return filepath.Join(cfg.OutputDir, now.Format(cfg.TimestampFormat)+"."+cfg.Container)
}

// EnsureDir creates dir (and parents) if it does not exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return nil
}
