package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"
)

// logTimeLayout sorts lexically in chronological order.
const logTimeLayout = "2006-01-02T15-04-05.000"

// SetupLogFile opens a fresh log file <dir>/<prefix>-<timestamp>.log and
// prunes the files of the same prefix down to the maxFiles newest. A pruning
// failure is reported on stderr and does not fail the call. The caller owns
// the returned file.
func SetupLogFile(dir, prefix string, maxFiles int) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	name := fmt.Sprintf("%s-%s.log", prefix, time.Now().Format(logTimeLayout))
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("create log file: %w", err)
	}

	if err := pruneLogs(dir, prefix, maxFiles); err != nil {
		fmt.Fprintf(os.Stderr, "warning: pruning old logs: %v\n", err)
	}
	return f, nil
}

// pruneLogs keeps the keep newest logs of prefix. keep <= 0 keeps all.
func pruneLogs(dir, prefix string, keep int) error {
	if keep <= 0 {
		return nil
	}
	files, err := filepath.Glob(filepath.Join(dir, prefix+"-*.log"))
	if err != nil {
		return err
	}
	if len(files) <= keep {
		return nil
	}

	slices.Sort(files)
	for _, old := range files[:len(files)-keep] {
		if err := os.Remove(old); err != nil {
			return fmt.Errorf("remove %s: %w", old, err)
		}
	}
	return nil
}
