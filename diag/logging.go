// Package diag sets up logging, crash handling and the optional runtime profiler for the front ends
package diag

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

const (
	logFileName = "centipede.log"
	maxLogSize  = 10 * 1024 * 1024
)

// SetupLogging builds the front-end logger
// Terminal UIs own stdout, so logs go to dir/centipede.log when enabled and are discarded otherwise
// The returned file is nil when logging is disabled; the caller closes it
func SetupLogging(enabled bool, dir, level string) (*log.Logger, *os.File, error) {
	if !enabled {
		logger := log.New(io.Discard)
		log.SetDefault(logger)
		return logger, nil, nil
	}

	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("log dir: %w", err)
	}

	path := filepath.Join(dir, logFileName)
	if err := rotate(path); err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		Level:           lvl,
		Prefix:          "centipede",
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
	log.SetDefault(logger)
	return logger, f, nil
}

// rotate renames an oversized log aside with a timestamp suffix
func rotate(path string) error {
	info, err := os.Stat(path)
	if err != nil || info.Size() <= maxLogSize {
		return nil
	}
	ext := filepath.Ext(path)
	rotated := fmt.Sprintf("%s-%s%s", path[:len(path)-len(ext)], time.Now().Format("20060102-150405"), ext)
	if err := os.Rename(path, rotated); err != nil {
		return fmt.Errorf("log rotate: %w", err)
	}
	return nil
}
