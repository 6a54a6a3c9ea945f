package utils

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// NewLogger builds the application logger writing to w at the given level.
func NewLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          "subnet-planner",
	})
	return logger, nil
}

// OpenLogFile returns a logger writing to path, or a discarding logger when
// path is empty. The returned closer is never nil.
func OpenLogFile(path, level string) (*log.Logger, io.Closer, error) {
	if path == "" {
		logger, err := NewLogger(io.Discard, level)
		return logger, io.NopCloser(nil), err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening log file: %w", err)
	}

	logger, err := NewLogger(file, level)
	if err != nil {
		file.Close()
		return nil, nil, err
	}
	return logger, file, nil
}
