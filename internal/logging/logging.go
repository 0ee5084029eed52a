// Package logging builds the process logger. The TUI owns the terminal, so
// output goes to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/idilsaglam/pagedlist/internal/config"
)

// New returns a logger configured by c and a cleanup func closing its file.
func New(c *config.Log) (*logrus.Logger, func(), error) {
	l := logrus.New()
	l.SetOutput(io.Discard)
	if c == nil {
		return l, func() {}, nil
	}

	level := logrus.InfoLevel
	if c.Level != "" {
		lv, err := logrus.ParseLevel(c.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("log level: %w", err)
		}
		level = lv
	}
	l.SetLevel(level)

	switch strings.ToLower(c.Format) {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	if c.File == "" {
		return l, func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(c.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(c.File, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	l.SetOutput(f)
	return l, func() { _ = f.Close() }, nil
}
