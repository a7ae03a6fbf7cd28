// Package logging constructs the logger shared by all components.
//
// Every run gets its own log file under the configured log directory in
// addition to standard output. The logger is built here and passed to
// components explicitly; nothing in this repository mutates process-wide
// logging state.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

// New creates a logger writing to stdout and to a fresh per-run log file
// under logDir, creating the directory if needed. The returned closer owns
// the log file.
func New(logDir string) (*logrus.Logger, io.Closer, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}

	name := fmt.Sprintf("ytaudio-%s.log", time.Now().Format("20060102-150405"))
	f, err := os.Create(filepath.Join(logDir, name))
	if err != nil {
		return nil, nil, fmt.Errorf("create log file: %w", err)
	}

	log := logrus.New()
	log.SetOutput(io.MultiWriter(os.Stdout, f))
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetLevel(logrus.InfoLevel)

	return log, f, nil
}
