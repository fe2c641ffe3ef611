// Package logging configures the process logger.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Setup returns a logger writing to stderr so command output on stdout
// stays machine-readable. TALLY_LOG_LEVEL selects the level (default
// info); TALLY_LOG_FORMAT=json switches to JSON output.
func Setup() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	if os.Getenv("TALLY_LOG_FORMAT") == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(os.Getenv("TALLY_LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}
