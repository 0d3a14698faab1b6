// Package logging configures the process logger. Output always goes to a
// writer other than stdout, which is reserved for the stdio tool transport.
package logging

import (
	"fmt"
	"io"
	"log"

	"github.com/sirupsen/logrus"
)

// New returns a JSON logger at the given level writing to w.
func New(level string, w io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.JSONFormatter{})
	return logger, nil
}

// StdLogger adapts logger for libraries that expect a *log.Logger.
func StdLogger(logger *logrus.Logger, level logrus.Level) *log.Logger {
	return log.New(logger.WriterLevel(level), "", 0)
}
