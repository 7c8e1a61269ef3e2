// Package logx sets up the operational logger: logrus writing to both the
// log file and stderr. Terminal-facing output goes through pterm instead and
// never through this logger.
package logx

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New builds a logger at the given level, mirroring entries to path. When
// the log file cannot be opened the logger falls back to stderr only and
// says so once.
func New(path, level string) *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	if path != "" {
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			l.WithError(err).Warn("cannot open log file, logging to stderr only")
		} else {
			l.SetOutput(io.MultiWriter(os.Stderr, f))
		}
	}

	return l
}
