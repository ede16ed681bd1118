package config

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var Logger = logrus.New()

// Init configures the shared logger. Unknown levels fall back to info.
func Init(level, format string) {
	Logger.SetOutput(os.Stderr)

	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Logger.SetLevel(lvl)

	if strings.EqualFold(strings.TrimSpace(format), "json") {
		Logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

func SetOutput(w io.Writer) {
	Logger.SetOutput(w)
}

// WithContext returns a logger tagged with the run id carried by ctx.
func WithContext(ctx context.Context) logrus.FieldLogger {
	entry := logrus.NewEntry(Logger)
	if ctx == nil {
		return entry
	}
	if id := RunIDFromContext(ctx); id != "" {
		entry = entry.WithField("run_id", id)
	}
	if cmd, ok := ctx.Value(commandKey).(string); ok && cmd != "" {
		entry = entry.WithField("command", cmd)
	}
	return entry
}
