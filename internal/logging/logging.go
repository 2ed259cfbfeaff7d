// Package logging builds the process logger and request-scoped entries.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// Config selects the level, format and destination of log output.
type Config struct {
	Level  string `yaml:"level"`  // logrus level name, default "info"
	Format string `yaml:"format"` // "text" (default) or "json"
	File   string `yaml:"file"`   // path to append to; empty means Output
	// Output is used when File is empty. Nil means stderr.
	Output io.Writer `yaml:"-"`
}

// New builds a logger from cfg. The returned closer releases the log file,
// if any.
func New(cfg Config) (*logrus.Logger, io.Closer, error) {
	log := logrus.New()

	level := logrus.InfoLevel
	if cfg.Level != "" {
		l, err := logrus.ParseLevel(cfg.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("log level: %w", err)
		}
		level = l
	}
	log.SetLevel(level)

	switch strings.ToLower(cfg.Format) {
	case "", "text":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	var closer io.Closer = nopCloser{}
	switch {
	case cfg.File != "":
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		log.SetOutput(f)
		closer = f
	case cfg.Output != nil:
		log.SetOutput(cfg.Output)
	default:
		log.SetOutput(os.Stderr)
	}

	return log, closer, nil
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

type loggerKey struct{}

// NewContext returns a context carrying log.
func NewContext(ctx context.Context, log logrus.FieldLogger) context.Context {
	return context.WithValue(ctx, loggerKey{}, log)
}

// WithContext returns the logger stored in ctx, or the standard logger,
// tagged with the chi request ID when one is present.
func WithContext(ctx context.Context) logrus.FieldLogger {
	log, ok := ctx.Value(loggerKey{}).(logrus.FieldLogger)
	if !ok {
		log = logrus.StandardLogger()
	}
	if id := middleware.GetReqID(ctx); id != "" {
		return log.WithField("request_id", id)
	}
	return log
}
