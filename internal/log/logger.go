// Package log wraps log/slog behind the small interface the rest of
// the server depends on.
package log

import (
	"log/slog"
	"os"
	"strings"
)

// Logger is the logging surface used by the cache and the HTTP layer.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Slog is a Logger backed by log/slog with a text handler.
type Slog struct {
	l *slog.Logger
}

// New creates a Logger writing to stdout at the named level
// ("debug", "info", "warn", "error"; anything else means info).
func New(level string) *Slog {
	lv := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lv = slog.LevelDebug
	case "warn":
		lv = slog.LevelWarn
	case "error":
		lv = slog.LevelError
	}
	h := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lv})
	return &Slog{l: slog.New(h)}
}

func (s *Slog) Debug(msg string, args ...any) { s.l.Debug(msg, args...) }
func (s *Slog) Info(msg string, args ...any)  { s.l.Info(msg, args...) }
func (s *Slog) Warn(msg string, args ...any)  { s.l.Warn(msg, args...) }
func (s *Slog) Error(msg string, args ...any) { s.l.Error(msg, args...) }
