// Package logging builds the slog.Logger shared by every webftp component.
package logging

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Formats accepted by New.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ParseLevel maps DEBUG, INFO, WARN and ERROR (any case) to a slog.Level.  Unknown values fall back to INFO.
func ParseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New returns a logger writing to w.  The text format is colourised by tint; json is meant for log shippers.  Debug
// level adds source locations.
func New(w io.Writer, level, format string) *slog.Logger {
	lvl := ParseLevel(level)
	addSource := lvl == slog.LevelDebug

	var handler slog.Handler
	if strings.EqualFold(format, FormatJSON) {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			AddSource: addSource,
			Level:     lvl,
		})
	} else {
		handler = tint.NewHandler(w, &tint.Options{
			AddSource:  addSource,
			Level:      lvl,
			TimeFormat: time.DateTime,
		})
	}

	return slog.New(handler).With("app", "webftp")
}

// Discard returns a logger that drops everything, for components constructed without one.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// Module returns l tagged with the module attribute, or a discarding logger when l is nil.
func Module(l *slog.Logger, name string) *slog.Logger {
	if l == nil {
		l = Discard()
	}
	return l.With("module", name)
}
