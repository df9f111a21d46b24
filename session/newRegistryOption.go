package session

import (
	"log/slog"
	"time"

	"github.com/c2fo/webftp/internal/logging"
	"github.com/c2fo/webftp/options"
)

const (
	optionNameIdleTimeout   = "idleTimeout"
	optionNameSweepInterval = "sweepInterval"
	optionNameMaxSessions   = "maxSessions"
	optionNameLogger        = "logger"
	optionNameClock         = "clock"
)

// WithIdleTimeout returns idleTimeoutOpt implementation of options.Option
//
// Sessions untouched for longer than d are evicted by the sweep loop.  Non-positive values are ignored.
func WithIdleTimeout(d time.Duration) options.Option[Registry] {
	return &idleTimeoutOpt{d: d}
}

type idleTimeoutOpt struct {
	d time.Duration
}

func (o *idleTimeoutOpt) Apply(r *Registry) {
	if o.d > 0 {
		r.idleTimeout = o.d
	}
}

func (o *idleTimeoutOpt) OptionName() string {
	return optionNameIdleTimeout
}

// WithSweepInterval returns sweepIntervalOpt implementation of options.Option
//
// WithSweepInterval sets how often the background loop looks for idle sessions.  Non-positive values are ignored.
func WithSweepInterval(d time.Duration) options.Option[Registry] {
	return &sweepIntervalOpt{d: d}
}

type sweepIntervalOpt struct {
	d time.Duration
}

func (o *sweepIntervalOpt) Apply(r *Registry) {
	if o.d > 0 {
		r.sweepInterval = o.d
	}
}

func (o *sweepIntervalOpt) OptionName() string {
	return optionNameSweepInterval
}

// WithMaxSessions returns maxSessionsOpt implementation of options.Option
//
// WithMaxSessions caps the number of live sessions.  0 means unlimited.
func WithMaxSessions(n int) options.Option[Registry] {
	return &maxSessionsOpt{n: n}
}

type maxSessionsOpt struct {
	n int
}

func (o *maxSessionsOpt) Apply(r *Registry) {
	if o.n >= 0 {
		r.maxSessions = o.n
	}
}

func (o *maxSessionsOpt) OptionName() string {
	return optionNameMaxSessions
}

// WithLogger returns loggerOpt implementation of options.Option
func WithLogger(l *slog.Logger) options.Option[Registry] {
	return &loggerOpt{logger: l}
}

type loggerOpt struct {
	logger *slog.Logger
}

func (o *loggerOpt) Apply(r *Registry) {
	r.logger = logging.Module(o.logger, "session")
}

func (o *loggerOpt) OptionName() string {
	return optionNameLogger
}

// WithClock returns clockOpt implementation of options.Option
//
// WithClock replaces time.Now for last-activity bookkeeping.  It exists for tests.
func WithClock(now func() time.Time) options.Option[Registry] {
	return &clockOpt{now: now}
}

type clockOpt struct {
	now func() time.Time
}

func (o *clockOpt) Apply(r *Registry) {
	if o.now != nil {
		r.now = o.now
	}
}

func (o *clockOpt) OptionName() string {
	return optionNameClock
}
