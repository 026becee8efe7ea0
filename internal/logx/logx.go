// Package logx attaches portal's standard fields to pslog loggers.
package logx

import (
	"context"
	"strings"

	"pkt.systems/pslog"
)

// Ctx returns the logger bound to ctx.
func Ctx(ctx context.Context) pslog.Logger {
	return pslog.Ctx(ctx)
}

// WithPath annotates the logger with the opened file path when set.
func WithPath(log pslog.Logger, path string) pslog.Logger {
	if path != "" {
		log = log.With("path", path)
	}
	return log
}

// WithBackend annotates the logger with the UI backend name when set.
func WithBackend(log pslog.Logger, backend string) pslog.Logger {
	if backend != "" {
		log = log.With("backend", backend)
	}
	return log
}

// ApplyLevel sets opts.MinLevel from a config level name. Unknown names
// leave info in place and report false.
func ApplyLevel(opts *pslog.Options, name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		opts.MinLevel = pslog.TraceLevel
	case "debug":
		opts.MinLevel = pslog.DebugLevel
	case "", "info":
		opts.MinLevel = pslog.InfoLevel
	case "warn", "warning":
		opts.MinLevel = pslog.WarnLevel
	case "error":
		opts.MinLevel = pslog.ErrorLevel
	default:
		opts.MinLevel = pslog.InfoLevel
		return false
	}
	return true
}

// KnownLevel reports whether ApplyLevel accepts name.
func KnownLevel(name string) bool {
	var opts pslog.Options
	return ApplyLevel(&opts, name)
}
