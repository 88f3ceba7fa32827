// Package logger builds the zerolog loggers used by the benchgraph command.
//
// Library packages never reach for a global logger; they accept a
// zerolog.Logger through their options and default to zerolog.Nop().
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the project-wide logging type.
type Logger = zerolog.Logger

// Options configures New.
type Options struct {
	Level     string
	Format    string // "console" or "json"
	Service   string
	Component string // only for loggers not later passed through Named
	Writer    io.Writer
}

// New builds a logger from opts. Output goes to stderr unless opts.Writer is set.
func New(opts Options) Logger {
	var w io.Writer = os.Stderr
	if opts.Writer != nil {
		w = opts.Writer
	}
	if strings.EqualFold(strings.TrimSpace(opts.Format), "console") {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: opts.Writer != nil}
	}

	ctx := zerolog.New(w).Level(ParseLevel(opts.Level)).With().Timestamp()
	if opts.Service != "" {
		ctx = ctx.Str("service", opts.Service)
	}
	if opts.Component != "" {
		ctx = ctx.Str("component", opts.Component)
	}

	return ctx.Logger()
}

// Named returns a child of l tagged with a component field.
func Named(l Logger, component string) Logger {
	if component == "" {
		return l
	}

	return l.With().Str("component", component).Logger()
}

// ParseLevel maps a level name to a zerolog level; unknown names mean info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info", "":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
