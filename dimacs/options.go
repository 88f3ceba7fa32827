// SPDX-License-Identifier: MIT
// File: options.go
// Role: Functional options and the diagnostic side channel.

package dimacs

import "github.com/rs/zerolog"

// DiagKind classifies a non-fatal finding.
type DiagKind uint8

const (
	// DiagComment is a "c" line.
	DiagComment DiagKind = iota
	// DiagUnrecognized is a line whose first token is not c, p or e (or an
	// empty line), or a non-c/p line inside a binary preamble.
	DiagUnrecognized
	// DiagDuplicateProblem is a second problem line; the first one is kept.
	DiagDuplicateProblem
	// DiagSelfLoop is a textual edge line with equal endpoints; it is skipped.
	DiagSelfLoop
	// DiagTrailingData counts bytes after the last declared matrix row.
	DiagTrailingData
)

// String returns the lower-case name of k.
func (k DiagKind) String() string {
	switch k {
	case DiagComment:
		return "comment"
	case DiagUnrecognized:
		return "unrecognized"
	case DiagDuplicateProblem:
		return "duplicate-problem"
	case DiagSelfLoop:
		return "self-loop"
	case DiagTrailingData:
		return "trailing-data"
	default:
		return "unknown"
	}
}

// Diagnostic is one non-fatal finding. Line is 1-based and counts the
// length line of a binary file as line 1; it is 0 for matrix findings.
type Diagnostic struct {
	Kind DiagKind
	Line int
	Text string
}

// Option configures a decode call.
type Option func(*config)

type config struct {
	logger        zerolog.Logger
	onDiag        func(Diagnostic)
	declaredNodes bool
}

func newConfig(opts []Option) *config {
	cfg := &config{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithLogger routes diagnostics and decode summaries to l. Comments are
// logged at debug level, every other diagnostic at warn.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithDiagnostics registers fn to receive every diagnostic in input order.
func WithDiagnostics(fn func(Diagnostic)) Option {
	return func(c *config) { c.onDiag = fn }
}

// MaxDeclaredNodes is the largest node count WithDeclaredNodes will
// materialize. The largest published DIMACS and BHOSLIB instances have a
// few thousand nodes.
const MaxDeclaredNodes = 1 << 22

// WithDeclaredNodes makes the decoded graph hold every node 0..N-1 from the
// problem line, so isolated nodes count toward the size check. Problem lines
// declaring more than MaxDeclaredNodes are rejected with
// ErrMalformedProblemLine.
func WithDeclaredNodes() Option {
	return func(c *config) { c.declaredNodes = true }
}

func (c *config) report(d Diagnostic) {
	ev := c.logger.Warn()
	if d.Kind == DiagComment {
		ev = c.logger.Debug()
	}
	ev.Str("kind", d.Kind.String()).Int("line", d.Line).Str("text", d.Text).Msg("dimacs diagnostic")

	if c.onDiag != nil {
		c.onDiag(d)
	}
}
