// SPDX-License-Identifier: MIT
// Package dimacs: sentinel error set.
//
// Line- and byte-level failures wrap these sentinels with their position,
// e.g. `line 7 "e 3 x": dimacs: malformed edge line`; match with errors.Is.

package dimacs

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedProblemLine reports a problem line with missing tokens, a
	// format other than "edge", or counts that are not non-negative integers.
	ErrMalformedProblemLine = errors.New("dimacs: malformed problem line")

	// ErrMalformedEdgeLine reports an edge line whose endpoints are missing or
	// not positive integers (or out of range under WithDeclaredNodes).
	ErrMalformedEdgeLine = errors.New("dimacs: malformed edge line")

	// ErrMissingProblemLine reports edge data before any problem line, or an
	// input without one.
	ErrMissingProblemLine = errors.New("dimacs: missing problem line")

	// ErrGraphSizeMismatch is matched by every *SizeMismatchError.
	ErrGraphSizeMismatch = errors.New("dimacs: graph size mismatch")

	// ErrMalformedPreamble reports a binary length line that is not a
	// non-negative decimal integer.
	ErrMalformedPreamble = errors.New("dimacs: malformed binary preamble")

	// ErrTruncatedPreamble reports a binary input that ends inside its preamble.
	ErrTruncatedPreamble = errors.New("dimacs: truncated binary preamble")

	// ErrTruncatedMatrix reports a binary input that ends inside a matrix row.
	ErrTruncatedMatrix = errors.New("dimacs: truncated adjacency matrix")

	// ErrDiagonalBit reports a set diagonal bit (self-adjacency) in a binary row.
	ErrDiagonalBit = errors.New("dimacs: diagonal bit set")

	// ErrNonContiguousNodes reports an encoder input whose node IDs are not
	// exactly 0..n-1.
	ErrNonContiguousNodes = errors.New("dimacs: node ids are not 0..n-1")
)

// SizeMismatchError reports decoded counts that differ from the problem line.
type SizeMismatchError struct {
	ExpectedNodes int
	ActualNodes   int
	ExpectedEdges int
	ActualEdges   int
}

// Error implements error.
func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("dimacs: graph size mismatch: nodes %d (declared %d), edges %d (declared %d)",
		e.ActualNodes, e.ExpectedNodes, e.ActualEdges, e.ExpectedEdges)
}

// Is makes errors.Is(err, ErrGraphSizeMismatch) hold.
func (e *SizeMismatchError) Is(target error) bool {
	return target == ErrGraphSizeMismatch
}

// lineError attaches a 1-based line number and the offending text to a sentinel.
func lineError(no int, text string, err error) error {
	return fmt.Errorf("line %d %q: %w", no, text, err)
}
