// SPDX-License-Identifier: MIT
// File: line.go
// Role: Line classification and per-kind parsing shared by both decoders.

package dimacs

import (
	"strconv"
	"strings"
)

// LineKind is the closed set of textual record kinds.
type LineKind uint8

const (
	// LineUnrecognized is any line not starting with c, p or e, including empty lines.
	LineUnrecognized LineKind = iota
	// LineComment starts with "c".
	LineComment
	// LineProblem starts with "p".
	LineProblem
	// LineEdge starts with "e".
	LineEdge
)

// FormatEdge is the only accepted problem format.
const FormatEdge = "edge"

// Problem is the content of a "p" line.
type Problem struct {
	Format string
	Nodes  int
	Edges  int
}

// Classify returns the kind of a textual line from its first
// whitespace-delimited token.
func Classify(line string) LineKind {
	kind, _ := classify(line)

	return kind
}

// classify returns the kind together with the split fields.
func classify(line string) (LineKind, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return LineUnrecognized, nil
	}
	switch fields[0] {
	case "c":
		return LineComment, fields
	case "p":
		return LineProblem, fields
	case "e":
		return LineEdge, fields
	default:
		return LineUnrecognized, fields
	}
}

// parseProblem parses "p edge N M". Tokens after M are ignored.
func parseProblem(fields []string) (Problem, error) {
	if len(fields) < 4 || fields[1] != FormatEdge {
		return Problem{}, ErrMalformedProblemLine
	}
	nodes, err := strconv.Atoi(fields[2])
	if err != nil || nodes < 0 {
		return Problem{}, ErrMalformedProblemLine
	}
	edges, err := strconv.Atoi(fields[3])
	if err != nil || edges < 0 {
		return Problem{}, ErrMalformedProblemLine
	}

	return Problem{Format: fields[1], Nodes: nodes, Edges: edges}, nil
}

// parseEdge parses "e U V" into 0-based endpoints. Tokens after V are ignored.
func parseEdge(fields []string) (u, v int, err error) {
	if len(fields) < 3 {
		return 0, 0, ErrMalformedEdgeLine
	}
	u, err = strconv.Atoi(fields[1])
	if err != nil || u < 1 {
		return 0, 0, ErrMalformedEdgeLine
	}
	v, err = strconv.Atoi(fields[2])
	if err != nil || v < 1 {
		return 0, 0, ErrMalformedEdgeLine
	}

	return u - 1, v - 1, nil
}
