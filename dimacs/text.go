// SPDX-License-Identifier: MIT
// File: text.go
// Role: Textual edge-list decoder.

package dimacs

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/dimacsbench/core"
)

// maxLineBytes bounds a single textual line.
const maxLineBytes = 1 << 20

// textDecoder consumes one line at a time.
type textDecoder struct {
	b      *graphBuilder
	lineNo int
}

// DecodeText reads a textual DIMACS graph from r.
//
// Errors (all wrapped with the line number where one applies):
//   - ErrMalformedProblemLine, ErrMalformedEdgeLine.
//   - ErrMissingProblemLine: an edge line precedes the problem line, or none exists.
//   - *SizeMismatchError: counts differ from the problem line.
//   - read errors from r.
//
// Complexity: O(L + E) for L input bytes.
func DecodeText(r io.Reader, opts ...Option) (*core.Graph, error) {
	d := &textDecoder{b: newGraphBuilder(newConfig(opts))}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		if err := d.line(sc.Text()); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dimacs: read line %d: %w", d.lineNo+1, err)
	}

	return d.b.finish()
}

// DecodeLines decodes an already split textual DIMACS graph.
func DecodeLines(lines []string, opts ...Option) (*core.Graph, error) {
	d := &textDecoder{b: newGraphBuilder(newConfig(opts))}
	for _, text := range lines {
		if err := d.line(text); err != nil {
			return nil, err
		}
	}

	return d.b.finish()
}

// line dispatches one record by kind.
func (d *textDecoder) line(text string) error {
	d.lineNo++
	kind, fields := classify(text)

	switch kind {
	case LineComment:
		d.b.cfg.report(Diagnostic{Kind: DiagComment, Line: d.lineNo, Text: text})

	case LineProblem:
		p, err := parseProblem(fields)
		if err != nil {
			return lineError(d.lineNo, text, err)
		}
		if err = d.b.declare(p, d.lineNo, text); err != nil {
			return lineError(d.lineNo, text, err)
		}

	case LineEdge:
		if !d.b.declared {
			return lineError(d.lineNo, text, ErrMissingProblemLine)
		}
		u, v, err := parseEdge(fields)
		if err != nil {
			return lineError(d.lineNo, text, err)
		}
		if u == v {
			d.b.cfg.report(Diagnostic{Kind: DiagSelfLoop, Line: d.lineNo, Text: text})
			return nil
		}
		if !d.b.inRange(u) || !d.b.inRange(v) {
			return lineError(d.lineNo, text,
				fmt.Errorf("endpoint beyond %d declared nodes: %w", d.b.problem.Nodes, ErrMalformedEdgeLine))
		}
		if err = d.b.addEdge(u, v); err != nil {
			return lineError(d.lineNo, text, err)
		}

	case LineUnrecognized:
		d.b.cfg.report(Diagnostic{Kind: DiagUnrecognized, Line: d.lineNo, Text: text})
	}

	return nil
}
