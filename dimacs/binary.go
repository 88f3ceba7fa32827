// SPDX-License-Identifier: MIT
// File: binary.go
// Role: Binary (".b") decoder as a byte-level state machine:
//
//	stateLength --'\n'--> statePreamble --L bytes--> stateMatrix
//
// Every byte goes through step(); the preamble/matrix boundary is the single
// rule "the L-th preamble byte ends the preamble".

package dimacs

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/dimacsbench/core"
	"github.com/katalvlaran/dimacsbench/matrix"
)

// maxLengthLine bounds the decimal length line.
const maxLengthLine = 32

type binState uint8

const (
	stateLength binState = iota
	statePreamble
	stateMatrix
)

type binaryDecoder struct {
	b     *graphBuilder
	state binState

	// buf holds the current preamble line, or the current matrix row.
	buf    []byte
	offset int // bytes consumed so far
	lineNo int // completed preamble lines, length line included

	preambleLen int
	consumed    int // preamble bytes consumed after the length line

	row      int // index of the row being filled
	trailing int // bytes after the last declared row
}

// DecodeBinary reads a binary DIMACS graph from r.
//
// Errors:
//   - ErrMalformedPreamble: the length line is not a non-negative integer.
//   - ErrMalformedProblemLine: a bad "p" line inside the preamble.
//   - ErrMissingProblemLine: the preamble ends without a problem line.
//   - ErrTruncatedPreamble, ErrTruncatedMatrix: the input ends early. Under
//     WithDeclaredNodes every declared row must be present.
//   - ErrDiagonalBit: a row has its diagonal bit set.
//   - *SizeMismatchError: counts differ from the problem line.
//
// Complexity: O(B + E) for B input bytes.
func DecodeBinary(r io.Reader, opts ...Option) (*core.Graph, error) {
	d := &binaryDecoder{b: newGraphBuilder(newConfig(opts))}

	br := bufio.NewReader(r)
	for {
		c, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dimacs: read byte %d: %w", d.offset, err)
		}
		if err = d.step(c); err != nil {
			return nil, err
		}
	}

	return d.finish()
}

// DecodeBytes decodes an in-memory binary DIMACS graph.
func DecodeBytes(data []byte, opts ...Option) (*core.Graph, error) {
	return DecodeBinary(bytes.NewReader(data), opts...)
}

// step is the transition function over single bytes.
func (d *binaryDecoder) step(c byte) error {
	d.offset++

	switch d.state {
	case stateLength:
		if c != '\n' {
			if len(d.buf) >= maxLengthLine {
				return fmt.Errorf("length line longer than %d bytes: %w", maxLengthLine, ErrMalformedPreamble)
			}
			d.buf = append(d.buf, c)
			return nil
		}
		d.lineNo++
		text := strings.TrimSpace(string(d.buf))
		n, err := strconv.Atoi(text)
		if err != nil || n < 0 {
			return lineError(d.lineNo, text, ErrMalformedPreamble)
		}
		d.preambleLen = n
		d.buf = d.buf[:0]
		d.state = statePreamble
		if n == 0 {
			return d.enterMatrix()
		}

	case statePreamble:
		d.consumed++
		if c == '\n' {
			if err := d.preambleLine(); err != nil {
				return err
			}
		} else {
			d.buf = append(d.buf, c)
		}
		if d.consumed == d.preambleLen {
			if len(d.buf) > 0 {
				if err := d.preambleLine(); err != nil {
					return err
				}
			}
			return d.enterMatrix()
		}

	case stateMatrix:
		if d.row >= d.b.problem.Nodes {
			d.trailing++
			return nil
		}
		d.buf = append(d.buf, c)
		if len(d.buf) == matrix.RowWidth(d.row) {
			if err := d.decodeRow(); err != nil {
				return err
			}
			d.row++
			d.buf = d.buf[:0]
		}
	}

	return nil
}

// preambleLine classifies and consumes the buffered preamble line.
func (d *binaryDecoder) preambleLine() error {
	d.lineNo++
	text := string(d.buf)
	d.buf = d.buf[:0]

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
	case LineEdge, LineUnrecognized:
		// The preamble is a free-form header; only c and p carry meaning.
		d.b.cfg.report(Diagnostic{Kind: DiagUnrecognized, Line: d.lineNo, Text: text})
	}

	return nil
}

// enterMatrix switches to row decoding; the problem line must be known by now.
func (d *binaryDecoder) enterMatrix() error {
	if !d.b.declared {
		return fmt.Errorf("end of preamble at byte %d: %w", d.offset, ErrMissingProblemLine)
	}
	d.state = stateMatrix
	d.buf = d.buf[:0]

	return nil
}

// decodeRow adds the edges of the complete row d.row held in d.buf.
func (d *binaryDecoder) decodeRow() error {
	i := d.row
	if matrix.RowBit(d.buf, i) {
		return fmt.Errorf("row %d ending at byte %d: %w", i+1, d.offset, ErrDiagonalBit)
	}
	for j := 0; j < i; j++ {
		if matrix.RowBit(d.buf, j) {
			if err := d.b.addEdge(i, j); err != nil {
				return fmt.Errorf("row %d: %w", i+1, err)
			}
		}
	}

	return nil
}

// finish checks that the input ended on a boundary, then validates counts.
func (d *binaryDecoder) finish() (*core.Graph, error) {
	switch {
	case d.state != stateMatrix:
		return nil, fmt.Errorf("input ended after %d bytes: %w", d.offset, ErrTruncatedPreamble)
	case len(d.buf) > 0:
		return nil, fmt.Errorf("row %d has %d of %d bytes: %w",
			d.row+1, len(d.buf), matrix.RowWidth(d.row), ErrTruncatedMatrix)
	case d.b.cfg.declaredNodes && d.row < d.b.problem.Nodes:
		return nil, fmt.Errorf("%d of %d rows present: %w", d.row, d.b.problem.Nodes, ErrTruncatedMatrix)
	}
	if d.trailing > 0 {
		d.b.cfg.report(Diagnostic{
			Kind: DiagTrailingData,
			Text: strconv.Itoa(d.trailing) + " bytes after row " + strconv.Itoa(d.b.problem.Nodes),
		})
	}

	return d.b.finish()
}
