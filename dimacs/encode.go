// SPDX-License-Identifier: MIT
// File: encode.go
// Role: Textual and binary DIMACS writers, the inverse of the decoders.

package dimacs

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/dimacsbench/core"
	"github.com/katalvlaran/dimacsbench/matrix"
)

// EncodeText writes g as a textual DIMACS graph: one "c" line per comment,
// the problem line, then one "e" line per edge in (U, V) order.
//
// Errors:
//   - ErrNonContiguousNodes: node IDs are not exactly 0..n-1.
//   - write errors from w.
func EncodeText(w io.Writer, g *core.Graph, comments ...string) error {
	if err := checkContiguous(g); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	writeHeader(bw, g, comments)
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "e %d %d\n", e.U+1, e.V+1)
	}

	return bw.Flush()
}

// EncodeBinary writes g as a binary DIMACS graph: the preamble length line, a
// preamble of comments and the problem line, then the packed lower triangle.
//
// Errors:
//   - ErrNonContiguousNodes: node IDs are not exactly 0..n-1.
//   - write errors from w.
func EncodeBinary(w io.Writer, g *core.Graph, comments ...string) error {
	if err := checkContiguous(g); err != nil {
		return err
	}
	lt, err := matrix.FromGraph(g)
	if err != nil {
		return err
	}

	var preamble bytes.Buffer
	writeHeader(&preamble, g, comments)

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", preamble.Len())
	if _, err = preamble.WriteTo(bw); err != nil {
		return err
	}
	if _, err = lt.WriteTo(bw); err != nil {
		return err
	}

	return bw.Flush()
}

// writeHeader emits comment lines and the problem line. Multi-line comments
// become one "c" line per input line.
func writeHeader(w io.Writer, g *core.Graph, comments []string) {
	for _, c := range comments {
		for _, part := range strings.Split(c, "\n") {
			if part == "" {
				fmt.Fprint(w, "c\n")
				continue
			}
			fmt.Fprintf(w, "c %s\n", part)
		}
	}
	fmt.Fprintf(w, "p %s %d %d\n", FormatEdge, g.NodeCount(), g.EdgeCount())
}

// checkContiguous requires node IDs 0..n-1; DIMACS numbers nodes 1..n.
func checkContiguous(g *core.Graph) error {
	ids := g.Nodes()
	if n := len(ids); n > 0 && ids[n-1] != n-1 {
		return fmt.Errorf("%d nodes, highest id %d: %w", n, ids[n-1], ErrNonContiguousNodes)
	}

	return nil
}
