// SPDX-License-Identifier: MIT
// File: lower_triangle.go
// Role: Packed lower-triangular bit matrix plus the row-level helpers shared
//       with the streaming binary decoder.

package matrix

import (
	"fmt"
	"io"

	"github.com/katalvlaran/dimacsbench/core"
)

// RowWidth returns the number of bytes holding row i: ceil((i+1)/8).
// Complexity: O(1).
func RowWidth(i int) int {
	return i/8 + 1
}

// RowBit reports whether column j is set in a packed row.
// The caller guarantees j < 8*len(row).
func RowBit(row []byte, j int) bool {
	return row[j>>3]&(0x80>>(uint(j)&7)) != 0
}

// rowOffset returns the byte offset of row i inside the packed block:
// the sum of RowWidth(k) for k < i.
func rowOffset(i int) int {
	full := i / 8 // complete groups of 8 rows; group g has width g+1
	rem := i % 8

	return 8*full*(full+1)/2 + rem*(full+1)
}

// BlockSize returns the byte length of the packed block for n rows.
func BlockSize(n int) int {
	if n <= 0 {
		return 0
	}

	return rowOffset(n)
}

// LowerTriangle is the packed lower triangle of an n×n symmetric 0/1 matrix
// with a zero diagonal.
type LowerTriangle struct {
	n    int
	data []byte
}

// New returns an all-zero LowerTriangle over n nodes. Negative n is treated as 0.
func New(n int) *LowerTriangle {
	if n < 0 {
		n = 0
	}

	return &LowerTriangle{n: n, data: make([]byte, BlockSize(n))}
}

// FromGraph packs the adjacency of g. The matrix spans nodes 0..max(ID), so
// gaps in the ID range become all-zero rows.
//
// Errors:
//   - ErrGraphNil: if g is nil.
//
// Complexity: O(V + E) plus O(n²/8) allocation.
func FromGraph(g *core.Graph) (*LowerTriangle, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := 0
	if ids := g.Nodes(); len(ids) > 0 {
		n = ids[len(ids)-1] + 1
	}
	lt := New(n)
	for _, e := range g.Edges() {
		if err := lt.Set(e.V, e.U); err != nil {
			return nil, err
		}
	}

	return lt, nil
}

// Size returns the node count n.
func (lt *LowerTriangle) Size() int { return lt.n }

// Set marks {i,j} adjacent. Order of i and j does not matter.
//
// Errors:
//   - ErrOutOfRange: if either index is outside 0..n-1.
//   - ErrDiagonal: if i == j.
func (lt *LowerTriangle) Set(i, j int) error {
	if i < 0 || j < 0 || i >= lt.n || j >= lt.n {
		return fmt.Errorf("set (%d,%d) in %d×%d: %w", i, j, lt.n, lt.n, ErrOutOfRange)
	}
	if i == j {
		return ErrDiagonal
	}
	if j > i {
		i, j = j, i
	}
	lt.data[rowOffset(i)+j>>3] |= 0x80 >> (uint(j) & 7)

	return nil
}

// Has reports whether {i,j} is set. Out-of-range pairs report false.
func (lt *LowerTriangle) Has(i, j int) bool {
	if i < 0 || j < 0 || i >= lt.n || j >= lt.n {
		return false
	}
	if j > i {
		i, j = j, i
	}

	return RowBit(lt.Row(i), j)
}

// Row returns the packed bytes of row i (aliasing internal storage), or nil
// when i is out of range.
func (lt *LowerTriangle) Row(i int) []byte {
	if i < 0 || i >= lt.n {
		return nil
	}
	off := rowOffset(i)

	return lt.data[off : off+RowWidth(i)]
}

// Bytes returns the whole packed block (aliasing internal storage).
func (lt *LowerTriangle) Bytes() []byte { return lt.data }

// WriteTo writes the packed block to w.
func (lt *LowerTriangle) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(lt.data)

	return int64(n), err
}

// ToGraph unpacks the matrix into a fresh graph holding exactly the nodes
// that have at least one neighbour.
func (lt *LowerTriangle) ToGraph() *core.Graph {
	g := core.NewGraph()
	for i := 1; i < lt.n; i++ {
		row := lt.Row(i)
		for j := 0; j < i; j++ {
			if RowBit(row, j) {
				_, _ = g.AddEdge(i, j)
			}
		}
	}

	return g
}
