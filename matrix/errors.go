// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.

package matrix

import "errors"

var (
	// ErrOutOfRange indicates that a row or column index is outside 0..n-1.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDiagonal indicates an attempt to set a diagonal entry (self-adjacency).
	ErrDiagonal = errors.New("matrix: diagonal entry not allowed")

	// ErrGraphNil indicates that a nil *core.Graph was passed into an adapter.
	ErrGraphNil = errors.New("matrix: graph is nil")
)
