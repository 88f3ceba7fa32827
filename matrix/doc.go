// Package matrix offers the packed lower-triangular adjacency representation
// used by the binary DIMACS graph format.
//
// For nodes 0..n-1 the lower triangle (including the diagonal) is stored row by
// row. Row i covers columns 0..i, so it needs i+1 bits and occupies
//
//	RowWidth(i) = ceil((i+1)/8)
//
// bytes. Bits are read most-significant first: column j of a row lives in
// byte j/8 under mask 0x80>>(j%8). Bits past column i in the last byte of a
// row are padding and always zero when written by this package.
//
// The width is derived from i for every row rather than carried as a running
// counter, so the row boundaries at i = 8, 16, 24, ... are a pure function.
package matrix
