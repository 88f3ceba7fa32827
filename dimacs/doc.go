// Package dimacs decodes and encodes undirected graphs in the DIMACS graph
// exchange formats used by maximum clique / independent set benchmarks.
//
// Two encodings are supported:
//
//   - Textual (".col", ".clq", ".mis", ...): one record per line,
//     classified by its first token:
//
//     c <free text>      comment, reported as a diagnostic and ignored
//     p edge <N> <M>     problem line: N nodes, M edges; exactly one, before any edge
//     e <U> <V>          edge between 1-based nodes U and V
//
//   - Binary (".b"): a decimal preamble length L on the first line, then L
//     bytes of preamble (comment and problem lines), then the lower triangle
//     of the adjacency matrix packed row by row. Row i spans
//     matrix.RowWidth(i) = ceil((i+1)/8) bytes, bits most-significant first,
//     bit j meaning "i is adjacent to j" for j in 0..i.
//
// Node IDs are converted to 0-based on the way in and back to 1-based on the
// way out. After the whole input is consumed, the decoded node and edge
// counts are checked against the problem line; a difference is reported as a
// *SizeMismatchError. No partial graph is returned on error.
//
// Edge endpoints above the declared node count N are rejected with
// ErrMalformedEdgeLine, so node IDs always lie in 0..N-1. By default a node
// exists only if some edge references it, so a declared but isolated node
// makes the size check fail. WithDeclaredNodes adds every node 0..N-1
// instead, for N up to MaxDeclaredNodes.
//
// Comments, unrecognized lines and similar non-fatal findings go through a
// side channel: the WithDiagnostics callback and the zerolog logger set with
// WithLogger. They never change the decoded graph.
//
// Every decode call owns its state; the package holds no mutable globals and
// may be used from many goroutines at once.
package dimacs
