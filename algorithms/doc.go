// Package algorithms implements whole-graph checks on core.Graph used to
// validate decoded benchmark instances.
//
//   - Isomorphism
//     – Isomorphic / FindIsomorphism: colour refinement followed by
//     backtracking over refined classes, with a labelled-equality fast path.
//
//   - Vertex sets
//     – IsIndependentSet, IsClique, DegreeSequence.
//
// All functions accept *core.Graph and return simple Go types.
package algorithms
