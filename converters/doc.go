// Package converters provides two-way adapters between core.Graph and
// gonum/graph, plus graph6 string encoding through gonum's encoder.
//
// Node IDs map one to one (int <-> int64). graph6 relabels nodes to 0..n-1
// in ascending ID order, so only contiguous graphs survive a graph6 round
// trip with their labels intact.
package converters
