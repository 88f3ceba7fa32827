// Package bhoslib looks up BHOSLIB benchmark instances ("frbN-K-i.mis").
//
// Each family frbN-K is generated from model RB with N variables of domain
// size K: N·K nodes arranged as N cliques of K, with a planted independent
// set of size N. Instances live under "bhoslib/frbN-K-mis/frbN-K-i.mis"
// relative to the loader root and are decoded with the dimacs package.
//
// A maximum-clique instance is the complement of the matching
// maximum-independent-set instance.
package bhoslib
