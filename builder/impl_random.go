// SPDX-License-Identifier: MIT
// File: impl_random.go
// Role: Seeded random graphs: Erdős–Rényi G(n,p) and uniform G(n,m).

package builder

import (
	"fmt"

	"github.com/katalvlaran/dimacsbench/core"
)

const (
	methodRandomSparse = "RandomSparse"
	methodRandomGnm    = "RandomGnm"
	minRandomNodes     = 1
	probMin            = 0.0
	probMax            = 1.0
)

// RandomSparse builds G(n,p): each pair {i,j}, i < j, is drawn independently
// with probability p in lexicographic order. p of exactly 0 or 1 needs no RNG.
// Complexity: O(n²) draws.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomNodes, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := addNodes(g, cfg, methodRandomSparse, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				take := p == probMax
				if cfg.rng != nil && p > probMin && p < probMax {
					take = cfg.rng.Float64() < p
				}
				if !take {
					continue
				}
				if err := addEdge(g, cfg, methodRandomSparse, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// RandomGnm builds a graph drawn uniformly from those with n nodes and
// exactly m edges. When m exceeds half of n(n-1)/2 the missing edges are
// drawn instead, so the expected number of draws stays O(m).
//
// Errors:
//   - ErrTooFewVertices: n < 1 or m < 0.
//   - ErrTooManyEdges: m > n(n-1)/2.
//   - ErrNeedRandSource: 0 < m < n(n-1)/2 without an RNG.
func RandomGnm(n, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomNodes || m < 0 {
			return fmt.Errorf("%s: n=%d, m=%d: %w", methodRandomGnm, n, m, ErrTooFewVertices)
		}
		maxEdges := n * (n - 1) / 2
		if m > maxEdges {
			return fmt.Errorf("%s: m=%d > %d: %w", methodRandomGnm, m, maxEdges, ErrTooManyEdges)
		}
		if cfg.rng == nil && m > 0 && m < maxEdges {
			return fmt.Errorf("%s: %w", methodRandomGnm, ErrNeedRandSource)
		}
		if err := addNodes(g, cfg, methodRandomGnm, n); err != nil {
			return err
		}

		invert := 2*m > maxEdges
		want := m
		if invert {
			want = maxEdges - m
		}

		// Sampled pairs in draw order; key is i*n+j with i < j.
		picked := make(map[int]struct{}, want)
		order := make([][2]int, 0, want)
		for len(order) < want {
			i, j := cfg.rng.Intn(n), cfg.rng.Intn(n)
			if i == j {
				continue
			}
			if i > j {
				i, j = j, i
			}
			key := i*n + j
			if _, dup := picked[key]; dup {
				continue
			}
			picked[key] = struct{}{}
			order = append(order, [2]int{i, j})
		}

		if !invert {
			for _, pr := range order {
				if err := addEdge(g, cfg, methodRandomGnm, pr[0], pr[1]); err != nil {
					return err
				}
			}
			return nil
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if _, skip := picked[i*n+j]; skip {
					continue
				}
				if err := addEdge(g, cfg, methodRandomGnm, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
