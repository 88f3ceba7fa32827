// Package dimacsbench loads DIMACS benchmark graphs into memory and
// provides the small toolbox needed to check them: structural statistics,
// traversal, isomorphism testing and independent-set verification.
//
// Packages:
//
//	core/       - undirected simple graph over integer node IDs
//	dimacs/     - textual and bit-packed binary DIMACS decoders and encoders
//	bhoslib/    - BHOSLIB frb-family catalogue and instance loading
//	builder/    - deterministic and seeded random graph constructors
//	bfs/        - breadth-first traversal and connected components
//	algorithms/ - isomorphism, degree sequences, clique/independent-set checks
//	converters/ - gonum and graph6 interop
//	matrix/     - packed lower-triangular adjacency rows
//	resource/   - filesystem loaders resolving benchmark files by name
//
// Quick example:
//
//	g, err := dimacs.DecodeFile("DSJC125.1.col.b")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(g.NodeCount(), g.EdgeCount()) // 125 736
//
// The benchgraph command in cmd/benchgraph wraps these packages for
// inspecting, converting and generating instances from the shell.
package dimacsbench
