package main

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/katalvlaran/dimacsbench/bfs"
	"github.com/katalvlaran/dimacsbench/bhoslib"
	"github.com/katalvlaran/dimacsbench/builder"
	"github.com/katalvlaran/dimacsbench/core"
	"github.com/katalvlaran/dimacsbench/dimacs"
	"github.com/katalvlaran/dimacsbench/resource"
)

// decodeOpts maps configuration onto decoder options.
func (e *env) decodeOpts() []dimacs.Option {
	opts := []dimacs.Option{dimacs.WithLogger(e.log)}
	if e.cfg.DeclaredNodes {
		opts = append(opts, dimacs.WithDeclaredNodes())
	}

	return opts
}

func newFlags(name string, e *env) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)

	return fs
}

func cmdInfo(e *env, args []string) error {
	fs := newFlags("info", e)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: info <file>", errUsage)
	}
	path := fs.Arg(0)

	g, err := readGraph(path, e.decodeOpts())
	if err != nil {
		return err
	}
	format := "text"
	if dimacs.IsBinaryName(path) {
		format = "binary"
	}

	return printStats(e, path+" ("+format+")", g)
}

func cmdConvert(e *env, args []string) error {
	fs := newFlags("convert", e)
	comment := fs.String("comment", "", "comment line written into the output")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("%w: convert [-comment c] <in> <out>", errUsage)
	}
	in, out := fs.Arg(0), fs.Arg(1)

	g, err := readGraph(in, e.decodeOpts())
	if err != nil {
		return err
	}
	var comments []string
	if *comment != "" {
		comments = append(comments, *comment)
	}
	if err = writeGraph(out, g, comments); err != nil {
		return err
	}
	e.log.Info().Str("in", in).Str("out", out).Int("nodes", g.NodeCount()).Int("edges", g.EdgeCount()).Msg("converted")

	return nil
}

func cmdGenerate(e *env, args []string) error {
	fs := newFlags("generate", e)
	kind := fs.String("kind", "gnm", "complete|cycle|path|star|wheel|empty|grid|bipartite|gnp|gnm")
	n := fs.Int("n", 10, "node count (rows for grid, left side for bipartite)")
	m := fs.Int("m", 0, "edge count for gnm (cols for grid, right side for bipartite)")
	p := fs.Float64("p", 0.5, "edge probability for gnp")
	seed := fs.Int64("seed", 1, "random seed")
	out := fs.String("o", "", "output file; stdout (text) when empty")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	var ctor builder.Constructor
	switch *kind {
	case "complete":
		ctor = builder.Complete(*n)
	case "cycle":
		ctor = builder.Cycle(*n)
	case "path":
		ctor = builder.Path(*n)
	case "star":
		ctor = builder.Star(*n)
	case "wheel":
		ctor = builder.Wheel(*n)
	case "empty":
		ctor = builder.Empty(*n)
	case "grid":
		ctor = builder.Grid(*n, *m)
	case "bipartite":
		ctor = builder.CompleteBipartite(*n, *m)
	case "gnp":
		ctor = builder.RandomSparse(*n, *p)
	case "gnm":
		ctor = builder.RandomGnm(*n, *m)
	default:
		return fmt.Errorf("%w: unknown kind %q", errUsage, *kind)
	}

	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(*seed)}, ctor)
	if err != nil {
		return err
	}
	comment := fmt.Sprintf("benchgraph generate -kind %s -n %d -m %d -p %g -seed %d", *kind, *n, *m, *p, *seed)
	if *out == "" {
		return dimacs.EncodeText(e.stdout, g, comment)
	}
	if err = writeGraph(*out, g, []string{comment}); err != nil {
		return err
	}
	e.log.Info().Str("out", *out).Int("nodes", g.NodeCount()).Int("edges", g.EdgeCount()).Msg("generated")

	return nil
}

func cmdBhoslib(e *env, args []string) error {
	fs := newFlags("bhoslib", e)
	clique := fs.Bool("clique", false, "return the maximum-clique complement")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("%w: bhoslib [-clique] <family> <instance 1..%d>", errUsage, bhoslib.InstancesPerFamily)
	}
	fam, err := bhoslib.Lookup(fs.Arg(0))
	if err != nil {
		return err
	}
	instance, err := strconv.Atoi(fs.Arg(1))
	if err != nil {
		return fmt.Errorf("%w: instance %q is not a number", errUsage, fs.Arg(1))
	}

	lib := bhoslib.New(resource.NewDirLoader(e.cfg.DataRoot),
		bhoslib.WithLogger(e.log), bhoslib.WithDecodeOptions(e.decodeOpts()...))

	var g *core.Graph
	problem := "maximum independent set"
	if *clique {
		problem = "maximum clique"
		g, err = lib.MaximumClique(fam, instance)
	} else {
		g, err = lib.MaximumIndependentSet(fam, instance)
	}
	if err != nil {
		return err
	}
	if err = printStats(e, fmt.Sprintf("%s (%s)", fam.Filename(instance), problem), g); err != nil {
		return err
	}
	_, err = fmt.Fprintf(e.stdout, "optimum:    %d\n", fam.SolutionSize())

	return err
}

// printStats writes the summary shared by info and bhoslib.
func printStats(e *env, title string, g *core.Graph) error {
	st := g.Stats()
	comps, err := bfs.Components(g)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(e.stdout,
		"%s\nnodes:      %d\nedges:      %d\ndensity:    %.4f\ndegree:     %d..%d\nisolated:   %d\ncomponents: %d\n",
		title, st.NodeCount, st.EdgeCount, st.Density, st.MinDegree, st.MaxDegree, st.IsolatedNodes, len(comps))

	return err
}
