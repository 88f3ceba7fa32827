package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/dimacsbench/converters"
	"github.com/katalvlaran/dimacsbench/core"
	"github.com/katalvlaran/dimacsbench/dimacs"
)

// graph6Suffix selects graph6 output in convert and generate.
const graph6Suffix = ".g6"

// readGraph decodes path by suffix: ".g6" through gonum's graph6 decoder,
// everything else through the DIMACS dispatcher.
func readGraph(path string, opts []dimacs.Option) (*core.Graph, error) {
	if strings.HasSuffix(path, graph6Suffix) {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return converters.FromGraph6(strings.TrimSpace(string(raw)))
	}

	return dimacs.DecodeFile(path, opts...)
}

// writeGraph encodes g to path by suffix: ".b" binary DIMACS, ".g6" graph6,
// anything else textual DIMACS.
func writeGraph(path string, g *core.Graph, comments []string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return encodeTo(f, path, g, comments)
}

func encodeTo(w io.Writer, name string, g *core.Graph, comments []string) error {
	switch {
	case dimacs.IsBinaryName(name):
		return dimacs.EncodeBinary(w, g, comments...)
	case strings.HasSuffix(name, graph6Suffix):
		bw := bufio.NewWriter(w)
		if _, err := fmt.Fprintln(bw, converters.ToGraph6(g)); err != nil {
			return err
		}
		return bw.Flush()
	default:
		return dimacs.EncodeText(w, g, comments...)
	}
}
