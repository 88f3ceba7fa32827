// SPDX-License-Identifier: MIT
// Package dimacs_test covers the textual decoder contract.
package dimacs_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/dimacsbench/core"
	"github.com/katalvlaran/dimacsbench/dimacs"
	"github.com/stretchr/testify/require"
)

// collect returns an option that appends diagnostics to *out.
func collect(out *[]dimacs.Diagnostic) dimacs.Option {
	return dimacs.WithDiagnostics(func(d dimacs.Diagnostic) { *out = append(*out, d) })
}

func decodeString(t *testing.T, src string, opts ...dimacs.Option) (*core.Graph, error) {
	t.Helper()
	return dimacs.DecodeText(strings.NewReader(src), opts...)
}

func TestDecodeText_SmallGraph(t *testing.T) {
	t.Parallel()

	g, err := decodeString(t, "p edge 3 2\ne 1 2\ne 2 3\n")
	require.NoError(t, err)
	require.Equal(t, 3, g.NodeCount())
	require.Equal(t, 2, g.EdgeCount())

	// 1-based id 1 is stored as node 0.
	require.True(t, g.HasEdge(0, 1))
	require.True(t, g.HasEdge(2, 1))
	require.False(t, g.HasNode(3))
}

func TestDecodeText_CommentsAnywhere(t *testing.T) {
	t.Parallel()

	src := strings.Join([]string{
		"c some text",
		"p edge 3 2",
		"c some text",
		"e 1 2",
		"c some text",
		"e 2 3",
		"c some text",
	}, "\n")

	var diags []dimacs.Diagnostic
	g, err := decodeString(t, src, collect(&diags))
	require.NoError(t, err)
	require.Equal(t, 3, g.NodeCount())
	require.Equal(t, 2, g.EdgeCount())

	require.Len(t, diags, 4)
	for i, d := range diags {
		require.Equal(t, dimacs.DiagComment, d.Kind)
		require.Equal(t, "c some text", d.Text)
		require.Equal(t, 2*i+1, d.Line)
	}
}

func TestDecodeText_DuplicateEdgesAreNoOps(t *testing.T) {
	t.Parallel()

	g, err := decodeString(t, "p edge 3 2\ne 1 2\ne 2 1\ne 1 2\ne 3 2\n")
	require.NoError(t, err)
	require.Equal(t, 2, g.EdgeCount())
	require.Equal(t, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}}, g.Edges())
}

func TestDecodeText_WindowsLineEndingsAndExtraTokens(t *testing.T) {
	t.Parallel()

	g, err := decodeString(t, "p edge 2 1 trailing\r\ne 1 2 9\r\n")
	require.NoError(t, err)
	require.Equal(t, 1, g.EdgeCount())
}

func TestDecodeText_Diagnostics(t *testing.T) {
	t.Parallel()

	src := "p edge 2 1\n\nx unknown\ne 2 2\np edge 9 9\ne 1 2\n"
	var diags []dimacs.Diagnostic
	g, err := decodeString(t, src, collect(&diags))
	require.NoError(t, err, "first problem line wins; loops and junk are non-fatal")
	require.Equal(t, 2, g.NodeCount())
	require.Equal(t, 1, g.EdgeCount())

	kinds := make([]dimacs.DiagKind, 0, len(diags))
	for _, d := range diags {
		kinds = append(kinds, d.Kind)
	}
	require.Equal(t, []dimacs.DiagKind{
		dimacs.DiagUnrecognized,     // empty line
		dimacs.DiagUnrecognized,     // x unknown
		dimacs.DiagSelfLoop,         // e 2 2
		dimacs.DiagDuplicateProblem, // p edge 9 9
	}, kinds)
	require.Equal(t, 5, diags[3].Line)
}

func TestDecodeText_MalformedLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     string
		wantErr error
		line    string
	}{
		{"wrong format tag", "p col 3 2\n", dimacs.ErrMalformedProblemLine, "line 1"},
		{"missing counts", "p edge 3\n", dimacs.ErrMalformedProblemLine, "line 1"},
		{"non-integer nodes", "p edge x 2\n", dimacs.ErrMalformedProblemLine, "line 1"},
		{"negative edges", "p edge 3 -2\n", dimacs.ErrMalformedProblemLine, "line 1"},
		{"bare p", "c hi\np\n", dimacs.ErrMalformedProblemLine, "line 2"},
		{"missing endpoint", "p edge 2 1\ne 1\n", dimacs.ErrMalformedEdgeLine, "line 2"},
		{"zero endpoint", "p edge 2 1\ne 0 2\n", dimacs.ErrMalformedEdgeLine, "line 2"},
		{"negative endpoint", "p edge 2 1\ne 1 -2\n", dimacs.ErrMalformedEdgeLine, "line 2"},
		{"non-integer endpoint", "p edge 2 1\ne 1 b\n", dimacs.ErrMalformedEdgeLine, "line 2"},
		{"edge before problem", "c x\ne 1 2\np edge 2 1\n", dimacs.ErrMissingProblemLine, "line 2"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := decodeString(t, tc.src)
			require.Nil(t, g)
			require.ErrorIs(t, err, tc.wantErr)
			require.Contains(t, err.Error(), tc.line)
		})
	}
}

func TestDecodeText_MissingProblemLine(t *testing.T) {
	t.Parallel()

	for _, src := range []string{"", "c only comments\nc here\n"} {
		g, err := decodeString(t, src)
		require.Nil(t, g)
		require.ErrorIs(t, err, dimacs.ErrMissingProblemLine)
	}
}

func TestDecodeText_SizeMismatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want dimacs.SizeMismatchError
	}{
		{
			name: "too few edges",
			src:  "p edge 3 3\ne 1 2\ne 2 3\n",
			want: dimacs.SizeMismatchError{ExpectedNodes: 3, ActualNodes: 3, ExpectedEdges: 3, ActualEdges: 2},
		},
		{
			name: "duplicate does not count",
			src:  "p edge 2 2\ne 1 2\ne 2 1\n",
			want: dimacs.SizeMismatchError{ExpectedNodes: 2, ActualNodes: 2, ExpectedEdges: 2, ActualEdges: 1},
		},
		{
			name: "declared isolated node",
			src:  "p edge 4 2\ne 1 2\ne 2 3\n",
			want: dimacs.SizeMismatchError{ExpectedNodes: 4, ActualNodes: 3, ExpectedEdges: 2, ActualEdges: 2},
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := decodeString(t, tc.src)
			require.Nil(t, g)
			require.ErrorIs(t, err, dimacs.ErrGraphSizeMismatch)

			var sm *dimacs.SizeMismatchError
			require.True(t, errors.As(err, &sm))
			require.Equal(t, tc.want, *sm)
		})
	}
}

func TestDecodeText_WithDeclaredNodes(t *testing.T) {
	t.Parallel()

	g, err := decodeString(t, "p edge 4 2\ne 1 2\ne 2 3\n", dimacs.WithDeclaredNodes())
	require.NoError(t, err)
	require.Equal(t, 4, g.NodeCount())
	require.True(t, g.HasNode(3))

	_, err = decodeString(t, "p edge 2 1\ne 1 3\n", dimacs.WithDeclaredNodes())
	require.ErrorIs(t, err, dimacs.ErrMalformedEdgeLine)
}

func TestDecodeText_EndpointBeyondProblemLine(t *testing.T) {
	t.Parallel()

	for _, opts := range [][]dimacs.Option{nil, {dimacs.WithDeclaredNodes()}} {
		g, err := decodeString(t, "p edge 2 1\ne 5 9\n", opts...)
		require.Nil(t, g)
		require.ErrorIs(t, err, dimacs.ErrMalformedEdgeLine)
		require.Contains(t, err.Error(), "line 2")
	}
}

func TestDecodeText_HugeDeclaredCount(t *testing.T) {
	t.Parallel()

	src := "p edge 9223372036854775807 0\n"
	g, err := decodeString(t, src)
	require.Nil(t, g)
	require.ErrorIs(t, err, dimacs.ErrGraphSizeMismatch)

	g, err = decodeString(t, src, dimacs.WithDeclaredNodes())
	require.Nil(t, g)
	require.ErrorIs(t, err, dimacs.ErrMalformedProblemLine)

	over := strconv.Itoa(dimacs.MaxDeclaredNodes + 1)
	_, err = decodeString(t, "p edge "+over+" 0\n", dimacs.WithDeclaredNodes())
	require.ErrorIs(t, err, dimacs.ErrMalformedProblemLine)
}

func TestDecodeLines(t *testing.T) {
	t.Parallel()

	g, err := dimacs.DecodeLines([]string{"c x", "p edge 3 2", "e 1 2", "e 2 3"})
	require.NoError(t, err)
	require.Equal(t, 3, g.NodeCount())

	_, err = dimacs.DecodeLines([]string{"p edge 3 2", "e 1 z"})
	require.ErrorIs(t, err, dimacs.ErrMalformedEdgeLine)
}

func TestClassify(t *testing.T) {
	t.Parallel()

	cases := map[string]dimacs.LineKind{
		"c comment":  dimacs.LineComment,
		"  c":        dimacs.LineComment,
		"p edge 1 0": dimacs.LineProblem,
		"e 1 2":      dimacs.LineEdge,
		"\te\t1\t2":  dimacs.LineEdge,
		"":           dimacs.LineUnrecognized,
		"   ":        dimacs.LineUnrecognized,
		"comment c":  dimacs.LineUnrecognized,
		"n 1 2":      dimacs.LineUnrecognized,
		"edge 1 2":   dimacs.LineUnrecognized,
	}
	for line, want := range cases {
		require.Equal(t, want, dimacs.Classify(line), "Classify(%q)", line)
	}
}

func TestDiagKind_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "comment", dimacs.DiagComment.String())
	require.Equal(t, "unrecognized", dimacs.DiagUnrecognized.String())
	require.Equal(t, "duplicate-problem", dimacs.DiagDuplicateProblem.String())
	require.Equal(t, "self-loop", dimacs.DiagSelfLoop.String())
	require.Equal(t, "trailing-data", dimacs.DiagTrailingData.String())
	require.Equal(t, "unknown", dimacs.DiagKind(99).String())
}
