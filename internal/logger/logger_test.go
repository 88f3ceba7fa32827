package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestParseLevel_AllBranches(t *testing.T) {
	cases := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
		{"WARN", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{" off ", zerolog.Disabled},
		{"nonsense", zerolog.InfoLevel},
	}
	for _, c := range cases {
		require.Equal(t, c.want, ParseLevel(c.in), "ParseLevel(%q)", c.in)
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: "debug", Format: "json", Component: "dimacs", Writer: &buf})
	l.Debug().Int("line", 3).Msg("comment")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "dimacs", rec["component"])
	require.Equal(t, "comment", rec["message"])
	require.EqualValues(t, 3, rec["line"])
}

func TestNew_ConsoleAndLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: "warn", Format: "console", Writer: &buf})
	l.Info().Msg("hidden")
	l.Warn().Msg("shown")

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.True(t, strings.Contains(out, "shown"))
}

func TestNamed(t *testing.T) {
	var buf bytes.Buffer
	base := New(Options{Format: "json", Writer: &buf})
	nl := Named(base, "bhoslib")
	nl.Info().Msg("x")
	require.Contains(t, buf.String(), `"component":"bhoslib"`)

	buf.Reset()
	same := Named(base, "")
	same.Info().Msg("y")
	require.NotContains(t, buf.String(), "component")
}

func TestNamed_ServiceAndComponentOnce(t *testing.T) {
	var buf bytes.Buffer
	l := Named(New(Options{Format: "json", Service: "benchgraph", Writer: &buf}), "info")
	l.Info().Msg("z")

	out := buf.String()
	require.Equal(t, 1, strings.Count(out, `"component"`))
	require.Contains(t, out, `"component":"info"`)
	require.Contains(t, out, `"service":"benchgraph"`)
}
