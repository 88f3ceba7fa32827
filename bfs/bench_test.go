package bfs_test

import (
	"testing"

	"github.com/katalvlaran/dimacsbench/bfs"
	"github.com/katalvlaran/dimacsbench/builder"
)

func BenchmarkBFS_Gnm(b *testing.B) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomGnm(2000, 20000))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = bfs.BFS(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkComponents_Gnm(b *testing.B) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomGnm(2000, 2000))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = bfs.Components(g); err != nil {
			b.Fatal(err)
		}
	}
}
