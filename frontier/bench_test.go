package frontier_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/beamsplit/frontier"
	"github.com/katalvlaran/beamsplit/internal/gridtest"
)

// BenchmarkCountSplits_Pyramid measures a fully populated triangle of
// splitters; the frontier widens by one head every two rows.
func BenchmarkCountSplits_Pyramid(b *testing.B) {
	g := gridtest.Pyramid(200)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = frontier.CountSplits(g)
	}
}

// BenchmarkCountSplits_Random compares sequential and parallel rounds on a
// wide random grid.
func BenchmarkCountSplits_Random(b *testing.B) {
	g := gridtest.Random(rand.New(rand.NewSource(1)), 400, 2000, 0.2)

	for _, workers := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = frontier.CountSplits(g, frontier.WithWorkers(workers))
			}
		})
	}
}
