// Package gridtest provides shared grid fixtures and generators for tests
// and benchmarks across the beamsplit packages.
package gridtest

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/beamsplit/grid"
)

// Reference is the published sample grid: 21 splits, 40 paths.
const Reference = `.......S.......
...............
.......^.......
...............
......^.^......
...............
.....^.^.^.....
...............
....^.^...^....
...............
...^.^...^.^...
...............
..^...^.....^..
...............
.^.^.^.^.^...^.
...............
`

// Expected results for Reference.
const (
	ReferenceSplits = 21
	ReferencePaths  = 40
)

// Worked is a small grid whose beam never meets a splitter: 0 splits, 1 path.
const Worked = `S....
.^...
..^..
.....
`

// MustParse parses text into a Grid, failing tb on error.
func MustParse(tb testing.TB, text string, opts ...grid.Option) *grid.Grid {
	tb.Helper()
	g, err := grid.Parse(strings.NewReader(text), opts...)
	if err != nil {
		tb.Fatalf("gridtest: parse fixture: %v", err)
	}
	return g
}

// Random builds a rows×cols grid with the start on row 0 at a random column
// and each cell from row 2 down holding a splitter with probability density.
// Row 1 stays empty, as in the puzzle inputs, so both counting modes see the
// same first splitter. The same rng state yields the same grid.
func Random(rng *rand.Rand, rows, cols int, density float64) *grid.Grid {
	start := grid.Pos(0, rng.Intn(cols))
	var splitters []grid.Position
	for r := 2; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if rng.Float64() < density {
				splitters = append(splitters, grid.Pos(r, c))
			}
		}
	}
	g, err := grid.Build(rows, cols, start, splitters...)
	if err != nil {
		// Every position above is in bounds by construction.
		panic(err)
	}
	return g
}

// Pyramid builds the densest layout the reference puzzle uses: splitters on
// every other row, arranged as a widening triangle under the start column.
// Useful for benchmarks where the path count grows quickly with depth.
func Pyramid(depth int) *grid.Grid {
	cols := 2*depth + 3
	mid := cols / 2
	rows := 2*depth + 2
	var splitters []grid.Position
	for level := 0; level < depth; level++ {
		row := 2 + 2*level
		for c := mid - level; c <= mid+level; c += 2 {
			splitters = append(splitters, grid.Pos(row, c))
		}
	}
	g, err := grid.Build(rows, cols, grid.Pos(0, mid), splitters...)
	if err != nil {
		panic(err)
	}
	return g
}
