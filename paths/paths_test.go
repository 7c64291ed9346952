package paths_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/beamsplit/frontier"
	"github.com/katalvlaran/beamsplit/grid"
	"github.com/katalvlaran/beamsplit/internal/gridtest"
	"github.com/katalvlaran/beamsplit/paths"
)

// bruteForce re-expands every branch without memoization.
func bruteForce(g *grid.Grid, pos grid.Position) uint64 {
	out := paths.NextSplit(g, pos)
	if out.Exited {
		return 1
	}
	return bruteForce(g, out.Left) + bruteForce(g, out.Right)
}

// bothModes runs Count recursively and on the explicit stack.
var bothModes = []struct {
	name string
	opts []paths.Option
}{
	{"Recursive", nil},
	{"ExplicitStack", []paths.Option{paths.WithExplicitStack()}},
}

func TestCount_NilGrid(t *testing.T) {
	res, err := paths.Count(nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, paths.ErrGridNil)
}

func TestCount_Reference(t *testing.T) {
	g := gridtest.MustParse(t, gridtest.Reference)
	for _, m := range bothModes {
		t.Run(m.name, func(t *testing.T) {
			res, err := paths.Count(g, m.opts...)
			require.NoError(t, err)
			want := &paths.Result{Paths: gridtest.ReferencePaths, Memoized: 33, Resolutions: 34}
			if diff := cmp.Diff(want, res); diff != "" {
				t.Errorf("Count mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCount_Worked(t *testing.T) {
	g := gridtest.MustParse(t, gridtest.Worked)
	res, err := paths.Count(g)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), res.Paths)
	assert.Equal(t, 0, res.Memoized)
	assert.Equal(t, 1, res.Resolutions)
}

// TestCount_Merge counts paths through a grid where two branches share the
// cell (4,2): each of them contributes its own two paths.
func TestCount_Merge(t *testing.T) {
	g := gridtest.MustParse(t, "..S..\n.....\n..^..\n.....\n.^.^.\n.....\n..^..\n.....\n")
	for _, m := range bothModes {
		t.Run(m.name, func(t *testing.T) {
			res, err := paths.Count(g, m.opts...)
			require.NoError(t, err)
			assert.Equal(t, uint64(6), res.Paths)
			assert.Equal(t, 7, res.Memoized)
			assert.Equal(t, 8, res.Resolutions, "(4,2) is scanned once")
		})
	}
}

// TestCount_SplitterBelowStart: unlike the frontier seed, path counting
// scans from the start itself and meets the splitter right below it.
func TestCount_SplitterBelowStart(t *testing.T) {
	g := gridtest.MustParse(t, ".S.\n.^.\n...\n")
	res, err := paths.Count(g)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), res.Paths)
}

// TestCount_AdjacentSplitters checks that branches landing on splitter
// cells keep moving down instead of bouncing sideways.
func TestCount_AdjacentSplitters(t *testing.T) {
	g := gridtest.MustParse(t, "S^\n^^\n")
	for _, m := range bothModes {
		t.Run(m.name, func(t *testing.T) {
			res, err := paths.Count(g, m.opts...)
			require.NoError(t, err)
			assert.Equal(t, uint64(2), res.Paths)
		})
	}
}

func TestCount_NoSplitters(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 20; i++ {
		g := gridtest.Random(rng, 1+rng.Intn(12), 1+rng.Intn(12), 0)
		res, err := paths.Count(g)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), res.Paths)
	}
}

// TestCount_MatchesBruteForce is the differential test: memoized counting
// must agree with plain re-expansion on small random grids.
func TestCount_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	for i := 0; i < 200; i++ {
		g := gridtest.Random(rng, 1+rng.Intn(10), 1+rng.Intn(10), rng.Float64()*0.6)
		want := bruteForce(g, g.Start())

		for _, m := range bothModes {
			res, err := paths.Count(g, m.opts...)
			require.NoError(t, err)
			assert.Equal(t, want, res.Paths, "%s on grid:\n%s", m.name, g)
			assert.GreaterOrEqual(t, res.Paths, uint64(1))
		}
	}
}

// TestCount_HooksAgree checks both evaluation strategies store the same
// memo entries in the same order.
func TestCount_HooksAgree(t *testing.T) {
	type entry struct {
		Pos   grid.Position
		Paths uint64
	}
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 30; i++ {
		g := gridtest.Random(rng, 5+rng.Intn(25), 5+rng.Intn(25), 0.3)

		var rec, stk []entry
		r1, err := paths.Count(g, paths.WithOnResolve(func(p grid.Position, n uint64) {
			rec = append(rec, entry{p, n})
		}))
		require.NoError(t, err)
		r2, err := paths.Count(g, paths.WithExplicitStack(), paths.WithOnResolve(func(p grid.Position, n uint64) {
			stk = append(stk, entry{p, n})
		}))
		require.NoError(t, err)

		if diff := cmp.Diff(r1, r2); diff != "" {
			t.Fatalf("results differ (-recursive +stack):\n%s", diff)
		}
		if diff := cmp.Diff(rec, stk); diff != "" {
			t.Fatalf("hook order differs (-recursive +stack):\n%s", diff)
		}
		assert.Len(t, rec, r1.Memoized)
	}
}

// TestCount_SplitsMatchFrontier cross-checks the two modes: with row 1
// empty, the set of splitters reachable by path counting is exactly the set
// the frontier hits.
func TestCount_SplitsMatchFrontier(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 50; i++ {
		g := gridtest.Random(rng, 3+rng.Intn(20), 3+rng.Intn(20), 0.3)

		reached := map[grid.Position]bool{}
		var walk func(p grid.Position)
		seen := map[grid.Position]bool{}
		walk = func(p grid.Position) {
			out := paths.NextSplit(g, p)
			if out.Exited {
				return
			}
			reached[out.Splitter] = true
			for _, b := range []grid.Position{out.Left, out.Right} {
				if !seen[b] {
					seen[b] = true
					walk(b)
				}
			}
		}
		walk(g.Start())

		res, err := frontier.CountSplits(g)
		require.NoError(t, err)
		assert.Equal(t, res.Splits, len(reached), "grid:\n%s", g)
	}
}

func TestNextSplit(t *testing.T) {
	g, err := grid.Build(6, 5, grid.Pos(0, 2), grid.Pos(3, 2), grid.Pos(5, 4))
	require.NoError(t, err)

	out := paths.NextSplit(g, g.Start())
	assert.Equal(t, paths.Outcome{Splitter: grid.Pos(3, 2), Left: grid.Pos(3, 1), Right: grid.Pos(3, 3)}, out)
	assert.Equal(t, out, paths.NextSplit(g, g.Start()), "pure function of position")

	assert.True(t, paths.NextSplit(g, grid.Pos(3, 1)).Exited)
	assert.True(t, paths.NextSplit(g, grid.Pos(5, 2)).Exited, "last row exits at once")
	assert.True(t, paths.NextSplit(g, grid.Pos(3, 5)).Exited, "right of the grid exits")
	assert.True(t, paths.NextSplit(g, grid.Pos(3, -1)).Exited, "left of the grid falls out the bottom")
	assert.Equal(t, grid.Pos(5, 4), paths.NextSplit(g, grid.Pos(1, 4)).Splitter)
}

// TestNextSplit_Pure resolves every cell of a random grid twice.
func TestNextSplit_Pure(t *testing.T) {
	g := gridtest.Random(rand.New(rand.NewSource(8)), 15, 15, 0.4)
	for r := -1; r <= g.Rows(); r++ {
		for c := -1; c <= g.Cols(); c++ {
			p := grid.Pos(r, c)
			assert.Equal(t, paths.NextSplit(g, p), paths.NextSplit(g, p), "NextSplit(%v)", p)
		}
	}
}

func TestCount_Overflow(t *testing.T) {
	fits := gridtest.Pyramid(63)
	res, err := paths.Count(fits)
	require.NoError(t, err)
	assert.Equal(t, uint64(1)<<63, res.Paths)

	for _, m := range bothModes {
		t.Run(m.name, func(t *testing.T) {
			_, err := paths.Count(gridtest.Pyramid(64), m.opts...)
			assert.ErrorIs(t, err, paths.ErrOverflow)
		})
	}
}

func TestCount_Cancelled(t *testing.T) {
	g := gridtest.MustParse(t, gridtest.Reference)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, m := range bothModes {
		t.Run(m.name, func(t *testing.T) {
			_, err := paths.Count(g, append(m.opts, paths.WithContext(ctx))...)
			assert.ErrorIs(t, err, context.Canceled)
		})
	}
}

// TestCount_MemoIsPerCall runs Count twice; a shared cache would report
// fewer resolutions on the second call.
func TestCount_MemoIsPerCall(t *testing.T) {
	g := gridtest.MustParse(t, gridtest.Reference)
	first, err := paths.Count(g)
	require.NoError(t, err)
	second, err := paths.Count(g)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
