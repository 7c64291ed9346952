// Package frontier counts beam split events by advancing a deduplicated set
// of beam heads one row per round until every fragment has left the grid.
package frontier

import (
	"fmt"
	"slices"

	"golang.org/x/exp/maps"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/beamsplit/grid"
)

// walker encapsulates mutable simulation state.
type walker struct {
	grid  *grid.Grid
	opts  Options
	heads map[grid.Position]struct{}
	res   *Result
}

// roundOutcome is what one worker reports for its share of a round.
type roundOutcome struct {
	next      []grid.Position
	splitters []grid.Position
	exits     int
}

// CountSplits simulates the beam through g and returns the split count
// together with round statistics.
//
// The frontier is seeded one row below the start marker. In each round every
// head of the snapshot is evaluated with Step; successors are merged into a
// set, so fragments landing on the same cell collapse into one.
// Returns ErrGridNil, ErrOptionViolation, ErrRoundLimit, a context error or
// a wrapped OnRound error. On error the partial Result is still returned.
//
// Complexity: O(R × W) time for R rows and frontier width W, O(W) memory.
func CountSplits(g *grid.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker{
		grid:  g,
		opts:  o,
		heads: map[grid.Position]struct{}{g.Start().Down(): {}},
		res:   &Result{},
	}
	return w.res, w.loop()
}

// Step advances a single head h by one row on g.
//
//  1. h outside the grid → Exited.
//  2. next = h.Down() is not a splitter → Advanced to next.
//  3. next is a splitter → Split into next.Left() and next.Right().
//
// Complexity: O(1).
func Step(g *grid.Grid, h grid.Position) Transition {
	if g.Outside(h) {
		return Transition{Kind: Exited}
	}
	next := h.Down()
	if !g.IsSplitter(next) {
		return Transition{Kind: Advanced, heads: [2]grid.Position{next}, n: 1}
	}
	return Transition{
		Kind:     Split,
		Splitter: next,
		heads:    [2]grid.Position{next.Left(), next.Right()},
		n:        2,
	}
}

// loop runs rounds until the frontier is empty, the limit is hit,
// or the context is cancelled.
func (w *walker) loop() error {
	for round := 0; len(w.heads) > 0; round++ {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}
		if w.opts.MaxRounds > 0 && round >= w.opts.MaxRounds {
			return fmt.Errorf("%w: %d rounds, %d heads still active",
				ErrRoundLimit, round, len(w.heads))
		}

		snapshot := maps.Keys(w.heads)
		slices.SortFunc(snapshot, grid.Position.Compare)
		if len(snapshot) > w.res.PeakWidth {
			w.res.PeakWidth = len(snapshot)
		}
		if err := w.opts.OnRound(round, snapshot); err != nil {
			return fmt.Errorf("frontier: OnRound error at round %d: %w", round, err)
		}

		outcomes, err := w.evaluate(snapshot)
		if err != nil {
			return err
		}
		w.merge(outcomes)
		w.res.Rounds++
	}
	return nil
}

// evaluate resolves every head in snapshot, sequentially or split into
// contiguous chunks across workers. Outcomes are returned in chunk order.
func (w *walker) evaluate(snapshot []grid.Position) ([]roundOutcome, error) {
	workers := min(w.opts.Workers, len(snapshot))
	if workers <= 1 {
		return []roundOutcome{w.evaluateChunk(snapshot)}, nil
	}

	size := (len(snapshot) + workers - 1) / workers
	outcomes := make([]roundOutcome, 0, workers)
	for lo := 0; lo < len(snapshot); lo += size {
		outcomes = append(outcomes, roundOutcome{})
	}

	eg, ctx := errgroup.WithContext(w.opts.Ctx)
	for i := range outcomes {
		lo := i * size
		hi := min(lo+size, len(snapshot))
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			outcomes[i] = w.evaluateChunk(snapshot[lo:hi])
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

// evaluateChunk applies Step to each head. It only reads the grid, so
// chunks may run concurrently.
func (w *walker) evaluateChunk(heads []grid.Position) roundOutcome {
	out := roundOutcome{next: make([]grid.Position, 0, len(heads))}
	for _, h := range heads {
		t := Step(w.grid, h)
		switch t.Kind {
		case Exited:
			out.exits++
		case Split:
			out.splitters = append(out.splitters, t.Splitter)
		}
		out.next = append(out.next, t.Successors()...)
	}
	return out
}

// merge replaces the frontier with the union of all successors and
// accounts splits and exits.
func (w *walker) merge(outcomes []roundOutcome) {
	next := make(map[grid.Position]struct{}, len(w.heads)+len(w.heads)/2)
	for _, out := range outcomes {
		for _, p := range out.next {
			next[p] = struct{}{}
		}
		for _, s := range out.splitters {
			w.res.Splits++
			w.opts.OnSplit(s)
		}
		w.res.Exits += out.exits
	}
	w.heads = next
}
