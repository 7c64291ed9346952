// Package paths counts the distinct terminal paths a beam can take through a
// grid. Each split doubles the candidate paths, so the recursion memoizes the
// count reachable from every branch position and collapses the exponential
// tree into one evaluation per distinct position.
//
// Complexity:
//
//   - Time:   O(B × R) for B distinct branch positions and R rows scanned per resolution.
//   - Memory: O(B) for the memo table, plus O(R) stack depth.
//
// Errors:
//
//   - ErrGridNil    if g is nil.
//   - ErrOverflow   if the count does not fit in a uint64.
//   - ctx.Err()     if the context is done.
package paths

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/beamsplit/grid"
)

// counter encapsulates state during one Count call. The memo table lives
// exactly as long as the counter.
type counter struct {
	grid *grid.Grid
	opts Options
	memo map[grid.Position]uint64
	res  *Result
}

// Count returns the number of distinct paths from g.Start() to any exit.
// The search starts at the start cell itself, without the one-row offset
// frontier.CountSplits applies to its seed.
func Count(g *grid.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	c := &counter{
		grid: g,
		opts: o,
		memo: make(map[grid.Position]uint64, g.NumSplitters()*2),
		res:  &Result{},
	}

	var (
		n   uint64
		err error
	)
	if o.ExplicitStack {
		n, err = c.iterate(g.Start())
	} else {
		n, err = c.countFrom(g.Start())
	}
	if err != nil {
		return nil, err
	}
	c.res.Paths = n
	c.res.Memoized = len(c.memo)

	return c.res, nil
}

// NextSplit scans down the column from pos, starting on the row below it,
// until the beam leaves the grid or meets a splitter. A branch placed on a
// splitter cell passes through it, as in frontier.Step, so every scan makes
// progress and adjacent splitters cannot ping-pong a beam.
// NextSplit is a pure function of (g, pos).
// Complexity: O(R) for R rows below pos.
func NextSplit(g *grid.Grid, pos grid.Position) Outcome {
	for p := pos.Down(); ; p = p.Down() {
		if g.Outside(p) {
			return Outcome{Exited: true}
		}
		if g.IsSplitter(p) {
			return Outcome{Splitter: p, Left: p.Left(), Right: p.Right()}
		}
	}
}

// resolve honors cancellation and counts the scan.
func (c *counter) resolve(pos grid.Position) (Outcome, error) {
	select {
	case <-c.opts.Ctx.Done():
		return Outcome{}, c.opts.Ctx.Err()
	default:
	}
	c.res.Resolutions++

	return NextSplit(c.grid, pos), nil
}

// countFrom returns the number of paths from pos: 1 if the beam exits,
// otherwise the sum over both branches.
func (c *counter) countFrom(pos grid.Position) (uint64, error) {
	out, err := c.resolve(pos)
	if err != nil {
		return 0, err
	}
	if out.Exited {
		return 1, nil
	}

	left, err := c.branch(out.Left)
	if err != nil {
		return 0, err
	}
	right, err := c.branch(out.Right)
	if err != nil {
		return 0, err
	}

	return add(left, right, out.Splitter)
}

// branch looks pos up in the memo table and recurses only on a miss.
func (c *counter) branch(pos grid.Position) (uint64, error) {
	if n, ok := c.memo[pos]; ok {
		return n, nil
	}
	n, err := c.countFrom(pos)
	if err != nil {
		return 0, err
	}
	c.store(pos, n)

	return n, nil
}

// store records n for pos and fires the post-order hook.
func (c *counter) store(pos grid.Position, n uint64) {
	c.memo[pos] = n
	if c.opts.OnResolve != nil {
		c.opts.OnResolve(pos, n)
	}
}

// frame is one pending split on the explicit stack. stage counts how many
// of the two branches have been folded into sum.
type frame struct {
	pos     grid.Position
	out     Outcome
	stage   int
	sum     uint64
	memoize bool
}

// iterate evaluates the same recursion as countFrom on an explicit stack.
// Branches are visited left before right and memo entries are stored in the
// same post-order, so hooks observe identical sequences.
func (c *counter) iterate(start grid.Position) (uint64, error) {
	var stack []frame

	// open resolves pos. An exit is returned immediately (done = true);
	// a split is pushed as a new frame.
	open := func(pos grid.Position, memoize bool) (n uint64, done bool, err error) {
		out, err := c.resolve(pos)
		if err != nil {
			return 0, false, err
		}
		if out.Exited {
			if memoize {
				c.store(pos, 1)
			}
			return 1, true, nil
		}
		stack = append(stack, frame{pos: pos, out: out, memoize: memoize})
		return 0, false, nil
	}

	n, done, err := open(start, false)
	if err != nil || done {
		return n, err
	}

	for len(stack) > 0 {
		top := len(stack) - 1
		if stack[top].stage < 2 {
			b := stack[top].out.Left
			if stack[top].stage == 1 {
				b = stack[top].out.Right
			}
			stack[top].stage++

			if m, ok := c.memo[b]; ok {
				if stack[top].sum, err = add(stack[top].sum, m, stack[top].out.Splitter); err != nil {
					return 0, err
				}
				continue
			}
			m, done, err := open(b, true)
			if err != nil {
				return 0, err
			}
			if done {
				if stack[top].sum, err = add(stack[top].sum, m, stack[top].out.Splitter); err != nil {
					return 0, err
				}
			}
			continue
		}

		// Both branches folded: pop and hand the sum to the parent.
		f := stack[top]
		stack = stack[:top]
		if f.memoize {
			c.store(f.pos, f.sum)
		}
		if len(stack) == 0 {
			return f.sum, nil
		}
		parent := len(stack) - 1
		if stack[parent].sum, err = add(stack[parent].sum, f.sum, stack[parent].out.Splitter); err != nil {
			return 0, err
		}
	}

	return 0, nil
}

// add sums two path counts, failing with ErrOverflow on wrap-around.
func add(a, b uint64, at grid.Position) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, fmt.Errorf("%w: at splitter %v", ErrOverflow, at)
	}
	return sum, nil
}
