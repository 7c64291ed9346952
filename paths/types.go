// Package paths defines types and options for counting distinct beam paths,
// including cancellation, a post-order resolve hook and the choice between
// recursive and explicit-stack evaluation.
package paths

import (
	"context"
	"errors"

	"github.com/katalvlaran/beamsplit/grid"
)

var (
	// ErrGridNil is returned when a nil *grid.Grid is passed to Count.
	ErrGridNil = errors.New("paths: grid is nil")

	// ErrOverflow indicates the path count does not fit in a uint64.
	ErrOverflow = errors.New("paths: path count overflows uint64")
)

// Option configures optional behavior of Count.
type Option func(*Options)

// Options holds configurable parameters for path counting.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// It is checked before every next-split resolution.
	Ctx context.Context

	// OnResolve, if non-nil, is invoked each time a branch position's path
	// count is stored in the memo table (post-order).
	OnResolve func(pos grid.Position, paths uint64)

	// ExplicitStack selects iterative evaluation on a heap-allocated stack
	// instead of recursion. Results are identical.
	ExplicitStack bool
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - No resolve hook
//   - Recursive evaluation
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		OnResolve:     nil,
		ExplicitStack: false,
	}
}

// WithContext returns an Option that sets the Context for Count.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnResolve returns an Option that installs fn as a post-order hook.
func WithOnResolve(fn func(pos grid.Position, paths uint64)) Option {
	return func(o *Options) {
		o.OnResolve = fn
	}
}

// WithExplicitStack returns an Option that evaluates on an explicit stack,
// for grids deep enough to make recursion undesirable.
func WithExplicitStack() Option {
	return func(o *Options) {
		o.ExplicitStack = true
	}
}

// Outcome is the result of scanning down from a position: either the beam
// exits the grid, or it meets Splitter and continues as Left and Right.
type Outcome struct {
	Exited bool

	// Splitter, Left and Right are meaningful only when Exited is false.
	Splitter    grid.Position
	Left, Right grid.Position
}

// Result captures the outcome of a path count.
type Result struct {
	// Paths is the number of distinct terminal paths from the start.
	Paths uint64

	// Memoized is the number of branch positions in the memo table.
	Memoized int

	// Resolutions is the number of next-split scans performed. With the
	// memo table every distinct branch position is scanned once.
	Resolutions int
}
