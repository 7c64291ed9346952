// Package frontier provides tunable options, error definitions and result
// types for split counting over a deduplicated beam frontier.
package frontier

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/beamsplit/grid"
)

// Sentinel errors for frontier simulation.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("frontier: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("frontier: invalid option supplied")

	// ErrRoundLimit is returned when the simulation needs more rounds than
	// WithMaxRounds allows.
	ErrRoundLimit = errors.New("frontier: round limit exceeded")
)

// Option configures simulation behavior via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation
// when CountSplits is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a simulation.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per round.
	Ctx context.Context

	// OnRound is called before a round is evaluated with the round number
	// (starting at 0) and the row-major sorted frontier snapshot. The slice
	// is owned by the simulator and must not be retained. Returning an error
	// aborts the simulation.
	OnRound func(round int, heads []grid.Position) error

	// OnSplit is called once per split event with the splitter position,
	// in snapshot order, after the round's successors are known.
	OnSplit func(at grid.Position)

	// Workers is the number of goroutines evaluating one round. 1 keeps the
	// evaluation on the calling goroutine.
	Workers int

	// MaxRounds, if > 0, aborts with ErrRoundLimit once exceeded.
	// 0 disables the limit.
	MaxRounds int

	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no-op hooks
//   - a single worker
//   - no round limit
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnRound:   func(int, []grid.Position) error { return nil },
		OnSplit:   func(grid.Position) {},
		Workers:   1,
		MaxRounds: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnRound registers a callback to run before every round.
func WithOnRound(fn func(round int, heads []grid.Position) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRound = fn
		}
	}
}

// WithOnSplit registers a callback to run for every split event.
func WithOnSplit(fn func(at grid.Position)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSplit = fn
		}
	}
}

// WithWorkers evaluates each round's frontier on n goroutines.
//
//	n ≥ 1: use n workers
//	n < 1: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithMaxRounds stops the simulation with ErrRoundLimit after n rounds.
//
//	n > 0: limit to n rounds
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxRounds(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxRounds cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxRounds = n
	}
}

// Result holds the outcome of a simulation:
//   - Splits: number of split events.
//   - Rounds: number of rounds evaluated (one per row advanced).
//   - Exits: number of fragments that left the grid.
//   - PeakWidth: largest frontier size seen.
type Result struct {
	Splits    int
	Rounds    int
	Exits     int
	PeakWidth int
}

// Kind classifies the transition of a single beam head.
type Kind int

const (
	// Exited means the head has left the grid; it has no successor.
	Exited Kind = iota
	// Advanced means the head moved one row down unchanged.
	Advanced
	// Split means the cell below the head is a splitter and the head was
	// replaced by the two cells beside it.
	Split
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case Exited:
		return "exited"
	case Advanced:
		return "advanced"
	case Split:
		return "split"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Transition is the outcome of advancing one beam head by one row.
type Transition struct {
	Kind Kind
	// Splitter is the splitter cell hit; meaningful only when Kind == Split.
	Splitter grid.Position

	heads [2]grid.Position
	n     int
}

// Successors returns the zero, one or two heads replacing the evaluated one.
func (t Transition) Successors() []grid.Position {
	return t.heads[:t.n]
}
