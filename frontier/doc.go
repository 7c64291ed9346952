// Package frontier simulates a beam travelling down a grid and counts how
// often it splits.
//
// What
//
//   - The beam is seeded one row below the start marker.
//   - Each round advances every active head by one row (see Step):
//   - past the grid bounds: the head exits, no split;
//   - onto an empty cell: the head moves down;
//   - onto a splitter: one split is counted and the head is replaced by the
//     cells left and right of the splitter.
//   - Active heads form a set. Two fragments reaching the same cell are one
//     head from then on, so their future splits are counted once.
//   - The simulation ends when no head is active.
//
// Determinism
//
//	Every head of a round sits on the same row, and every successor sits on
//	the next row, so a successor can never collide with a head still waiting
//	in the current round. The split count therefore does not depend on the
//	order in which a round is evaluated. Hooks observe the frontier sorted
//	row-major, and OnSplit fires in that order even with several workers.
//
// Termination
//
//	Row indices strictly increase, so after at most rows+1 rounds every head
//	has exited.
//
// Complexity (R = rows, W = peak frontier width)
//
//   - Time:   O(R × W)
//   - Memory: O(W)
//
// Usage
//
//	res, err := frontier.CountSplits(g)
//	if err != nil {
//		// ErrGridNil, ErrOptionViolation, ErrRoundLimit, ctx or hook errors
//	}
//	fmt.Println(res.Splits)
//
//	// parallel rounds with progress reporting:
//	res, err = frontier.CountSplits(g,
//		frontier.WithContext(ctx),
//		frontier.WithWorkers(4),
//		frontier.WithOnRound(func(round int, heads []grid.Position) error {
//			log.Printf("round %d: %d heads", round, len(heads))
//			return nil
//		}),
//	)
//
// Options
//
//   - WithContext(ctx):   cancellation, checked once per round.
//   - WithOnRound(fn):    hook before a round; an error aborts.
//   - WithOnSplit(fn):    hook per split event.
//   - WithWorkers(n):     evaluate a round on n goroutines.
//   - WithMaxRounds(n):   abort with ErrRoundLimit after n rounds.
package frontier
