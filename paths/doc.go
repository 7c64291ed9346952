// Package paths counts distinct terminal paths of a beam through a grid.
//
// A path is one complete trace from the start to an exit beyond the grid
// boundary; two paths differ as soon as they take different sides at some
// split. Paths that pass through the same cell are still counted apart,
// unlike the frontier package, which merges them.
//
// Key features:
//   - Count(g, opts...): memoized count from g.Start()
//   - NextSplit(g, pos): the pure "next splitter below pos" resolution
//   - Memoization keyed by branch position, owned by a single Count call
//   - Recursive or explicit-stack evaluation (WithExplicitStack)
//   - Overflow detection on uint64 counts
//   - Cancellation via context.Context
//
// Caching by position alone is sound: the grid is static and the paths
// reachable from a position do not depend on how the beam got there.
//
// Options:
//
//   - WithContext(ctx)      allows cancellation via context.Context.
//   - WithOnResolve(fn)     post-order hook when a branch count is stored.
//   - WithExplicitStack()   iterative evaluation instead of recursion.
//
// Errors:
//
//   - ErrGridNil            if g is nil.
//   - ErrOverflow           if the count exceeds uint64.
//   - context.Canceled      if ctx is done.
package paths
