// Package grid holds the immutable geometry a beam travels through: the
// bounds, the set of splitter cells and the single start cell.
//
// What:
//
//   - Position is a (Row, Col) value type, usable directly as a map key.
//   - Grid is built once from text lines ('S' start, '^' splitter, '.' empty)
//     or programmatically with Build, and is read-only afterwards.
//   - Outside reports whether a beam head has left the grid.
//
// Text format:
//
//	..S..
//	.....
//	..^..
//	.....
//
// Rows grow downwards; a beam always travels towards higher row indices.
//
// Errors:
//
//   - ErrMalformedGrid: base error for every text-level problem below.
//   - ErrEmptyGrid: no lines, or an empty first line.
//   - ErrNonRectangular: a line whose length differs from the first.
//   - ErrUnknownSymbol: a character outside {'S', '^', '.'}.
//   - ErrMultipleStart: more than one 'S'.
//   - ErrMissingStart: no 'S' (unless WithOriginFallback is supplied).
//   - ErrOutOfBounds: Build received a start or splitter outside the bounds.
//
// Complexity:
//
//   - New / Parse: O(W×H) time, O(S) memory for S splitters.
//   - IsSplitter / Outside: O(1).
package grid
