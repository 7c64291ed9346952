package grid

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

// New builds a Grid from equal-length text lines.
// Each character is classified: 'S' sets the start, '^' adds a splitter,
// '.' is empty; anything else aborts with ErrUnknownSymbol.
// Bounds are (len(lines), len(lines[0])).
//
// All text errors wrap ErrMalformedGrid. A missing start marker returns
// ErrMissingStart unless WithOriginFallback is supplied.
// Complexity: O(W×H) time, O(S) memory.
func New(lines []string, opts ...Option) (*Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrMalformedGrid, ErrEmptyGrid)
	}
	rows, cols := len(lines), len(lines[0])

	g := &Grid{
		rows:      rows,
		cols:      cols,
		splitters: make(map[Position]struct{}),
	}
	haveStart := false
	for row, line := range lines {
		if len(line) != cols {
			return nil, fmt.Errorf("%w: %w: row %d has length %d, want %d",
				ErrMalformedGrid, ErrNonRectangular, row, len(line), cols)
		}
		for col, ch := range line {
			p := Position{Row: row, Col: col}
			switch ch {
			case SymbolStart:
				if haveStart {
					return nil, fmt.Errorf("%w: %w: %v and %v",
						ErrMalformedGrid, ErrMultipleStart, g.start, p)
				}
				g.start, haveStart = p, true
			case SymbolSplitter:
				g.splitters[p] = struct{}{}
			case SymbolEmpty:
				// known no-op
			default:
				return nil, fmt.Errorf("%w: %w %q at %v",
					ErrMalformedGrid, ErrUnknownSymbol, ch, p)
			}
		}
	}

	if !haveStart && !o.OriginFallback {
		return nil, ErrMissingStart
	}

	return g, nil
}

// Build constructs a Grid directly from its geometry. Duplicate splitters
// collapse into one. Returns ErrEmptyGrid for non-positive bounds and
// ErrOutOfBounds if start or any splitter lies outside [0,rows)×[0,cols).
// Complexity: O(S).
func Build(rows, cols int, start Position, splitters ...Position) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{
		rows:      rows,
		cols:      cols,
		splitters: make(map[Position]struct{}, len(splitters)),
		start:     start,
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v in %dx%d grid", ErrOutOfBounds, start, rows, cols)
	}
	for _, p := range splitters {
		if !g.InBounds(p) {
			return nil, fmt.Errorf("%w: splitter %v in %dx%d grid", ErrOutOfBounds, p, rows, cols)
		}
		g.splitters[p] = struct{}{}
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Bounds returns (rows, cols).
func (g *Grid) Bounds() (rows, cols int) { return g.rows, g.cols }

// Start returns the beam entry cell.
func (g *Grid) Start() Position { return g.start }

// NumSplitters returns the number of distinct splitter cells.
func (g *Grid) NumSplitters() int { return len(g.splitters) }

// IsSplitter reports whether p holds a splitter.
// Complexity: O(1).
func (g *Grid) IsSplitter(p Position) bool {
	_, ok := g.splitters[p]
	return ok
}

// Splitters returns a row-major sorted copy of the splitter set.
// Complexity: O(S log S).
func (g *Grid) Splitters() []Position {
	out := maps.Keys(g.splitters)
	slices.SortFunc(out, Position.Compare)
	return out
}

// InBounds reports whether p lies within [0,rows)×[0,cols).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// Outside reports whether a beam head at p has left the grid, i.e.
// p.Row ≥ rows or p.Col ≥ cols. Negative columns are not tested: such a
// head meets no splitter and leaves through the bottom row instead.
// Complexity: O(1).
func (g *Grid) Outside(p Position) bool {
	return p.Row >= g.rows || p.Col >= g.cols
}

// String renders the grid back into its text form, one line per row.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			p := Position{Row: row, Col: col}
			switch {
			case p == g.start:
				sb.WriteByte(SymbolStart)
			case g.IsSplitter(p):
				sb.WriteByte(SymbolSplitter)
			default:
				sb.WriteByte(SymbolEmpty)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
