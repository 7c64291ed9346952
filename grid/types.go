package grid

import (
	"cmp"
	"strconv"
)

// Grid alphabet.
const (
	SymbolStart    = 'S'
	SymbolSplitter = '^'
	SymbolEmpty    = '.'
)

// Position is a cell coordinate. Row grows downwards, Col grows to the right.
// Positions compare by value and may be used as map keys.
type Position struct {
	Row, Col int
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Down returns the position one row below p.
func (p Position) Down() Position {
	return Position{Row: p.Row + 1, Col: p.Col}
}

// Left returns the position one column left of p.
func (p Position) Left() Position {
	return Position{Row: p.Row, Col: p.Col - 1}
}

// Right returns the position one column right of p.
func (p Position) Right() Position {
	return Position{Row: p.Row, Col: p.Col + 1}
}

// Compare orders positions row-major: -1 if p < q, 0 if equal, +1 if p > q.
func (p Position) Compare(q Position) int {
	if c := cmp.Compare(p.Row, q.Row); c != 0 {
		return c
	}
	return cmp.Compare(p.Col, q.Col)
}

// String formats p as "(row,col)".
func (p Position) String() string {
	return "(" + strconv.Itoa(p.Row) + "," + strconv.Itoa(p.Col) + ")"
}

// Option configures grid construction from text.
type Option func(*Options)

// Options holds parameters for New, Parse and Load.
type Options struct {
	// OriginFallback, when true, places the start at (0,0) if the text
	// carries no start marker instead of failing with ErrMissingStart.
	OriginFallback bool
}

// DefaultOptions returns Options with a missing start treated as an error.
func DefaultOptions() Options {
	return Options{OriginFallback: false}
}

// WithOriginFallback makes a grid without 'S' start at the origin.
func WithOriginFallback() Option {
	return func(o *Options) {
		o.OriginFallback = true
	}
}

// Grid is the immutable beam geometry. The zero value is not usable;
// construct with New, Parse, Load or Build.
type Grid struct {
	rows, cols int
	splitters  map[Position]struct{}
	start      Position
}
