// Package beamsplit simulates a beam entering a grid of splitters and
// answers two questions about it: how many times the beam splits, and how
// many distinct paths it can take to leave the grid.
//
// What is in the module?
//
//	grid/       immutable geometry: bounds, splitter set, start cell, text parsing
//	frontier/   split counting over a deduplicated set of beam heads, round by round
//	paths/      memoized counting of distinct terminal paths
//	cmd/beamsplit  command-line driver printing "Result is N"
//
// Quick ASCII example:
//
//	..S..
//	.....
//	..^..      the beam splits at (2,2) into (2,1) and (2,3),
//	.....
//	.^.^.      both halves split again; the inner fragments meet at (4,2),
//	.....
//	..^..      so the frontier counts 4 splits while 6 distinct paths exist.
//	.....
//
// Both counts terminate on every grid: a beam only ever moves to a higher row.
//
//	go get github.com/katalvlaran/beamsplit
package beamsplit
