package grid_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/beamsplit/grid"
)

// ExampleParse reads a small grid and reports its geometry.
func ExampleParse() {
	text := `
..S..
.....
..^..
.^.^.
`
	g, err := grid.Parse(strings.NewReader(text))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	rows, cols := g.Bounds()
	fmt.Printf("bounds: %dx%d\n", rows, cols)
	fmt.Println("start:", g.Start())
	fmt.Println("splitters:", g.Splitters())
	// Output:
	// bounds: 4x5
	// start: (0,2)
	// splitters: [(2,2) (3,1) (3,3)]
}

// ExampleBuild constructs a grid in code and renders it as text.
func ExampleBuild() {
	g, _ := grid.Build(3, 3, grid.Pos(0, 1), grid.Pos(1, 1))
	fmt.Print(g)
	// Output:
	// .S.
	// .^.
	// ...
}
