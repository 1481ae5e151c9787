package grid_test

import (
	"fmt"

	grid "github.com/grindlemire/go-grid"
)

type label struct {
	size grid.Size
	at   grid.Rect
}

func (l *label) RequestedSize() grid.Size { return l.size }
func (l *label) SetPlacement(r grid.Rect) { l.at = r }

func ExampleSolve() {
	constraints := []grid.SlotConstraint{
		{MinSize: 50},
		{MinSize: 30, Weight: 1},
		{MinSize: 50},
	}
	offsets, required := grid.Solve(grid.Column, constraints, nil, 200)
	fmt.Println(offsets, required)
	// Output: [50 150 200] 130
}

func ExampleContainer() {
	c := grid.NewContainer(grid.WithInset(grid.EdgeAll(1)))
	c.ColumnConfigure(1, grid.SlotConstraint{Weight: 1})

	name := &label{size: grid.Size{Width: 10, Height: 1}}
	field := &label{size: grid.Size{Width: 20, Height: 1}}
	c.Add(name, grid.Placement{Sticky: grid.StickyW})
	c.Add(field, grid.Placement{Column: 1, Sticky: grid.StickyW | grid.StickyE})

	a := c.Arrange(50, 3)
	fmt.Println(a.Columns, a.Rows)
	fmt.Println(name.at, field.at)
	// Output:
	// [10 48] [1]
	// {1 1 10 1} {11 1 38 1}
}

func ExampleParseSticky() {
	s, err := grid.ParseSticky("N, W")
	fmt.Println(s, err)
	// Output: nw <nil>
}
