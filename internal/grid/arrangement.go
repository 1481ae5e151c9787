package grid

import "sort"

// Arrangement is the result of laying out a Container.
type Arrangement struct {
	// Bounds is the rectangle the container was arranged in.
	Bounds Rect

	// Content is Bounds minus the container inset. Slot offsets are
	// relative to its top-left corner.
	Content Rect

	// Columns and Rows hold the trailing-edge offset of each slot.
	Columns []int
	Rows    []int

	// Required is the natural size of the grid including the inset.
	Required Size

	children []Managed
	rects    map[Managed]Rect
}

// Placement returns the rectangle given to child.
func (a *Arrangement) Placement(child Managed) (Rect, bool) {
	r, ok := a.rects[child]
	return r, ok
}

// Children returns the placed children in insertion order.
func (a *Arrangement) Children() []Managed {
	return a.children
}

// Cell returns the rectangle of a single cell.
func (a *Arrangement) Cell(col, row int) Rect {
	return a.BBox(col, row, col, row)
}

// BBox returns the bounding box of the cells from (col, row) to
// (col2, row2) inclusive. Corners may be given in either order. Indices
// past the last slot contribute no size.
func (a *Arrangement) BBox(col, row, col2, row2 int) Rect {
	if col > col2 {
		col, col2 = col2, col
	}
	if row > row2 {
		row, row2 = row2, row
	}
	x0, x1 := leadingEdge(a.Columns, col), leadingEdge(a.Columns, col2+1)
	y0, y1 := leadingEdge(a.Rows, row), leadingEdge(a.Rows, row2+1)
	return Rect{
		X:      a.Content.X + x0,
		Y:      a.Content.Y + y0,
		Width:  x1 - x0,
		Height: y1 - y0,
	}
}

// Location returns the cell containing the point (x, y). A coordinate
// before the first slot yields -1; one past the last slot yields the slot
// count.
func (a *Arrangement) Location(x, y int) (col, row int) {
	return locate(a.Columns, x-a.Content.X), locate(a.Rows, y-a.Content.Y)
}

// leadingEdge returns the offset where slot i begins.
func leadingEdge(offsets []int, i int) int {
	if i <= 0 || len(offsets) == 0 {
		return 0
	}
	return offsets[min(i, len(offsets))-1]
}

// locate returns the slot containing offset p.
func locate(offsets []int, p int) int {
	if p < 0 {
		return -1
	}
	return sort.Search(len(offsets), func(i int) bool { return offsets[i] > p })
}
