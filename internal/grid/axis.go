package grid

// Axis selects which dimension of the grid is being solved.
type Axis uint8

const (
	Column Axis = iota // Horizontal: slots are columns, sizes are widths
	Row                // Vertical: slots are rows, sizes are heights
)

// String returns "column" or "row".
func (a Axis) String() string {
	if a == Row {
		return "row"
	}
	return "column"
}

// MaxSlot bounds row and column indices. Indices at or past it are rejected
// by Container before they reach the solver.
const MaxSlot = 10000

// SlotConstraint holds the user configuration of one row or column.
type SlotConstraint struct {
	// MinSize is the smallest size the slot takes, and the floor a weighted
	// slot shrinks to when the container is too small.
	MinSize int

	// Weight is the slot's share of surplus or deficit space. Zero keeps the
	// slot at its content size.
	Weight int

	// Pad is added to the largest single-slot child in the slot.
	Pad int

	// Uniform names a group of slots whose sizes are kept in proportion to
	// their weights. Empty means no group.
	Uniform string
}

// IsZero reports whether the constraint is the default configuration.
func (c SlotConstraint) IsZero() bool {
	return c == SlotConstraint{}
}

// ChildBox is the solver's view of a managed child.
type ChildBox struct {
	Column, Row      int // First slot on each axis
	NumCols, NumRows int // Span on each axis, at least 1

	// RequestedWidth and RequestedHeight are the content size, with any
	// internal padding already folded in.
	RequestedWidth  int
	RequestedHeight int

	// PadX and PadY are the total outer padding on each axis; PadLeft and
	// PadTop are the leading part of it.
	PadX, PadLeft int
	PadY, PadTop  int

	Sticky Sticky
}

// slotRange returns the first slot and the span of the box on axis.
func (b ChildBox) slotRange(axis Axis) (first, span int) {
	if axis == Row {
		return b.Row, max(b.NumRows, 1)
	}
	return b.Column, max(b.NumCols, 1)
}

// outerSize returns the requested size plus outer padding on axis.
func (b ChildBox) outerSize(axis Axis) int {
	if axis == Row {
		return b.RequestedHeight + b.PadY
	}
	return b.RequestedWidth + b.PadX
}

// Size is a width and height pair.
type Size struct {
	Width, Height int
}

func (s Size) along(axis Axis) int {
	if axis == Row {
		return s.Height
	}
	return s.Width
}

// Pad describes the outer padding of a child. X and Y are totals per axis;
// Left and Top are the part of the total placed before the child.
type Pad struct {
	X, Left int
	Y, Top  int
}

func (p Pad) total(axis Axis) int {
	if axis == Row {
		return p.Y
	}
	return p.X
}

func (p Pad) lead(axis Axis) int {
	if axis == Row {
		return p.Top
	}
	return p.Left
}

// PadFromEdges converts per-side padding into a Pad.
func PadFromEdges(e Edges) Pad {
	return Pad{X: e.Horizontal(), Left: e.Left, Y: e.Vertical(), Top: e.Top}
}
