package grid

// Managed is anything a Container can place.
// Implementations should be pointer types; the container keys children by
// interface value.
type Managed interface {
	// RequestedSize returns the natural content size of the child.
	RequestedSize() Size

	// SetPlacement is called by the container with the child's final
	// rectangle, relative to the container's origin.
	SetPlacement(Rect)
}

// GeometryManager is notified when a managed child changes.
type GeometryManager interface {
	// OnChildRequest tells the manager that child's requested size changed.
	OnChildRequest(child Managed)

	// OnChildLost tells the manager that child went away and should no
	// longer be placed.
	OnChildLost(child Managed)
}

// Placement says where a child sits in the grid.
type Placement struct {
	Column, Row         int
	ColumnSpan, RowSpan int // Zero is treated as 1

	// Padding is outer space around the child, inside its cell.
	Padding Edges

	// IPadX and IPadY are added to each side of the requested size.
	IPadX, IPadY int

	Sticky Sticky
}

// normalized returns p with zero spans replaced by 1.
func (p Placement) normalized() Placement {
	if p.ColumnSpan == 0 {
		p.ColumnSpan = 1
	}
	if p.RowSpan == 0 {
		p.RowSpan = 1
	}
	return p
}

// covers reports whether the placement spans the given cell. A negative
// column or row matches any.
func (p Placement) covers(col, row int) bool {
	if col >= 0 && (col < p.Column || col >= p.Column+p.ColumnSpan) {
		return false
	}
	if row >= 0 && (row < p.Row || row >= p.Row+p.RowSpan) {
		return false
	}
	return true
}

// box builds the solver input for a child of the given requested size.
func (p Placement) box(requested Size) ChildBox {
	return ChildBox{
		Column:          p.Column,
		Row:             p.Row,
		NumCols:         p.ColumnSpan,
		NumRows:         p.RowSpan,
		RequestedWidth:  requested.Width + 2*p.IPadX,
		RequestedHeight: requested.Height + 2*p.IPadY,
		PadX:            p.Padding.Horizontal(),
		PadLeft:         p.Padding.Left,
		PadY:            p.Padding.Vertical(),
		PadTop:          p.Padding.Top,
		Sticky:          p.Sticky,
	}
}
