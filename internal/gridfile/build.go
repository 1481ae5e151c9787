package gridfile

import (
	"fmt"

	"github.com/grindlemire/go-grid/internal/grid"
)

// Box is a fixed-size child read from a layout file. It records the
// rectangle the grid gives it.
type Box struct {
	Name string
	Size grid.Size
	Rect grid.Rect

	placed bool
}

// RequestedSize implements grid.Managed.
func (b *Box) RequestedSize() grid.Size {
	return b.Size
}

// SetPlacement implements grid.Managed.
func (b *Box) SetPlacement(r grid.Rect) {
	b.Rect = r
	b.placed = true
}

// Placed reports whether the box has been arranged at least once.
func (b *Box) Placed() bool {
	return b.placed
}

// Layout is a built layout file: the container and its children in file
// order.
type Layout struct {
	Name      string
	File      *File
	Container *grid.Container
	Boxes     []*Box
}

// Build creates the container described by f.
func (f *File) Build(name string) (*Layout, error) {
	inset, err := f.insetEdges()
	if err != nil {
		return nil, err
	}
	c := grid.NewContainer(grid.WithInset(inset))

	for i, s := range f.Columns {
		if err := c.ColumnConfigure(s.Index, s.constraint()); err != nil {
			return nil, newError(fmt.Sprintf("columns[%d]", i), err, "%v", err)
		}
	}
	for i, s := range f.Rows {
		if err := c.RowConfigure(s.Index, s.constraint()); err != nil {
			return nil, newError(fmt.Sprintf("rows[%d]", i), err, "%v", err)
		}
	}

	l := &Layout{Name: name, File: f, Container: c, Boxes: make([]*Box, 0, len(f.Children))}
	for i, cs := range f.Children {
		box := &Box{Name: cs.Name, Size: grid.Size{Width: cs.Width, Height: cs.Height}}
		if err := c.Add(box, cs.placement()); err != nil {
			return nil, newError(fmt.Sprintf("children[%d]", i), err, "%v", err)
		}
		l.Boxes = append(l.Boxes, box)
	}
	return l, nil
}

// Open loads path and builds it.
func Open(path string) (*Layout, error) {
	f, err := Load(path)
	if err != nil {
		return nil, err
	}
	return f.Build(path)
}

// Arrange lays out the grid. A zero width or height falls back to the
// file's size, then to the natural size of the grid.
func (l *Layout) Arrange(width, height int) *grid.Arrangement {
	if width <= 0 {
		width = l.File.Width
	}
	if height <= 0 {
		height = l.File.Height
	}
	if width <= 0 || height <= 0 {
		req := l.Container.RequestedSize()
		if width <= 0 {
			width = req.Width
		}
		if height <= 0 {
			height = req.Height
		}
	}
	return l.Container.Arrange(width, height)
}

// Box returns the child with the given name.
func (l *Layout) Box(name string) (*Box, bool) {
	for _, b := range l.Boxes {
		if b.Name == name {
			return b, true
		}
	}
	return nil, false
}

func (s SlotSpec) constraint() grid.SlotConstraint {
	return grid.SlotConstraint{
		MinSize: s.MinSize,
		Weight:  s.Weight,
		Pad:     s.Pad,
		Uniform: s.Uniform,
	}
}

// placement converts c to a grid placement. Values are assumed validated.
func (c ChildSpec) placement() grid.Placement {
	left, right, _ := padPair("", c.PadX)
	top, bottom, _ := padPair("", c.PadY)
	sticky, _ := grid.ParseSticky(c.Sticky)

	return grid.Placement{
		Column:     c.Column,
		Row:        c.Row,
		ColumnSpan: max(c.ColumnSpan, 1),
		RowSpan:    max(c.RowSpan, 1),
		Padding:    grid.EdgeTRBL(top, right, bottom, left),
		IPadX:      c.IPadX,
		IPadY:      c.IPadY,
		Sticky:     sticky,
	}
}
