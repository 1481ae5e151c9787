package grid

import (
	"fmt"
	"slices"
)

// entry is a managed child and where it sits.
type entry struct {
	child     Managed
	placement Placement
}

// Container owns the row and column constraints of a grid and the children
// placed in it. It is not safe for concurrent use.
//
// A Container is itself Managed, so containers nest: the parent sees the
// grid's natural size as its request, and placing the container arranges
// its children inside the given rectangle.
type Container struct {
	columns []SlotConstraint
	rows    []SlotConstraint

	inset     Edges
	propagate bool
	parent    GeometryManager

	children []*entry
	index    map[Managed]*entry

	dirty bool
	last  *Arrangement
}

// Option configures a Container.
type Option func(*Container)

// WithInset reserves space inside the container's edges (border, padding).
func WithInset(e Edges) Option {
	return func(c *Container) {
		c.inset = e
	}
}

// WithPropagate controls whether changes to the grid's natural size are
// reported to the parent manager. It is on by default. With it off the
// parent keeps its layout, and the grid is re-arranged in the rectangle it
// already has.
func WithPropagate(on bool) Option {
	return func(c *Container) {
		c.propagate = on
	}
}

// NewContainer creates an empty grid.
func NewContainer(opts ...Option) *Container {
	c := &Container{
		propagate: true,
		index:     make(map[Managed]*entry),
		dirty:     true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Attach sets the manager notified when this container's request changes.
func (c *Container) Attach(parent GeometryManager) {
	c.parent = parent
}

// ColumnConfigure sets the constraint of column i.
func (c *Container) ColumnConfigure(i int, sc SlotConstraint) error {
	cols, err := configureSlot(c.columns, Column, i, sc)
	if err != nil {
		return err
	}
	c.columns = cols
	c.markDirty()
	return nil
}

// RowConfigure sets the constraint of row i.
func (c *Container) RowConfigure(i int, sc SlotConstraint) error {
	rows, err := configureSlot(c.rows, Row, i, sc)
	if err != nil {
		return err
	}
	c.rows = rows
	c.markDirty()
	return nil
}

// ColumnConstraint returns the constraint of column i. Unconfigured
// columns return the zero constraint.
func (c *Container) ColumnConstraint(i int) SlotConstraint {
	return slotAt(c.columns, i)
}

// RowConstraint returns the constraint of row i.
func (c *Container) RowConstraint(i int) SlotConstraint {
	return slotAt(c.rows, i)
}

func slotAt(slots []SlotConstraint, i int) SlotConstraint {
	if i < 0 || i >= len(slots) {
		return SlotConstraint{}
	}
	return slots[i]
}

// configureSlot stores sc at index i, growing or trimming the table so that
// it ends at the last non-default slot.
func configureSlot(slots []SlotConstraint, axis Axis, i int, sc SlotConstraint) ([]SlotConstraint, error) {
	if i < 0 || i >= MaxSlot {
		return slots, fmt.Errorf("%s %d: %w", axis, i, ErrSlotOutOfRange)
	}
	if sc.MinSize < 0 || sc.Weight < 0 || sc.Pad < 0 {
		return slots, fmt.Errorf("%s %d: %w", axis, i, ErrNegativeValue)
	}
	if i >= len(slots) {
		if sc.IsZero() {
			return slots, nil
		}
		slots = append(slots, make([]SlotConstraint, i+1-len(slots))...)
	}
	slots[i] = sc
	for len(slots) > 0 && slots[len(slots)-1].IsZero() {
		slots = slots[:len(slots)-1]
	}
	return slots, nil
}

// Add places child in the grid, or moves it if it is already managed.
func (c *Container) Add(child Managed, p Placement) error {
	p = p.normalized()
	if err := validatePlacement(p); err != nil {
		return err
	}
	if e, ok := c.index[child]; ok {
		e.placement = p
	} else {
		e := &entry{child: child, placement: p}
		c.children = append(c.children, e)
		c.index[child] = e
	}
	c.markDirty()
	return nil
}

func validatePlacement(p Placement) error {
	switch {
	case p.Column < 0 || p.Row < 0:
		return fmt.Errorf("cell (%d, %d): %w", p.Column, p.Row, ErrSlotOutOfRange)
	case p.ColumnSpan < 1 || p.RowSpan < 1:
		return fmt.Errorf("span %dx%d: %w", p.ColumnSpan, p.RowSpan, ErrInvalidSpan)
	case p.Column >= MaxSlot || p.ColumnSpan > MaxSlot-p.Column,
		p.Row >= MaxSlot || p.RowSpan > MaxSlot-p.Row:
		return fmt.Errorf("cell (%d, %d) span %dx%d: %w",
			p.Column, p.Row, p.ColumnSpan, p.RowSpan, ErrSlotOutOfRange)
	case p.Padding.IsNegative() || p.IPadX < 0 || p.IPadY < 0:
		return fmt.Errorf("padding: %w", ErrNegativeValue)
	}
	return nil
}

// Remove stops managing child.
func (c *Container) Remove(child Managed) error {
	e, ok := c.index[child]
	if !ok {
		return ErrUnknownChild
	}
	delete(c.index, child)
	c.children = slices.DeleteFunc(c.children, func(x *entry) bool { return x == e })
	c.markDirty()
	return nil
}

// OnChildRequest marks the grid for re-layout when a managed child's
// requested size changes. Unknown children are ignored.
func (c *Container) OnChildRequest(child Managed) {
	if _, ok := c.index[child]; ok {
		c.markDirty()
	}
}

// OnChildLost forgets child.
func (c *Container) OnChildLost(child Managed) {
	_ = c.Remove(child)
}

// Info returns the placement of child.
func (c *Container) Info(child Managed) (Placement, bool) {
	e, ok := c.index[child]
	if !ok {
		return Placement{}, false
	}
	return e.placement, true
}

// Children returns the managed children in insertion order.
func (c *Container) Children() []Managed {
	out := make([]Managed, len(c.children))
	for i, e := range c.children {
		out[i] = e.child
	}
	return out
}

// ChildrenAt returns the children whose span covers the given cell.
// A negative column or row matches every column or row.
func (c *Container) ChildrenAt(col, row int) []Managed {
	var out []Managed
	for _, e := range c.children {
		if e.placement.covers(col, row) {
			out = append(out, e.child)
		}
	}
	return out
}

// Size returns the number of columns and rows in use, counting both
// configured slots and slots covered by children.
func (c *Container) Size() (cols, rows int) {
	cols, rows = len(c.columns), len(c.rows)
	for _, e := range c.children {
		cols = max(cols, e.placement.Column+e.placement.ColumnSpan)
		rows = max(rows, e.placement.Row+e.placement.RowSpan)
	}
	return cols, rows
}

// IsDirty reports whether the grid changed since the last arrangement.
func (c *Container) IsDirty() bool {
	return c.dirty
}

// markDirty flags the grid for re-layout and, with propagation on, tells
// the parent that the request may have changed.
func (c *Container) markDirty() {
	if c.dirty {
		return
	}
	c.dirty = true
	if c.propagate && c.parent != nil {
		c.parent.OnChildRequest(c)
	}
}

// boxes returns the solver view of every child, in insertion order.
func (c *Container) boxes() []ChildBox {
	out := make([]ChildBox, len(c.children))
	for i, e := range c.children {
		req := e.child.RequestedSize()
		req.Width = max(0, req.Width)
		req.Height = max(0, req.Height)
		out[i] = e.placement.box(req)
	}
	return out
}

// RequestedSize returns the natural size of the grid including the inset.
func (c *Container) RequestedSize() Size {
	boxes := c.boxes()
	_, w := Solve(Column, c.columns, boxes, 0)
	_, h := Solve(Row, c.rows, boxes, 0)
	return Size{Width: w + c.inset.Horizontal(), Height: h + c.inset.Vertical()}
}

// SetPlacement arranges the grid inside r. Children receive rectangles in
// the same coordinate space as r.
func (c *Container) SetPlacement(r Rect) {
	c.arrange(r)
}

// Arrange lays the grid out in a width x height area at the origin and
// places every child. A clean grid arranged at the same size returns the
// previous result without placing children again, except nested grids
// that changed since.
//
// The size is always taken as given: an area no larger than the inset
// shrinks weighted slots as far as their minimums allow. Use
// RequestedSize for the natural size.
func (c *Container) Arrange(width, height int) *Arrangement {
	return c.arrange(NewRect(0, 0, width, height))
}

// dirtyChecker is a child that keeps its own layout cache, such as a
// nested Container.
type dirtyChecker interface {
	IsDirty() bool
}

// placeDirtyChildren places children that changed without notifying c
// again in their previous rectangles.
func (c *Container) placeDirtyChildren() {
	for _, e := range c.children {
		if d, ok := e.child.(dirtyChecker); ok && d.IsDirty() {
			e.child.SetPlacement(c.last.rects[e.child])
		}
	}
}

// Layout returns the most recent arrangement, or nil.
func (c *Container) Layout() *Arrangement {
	return c.last
}

func (c *Container) arrange(bounds Rect) *Arrangement {
	if !c.dirty && c.last != nil && c.last.Bounds == bounds {
		c.placeDirtyChildren()
		return c.last
	}

	content := bounds.Inset(c.inset)
	boxes := c.boxes()
	cols, reqW := solve(Column, c.columns, boxes, content.Width, false)
	rows, reqH := solve(Row, c.rows, boxes, content.Height, false)

	a := &Arrangement{
		Bounds:  bounds,
		Content: content,
		Columns: cols,
		Rows:    rows,
		Required: Size{
			Width:  reqW + c.inset.Horizontal(),
			Height: reqH + c.inset.Vertical(),
		},
		rects: make(map[Managed]Rect, len(c.children)),
	}

	for i, e := range c.children {
		b := boxes[i]
		cell := a.BBox(b.Column, b.Row, b.Column+b.NumCols-1, b.Row+b.NumRows-1)
		r := PlaceSticky(cell,
			Size{Width: b.RequestedWidth, Height: b.RequestedHeight},
			Pad{X: b.PadX, Left: b.PadLeft, Y: b.PadY, Top: b.PadTop},
			b.Sticky)
		a.children = append(a.children, e.child)
		a.rects[e.child] = r
		e.child.SetPlacement(r)
	}

	c.last = a
	c.dirty = false

	Logger().Debug("grid arranged",
		"bounds", bounds, "columns", len(cols), "rows", len(rows),
		"children", len(c.children), "required", a.Required)
	return a
}
