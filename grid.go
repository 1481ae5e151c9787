// grid.go re-exports the solver and container from internal/grid.
// Any changes to internal/grid types must be mirrored here.

package grid

import (
	"log/slog"

	"github.com/grindlemire/go-grid/internal/grid"
)

// Axis selects rows or columns.
type Axis = grid.Axis

const (
	Column = grid.Column
	Row    = grid.Row
)

// MaxSlot bounds row and column indices.
const MaxSlot = grid.MaxSlot

// SlotConstraint configures one row or column.
type SlotConstraint = grid.SlotConstraint

// ChildBox is the solver's view of a child on both axes.
type ChildBox = grid.ChildBox

// Sticky is the set of cell edges a child attaches to.
type Sticky = grid.Sticky

const (
	StickyN   = grid.StickyN
	StickyE   = grid.StickyE
	StickyS   = grid.StickyS
	StickyW   = grid.StickyW
	StickyAll = grid.StickyAll
)

// Rect represents a rectangle with position and dimensions.
type Rect = grid.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = grid.Edges

// Size represents a width/height pair.
type Size = grid.Size

// Pad is the outer padding of a child as per-axis totals and leading parts.
type Pad = grid.Pad

// Managed is anything a Container can place.
type Managed = grid.Managed

// GeometryManager is notified when a managed child changes.
type GeometryManager = grid.GeometryManager

// Placement says where a child sits in the grid.
type Placement = grid.Placement

// Container owns row and column constraints and managed children.
type Container = grid.Container

// Option configures a Container.
type Option = grid.Option

// Arrangement is the result of laying out a Container.
type Arrangement = grid.Arrangement

// Errors returned by Container and ParseSticky.
var (
	ErrSlotOutOfRange = grid.ErrSlotOutOfRange
	ErrInvalidSpan    = grid.ErrInvalidSpan
	ErrNegativeValue  = grid.ErrNegativeValue
	ErrUnknownChild   = grid.ErrUnknownChild
	ErrInvalidSticky  = grid.ErrInvalidSticky
)

// Solve computes the trailing-edge offset of every slot on one axis and
// the natural size of that axis.
func Solve(axis Axis, constraints []SlotConstraint, children []ChildBox, target int) ([]int, int) {
	return grid.Solve(axis, constraints, children, target)
}

// PlaceSticky positions a child of the requested size inside cell.
func PlaceSticky(cell Rect, requested Size, pad Pad, sticky Sticky) Rect {
	return grid.PlaceSticky(cell, requested, pad, sticky)
}

// ParseSticky parses edge letters such as "nsew" or "we".
func ParseSticky(s string) (Sticky, error) { return grid.ParseSticky(s) }

// NewContainer creates an empty grid.
func NewContainer(opts ...Option) *Container { return grid.NewContainer(opts...) }

// WithInset reserves space inside the container's edges.
func WithInset(e Edges) Option { return grid.WithInset(e) }

// WithPropagate controls whether size changes are reported to the parent.
func WithPropagate(on bool) Option { return grid.WithPropagate(on) }

// Constructors

func NewRect(x, y, w, h int) Rect   { return grid.NewRect(x, y, w, h) }
func EdgeAll(n int) Edges           { return grid.EdgeAll(n) }
func EdgeSymmetric(v, h int) Edges  { return grid.EdgeSymmetric(v, h) }
func EdgeTRBL(t, r, b, l int) Edges { return grid.EdgeTRBL(t, r, b, l) }
func PadFromEdges(e Edges) Pad      { return grid.PadFromEdges(e) }

// SetLogger sets the logger used by the solver and containers.
// Pass nil to silence logging.
func SetLogger(l *slog.Logger) { grid.SetLogger(l) }
