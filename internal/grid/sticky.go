package grid

import (
	"fmt"
	"strings"
)

// Sticky is the set of cell edges a child attaches to.
type Sticky uint8

const (
	StickyN Sticky = 1 << iota // Top edge
	StickyE                    // Right edge
	StickyS                    // Bottom edge
	StickyW                    // Left edge

	StickyAll = StickyN | StickyE | StickyS | StickyW
)

// Has reports whether every edge in f is set.
func (s Sticky) Has(f Sticky) bool {
	return s&f == f
}

// String returns the set edges as letters in "nesw" order.
func (s Sticky) String() string {
	var b strings.Builder
	for _, e := range []struct {
		flag Sticky
		ch   byte
	}{{StickyN, 'n'}, {StickyE, 'e'}, {StickyS, 's'}, {StickyW, 'w'}} {
		if s&e.flag != 0 {
			b.WriteByte(e.ch)
		}
	}
	return b.String()
}

// ParseSticky parses a string of edge letters such as "nsew", "we" or "n,s".
// Letters are case-insensitive; spaces and commas are ignored.
func ParseSticky(str string) (Sticky, error) {
	var s Sticky
	for _, r := range str {
		switch r {
		case 'n', 'N':
			s |= StickyN
		case 's', 'S':
			s |= StickyS
		case 'e', 'E':
			s |= StickyE
		case 'w', 'W':
			s |= StickyW
		case ' ', ',', '\t':
		default:
			return 0, fmt.Errorf("%w: bad character %q in %q", ErrInvalidSticky, r, str)
		}
	}
	return s, nil
}

// PlaceSticky positions a child of the requested size inside cell.
//
// The outer padding is removed from the cell first. On each axis, if the
// padded cell is larger than the request, the child either stretches (both
// opposing edges sticky) or keeps its requested size and is pinned to the
// sticky edge, or centered when neither edge is sticky. A cell smaller than
// the request shrinks the child to the cell.
func PlaceSticky(cell Rect, requested Size, pad Pad, sticky Sticky) Rect {
	out := cell
	for _, axis := range [...]Axis{Column, Row} {
		start, extent := stickAxis(cell.Start(axis), cell.Extent(axis), requested.along(axis),
			pad.total(axis), pad.lead(axis), sticky.lead(axis), sticky.trail(axis))
		out = out.withAxis(axis, start, extent)
	}
	return out
}

// lead reports whether the leading edge on axis (west or north) is sticky.
func (s Sticky) lead(axis Axis) bool {
	if axis == Row {
		return s.Has(StickyN)
	}
	return s.Has(StickyW)
}

// trail reports whether the trailing edge on axis (east or south) is sticky.
func (s Sticky) trail(axis Axis) bool {
	if axis == Row {
		return s.Has(StickyS)
	}
	return s.Has(StickyE)
}

// stickAxis applies padding and sticky rules along one axis.
func stickAxis(start, extent, requested, padTotal, padLead int, lead, trail bool) (int, int) {
	start += min(padLead, max(0, extent))
	extent = max(0, extent-padTotal)

	surplus := 0
	if extent > requested {
		surplus = extent - requested
		extent = requested
	}

	switch {
	case lead && trail:
		extent += surplus
	case lead:
	case trail:
		start += surplus
	default:
		start += surplus / 2
	}
	return start, extent
}
