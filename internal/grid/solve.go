package grid

// slotLayout holds per-slot state for a single Solve call.
// It is allocated per call and never stored on the container.
type slotLayout struct {
	minSize int // Effective minimum, grows as children and slack are folded in
	floor   int // Configured minimum; weighted slots never shrink below it
	weight  int
	pad     int
	uniform string

	minOffset int // Smallest feasible trailing-edge offset
	maxOffset int // Largest feasible trailing-edge offset

	spans []spanReq // Multi-slot children whose last slot is this one
}

// spanReq is a child covering more than one slot.
type spanReq struct {
	span int
	size int
}

// axisSolver resolves the slots of one axis.
type axisSolver struct {
	axis  Axis
	slots []slotLayout
}

// Solve computes the trailing-edge offset of every slot on axis.
//
// constraints is indexed by slot; slots referenced by children beyond its
// length get the zero constraint. target is the size to fill; zero or less
// asks for the natural size only.
//
// required is the natural size of the layout. When target is at least
// required, the last offset equals target. When target is smaller, weighted
// slots shrink toward their configured MinSize and the last offset is the
// smallest size reachable that way.
func Solve(axis Axis, constraints []SlotConstraint, children []ChildBox, target int) (offsets []int, required int) {
	return solve(axis, constraints, children, target, target <= 0)
}

// solve is Solve with the natural size request made explicit, so that a
// target of zero can mean an empty area.
func solve(axis Axis, constraints []SlotConstraint, children []ChildBox, target int, natural bool) (offsets []int, required int) {
	s := newAxisSolver(axis, constraints, children)
	if len(s.slots) == 0 {
		return nil, 0
	}

	s.normalizeUniform()
	required = s.resolveMinimums()

	switch {
	case target > required:
		s.resolveMaximums(target)
		s.distribute()
	case !natural && target < required:
		s.shrink(required - max(target, 0))
	}

	offsets = s.offsets()
	for i := 1; i < len(offsets); i++ {
		invariant(offsets[i] >= offsets[i-1], "offsets decrease",
			"axis", axis, "slot", i, "offset", offsets[i], "previous", offsets[i-1])
	}

	Logger().Debug("grid axis solved",
		"axis", axis, "slots", len(offsets), "target", target,
		"required", required, "size", offsets[len(offsets)-1])
	return offsets, required
}

// newAxisSolver builds the per-slot table and folds single-slot children
// into their slot's minimum. Multi-slot children are bucketed by last slot.
func newAxisSolver(axis Axis, constraints []SlotConstraint, children []ChildBox) *axisSolver {
	n := len(constraints)
	for _, c := range children {
		first, span := c.slotRange(axis)
		n = max(n, first+span)
	}

	s := &axisSolver{axis: axis, slots: make([]slotLayout, n)}
	for i, c := range constraints {
		s.slots[i] = slotLayout{
			minSize: c.MinSize,
			floor:   c.MinSize,
			weight:  c.Weight,
			pad:     c.Pad,
			uniform: c.Uniform,
		}
	}

	for _, c := range children {
		first, span := c.slotRange(axis)
		last := first + span - 1
		size := c.outerSize(axis)
		if span == 1 {
			s.slots[last].minSize = max(s.slots[last].minSize, size+s.slots[last].pad)
			continue
		}
		s.slots[last].spans = append(s.slots[last].spans, spanReq{span: span, size: size})
	}
	return s
}

// uniformWeight is the weight a slot counts with inside a uniform group.
func uniformWeight(w int) int {
	if w > 0 {
		return w
	}
	return 1
}

// normalizeUniform sizes every slot of a uniform group to the group's
// largest size-per-weight ratio times its own weight.
func (s *axisSolver) normalizeUniform() {
	perWeight := make(map[string]int)
	for i := range s.slots {
		sl := &s.slots[i]
		if sl.uniform == "" {
			continue
		}
		w := uniformWeight(sl.weight)
		// Round up so no slot ends below its own minimum.
		ratio := (sl.minSize + w - 1) / w
		if cur, ok := perWeight[sl.uniform]; !ok || ratio > cur {
			perWeight[sl.uniform] = ratio
		}
	}
	if len(perWeight) == 0 {
		return
	}
	for i := range s.slots {
		sl := &s.slots[i]
		if sl.uniform != "" {
			sl.minSize = perWeight[sl.uniform] * uniformWeight(sl.weight)
		}
	}
}

// offsetBefore returns the minimum offset of the slot preceding i.
// The boundary before slot 0 is the origin.
func (s *axisSolver) offsetBefore(i int) int {
	if i <= 0 {
		return 0
	}
	return s.slots[i-1].minOffset
}

// resolveMinimums walks the slots forward computing minimum offsets and
// returns the natural size of the axis.
//
// A multi-slot child that needs more room than its slots provide has the
// deficit spread over those slots by weight, or given to the last slot when
// none of them has weight. The deficit becomes part of the slot minimums so
// that minOffset[i] == minOffset[i-1] + minSize[i] holds throughout.
func (s *axisSolver) resolveMinimums() int {
	for i := range s.slots {
		s.slots[i].minOffset = s.offsetBefore(i) + s.slots[i].minSize
		for _, req := range s.slots[i].spans {
			first := i - req.span + 1
			if have := s.slots[i].minOffset - s.offsetBefore(first); req.size > have {
				s.growSpan(first, i, req.size-have)
			}
		}
	}
	return s.slots[len(s.slots)-1].minOffset
}

// growSpan adds deficit to the minimum sizes of slots first..last.
func (s *axisSolver) growSpan(first, last, deficit int) {
	total := 0
	for j := first; j <= last; j++ {
		total += s.slots[j].weight
	}
	if total == 0 {
		s.slots[last].minSize += deficit
	} else {
		cum, given := 0, 0
		for j := first; j <= last; j++ {
			cum += s.slots[j].weight
			share := deficit*cum/total - given
			s.slots[j].minSize += share
			given += share
		}
	}
	s.reoffset(first, last)
}

// reoffset recomputes minimum offsets of slots first..last from their sizes.
func (s *axisSolver) reoffset(first, last int) {
	for j := first; j <= last; j++ {
		s.slots[j].minOffset = s.offsetBefore(j) + s.slots[j].minSize
	}
}

// resolveMaximums walks the slots backward computing the largest offset each
// boundary can take while still leaving room for everything after it.
// target must be at least the natural size.
func (s *axisSolver) resolveMaximums(target int) {
	for i := range s.slots {
		s.slots[i].maxOffset = target
	}
	for i := len(s.slots) - 1; i >= 0; i-- {
		sl := &s.slots[i]
		for _, req := range sl.spans {
			before := i - req.span
			if before < 0 {
				continue
			}
			if limit := sl.maxOffset - req.size; limit < s.slots[before].maxOffset {
				s.slots[before].maxOffset = limit
			}
		}
		if i == 0 {
			continue
		}
		if limit := sl.maxOffset - sl.minSize; limit < s.slots[i-1].maxOffset {
			s.slots[i-1].maxOffset = limit
		}
	}
}

// pinned reports whether slot i has exactly one feasible offset.
func (s *axisSolver) pinned(i int) bool {
	return s.slots[i].minOffset == s.slots[i].maxOffset
}

// offsets returns the resolved trailing-edge offset of every slot.
func (s *axisSolver) offsets() []int {
	out := make([]int, len(s.slots))
	offset := 0
	for i := range s.slots {
		offset += s.slots[i].minSize
		out[i] = offset
	}
	return out
}
