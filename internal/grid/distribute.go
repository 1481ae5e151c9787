package grid

// distribute hands the space between the natural size and the target to
// the slots whose position is not yet pinned. Runs of unpinned slots are
// filled one at a time.
func (s *axisSolver) distribute() {
	n := len(s.slots)
	for start := 0; start < n; {
		if s.pinned(start) {
			start++
			continue
		}
		end := start + 1
		for end < n && !s.pinned(end) {
			end++
		}
		end = min(end, n-1)
		s.fill(start, end, 0)
		start = end + 1
	}
}

// runWeights returns the weights of slots start..end and their sum.
// A run without weight grows evenly.
func (s *axisSolver) runWeights(start, end int) ([]int, int) {
	weights := make([]int, end-start+1)
	total := 0
	for j := start; j <= end; j++ {
		weights[j-start] = s.slots[j].weight
		total += s.slots[j].weight
	}
	if total == 0 {
		for j := range weights {
			weights[j] = 1
		}
		total = len(weights)
	}
	return weights, total
}

// fill grows slots start..end so the trailing edge of end reaches its
// maximum offset. Growth is split by cumulative weight, so rounding never
// loses a pixel: the last slot's boundary lands exactly on target.
//
// If a proportional split would push an inner boundary past its maximum,
// the tightest such boundary is pinned at its maximum and the runs on each
// side are filled separately. Every split pins one boundary, so recursion
// depth is bounded by the run length.
func (s *axisSolver) fill(start, end, depth int) {
	invariant(depth <= len(s.slots), "slack distribution did not converge",
		"axis", s.axis, "start", start, "end", end, "depth", depth)

	base := s.offsetBefore(start)
	need := 0
	for j := start; j <= end; j++ {
		need += s.slots[j].minSize
	}
	extra := s.slots[end].maxOffset - base - need
	if extra <= 0 {
		// An earlier sibling run may have moved base.
		s.reoffset(start, end)
		return
	}

	weights, total := s.runWeights(start, end)

	pin, pinRoom, pinCum := -1, 0, 0
	cum, offset := 0, base
	for j := start; j < end; j++ {
		cum += weights[j-start]
		offset += s.slots[j].minSize
		if cum == 0 {
			continue
		}
		room := s.slots[j].maxOffset - offset
		// The boundary fits when floor(extra*cum/total) <= room.
		if extra*cum < (room+1)*total {
			continue
		}
		if pin < 0 || room*pinCum < pinRoom*cum {
			pin, pinRoom, pinCum = j, room, cum
		}
	}

	if pin >= 0 {
		s.fill(start, pin, depth+1)
		s.fill(pin+1, end, depth+1)
		return
	}

	cum, given := 0, 0
	for j := start; j <= end; j++ {
		cum += weights[j-start]
		share := extra*cum/total - given
		s.slots[j].minSize += share
		given += share
	}
	s.reoffset(start, end)

	for j := end; j > start; j-- {
		if limit := s.slots[j].maxOffset - s.slots[j].minSize; limit < s.slots[j-1].maxOffset {
			s.slots[j-1].maxOffset = limit
		}
	}
}
