package grid

// shrink takes deficit pixels away from weighted slots when the target is
// smaller than the natural size. Slots without weight keep their minimum.
//
// Each round splits the remaining deficit over the slots that can still
// give space, in proportion to weight. A slot that would go below its
// configured floor stops there and leaves the set, and the rest is split
// again next round. A round without such a clamp absorbs everything, so
// the loop runs at most len(active)+1 rounds.
func (s *axisSolver) shrink(deficit int) {
	var active []int
	for i := range s.slots {
		if s.slots[i].weight > 0 && s.slots[i].minSize > s.slots[i].floor {
			active = append(active, i)
		}
	}

	limit := len(active) + 1
	for round := 0; deficit > 0 && len(active) > 0; round++ {
		invariant(round < limit, "shrink did not converge",
			"axis", s.axis, "round", round, "deficit", deficit)
		if round >= limit {
			break
		}

		total := 0
		for _, i := range active {
			total += s.slots[i].weight
		}

		next := make([]int, 0, len(active))
		cum, given, taken := 0, 0, 0
		for _, i := range active {
			sl := &s.slots[i]
			cum += sl.weight
			share := deficit*cum/total - given
			given += share

			room := sl.minSize - sl.floor
			if share >= room {
				share = room
			} else {
				next = append(next, i)
			}
			sl.minSize -= share
			taken += share
		}
		deficit -= taken
		active = next
	}

	s.reoffset(0, len(s.slots)-1)
}
