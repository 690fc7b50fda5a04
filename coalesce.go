package rbheap

// coalesce merges a just-freed or just-extended block bp with any
// free immediate neighbors, then inserts the resulting block into the
// free-space index. bp's own header/footer must already be marked
// free and bp must not yet be in the tree; neighbors that get merged
// away are removed from the tree first, per §4.5's four-case table.
func (a *Arena) coalesce(bp Ptr) (Ptr, error) {
	prev := a.prevBlock(bp)
	next := a.nextBlock(bp)
	prevAlloc := a.alloc(prev)
	nextAlloc := a.alloc(next)
	size := a.size(bp)

	switch {
	case prevAlloc && nextAlloc:
		// case 1,1: no neighbor is free, bp is unchanged.

	case prevAlloc && !nextAlloc:
		// case 1,0: absorb the free block to the right.
		a.removeFreeBlock(next)
		size += a.size(next)
		a.setTags(bp, size, false)

	case !prevAlloc && nextAlloc:
		// case 0,1: absorb the free block to the left; bp moves back.
		a.removeFreeBlock(prev)
		size += a.size(prev)
		bp = prev
		a.setTags(bp, size, false)

	default:
		// case 0,0: absorb both neighbors.
		a.removeFreeBlock(prev)
		a.removeFreeBlock(next)
		size += a.size(prev) + a.size(next)
		bp = prev
		a.setTags(bp, size, false)
	}

	a.insertFreeBlock(bp)
	return bp, nil
}
