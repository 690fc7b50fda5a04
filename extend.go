package rbheap

// extend grows the heap by at least words words (rounded up to an
// even count, per §4.2), lays down a new free block spanning the
// granted region, and coalesces it with the heap's current last
// block if that neighbor is free. The new block's header reuses the
// word that was the old epilogue header: Sbrk's returned base is the
// first byte of newly granted memory, which is simultaneously one
// word past where the old epilogue header lived, so header(bp) lands
// exactly there without any separate bookkeeping.
func (a *Arena) extend(words uint32) (Ptr, error) {
	if words%2 != 0 {
		words++
	}
	size := words * wSize

	bp, err := a.grow(size)
	if err != nil {
		return Null, err
	}

	a.setTags(bp, size, false)
	a.setWordAt(bp+size-wSize, packTag(0, true)) // new epilogue header

	return a.coalesce(bp)
}
