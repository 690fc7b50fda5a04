package rbheap

const chunkBytes = chunkWords * wSize

// adjustSize rounds a user request of n bytes up to a D-aligned block
// size that also has room for the D bytes of header+footer overhead,
// clamped to the minimum block size. This single formula is
// equivalent to mm.c's two-branch special case (n <= dSize vs. not)
// for every n, so there is no separate small-request branch here.
func adjustSize(n uint32) uint32 {
	asize := dSize * ((n + dSize + dSize - 1) / dSize)
	if asize < minBlock {
		asize = minBlock
	}
	return asize
}

// Malloc allocates at least n bytes and returns a payload pointer, or
// (Null, false) if n == 0 or the heap could not be extended.
func (a *Arena) Malloc(n uint32) (Ptr, bool) {
	if n == 0 {
		return Null, false
	}
	asize := adjustSize(n)

	bp, ok := a.findFit(asize)
	if !ok {
		extendBytes := asize
		if chunkBytes > extendBytes {
			extendBytes = chunkBytes
		}
		grown, err := a.extend(extendBytes / wSize)
		if err != nil {
			return Null, false
		}
		bp = grown
	}

	a.place(bp, asize)
	return bp, true
}

// place removes bp from the free-space index and marks asize bytes of
// it allocated, splitting off and reinserting a free remainder when
// the remainder would still meet the minimum block size.
func (a *Arena) place(bp Ptr, asize uint32) {
	a.removeFreeBlock(bp)
	csize := a.size(bp)

	if csize-asize >= minBlock {
		a.setTags(bp, asize, true)
		rem := a.nextBlock(bp)
		a.setTags(rem, csize-asize, false)
		a.insertFreeBlock(rem)
		return
	}
	a.setTags(bp, csize, true)
}

// Free releases p. An unset p (ok == false) is a legal no-op.
func (a *Arena) Free(p Ptr, ok bool) {
	if !ok {
		return
	}
	a.setTags(p, a.size(p), false)
	a.coalesce(p)
}

// Realloc resizes the allocation at p to n bytes, per §4.6's three
// paths (shrink/exact, in-place right-neighbor fusion, fallback
// copy). n == 0 behaves exactly like Free. An unset p behaves exactly
// like Malloc(n).
func (a *Arena) Realloc(p Ptr, ok bool, n uint32) (Ptr, bool) {
	if n == 0 {
		a.Free(p, ok)
		return Null, false
	}
	if !ok {
		return a.Malloc(n)
	}

	csize := a.size(p)
	asize := adjustSize(n)

	if asize <= csize {
		if csize-asize >= minBlock {
			a.setTags(p, asize, true)
			rem := a.nextBlock(p)
			a.setTags(rem, csize-asize, false)
			a.insertFreeBlock(rem)
		}
		return p, true
	}

	if next := a.nextBlock(p); !a.alloc(next) {
		if fused := csize + a.size(next); fused >= asize {
			a.removeFreeBlock(next)
			if fused-asize >= minBlock {
				a.setTags(p, asize, true)
				rem := a.nextBlock(p)
				a.setTags(rem, fused-asize, false)
				a.insertFreeBlock(rem)
			} else {
				a.setTags(p, fused, true)
			}
			return p, true
		}
	}

	newPtr, ok2 := a.Malloc(n)
	if !ok2 {
		return Null, false
	}
	copyLen := n
	if usable := csize - dSize; usable < copyLen {
		copyLen = usable
	}
	copy(a.mem[newPtr:newPtr+copyLen], a.mem[p:p+copyLen])
	a.Free(p, true)
	return newPtr, true
}
