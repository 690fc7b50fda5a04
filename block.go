package rbheap

import "unsafe"

// wordAt and setWordAt give the block-layout arithmetic in §4.1 a
// single point of unsafe access: every header/footer read or write in
// this file goes through one of these two functions, cast over the
// arena's backing slice exactly the way the teacher's art package
// casts node-type structs over its backing bytes. Only plain integers
// ever live at these offsets, never a Go pointer, so a.mem need not be
// scanned by the garbage collector as containing references.
func (a *Arena) wordAt(off uint32) uint32 {
	return *(*uint32)(unsafe.Pointer(&a.mem[off]))
}

func (a *Arena) setWordAt(off uint32, v uint32) {
	*(*uint32)(unsafe.Pointer(&a.mem[off])) = v
}

func (a *Arena) headerOff(bp Ptr) uint32 { return bp - wSize }
func (a *Arena) footerOff(bp Ptr) uint32 { return bp + a.size(bp) - dSize }

func (a *Arena) size(bp Ptr) uint32  { return unpackSize(a.wordAt(a.headerOff(bp))) }
func (a *Arena) alloc(bp Ptr) bool   { return unpackAlloc(a.wordAt(a.headerOff(bp))) }

// setTags writes size|allocated to both bp's header and footer.
func (a *Arena) setTags(bp Ptr, size uint32, allocated bool) {
	w := packTag(size, allocated)
	a.setWordAt(a.headerOff(bp), w)
	a.setWordAt(bp+size-dSize, w)
}

func (a *Arena) nextBlock(bp Ptr) Ptr { return bp + a.size(bp) }

// prevBlock reads the word immediately before bp (the previous
// block's footer) to find that block's size, then steps back by it.
func (a *Arena) prevBlock(bp Ptr) Ptr {
	prevFooter := a.wordAt(bp - dSize)
	return bp - unpackSize(prevFooter)
}
