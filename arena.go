package rbheap

import "github.com/TomTonic/rbheap/rbtree"

// Arena is one independent allocator instance: its own backing bytes,
// its own red-black tree root, its own NIL sentinel. This replaces
// mm.c's process-global statics (heap_base, root, the static NIL
// node) with ordinary instance state, so independent Arenas in the
// same process never share a NIL and tests can create as many
// isolated heaps as they like.
type Arena struct {
	mem      []byte
	provider BreakProvider
	base     Ptr // heap_base: the prologue block's payload address
	tree     rbtree.Tree
	nilNode  node
}

// New creates an Arena backed by provider, laying down the prologue
// and epilogue sentinels and performing the initial CHUNK-sized
// extension, mirroring mm_init's fixed sequence. A nil provider
// selects a FixedCapacityProvider with the default capacity.
func New(provider BreakProvider) (*Arena, error) {
	if provider == nil {
		provider = NewFixedCapacityProvider(0)
	}
	a := &Arena{provider: provider}
	a.tree.Root = rbtree.Nil
	a.nilNode = node{
		parent: uint64(rbtree.Nil),
		left:   uint64(rbtree.Nil),
		right:  uint64(rbtree.Nil),
		color:  uint64(rbtree.Black),
	}

	base, err := a.grow(4 * wSize)
	if err != nil {
		return nil, err
	}
	bp := base + 2*wSize // prologue payload: a zero-byte block of size dSize
	a.setWordAt(base+wSize, packTag(dSize, true))   // prologue header
	a.setWordAt(base+2*wSize, packTag(dSize, true)) // prologue footer (== bp itself)
	a.setWordAt(base+3*wSize, packTag(0, true))     // epilogue header
	a.base = bp

	if _, err := a.extend(chunkWords); err != nil {
		return nil, err
	}
	return a, nil
}

// grow asks the provider for n more bytes of address space and, on
// success, extends the backing slice to match. base always equals
// len(a.mem) before the append, by construction: nothing grows a.mem
// except this function, and it always grows in lockstep with a
// successful Sbrk.
func (a *Arena) grow(n uint32) (Ptr, error) {
	base, err := a.provider.Sbrk(n)
	if err != nil {
		return Null, err
	}
	a.mem = append(a.mem, make([]byte, n)...)
	return base, nil
}

// Base returns heap_lo(): the prologue block's payload address.
// Debug use only, per §6.
func (a *Arena) Base() Ptr { return a.base }

// Break returns heap_hi(): one past the last byte currently backing
// the heap (the epilogue header's own last byte). Debug use only.
func (a *Arena) Break() Ptr { return uint32(len(a.mem)) }

// Bytes returns a view over n payload bytes starting at p, for
// callers that need to read or write the content of an allocation.
// Out-of-range (p, n) panics, same as any other out-of-bounds slice
// access in Go; this is not meant to validate p as a pointer this
// Arena actually handed out (§7: that class of misuse is undefined
// behavior, not a reported error).
func (a *Arena) Bytes(p Ptr, n uint32) []byte {
	return a.mem[p : p+n]
}
