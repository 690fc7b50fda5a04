package rbheap

import (
	"unsafe"

	"github.com/TomTonic/rbheap/rbtree"
)

// node is the free-block overlay from §3: four fields at fixed
// offsets from the block's payload start, each dSize bytes wide even
// though parent/left/right only ever hold a 32-bit offset and color
// only ever uses its low byte — the extra width is what keeps the
// layout matching the payload-offset contract (0·D, 1·D, 2·D, 3·D)
// byte for byte. Every field is a plain integer, never a Go pointer,
// so casting this struct over arena bytes never hands the GC a
// reference to scan.
type node struct {
	parent uint64
	left   uint64
	right  uint64
	color  uint64
}

const nodeSize = uint32(unsafe.Sizeof(node{})) // 4*dSize == 32, <= minBlock-wSize*2

// nodeAt overlays the node struct on bp's payload bytes, the same
// unsafe.Pointer-cast-over-a-byte-slice technique the teacher's art
// package uses for its node kinds.
func (a *Arena) nodeAt(bp Ptr) *node {
	return (*node)(unsafe.Pointer(&a.mem[bp]))
}

// store adapts an Arena to rbtree.Store. Reads/writes addressed at
// rbtree.Nil are redirected to the arena's own nilNode field rather
// than into a.mem, since Nil is not a real block.
type store struct{ a *Arena }

func (s store) n(ref rbtree.Ref) *node {
	if ref == rbtree.Nil {
		return &s.a.nilNode
	}
	return s.a.nodeAt(ref)
}

func (s store) Size(ref rbtree.Ref) uint32 {
	if ref == rbtree.Nil {
		return 0
	}
	return s.a.size(ref)
}

func (s store) Parent(ref rbtree.Ref) rbtree.Ref       { return rbtree.Ref(s.n(ref).parent) }
func (s store) SetParent(ref rbtree.Ref, p rbtree.Ref) { s.n(ref).parent = uint64(p) }
func (s store) Left(ref rbtree.Ref) rbtree.Ref         { return rbtree.Ref(s.n(ref).left) }
func (s store) SetLeft(ref rbtree.Ref, l rbtree.Ref)   { s.n(ref).left = uint64(l) }
func (s store) Right(ref rbtree.Ref) rbtree.Ref        { return rbtree.Ref(s.n(ref).right) }
func (s store) SetRight(ref rbtree.Ref, r rbtree.Ref)  { s.n(ref).right = uint64(r) }

func (s store) Color(ref rbtree.Ref) rbtree.Color {
	return rbtree.Color(s.n(ref).color)
}

func (s store) SetColor(ref rbtree.Ref, c rbtree.Color) {
	s.n(ref).color = uint64(c)
}
