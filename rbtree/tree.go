// Package rbtree implements a red-black tree whose nodes are not
// owned or allocated by the tree itself but live inside storage a
// caller supplies through the Store interface. In rbheap's case that
// storage is the payload bytes of free heap blocks: a free block "is"
// a tree node for as long as it stays free, and stops being one the
// moment it is allocated or coalesced away.
//
// The tree is a multiset ordered by Store.Size: insertion descends
// left on strictly-less, right otherwise, so equal keys always land
// in the right subtree rather than being rejected or chained off to
// one side specially.
package rbtree

// Ref addresses a node within a Store. It is a relation, not a
// pointer: the tree does not own the memory a Ref designates, it only
// rearranges which Refs point to which.
type Ref = uint32

// Nil is the shared sentinel terminating every path in the tree. A
// Store must answer Color(Nil) == Black at all times; Parent/Left/
// Right of Nil may be read and written transiently by the fixup
// routines and must be treated as opaque scratch space by everything
// else.
const Nil Ref = ^Ref(0)

// Color is a red-black node color.
type Color uint8

const (
	Black Color = 0
	Red   Color = 1
)

// Store gives the tree engine access to the fields a node needs
// (parent/left/right/color) and to the ordering key (Size), without
// the engine knowing how or where those fields are physically stored.
// Every method must treat Nil as a valid, distinguished Ref: Size is
// never called with Nil, but Parent/Left/Right/Color/SetColor are.
type Store interface {
	// Size returns the ordering key for ref (a free block's total
	// size in bytes). Never called with ref == Nil.
	Size(ref Ref) uint32

	Parent(ref Ref) Ref
	SetParent(ref Ref, p Ref)
	Left(ref Ref) Ref
	SetLeft(ref Ref, l Ref)
	Right(ref Ref) Ref
	SetRight(ref Ref, r Ref)
	Color(ref Ref) Color
	SetColor(ref Ref, c Color)
}

// Tree is a red-black tree of Refs backed by a Store. The zero value,
// with Root left at its default of 0, is NOT an empty tree — callers
// must initialize Root to Nil before use.
type Tree struct {
	Root Ref
}

func (t *Tree) leftRotate(s Store, x Ref) {
	y := s.Right(x)
	s.SetRight(x, s.Left(y))
	if s.Left(y) != Nil {
		s.SetParent(s.Left(y), x)
	}
	s.SetParent(y, s.Parent(x))
	switch {
	case s.Parent(x) == Nil:
		t.Root = y
	case x == s.Left(s.Parent(x)):
		s.SetLeft(s.Parent(x), y)
	default:
		s.SetRight(s.Parent(x), y)
	}
	s.SetLeft(y, x)
	s.SetParent(x, y)
}

func (t *Tree) rightRotate(s Store, x Ref) {
	y := s.Left(x)
	s.SetLeft(x, s.Right(y))
	if s.Right(y) != Nil {
		s.SetParent(s.Right(y), x)
	}
	s.SetParent(y, s.Parent(x))
	switch {
	case s.Parent(x) == Nil:
		t.Root = y
	case x == s.Right(s.Parent(x)):
		s.SetRight(s.Parent(x), y)
	default:
		s.SetLeft(s.Parent(x), y)
	}
	s.SetRight(y, x)
	s.SetParent(x, y)
}
