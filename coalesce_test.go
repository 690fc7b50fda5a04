package rbheap

import (
	"testing"

	"github.com/TomTonic/rbheap/rbtree"
)

func countTreeNodes(a *Arena, ref rbtree.Ref) int {
	if ref == rbtree.Nil {
		return 0
	}
	s := store{a}
	return 1 + countTreeNodes(a, s.Left(ref)) + countTreeNodes(a, s.Right(ref))
}

// TestCoalesceThreeWayMerge exercises the same three-way merge as §8
// scenario S3 with a different free order: three adjacent
// allocations, freed middle first, then left, then right, end up as
// a single free block via the 0,0 case, after passing through the
// 1,1 and 1,0 cases along the way.
func TestCoalesceThreeWayMerge(t *testing.T) {
	a := newTestArena(t)
	initialFree := a.size(a.tree.Root)

	x, ok := a.Malloc(100)
	if !ok {
		t.Fatalf("Malloc a failed")
	}
	y, ok := a.Malloc(100)
	if !ok {
		t.Fatalf("Malloc b failed")
	}
	z, ok := a.Malloc(100)
	if !ok {
		t.Fatalf("Malloc c failed")
	}

	// case 1,1: neither neighbor of y is free yet.
	a.Free(y, true)
	if a.alloc(x) != true || a.alloc(z) != true {
		t.Fatalf("neighbors of y should still be allocated")
	}
	if countTreeNodes(a, a.tree.Root) != 2 {
		t.Fatalf("expected 2 free nodes after freeing the middle block alone")
	}

	// case 1,0: freeing x merges it rightward into the freed y.
	a.Free(x, true)
	if a.alloc(x) {
		t.Fatalf("x should have merged into a free block")
	}
	if got, want := a.size(x), adjustSize(100)*2; got != want {
		t.Fatalf("merged x+y size = %d, want %d", got, want)
	}

	// case 0,0: freeing z merges both the x+y run and the trailing
	// free tail into one block spanning the whole original chunk.
	a.Free(z, true)
	if countTreeNodes(a, a.tree.Root) != 1 {
		t.Fatalf("expected exactly one free block after the three-way merge")
	}
	if got := a.size(x); got != initialFree {
		t.Fatalf("after full three-way merge, free size = %d, want the original chunk size %d", got, initialFree)
	}
	if err := a.Validate(); err != nil {
		t.Fatalf("Validate after three-way merge: %v", err)
	}
}

func TestCoalesceCaseZeroOne(t *testing.T) {
	a := newTestArena(t)
	x, ok := a.Malloc(100)
	if !ok {
		t.Fatalf("Malloc x failed")
	}
	y, ok := a.Malloc(100)
	if !ok {
		t.Fatalf("Malloc y failed")
	}
	// z keeps y's right neighbor allocated, so the free tail is not
	// adjacent to y.
	if _, ok := a.Malloc(100); !ok {
		t.Fatalf("Malloc z failed")
	}

	a.Free(x, true) // x's right neighbor (y) is allocated, left (prologue) is allocated: case 1,1.
	a.Free(y, true) // y's left neighbor (x) is now free, right (z) is allocated: case 0,1.

	if countTreeNodes(a, a.tree.Root) != 2 {
		t.Fatalf("expected x and y merged to one node, plus the separate tail")
	}
	if got, want := a.size(x), adjustSize(100)*2; got != want {
		t.Fatalf("merged x+y size = %d, want %d", got, want)
	}
	if err := a.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}
