package rbheap

import "testing"

func TestMallocZeroReturnsNull(t *testing.T) {
	a := newTestArena(t)
	p, ok := a.Malloc(0)
	if ok || p != Null {
		t.Fatalf("Malloc(0) = (%d, %v), want (Null, false)", p, ok)
	}
}

func TestMallocReturnsAlignedAndUsableBlock(t *testing.T) {
	a := newTestArena(t)
	for _, n := range []uint32{1, 8, 40, 100, 4096} {
		p, ok := a.Malloc(n)
		if !ok {
			t.Fatalf("Malloc(%d) failed", n)
		}
		if p%dSize != 0 {
			t.Fatalf("Malloc(%d) returned unaligned pointer %d", n, p)
		}
		if a.size(p) < minBlock {
			t.Fatalf("Malloc(%d) returned block smaller than MIN: %d", n, a.size(p))
		}
		if !a.alloc(p) {
			t.Fatalf("Malloc(%d) returned a block not marked allocated", n)
		}
	}
	if err := a.Validate(); err != nil {
		t.Fatalf("Validate after several mallocs: %v", err)
	}
}

func TestFreeUnsetPointerIsNoOp(t *testing.T) {
	a := newTestArena(t)
	before := a.tree.Root
	a.Free(Null, false)
	if a.tree.Root != before {
		t.Fatalf("Free(Null, false) mutated the tree")
	}
}

func TestFreeThenMallocReusesSpace(t *testing.T) {
	a := newTestArena(t)
	p, ok := a.Malloc(100)
	if !ok {
		t.Fatalf("Malloc failed")
	}
	before := a.Break()
	a.Free(p, true)

	q, ok := a.Malloc(100)
	if !ok {
		t.Fatalf("Malloc after free failed")
	}
	if q != p {
		t.Fatalf("Malloc after matching free did not reuse the freed block: got %d, want %d", q, p)
	}
	if a.Break() != before {
		t.Fatalf("Malloc after free extended the heap unexpectedly")
	}
}

func TestAdjustSizeHonorsMinimumAndAlignment(t *testing.T) {
	cases := []struct{ n, want uint32 }{
		{1, minBlock},
		{dSize, minBlock},
		{minBlock - dSize, minBlock},
		{41, 56},
	}
	for _, c := range cases {
		if got := adjustSize(c.n); got != c.want {
			t.Fatalf("adjustSize(%d) = %d, want %d", c.n, got, c.want)
		}
	}
}

func TestReallocZeroBehavesLikeFree(t *testing.T) {
	a := newTestArena(t)
	p, ok := a.Malloc(100)
	if !ok {
		t.Fatalf("Malloc failed")
	}
	q, ok := a.Realloc(p, true, 0)
	if ok || q != Null {
		t.Fatalf("Realloc(p, true, 0) = (%d, %v), want (Null, false)", q, ok)
	}
	if a.alloc(p) {
		t.Fatalf("Realloc(p, true, 0) did not free p")
	}
}

func TestReallocUnsetBehavesLikeMalloc(t *testing.T) {
	a := newTestArena(t)
	p, ok := a.Realloc(Null, false, 64)
	if !ok {
		t.Fatalf("Realloc(Null, false, 64) failed")
	}
	if a.size(p) < 64+dSize {
		t.Fatalf("Realloc-as-malloc returned too small a block")
	}
}

func TestReallocPreservesContent(t *testing.T) {
	a := newTestArena(t)
	p, ok := a.Malloc(32)
	if !ok {
		t.Fatalf("Malloc failed")
	}
	payload := a.Bytes(p, 32)
	for i := range payload {
		payload[i] = byte(i + 1)
	}

	q, ok := a.Realloc(p, true, 4096)
	if !ok {
		t.Fatalf("Realloc failed")
	}
	got := a.Bytes(q, 32)
	for i := range got {
		if got[i] != byte(i+1) {
			t.Fatalf("content mismatch at byte %d: got %d, want %d", i, got[i], i+1)
		}
	}
}
