package rbheap

import (
	"errors"
	"fmt"

	set3 "github.com/TomTonic/Set3"

	"github.com/TomTonic/rbheap/rbtree"
)

// Validate walks the heap and the free-space tree independently and
// cross-checks every invariant from §8 that can be checked without
// altering state. It is debug-only: callers invoke it between
// operations, never from inside one, and it never mutates the heap,
// the tree, or the NIL sentinel.
func (a *Arena) Validate() error {
	var errs []error

	heapFree, err := a.walkHeap()
	if err != nil {
		errs = append(errs, err)
	}

	treeFree, err := a.walkTree()
	if err != nil {
		errs = append(errs, err)
	}

	if (store{a}).Color(rbtree.Nil) != rbtree.Black {
		errs = append(errs, errors.New("rbheap: NIL sentinel is not black"))
	}

	if heapFree != nil && treeFree != nil && !heapFree.Equals(treeFree) {
		errs = append(errs, errors.New("rbheap: free set reachable from root does not match the heap walk"))
	}

	return errors.Join(errs...)
}

// walkHeap traverses every block from the prologue payload to the
// epilogue header, checking I1 (header==footer), D-alignment, and I2
// (no two consecutive free blocks), and returns the set of free block
// offsets it saw.
func (a *Arena) walkHeap() (*set3.Set3[Ptr], error) {
	free := set3.Empty[Ptr]()
	var errs []error

	prevFree := false
	for bp := a.base; a.size(bp) != 0; bp = a.nextBlock(bp) {
		header := a.wordAt(a.headerOff(bp))
		footer := a.wordAt(a.footerOff(bp))
		if header != footer {
			errs = append(errs, fmt.Errorf("rbheap: block at %d has mismatched header/footer", bp))
		}
		size := unpackSize(header)
		if size%dSize != 0 {
			errs = append(errs, fmt.Errorf("rbheap: block at %d has unaligned size %d", bp, size))
		}

		isFree := !unpackAlloc(header)
		if isFree && prevFree {
			errs = append(errs, fmt.Errorf("rbheap: two adjacent free blocks at/before %d", bp))
		}
		if isFree {
			free.Add(bp)
		}
		prevFree = isFree
	}

	return free, errors.Join(errs...)
}

// walkTree walks every node reachable from the tree root, checking
// the red-black properties and returning the set of offsets it
// visited.
func (a *Arena) walkTree() (*set3.Set3[Ptr], error) {
	seen := set3.Empty[Ptr]()
	s := store{a}

	if root := a.tree.Root; root != rbtree.Nil && s.Color(root) != rbtree.Black {
		return seen, errors.New("rbheap: tree root is not black")
	}

	_, err := a.checkSubtree(s, a.tree.Root, seen, map[Ptr]bool{})
	return seen, err
}

func (a *Arena) checkSubtree(s store, ref rbtree.Ref, seen *set3.Set3[Ptr], visiting map[Ptr]bool) (int, error) {
	if ref == rbtree.Nil {
		return 1, nil
	}
	if visiting[ref] {
		return 0, fmt.Errorf("rbheap: cycle detected at tree node %d", ref)
	}
	visiting[ref] = true
	seen.Add(ref)

	if s.Color(ref) == rbtree.Red {
		if s.Color(s.Left(ref)) == rbtree.Red || s.Color(s.Right(ref)) == rbtree.Red {
			return 0, fmt.Errorf("rbheap: red node %d has a red child", ref)
		}
	}

	lh, err := a.checkSubtree(s, s.Left(ref), seen, visiting)
	if err != nil {
		return 0, err
	}
	rh, err := a.checkSubtree(s, s.Right(ref), seen, visiting)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, fmt.Errorf("rbheap: unequal black height through node %d (%d vs %d)", ref, lh, rh)
	}

	if s.Color(ref) == rbtree.Black {
		return lh + 1, nil
	}
	return lh, nil
}
