package rbheap

import "github.com/TomTonic/rbheap/rbtree"

// insertFreeBlock makes bp's payload a fresh tree node and links it
// into the free-space index. bp's header/footer must already mark it
// free; its payload bytes are otherwise untouched by this call except
// for the four node-overlay fields, which are reset here regardless
// of whatever a prior allocation left behind.
func (a *Arena) insertFreeBlock(bp Ptr) {
	n := a.nodeAt(bp)
	n.parent = uint64(rbtree.Nil)
	n.left = uint64(rbtree.Nil)
	n.right = uint64(rbtree.Nil)
	n.color = uint64(rbtree.Red)
	a.tree.Insert(store{a}, bp)
}

func (a *Arena) removeFreeBlock(bp Ptr) {
	a.tree.Remove(store{a}, bp)
}

// findFit returns the best-fit free block for asize, or (Null, false)
// if none exists.
func (a *Arena) findFit(asize uint32) (Ptr, bool) {
	best := a.tree.FindBestFit(store{a}, asize)
	if best == rbtree.Nil {
		return Null, false
	}
	return best, true
}
