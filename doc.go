// Package rbheap implements a general-purpose dynamic storage
// allocator over a single contiguous, monotonically extensible byte
// region. Free space is indexed by a self-balancing red-black tree
// (package rbtree) threaded through the payload bytes of free blocks
// themselves, with boundary-tag coalescing keeping adjacent free
// regions merged. There is no auxiliary metadata region for the
// index: a free block's own bytes are its tree node.
//
// An Arena is one independent allocator instance. It is not safe for
// concurrent use; callers sharing an Arena across goroutines must
// serialize every call themselves.
package rbheap
