package rbheap

// Ptr is a heap address: a byte offset into an Arena's backing store,
// not a Go pointer. Offsets stay valid across heap growth even when
// growing the backing slice reallocates it, since a Ptr never refers
// to the slice's memory directly.
type Ptr = uint32

// Null is the distinguished invalid Ptr, returned by Malloc on
// failure and never a valid payload address.
const Null Ptr = 0
