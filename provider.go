package rbheap

import "errors"

// ErrOutOfMemory is returned by a BreakProvider when it cannot grant
// the requested region, and surfaces from New, Malloc, and Realloc.
var ErrOutOfMemory = errors.New("rbheap: out of memory")

// BreakProvider models the sbrk-style external collaborator from §6:
// extend the heap by n bytes and return the start of the new region
// (the old break), or ErrOutOfMemory. n is always a nonzero multiple
// of wSize.
type BreakProvider interface {
	Sbrk(n uint32) (base uint32, err error)
}

// defaultCapacity is the address-space ceiling FixedCapacityProvider
// enforces when none is given, large enough for sustained testing
// without resembling a production memory budget.
const defaultCapacity = 64 * 1024 * 1024

// FixedCapacityProvider models sbrk's real contract: it hands out
// addresses within a bound, it does not itself hold bytes. The Arena
// that owns the real backing slice grows that slice in lockstep with
// every successful Sbrk call, so Ptr values (plain integer offsets,
// never Go pointers) stay meaningful across the whole run regardless
// of whether that growth reallocates the slice underneath.
type FixedCapacityProvider struct {
	Capacity uint32
	cursor   uint32
}

// NewFixedCapacityProvider enforces the given address-space ceiling
// in bytes. A capacity of 0 selects defaultCapacity.
func NewFixedCapacityProvider(capacity uint32) *FixedCapacityProvider {
	if capacity == 0 {
		capacity = defaultCapacity
	}
	return &FixedCapacityProvider{Capacity: capacity}
}

func (p *FixedCapacityProvider) Sbrk(n uint32) (uint32, error) {
	if n == 0 || uint64(p.cursor)+uint64(n) > uint64(p.Capacity) {
		return 0, ErrOutOfMemory
	}
	base := p.cursor
	p.cursor += n
	return base, nil
}

// FaultingProvider wraps another BreakProvider and refuses every call
// from the Nth onward (1-indexed), letting tests exercise the
// OutOfMemory path deterministically instead of exhausting real
// memory to trigger it.
type FaultingProvider struct {
	Inner  BreakProvider
	FailAt uint32
	calls  uint32
}

func (p *FaultingProvider) Sbrk(n uint32) (uint32, error) {
	p.calls++
	if p.FailAt != 0 && p.calls >= p.FailAt {
		return 0, ErrOutOfMemory
	}
	return p.Inner.Sbrk(n)
}
