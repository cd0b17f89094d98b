package arena

import "fmt"

// Ref is a typed index into a Pool. The zero Ref refers to nothing.
type Ref[T any] struct {
	idx int32 // 1-based
}

// IsNil reports whether r is the zero Ref.
func (r Ref[T]) IsNil() bool { return r.idx == 0 }

// Pool stores values of one node type. Values are addressed by Ref and stay
// put until the owning arena is released.
type Pool[T any] struct {
	arena *Arena
	items []T
}

// NewPool returns an empty pool charging a.
func NewPool[T any](a *Arena) *Pool[T] {
	p := &Pool[T]{arena: a}
	a.onRelease(func() { p.items = nil })
	return p
}

// New stores v and returns its Ref.
func (p *Pool[T]) New(v T) (Ref[T], error) {
	if err := p.arena.Reserve(1); err != nil {
		return Ref[T]{}, err
	}
	p.items = append(p.items, v)
	return Ref[T]{idx: int32(len(p.items))}, nil
}

// Get returns a pointer to the value behind r. The pointer is valid until
// the next New on the same pool.
func (p *Pool[T]) Get(r Ref[T]) *T {
	if p.arena.released {
		panic("arena: use of released pool")
	}
	if r.idx <= 0 || int(r.idx) > len(p.items) {
		panic(fmt.Sprintf("arena: invalid ref %d (pool has %d items)", r.idx, len(p.items)))
	}
	return &p.items[r.idx-1]
}

// Len returns the number of values stored.
func (p *Pool[T]) Len() int { return len(p.items) }
