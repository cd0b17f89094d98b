package arena

// Vec is an append-only sequence whose backing store is charged to an
// arena. Capacity grows to 2*cap+1 when full, and the whole new capacity
// is charged, matching what a bump allocator would hand out on realloc.
type Vec[T any] struct {
	arena *Arena
	items []T
}

// NewVec returns an empty Vec charging a.
func NewVec[T any](a *Arena) *Vec[T] {
	v := &Vec[T]{arena: a}
	a.onRelease(func() { v.items = nil })
	return v
}

// Push appends x, growing the backing store if needed.
func (v *Vec[T]) Push(x T) error {
	if v.arena.released {
		return ErrReleased
	}
	if len(v.items) == cap(v.items) {
		newCap := cap(v.items)*2 + 1
		if err := v.arena.Reserve(newCap); err != nil {
			return err
		}
		grown := make([]T, len(v.items), newCap)
		copy(grown, v.items)
		v.items = grown
	}
	v.items = append(v.items, x)
	return nil
}

// Len returns the number of elements.
func (v *Vec[T]) Len() int { return len(v.items) }

// Cap returns the current capacity.
func (v *Vec[T]) Cap() int { return cap(v.items) }

// At returns element i.
func (v *Vec[T]) At(i int) T {
	if v.arena.released {
		panic("arena: use of released vec")
	}
	return v.items[i]
}

// Items returns the elements in insertion order. The slice aliases arena
// memory and must not be kept past Release.
func (v *Vec[T]) Items() []T {
	return v.items[:len(v.items):len(v.items)]
}
