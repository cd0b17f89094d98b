// Package arena implements the per-compilation region that owns every AST
// and IR node.
//
// Design: nodes are never freed one by one. A Pool hands out typed indices
// instead of pointers, and Release drops every pool at once. The budget is
// counted in slots, one per node or queue element.
package arena

import "errors"

var (
	// ErrExhausted is returned when an allocation would exceed the limit.
	ErrExhausted = errors.New("arena exhausted")

	// ErrReleased is returned when allocating from a released arena.
	ErrReleased = errors.New("arena released")
)

// Arena tracks the slot budget shared by all pools created from it.
// It is not safe for concurrent use.
type Arena struct {
	limit    int // 0 means unbounded
	used     int
	released bool
	drops    []func()
}

// New returns an arena that holds at most limit slots. A limit of 0 or
// less means no limit.
func New(limit int) *Arena {
	if limit < 0 {
		limit = 0
	}
	return &Arena{limit: limit}
}

// Reserve charges n slots against the budget.
func (a *Arena) Reserve(n int) error {
	if a.released {
		return ErrReleased
	}
	if n <= 0 {
		return nil
	}
	if a.limit > 0 && a.used+n > a.limit {
		return ErrExhausted
	}
	a.used += n
	return nil
}

// Used returns the number of slots charged so far.
func (a *Arena) Used() int { return a.used }

// Limit returns the slot limit, 0 if unbounded.
func (a *Arena) Limit() int { return a.limit }

// Released reports whether Release has been called.
func (a *Arena) Released() bool { return a.released }

// Release discards everything allocated from the arena. Releasing twice is
// a no-op.
func (a *Arena) Release() {
	if a.released {
		return
	}
	for _, drop := range a.drops {
		drop()
	}
	a.drops = nil
	a.used = 0
	a.released = true
}

func (a *Arena) onRelease(f func()) {
	a.drops = append(a.drops, f)
}
