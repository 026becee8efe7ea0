// Package recycle holds released objects for reuse.
package recycle

// Pool is a free list of T. It is not safe for concurrent use; each owner
// keeps its own.
type Pool[T any] struct {
	free  []T
	alloc func() T
	reset func(T)
}

// New returns a pool that allocates with alloc when empty and clears
// objects with reset when they are returned.
func New[T any](alloc func() T, reset func(T)) *Pool[T] {
	return &Pool[T]{alloc: alloc, reset: reset}
}

// Get returns a pooled object, or a fresh one when none is free.
func (p *Pool[T]) Get() T {
	n := len(p.free)
	if n == 0 {
		return p.alloc()
	}
	v := p.free[n-1]
	var zero T
	p.free[n-1] = zero
	p.free = p.free[:n-1]
	return v
}

// Put resets v and keeps it for a later Get.
func (p *Pool[T]) Put(v T) {
	if p.reset != nil {
		p.reset(v)
	}
	p.free = append(p.free, v)
}

// Idle reports how many objects are waiting for reuse.
func (p *Pool[T]) Idle() int { return len(p.free) }
