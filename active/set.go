// Package active provides the per-subproblem active set: the ordered
// collection of pooled objects currently part of one subproblem's
// relaxation. Positions double as LP row/column numbers, so the set is
// kept dense and removal compacts instead of leaving tombstones.
//
// A Set holds non-owning Handles. Dropping a Set never mutates the pool;
// entries whose payload vanished elsewhere simply resolve to false on At.
package active

import (
	"github.com/hupe1980/cutpool/pool"
)

// Set is one subproblem's active handles with a parallel redundant-age
// counter per position. It is not safe for concurrent use.
type Set[T pool.Item] struct {
	handles []pool.Handle[T]
	age     []int
}

// NewSet creates an empty Set with room for capacity entries. The
// capacity is a hint; Insert grows the set as needed.
func NewSet[T pool.Item](capacity int) *Set[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Set[T]{
		handles: make([]pool.Handle[T], 0, capacity),
		age:     make([]int, 0, capacity),
	}
}

// NewSetFrom creates a Set initialized with the parent's entries and
// redundant ages, as when a child subproblem starts from its father's
// relaxation. The storage is independent; later mutations of either set
// do not affect the other.
func NewSetFrom[T pool.Item](parent *Set[T], capacity int) *Set[T] {
	capacity = max(capacity, parent.Count())
	s := NewSet[T](capacity)
	s.handles = append(s.handles, parent.handles...)
	s.age = append(s.age, parent.age...)
	return s
}

// Insert appends a handle at the tail with redundant age zero.
func (s *Set[T]) Insert(h pool.Handle[T]) {
	s.handles = append(s.handles, h)
	s.age = append(s.age, 0)
}

// InsertAll appends the given handles in order.
func (s *Set[T]) InsertAll(hs ...pool.Handle[T]) {
	for _, h := range hs {
		s.Insert(h)
	}
}

// Remove deletes the entries at the given positions and left-shifts the
// survivors, keeping their relative order and their ages aligned. The
// indices must be strictly increasing and within range; anything else is
// a caller bug and panics.
func (s *Set[T]) Remove(indices []int) {
	if len(indices) == 0 {
		return
	}

	prev := -1
	for _, i := range indices {
		if i < 0 || i >= len(s.handles) {
			panic("active: remove index out of range")
		}
		if i <= prev {
			panic("active: remove indices not strictly increasing")
		}
		prev = i
	}

	w := indices[0]
	k := 0
	for r := indices[0]; r < len(s.handles); r++ {
		if k < len(indices) && r == indices[k] {
			k++
			continue
		}
		s.handles[w] = s.handles[r]
		s.age[w] = s.age[r]
		w++
	}

	clear(s.handles[w:])
	s.handles = s.handles[:w]
	s.age = s.age[:w]
}

// At resolves the payload at position i. False means the object at this
// position vanished from the pool, which every call site treats as a
// routine outcome. A position outside [0, Count()) panics.
func (s *Set[T]) At(i int) (T, bool) {
	s.check(i)
	return s.handles[i].Get()
}

// HandleAt returns the handle at position i.
func (s *Set[T]) HandleAt(i int) pool.Handle[T] {
	s.check(i)
	return s.handles[i]
}

// Count returns the number of entries.
func (s *Set[T]) Count() int {
	return len(s.handles)
}

// Capacity returns the current storage capacity.
func (s *Set[T]) Capacity() int {
	return cap(s.handles)
}

// RedundantAge returns the counter at position i.
func (s *Set[T]) RedundantAge(i int) int {
	s.check(i)
	return s.age[i]
}

// IncrementRedundantAge bumps the counter at position i by one round.
func (s *Set[T]) IncrementRedundantAge(i int) {
	s.check(i)
	s.age[i]++
}

// ResetRedundantAge zeroes the counter at position i, typically because
// the entry was binding again this round.
func (s *Set[T]) ResetRedundantAge(i int) {
	s.check(i)
	s.age[i] = 0
}

// AgedAtLeast returns the positions whose redundant age reached n, in
// increasing order, ready to pass to Remove. The Set itself never
// evicts; that decision stays with the driver.
func (s *Set[T]) AgedAtLeast(n int) []int {
	var out []int
	for i, a := range s.age {
		if a >= n {
			out = append(out, i)
		}
	}
	return out
}

func (s *Set[T]) check(i int) {
	if i < 0 || i >= len(s.handles) {
		panic("active: index out of range")
	}
}
