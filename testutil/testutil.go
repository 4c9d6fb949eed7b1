// Package testutil provides shared payload fixtures for pool machinery
// tests. It is intended for tests and benchmarks only.
package testutil

import (
	"slices"

	"github.com/hupe1980/cutpool/convar"
)

// Object is a minimal pooled payload with a directly controllable
// deletability flag.
type Object struct {
	ID       int
	Pinned   bool
	Released int
}

// NewObject creates a deletable Object.
func NewObject(id int) *Object {
	return &Object{ID: id}
}

// Deletable implements pool.Item.
func (o *Object) Deletable() bool {
	return !o.Pinned
}

// Release implements pool.Releaser.
func (o *Object) Release() {
	o.Released++
}

// Cover is a cover-inequality-shaped payload for deduplication tests:
// its identity is the ordered support plus the right-hand side.
type Cover struct {
	convar.Base

	Vars     []uint32
	RHS      int
	Released int
}

// NewCover creates a Cover with the given support and rhs len(vars)-1.
func NewCover(vars ...uint32) *Cover {
	return &Cover{Vars: vars, RHS: len(vars) - 1}
}

// HashKey implements pool.Keyed.
func (c *Cover) HashKey() uint64 {
	words := make([]uint64, 0, len(c.Vars)+1)
	for _, v := range c.Vars {
		words = append(words, uint64(v))
	}
	words = append(words, uint64(c.RHS))
	return convar.KeyUint64s(words...)
}

// Equal implements pool.Keyed.
func (c *Cover) Equal(other *Cover) bool {
	return c.RHS == other.RHS && slices.Equal(c.Vars, other.Vars)
}

// Release implements pool.Releaser.
func (c *Cover) Release() {
	c.Released++
}
