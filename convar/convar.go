// Package convar provides the bookkeeping conventions pooled
// constraint/variable payloads use to answer Deletable.
//
// A pool never tracks who references a payload; the payload itself
// maintains a reference count and an activation count and refuses
// deletion while either is nonzero. Base implements that convention and
// is meant to be embedded:
//
//	type KnapsackCover struct {
//	    convar.Base
//	    vars []uint32
//	    rhs  float64
//	}
//
// Key and KeyUint64s are the canonical content-hash helpers for
// implementing HashKey on deduplicated payloads.
package convar

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Base tracks references and activations for a pooled payload.
//
// AddReference/RemoveReference count long-lived references outside any
// active set (for example a branching rule holding on to a variable).
// Activate/Deactivate count memberships in subproblem active sets. A
// payload is deletable only when both counts are zero.
//
// The zero value is ready to use and deletable.
type Base struct {
	refs   int
	active int
}

// AddReference records a long-lived reference to the payload.
func (b *Base) AddReference() {
	b.refs++
}

// RemoveReference drops a reference recorded with AddReference.
func (b *Base) RemoveReference() {
	if b.refs == 0 {
		panic("convar: reference count underflow")
	}
	b.refs--
}

// ReferenceCount returns the number of recorded references.
func (b *Base) ReferenceCount() int {
	return b.refs
}

// Activate records membership in an active set.
func (b *Base) Activate() {
	b.active++
}

// Deactivate drops a membership recorded with Activate.
func (b *Base) Deactivate() {
	if b.active == 0 {
		panic("convar: activation count underflow")
	}
	b.active--
}

// Active reports whether the payload is in at least one active set.
func (b *Base) Active() bool {
	return b.active > 0
}

// Deletable reports whether the payload may be physically destroyed.
func (b *Base) Deletable() bool {
	return b.refs == 0 && b.active == 0
}

// Key returns the content hash of b.
func Key(b []byte) uint64 {
	return xxhash.Sum64(b)
}

// KeyString returns the content hash of s.
func KeyString(s string) uint64 {
	return xxhash.Sum64String(s)
}

// KeyUint64s returns the content hash of the given words in order.
// Useful for payloads whose identity is a tuple of ids and coefficients
// already reduced to bits.
func KeyUint64s(words ...uint64) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, w := range words {
		binary.LittleEndian.PutUint64(buf[:], w)
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}
