// Package staging provides the holding area for freshly generated
// candidates between separation and admission. A Buffer is bound to the
// pool its handles live in: whatever leaves the buffer unextracted and
// not flagged keep is advisorily removed from that pool, which is what
// keeps generated-but-unused candidates from accumulating forever.
package staging

import (
	"cmp"
	"errors"
	"slices"

	"github.com/hupe1980/cutpool/pool"
)

// ErrBufferFull is returned by Insert and InsertRanked once the buffer
// holds Capacity entries.
var ErrBufferFull = errors.New("staging: buffer full")

// DefaultCapacity is used when a Buffer is created with capacity <= 0.
const DefaultCapacity = 100

// Options configure a Buffer.
type Options struct {
	// SortThreshold is the entry count above which Extract ranks the
	// buffer before selecting. At or below it, insertion order is kept
	// even for ranked buffers.
	SortThreshold int
}

// DefaultOptions are the options used when none are given.
var DefaultOptions = Options{
	SortThreshold: 0,
}

type entry[T pool.Item] struct {
	handle pool.Handle[T]
	rank   float64
	keep   bool
}

// Buffer stages up to a fixed number of candidate handles for one
// separation round.
//
// A Buffer starts in ranked mode. The first successful unranked Insert
// switches it to insertion order for the rest of its lifetime, extract
// or not. Callers wanting rank-ordered admission must therefore use
// InsertRanked exclusively on that buffer.
type Buffer[T pool.Item] struct {
	pool     pool.Pool[T]
	entries  []entry[T]
	capacity int
	ranked   bool
	opts     Options
}

// NewBuffer creates a Buffer bound to p with the given capacity.
func NewBuffer[T pool.Item](p pool.Pool[T], capacity int, optFns ...func(o *Options)) *Buffer[T] {
	if p == nil {
		panic("staging: nil pool")
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Buffer[T]{
		pool:     p,
		entries:  make([]entry[T], 0, capacity),
		capacity: capacity,
		ranked:   true,
		opts:     opts,
	}
}

// Insert stages a handle without a rank. On success the buffer leaves
// ranked mode for good. ErrBufferFull once at capacity.
func (b *Buffer[T]) Insert(h pool.Handle[T], keep bool) error {
	if err := b.push(h, keep, 0); err != nil {
		return err
	}
	b.ranked = false
	return nil
}

// InsertRanked stages a handle with a rank. The rank only orders
// extraction while the buffer is still in ranked mode.
func (b *Buffer[T]) InsertRanked(h pool.Handle[T], keep bool, rank float64) error {
	return b.push(h, keep, rank)
}

func (b *Buffer[T]) push(h pool.Handle[T], keep bool, rank float64) error {
	if len(b.entries) >= b.capacity {
		return ErrBufferFull
	}
	b.entries = append(b.entries, entry[T]{handle: h, rank: rank, keep: keep})
	return nil
}

// Sort orders the entries by descending rank, stably, so equal ranks
// keep their insertion order. It does nothing on an unranked buffer or
// while Count is at or below threshold.
func (b *Buffer[T]) Sort(threshold int) {
	if !b.ranked || len(b.entries) <= threshold {
		return
	}
	slices.SortStableFunc(b.entries, func(x, y entry[T]) int {
		return cmp.Compare(y.rank, x.rank)
	})
}

// Extract returns up to max staged handles, rank order first when the
// buffer is ranked, and clears the buffer. Every entry neither
// extracted nor flagged keep is advisorily removed from the bound pool.
func (b *Buffer[T]) Extract(max int) []pool.Handle[T] {
	b.Sort(b.opts.SortThreshold)

	n := min(max, len(b.entries))
	if n < 0 {
		n = 0
	}

	out := make([]pool.Handle[T], 0, n)
	for _, e := range b.entries[:n] {
		out = append(out, e.handle)
	}
	for _, e := range b.entries[n:] {
		if !e.keep {
			b.pool.Remove(e.handle)
		}
	}

	clear(b.entries)
	b.entries = b.entries[:0]
	return out
}

// Remove discards the entries at the given positions mid-round,
// compacting the survivors in order. Discarded entries not flagged keep
// are advisorily removed from the bound pool. The indices must be
// strictly increasing and within range or Remove panics.
func (b *Buffer[T]) Remove(indices []int) {
	if len(indices) == 0 {
		return
	}

	prev := -1
	for _, i := range indices {
		if i < 0 || i >= len(b.entries) {
			panic("staging: remove index out of range")
		}
		if i <= prev {
			panic("staging: remove indices not strictly increasing")
		}
		prev = i
	}

	w := indices[0]
	k := 0
	for r := indices[0]; r < len(b.entries); r++ {
		if k < len(indices) && r == indices[k] {
			if !b.entries[r].keep {
				b.pool.Remove(b.entries[r].handle)
			}
			k++
			continue
		}
		b.entries[w] = b.entries[r]
		w++
	}

	clear(b.entries[w:])
	b.entries = b.entries[:w]
}

// Count returns the number of staged entries.
func (b *Buffer[T]) Count() int {
	return len(b.entries)
}

// Space returns how many more entries fit.
func (b *Buffer[T]) Space() int {
	return b.capacity - len(b.entries)
}

// Capacity returns the fixed capacity.
func (b *Buffer[T]) Capacity() int {
	return b.capacity
}

// Ranked reports whether the buffer is still in ranked mode.
func (b *Buffer[T]) Ranked() bool {
	return b.ranked
}
