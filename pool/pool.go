package pool

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/bits-and-blooms/bitset"
)

var (
	// ErrPoolFull is returned by Insert when the pool is at capacity and
	// auto-grow is disabled, or when the memory governor refuses further
	// backing storage.
	ErrPoolFull = errors.New("pool: full")

	// ErrPoolClosed is returned by operations on a closed pool.
	ErrPoolClosed = errors.New("pool: closed")
)

// Item is the capability contract every pooled payload satisfies.
type Item interface {
	// Deletable reports whether the payload may be physically destroyed
	// right now. Payloads maintain this by convention (see convar.Base);
	// the pool never second-guesses the answer.
	Deletable() bool
}

// Keyed is the additional contract deduplicating pools require.
type Keyed[T any] interface {
	Item

	// HashKey returns a content hash of the payload.
	HashKey() uint64

	// Equal reports content equality with another payload. It is only
	// consulted on hash-key collisions.
	Equal(other T) bool
}

// Releaser is implemented by payloads owning resources beyond their own
// memory. Release runs exactly once, when the payload is destroyed or
// discarded as a duplicate.
type Releaser interface {
	Release()
}

// Pool is the storage shared by every subproblem of a search tree.
type Pool[T Item] interface {
	// Insert stores obj and returns a Handle to it.
	Insert(obj T) (Handle[T], error)

	// Remove advisorily destroys the referenced payload. It returns true
	// when the payload is gone afterwards (destroyed now, or already
	// absent) and false when the payload refused deletion. A live Handle
	// issued by a different pool panics.
	Remove(h Handle[T]) bool

	// Increase raises the capacity, allocating backing pages eagerly.
	// Cells never relocate; existing Handles stay valid.
	Increase(capacity int) error

	// Sweep advisorily removes every deletable payload and returns the
	// number destroyed. Refusals stay for a later pass.
	Sweep() int

	// Count returns the number of live payloads.
	Count() int

	// Capacity returns the current slot capacity.
	Capacity() int

	// Free returns the number of unoccupied slots.
	Free() int

	// Close hard-deletes every payload, bypassing Deletable, and
	// releases the backing storage. Idempotent.
	Close() error
}

// DefaultCapacity is used when a pool is created with capacity <= 0.
const DefaultCapacity = 256

// StandardPool is the array-backed Pool implementation.
type StandardPool[T Item] struct {
	pages    []*page[T]
	occ      *bitset.BitSet // occupancy by slot id
	free     []uint32       // emptied cells, reused LIFO
	next     uint32         // first never-occupied cell
	capacity uint32
	count    int
	charged  int64 // bytes acquired from the governor
	opts     Options
	closed   bool
}

// New creates a StandardPool with the given capacity. Backing pages for
// the initial capacity are allocated immediately; auto-grow later adds
// pages one at a time.
func New[T Item](capacity int, optFns ...func(o *Options)) (*StandardPool[T], error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.GrowthFactor < minGrowthFactor {
		opts.GrowthFactor = minGrowthFactor
	}

	p := &StandardPool[T]{
		occ:      bitset.New(uint(capacity)),
		capacity: uint32(capacity),
		opts:     opts,
	}

	if err := p.ensurePages(p.capacity); err != nil {
		p.opts.Governor.ReleaseMemory(p.charged)
		return nil, err
	}
	return p, nil
}

// pageBytes is the governor charge for one page of this payload type.
func (p *StandardPool[T]) pageBytes() int64 {
	return int64(unsafe.Sizeof(page[T]{}))
}

// ensurePages allocates pages until capacity cells are addressable.
func (p *StandardPool[T]) ensurePages(capacity uint32) error {
	want := int((capacity + pageMask) >> pageBits)
	for len(p.pages) < want {
		if !p.opts.Governor.TryAcquireMemory(p.pageBytes()) {
			return fmt.Errorf("%w: memory budget exhausted", ErrPoolFull)
		}
		p.charged += p.pageBytes()

		pg := &page[T]{}
		base := uint32(len(p.pages)) << pageBits
		for i := range pg.slots {
			pg.slots[i].owner = p
			pg.slots[i].index = base + uint32(i)
		}
		p.pages = append(p.pages, pg)
	}
	return nil
}

func (p *StandardPool[T]) slotAt(id uint32) *slot[T] {
	return &p.pages[id>>pageBits].slots[id&pageMask]
}

// takeSlot picks the cell for the next insert: free list first, then the
// next virgin cell, growing the capacity when allowed.
func (p *StandardPool[T]) takeSlot() (uint32, error) {
	if n := len(p.free); n > 0 {
		id := p.free[n-1]
		p.free = p.free[:n-1]
		return id, nil
	}

	prev := p.capacity
	if p.next >= p.capacity {
		if !p.opts.AutoGrow {
			return 0, ErrPoolFull
		}
		grown := uint32(float64(p.capacity) * p.opts.GrowthFactor)
		if grown <= p.capacity {
			grown = p.capacity + 1
		}
		p.capacity = grown
	}

	if err := p.ensurePages(p.next + 1); err != nil {
		p.capacity = prev
		return 0, err
	}

	id := p.next
	p.next++
	return id, nil
}

// Insert implements Pool.
func (p *StandardPool[T]) Insert(obj T) (Handle[T], error) {
	if p.closed {
		return Handle[T]{}, ErrPoolClosed
	}

	id, err := p.takeSlot()
	if err != nil {
		return Handle[T]{}, err
	}

	s := p.slotAt(id)
	s.insert(obj)
	p.occ.Set(uint(id))
	p.count++

	return Handle[T]{slot: s, version: s.version}, nil
}

// Remove implements Pool. A stale Handle is a no-op reported as true: the
// payload it referenced is already gone, and the cell's current occupant,
// if any, belongs to somebody else.
func (p *StandardPool[T]) Remove(h Handle[T]) bool {
	s := h.slot
	if s == nil || s.version != h.version || !s.occupied {
		return true
	}
	if s.owner != p {
		panic("pool: remove with a handle from another pool")
	}
	if !s.payload.Deletable() {
		return false
	}
	p.emptySlot(s)
	return true
}

// emptySlot destroys the payload and recycles the cell.
func (p *StandardPool[T]) emptySlot(s *slot[T]) {
	s.destroy()
	p.occ.Clear(uint(s.index))
	p.free = append(p.free, s.index)
	p.count--
}

// Increase implements Pool. Capacities at or below the current one are
// a no-op.
func (p *StandardPool[T]) Increase(capacity int) error {
	if p.closed {
		return ErrPoolClosed
	}
	if capacity <= int(p.capacity) {
		return nil
	}
	if err := p.ensurePages(uint32(capacity)); err != nil {
		return err
	}
	p.capacity = uint32(capacity)
	return nil
}

// Sweep implements Pool.
func (p *StandardPool[T]) Sweep() int {
	removed := 0
	for id, ok := p.occ.NextSet(0); ok; id, ok = p.occ.NextSet(id + 1) {
		s := p.slotAt(uint32(id))
		if !s.payload.Deletable() {
			continue
		}
		p.emptySlot(s)
		removed++
	}
	return removed
}

// Count implements Pool.
func (p *StandardPool[T]) Count() int {
	return p.count
}

// Capacity implements Pool.
func (p *StandardPool[T]) Capacity() int {
	return int(p.capacity)
}

// Free implements Pool.
func (p *StandardPool[T]) Free() int {
	return int(p.capacity) - p.count
}

// Close implements Pool. Every occupied cell is hard-deleted: payloads
// are destroyed no matter what Deletable says, and Release still fires.
// Outstanding Handles expire through the usual occupancy check.
func (p *StandardPool[T]) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true

	for id, ok := p.occ.NextSet(0); ok; id, ok = p.occ.NextSet(id + 1) {
		p.slotAt(uint32(id)).destroy()
	}
	p.occ.ClearAll()
	p.count = 0
	p.pages = nil
	p.free = nil
	p.next = 0

	p.opts.Governor.ReleaseMemory(p.charged)
	p.charged = 0

	return nil
}
