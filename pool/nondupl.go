package pool

// NonDuplPool is a Pool that suppresses duplicates. A content-hash index
// maps HashKey values to candidate slots; Insert collapses an object
// equal to a pooled one onto the existing slot for as long as that
// payload lives, across the whole search tree. The standard core is held
// by pointer so its cells keep their owner identity.
type NonDuplPool[T Keyed[T]] struct {
	std   *StandardPool[T]
	index map[uint64][]uint32 // hash key -> occupied slot ids
}

// NewNonDupl creates a NonDuplPool with the given capacity.
func NewNonDupl[T Keyed[T]](capacity int, optFns ...func(o *Options)) (*NonDuplPool[T], error) {
	std, err := New[T](capacity, optFns...)
	if err != nil {
		return nil, err
	}
	return &NonDuplPool[T]{
		std:   std,
		index: make(map[uint64][]uint32),
	}, nil
}

// Insert implements Pool. When an equal payload is already pooled, obj
// is discarded (its Release fires) and the existing slot's Handle is
// returned; the live count does not change.
func (p *NonDuplPool[T]) Insert(obj T) (Handle[T], error) {
	if h, ok := p.Present(obj); ok {
		Discard(obj)
		return h, nil
	}

	h, err := p.std.Insert(obj)
	if err != nil {
		return Handle[T]{}, err
	}

	key := obj.HashKey()
	p.index[key] = append(p.index[key], h.slot.index)
	return h, nil
}

// Present returns a Handle to a pooled payload equal to obj, if any.
func (p *NonDuplPool[T]) Present(obj T) (Handle[T], bool) {
	for _, id := range p.index[obj.HashKey()] {
		s := p.std.slotAt(id)
		if !s.occupied {
			continue
		}
		if s.payload.Equal(obj) {
			return Handle[T]{slot: s, version: s.version}, true
		}
	}
	return Handle[T]{}, false
}

// Remove implements Pool. The index entry goes away together with the
// payload, so a later equal insert occupies a fresh slot.
func (p *NonDuplPool[T]) Remove(h Handle[T]) bool {
	obj, ok := h.Get()
	if !ok {
		return true
	}
	if h.slot.owner != p.std {
		panic("pool: remove with a handle from another pool")
	}
	if !obj.Deletable() {
		return false
	}

	key := obj.HashKey()
	id := h.slot.index
	p.std.emptySlot(h.slot)
	p.unindex(key, id)
	return true
}

// Sweep implements Pool.
func (p *NonDuplPool[T]) Sweep() int {
	removed := 0
	for id, ok := p.std.occ.NextSet(0); ok; id, ok = p.std.occ.NextSet(id + 1) {
		s := p.std.slotAt(uint32(id))
		if !s.payload.Deletable() {
			continue
		}
		key := s.payload.HashKey()
		p.std.emptySlot(s)
		p.unindex(key, s.index)
		removed++
	}
	return removed
}

// unindex drops one slot id from a hash bucket.
func (p *NonDuplPool[T]) unindex(key uint64, id uint32) {
	bucket := p.index[key]
	for i, bid := range bucket {
		if bid == id {
			bucket[i] = bucket[len(bucket)-1]
			bucket = bucket[:len(bucket)-1]
			break
		}
	}
	if len(bucket) == 0 {
		delete(p.index, key)
	} else {
		p.index[key] = bucket
	}
}

// Increase implements Pool. The hash index resizes itself; only the slot
// storage needs explicit growth.
func (p *NonDuplPool[T]) Increase(capacity int) error {
	return p.std.Increase(capacity)
}

// Count implements Pool.
func (p *NonDuplPool[T]) Count() int {
	return p.std.Count()
}

// Capacity implements Pool.
func (p *NonDuplPool[T]) Capacity() int {
	return p.std.Capacity()
}

// Free implements Pool.
func (p *NonDuplPool[T]) Free() int {
	return p.std.Free()
}

// Close implements Pool.
func (p *NonDuplPool[T]) Close() error {
	err := p.std.Close()
	p.index = nil
	return err
}
