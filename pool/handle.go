package pool

// Handle is a non-owning, staleness-checked reference to a pooled
// payload. It is cheap to copy and comparable: two Handles are equal iff
// they name the same slot and the same remembered version. Payload
// content never enters the comparison.
//
// A Handle expires silently when its payload is destroyed; there is no
// notification. Every read must go through Get, and a false result is a
// routine outcome, not a fault. The zero Handle is permanently dead.
type Handle[T Item] struct {
	slot    *slot[T]
	version uint64
}

// Get returns the referenced payload. The second result is false if the
// payload was destroyed, the cell was reused, or the Handle is zero.
func (h Handle[T]) Get() (T, bool) {
	if h.slot == nil || h.slot.version != h.version || !h.slot.occupied {
		var zero T
		return zero, false
	}
	return h.slot.payload, true
}

// Live reports whether Get would succeed right now. The answer can be
// invalidated by any later pool mutation, which is why call sites
// dereference through Get instead of caching it.
func (h Handle[T]) Live() bool {
	return h.slot != nil && h.slot.version == h.version && h.slot.occupied
}

// Version returns the remembered slot version.
func (h Handle[T]) Version() uint64 {
	return h.version
}
