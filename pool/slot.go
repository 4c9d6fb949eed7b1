package pool

const (
	// pageBits sizes a page at 256 slots.
	pageBits = 8
	pageSize = 1 << pageBits
	pageMask = pageSize - 1
)

// page is a fixed block of slots. Pages are only ever appended, never
// moved, so a *slot stays valid for the life of its pool.
type page[T Item] struct {
	slots [pageSize]slot[T]
}

// slot is a fixed storage cell owning at most one payload. The cell is
// reused across many payload lifecycles; the version counter is what
// lets outstanding Handles notice the difference. A cell belongs to the
// pool that allocated it for its whole life.
type slot[T Item] struct {
	payload  T
	version  uint64
	owner    *StandardPool[T]
	index    uint32
	occupied bool
}

// insert places a payload into an empty cell. The version increments by
// exactly one per occupation and never on emptying.
func (s *slot[T]) insert(obj T) {
	if s.occupied {
		panic("pool: insert into occupied slot")
	}
	s.payload = obj
	s.occupied = true
	s.version++
}

// destroy irreversibly drops the payload and empties the cell. The
// version stays unchanged; handles to the old payload expire through
// the occupancy check until the cell is reused.
func (s *slot[T]) destroy() {
	Discard(s.payload)
	var zero T
	s.payload = zero
	s.occupied = false
}

// Discard releases obj if it implements Releaser. Pools call this for
// every destroyed payload and every duplicate dropped on insert.
func Discard[T any](obj T) {
	if r, ok := any(obj).(Releaser); ok {
		r.Release()
	}
}
