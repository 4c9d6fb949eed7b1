// Package separator implements the generation side of a cutting-plane
// round: candidates found by a separation routine are deduplicated,
// pooled, and staged for admission in one step.
package separator

import (
	"github.com/hupe1980/cutpool/pool"
	"github.com/hupe1980/cutpool/staging"
)

// CutStatus is the outcome of offering a candidate to a Separator.
type CutStatus int

const (
	// CutAdded means the candidate was pooled and staged.
	CutAdded CutStatus = iota

	// CutDuplication means an equal object already exists this round or
	// in the watched pool; the candidate was released.
	CutDuplication

	// CutFull means the staging buffer or the target pool is at
	// capacity; the candidate was released.
	CutFull
)

// String implements fmt.Stringer.
func (cs CutStatus) String() string {
	switch cs {
	case CutAdded:
		return "added"
	case CutDuplication:
		return "duplication"
	case CutFull:
		return "full"
	default:
		return "unknown"
	}
}

// Options configure a Separator.
type Options[T pool.Keyed[T]] struct {
	// Watched is a deduplicating pool whose persistent index is
	// consulted in addition to the round-local one. When the target
	// pool itself deduplicates, point Watched at it so pool-level
	// duplicates surface as CutDuplication instead of silently
	// collapsing inside Insert.
	Watched *pool.NonDuplPool[T]

	// KeepInPool marks staged candidates as kept: candidates that are
	// not admitted this round then stay pooled for later rounds
	// instead of being evicted on Extract.
	KeepInPool bool

	// Terminate overrides the stop policy consulted by
	// TerminateSeparation. Nil means "stop once the buffer is full".
	Terminate func(s *Separator[T]) bool

	// BufferSortThreshold is passed through to the staging buffer.
	BufferSortThreshold int
}

// Separator collects the cuts of one separation round.
//
// It owns every candidate handed to CutFound: a candidate that does not
// come back as CutAdded has been released. Counters and the round-local
// duplicate index last until Reset; the staged handles leave through
// the buffer's Extract.
type Separator[T pool.Keyed[T]] struct {
	target pool.Pool[T]
	buffer *staging.Buffer[T]
	local  map[uint64][]pool.Handle[T]
	opts   Options[T]

	generated    int
	duplications int
}

// New creates a Separator generating into target with a staging buffer
// of the given capacity.
func New[T pool.Keyed[T]](target pool.Pool[T], bufferCapacity int, optFns ...func(o *Options[T])) *Separator[T] {
	if target == nil {
		panic("separator: nil target pool")
	}

	var opts Options[T]
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Separator[T]{
		target: target,
		buffer: staging.NewBuffer(target, bufferCapacity, func(o *staging.Options) {
			o.SortThreshold = opts.BufferSortThreshold
		}),
		local: make(map[uint64][]pool.Handle[T]),
		opts:  opts,
	}
}

// CutFound offers an unranked candidate.
func (s *Separator[T]) CutFound(c T) CutStatus {
	return s.cutFound(c, false, 0)
}

// CutFoundRanked offers a candidate with an admission rank.
func (s *Separator[T]) CutFoundRanked(c T, rank float64) CutStatus {
	return s.cutFound(c, true, rank)
}

func (s *Separator[T]) cutFound(c T, ranked bool, rank float64) CutStatus {
	if s.duplicate(c) {
		pool.Discard(c)
		s.duplications++
		return CutDuplication
	}

	if s.buffer.Space() == 0 {
		pool.Discard(c)
		return CutFull
	}

	h, err := s.target.Insert(c)
	if err != nil {
		pool.Discard(c)
		return CutFull
	}

	if ranked {
		err = s.buffer.InsertRanked(h, s.opts.KeepInPool, rank)
	} else {
		err = s.buffer.Insert(h, s.opts.KeepInPool)
	}
	if err != nil {
		s.target.Remove(h)
		return CutFull
	}

	key := c.HashKey()
	s.local[key] = append(s.local[key], h)
	s.generated++
	return CutAdded
}

// duplicate checks the round-local index first, then the watched pool.
func (s *Separator[T]) duplicate(c T) bool {
	for _, h := range s.local[c.HashKey()] {
		if obj, ok := h.Get(); ok && obj.Equal(c) {
			return true
		}
	}
	if s.opts.Watched != nil {
		if _, ok := s.opts.Watched.Present(c); ok {
			return true
		}
	}
	return false
}

// TerminateSeparation reports whether the separation routine should
// stop generating. The default policy stops once the buffer is full.
func (s *Separator[T]) TerminateSeparation() bool {
	if s.opts.Terminate != nil {
		return s.opts.Terminate(s)
	}
	return s.buffer.Space() == 0
}

// Reset begins a new round: the duplicate index and the counters are
// cleared. Staged entries are not touched; they belong to the buffer
// until Extract.
func (s *Separator[T]) Reset() {
	clear(s.local)
	s.generated = 0
	s.duplications = 0
}

// NumGenerated returns how many candidates were added this round.
func (s *Separator[T]) NumGenerated() int {
	return s.generated
}

// NumDuplications returns how many candidates were rejected as
// duplicates this round.
func (s *Separator[T]) NumDuplications() int {
	return s.duplications
}

// Buffer returns the staging buffer holding this round's cuts.
func (s *Separator[T]) Buffer() *staging.Buffer[T] {
	return s.buffer
}
