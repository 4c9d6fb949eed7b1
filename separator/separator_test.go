package separator

import (
	"testing"

	"github.com/hupe1980/cutpool/pool"
	"github.com/hupe1980/cutpool/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTarget(t *testing.T, capacity int) *pool.StandardPool[*testutil.Cover] {
	t.Helper()

	p, err := pool.New[*testutil.Cover](capacity)
	require.NoError(t, err)
	return p
}

func TestSeparator_CutFound(t *testing.T) {
	p := newTarget(t, 8)
	s := New[*testutil.Cover](p, 4)

	assert.Equal(t, CutAdded, s.CutFound(testutil.NewCover(1, 2)))
	assert.Equal(t, CutAdded, s.CutFound(testutil.NewCover(3, 4)))

	assert.Equal(t, 2, s.NumGenerated())
	assert.Equal(t, 0, s.NumDuplications())
	assert.Equal(t, 2, p.Count())
	assert.Equal(t, 2, s.Buffer().Count())
}

func TestSeparator_RoundLocalDuplicate(t *testing.T) {
	p := newTarget(t, 8)
	s := New[*testutil.Cover](p, 4)

	require.Equal(t, CutAdded, s.CutFound(testutil.NewCover(1, 2)))

	dup := testutil.NewCover(1, 2)
	assert.Equal(t, CutDuplication, s.CutFound(dup))

	// The duplicate was released, not pooled
	assert.Equal(t, 1, dup.Released)
	assert.Equal(t, 1, p.Count())
	assert.Equal(t, 1, s.NumGenerated())
	assert.Equal(t, 1, s.NumDuplications())
	assert.Equal(t, 1, s.Buffer().Count())
}

func TestSeparator_WatchedPool(t *testing.T) {
	p, err := pool.NewNonDupl[*testutil.Cover](8)
	require.NoError(t, err)

	// An older round already pooled this cut
	_, err = p.Insert(testutil.NewCover(1, 2))
	require.NoError(t, err)

	s := New[*testutil.Cover](p, 4, func(o *Options[*testutil.Cover]) {
		o.Watched = p
	})

	dup := testutil.NewCover(1, 2)
	assert.Equal(t, CutDuplication, s.CutFound(dup))
	assert.Equal(t, 1, dup.Released)
	assert.Equal(t, 1, p.Count())
	assert.Equal(t, 1, s.NumDuplications())

	// Fresh content still goes through
	assert.Equal(t, CutAdded, s.CutFound(testutil.NewCover(3, 4)))
	assert.Equal(t, 2, p.Count())
}

func TestSeparator_BufferFull(t *testing.T) {
	p := newTarget(t, 8)
	s := New[*testutil.Cover](p, 2)

	require.Equal(t, CutAdded, s.CutFound(testutil.NewCover(1)))
	require.Equal(t, CutAdded, s.CutFound(testutil.NewCover(2)))
	assert.True(t, s.TerminateSeparation())

	rejected := testutil.NewCover(3)
	assert.Equal(t, CutFull, s.CutFound(rejected))

	// Rejected candidates never reach the pool
	assert.Equal(t, 1, rejected.Released)
	assert.Equal(t, 2, p.Count())
	assert.Equal(t, 2, s.NumGenerated())
	assert.Equal(t, 0, s.NumDuplications())
}

func TestSeparator_PoolFull(t *testing.T) {
	p, err := pool.New[*testutil.Cover](1, func(o *pool.Options) {
		o.AutoGrow = false
	})
	require.NoError(t, err)

	s := New[*testutil.Cover](p, 4)
	require.Equal(t, CutAdded, s.CutFound(testutil.NewCover(1)))

	rejected := testutil.NewCover(2)
	assert.Equal(t, CutFull, s.CutFound(rejected))
	assert.Equal(t, 1, rejected.Released)
	assert.Equal(t, 1, s.NumGenerated())
	assert.Equal(t, 1, s.Buffer().Count())
}

func TestSeparator_RankedRound(t *testing.T) {
	p := newTarget(t, 8)
	s := New[*testutil.Cover](p, 4)

	weak := testutil.NewCover(1, 2)
	strong := testutil.NewCover(3, 4)
	mid := testutil.NewCover(5, 6)

	require.Equal(t, CutAdded, s.CutFoundRanked(weak, 0.1))
	require.Equal(t, CutAdded, s.CutFoundRanked(strong, 0.9))
	require.Equal(t, CutAdded, s.CutFoundRanked(mid, 0.5))

	got := s.Buffer().Extract(2)
	require.Len(t, got, 2)

	obj, ok := got[0].Get()
	require.True(t, ok)
	assert.Equal(t, strong, obj)
	obj, ok = got[1].Get()
	require.True(t, ok)
	assert.Equal(t, mid, obj)

	// The weakest cut was neither admitted nor kept
	assert.Equal(t, 2, p.Count())
	assert.Equal(t, 1, weak.Released)
}

func TestSeparator_KeepInPool(t *testing.T) {
	p := newTarget(t, 8)
	s := New[*testutil.Cover](p, 4, func(o *Options[*testutil.Cover]) {
		o.KeepInPool = true
	})

	spare := testutil.NewCover(1, 2)
	require.Equal(t, CutAdded, s.CutFoundRanked(spare, 0.1))
	require.Equal(t, CutAdded, s.CutFoundRanked(testutil.NewCover(3, 4), 0.9))

	got := s.Buffer().Extract(1)
	require.Len(t, got, 1)

	// The unadmitted cut survives for later rounds
	assert.Equal(t, 2, p.Count())
	assert.Zero(t, spare.Released)
}

func TestSeparator_Reset(t *testing.T) {
	p := newTarget(t, 8)
	s := New[*testutil.Cover](p, 4)

	require.Equal(t, CutAdded, s.CutFound(testutil.NewCover(1, 2)))
	require.Equal(t, CutDuplication, s.CutFound(testutil.NewCover(1, 2)))

	s.Reset()
	assert.Equal(t, 0, s.NumGenerated())
	assert.Equal(t, 0, s.NumDuplications())

	// Without a watched pool the duplicate index is strictly per round
	assert.Equal(t, CutAdded, s.CutFound(testutil.NewCover(1, 2)))
	assert.Equal(t, 2, p.Count())
}

func TestSeparator_TerminatePolicy(t *testing.T) {
	p := newTarget(t, 8)
	s := New[*testutil.Cover](p, 8, func(o *Options[*testutil.Cover]) {
		o.Terminate = func(s *Separator[*testutil.Cover]) bool {
			return s.NumGenerated() >= 2
		}
	})

	assert.False(t, s.TerminateSeparation())
	require.Equal(t, CutAdded, s.CutFound(testutil.NewCover(1)))
	assert.False(t, s.TerminateSeparation())
	require.Equal(t, CutAdded, s.CutFound(testutil.NewCover(2)))
	assert.True(t, s.TerminateSeparation())
}

func TestCutStatus_String(t *testing.T) {
	assert.Equal(t, "added", CutAdded.String())
	assert.Equal(t, "duplication", CutDuplication.String())
	assert.Equal(t, "full", CutFull.String())
	assert.Equal(t, "unknown", CutStatus(99).String())
}
