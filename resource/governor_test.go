package resource

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGovernor_Memory(t *testing.T) {
	// Test with limit
	g := NewGovernor(Config{MemoryLimitBytes: 100})

	// Acquire 50
	err := g.AcquireMemory(context.Background(), 50)
	require.NoError(t, err)
	assert.Equal(t, int64(50), g.MemoryUsage())

	// Acquire 40
	err = g.AcquireMemory(context.Background(), 40)
	require.NoError(t, err)
	assert.Equal(t, int64(90), g.MemoryUsage())

	// TryAcquire 20 (should fail)
	ok := g.TryAcquireMemory(20)
	assert.False(t, ok)
	assert.Equal(t, int64(90), g.MemoryUsage())

	// Acquire 20 (should block/timeout)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err = g.AcquireMemory(ctx, 20)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// Release 50
	g.ReleaseMemory(50)
	assert.Equal(t, int64(40), g.MemoryUsage())

	// Now Acquire 20 should succeed
	err = g.AcquireMemory(context.Background(), 20)
	require.NoError(t, err)
	assert.Equal(t, int64(60), g.MemoryUsage())
}

func TestGovernor_UnlimitedMemory(t *testing.T) {
	g := NewGovernor(Config{})

	err := g.AcquireMemory(context.Background(), 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), g.MemoryUsage())

	g.ReleaseMemory(500)
	assert.Equal(t, int64(500), g.MemoryUsage())
}

func TestGovernor_NilReceiver(t *testing.T) {
	var g *Governor

	assert.True(t, g.TryAcquireMemory(1<<30))
	g.ReleaseMemory(1 << 30)
	assert.Equal(t, int64(0), g.MemoryUsage())
	assert.True(t, g.AllowGC())
}

func TestGovernor_GCPacing(t *testing.T) {
	g := NewGovernor(Config{GCRatePerSec: 1, GCBurst: 2})

	// Burst of 2 is available immediately
	assert.True(t, g.AllowGC())
	assert.True(t, g.AllowGC())

	// Third sweep in the same instant is refused
	assert.False(t, g.AllowGC())
}

func TestGovernor_GCUnlimited(t *testing.T) {
	g := NewGovernor(Config{})

	for i := 0; i < 100; i++ {
		assert.True(t, g.AllowGC())
	}
}
