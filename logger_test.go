package cutpool

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/hupe1980/cutpool/pool"
	"github.com/hupe1980/cutpool/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Helpers(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	ctx := context.Background()

	l.LogInsert(ctx, 3, nil)
	l.LogInsert(ctx, 0, errors.New("pool full"))
	l.LogRemove(ctx, true)
	l.LogAdmit(ctx, 2, 5)
	l.LogSeparation(ctx, 4, 1)
	l.WithRound(7).LogGC(ctx, 2, nil)

	logOutput := buf.String()
	assert.Contains(t, logOutput, "insert completed")
	assert.Contains(t, logOutput, "insert failed")
	assert.Contains(t, logOutput, "remove completed")
	assert.Contains(t, logOutput, "admission completed")
	assert.Contains(t, logOutput, `"generated":4`)
	assert.Contains(t, logOutput, `"round":7`)
	assert.Contains(t, logOutput, `"removed":2`)
}

func TestStructuredLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	p, err := pool.New[*testutil.Object](4)
	require.NoError(t, err)

	ws, err := New[*testutil.Object](p, WithLogger(logger))
	require.NoError(t, err)
	defer ws.Close()

	// Drive one insert/remove/gc cycle through the boundary
	h, err := ws.Insert(testutil.NewObject(1))
	require.NoError(t, err)
	ws.Remove(h)

	_, err = ws.GC(context.Background())
	require.NoError(t, err)

	logOutput := buf.String()
	require.Contains(t, logOutput, "insert completed")
	require.Contains(t, logOutput, "remove completed")
	require.Contains(t, logOutput, "gc completed")
}
